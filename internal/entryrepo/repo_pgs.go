// Package entryrepo manages repository layer of journal entries.
package entryrepo

import (
	"context"
	"database/sql"

	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/pkg/dbpkg"
	"github.com/finvera/ledger-core/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
)

// RepoPGS facilitates journal entry repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns entry RepoPGS scoped to an existing transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns entry RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const entryColumns = `
	id, entity_id, number, date, fiscal_year, fiscal_period, type, memo,
	reference, status, workflow_stage, created_by, locked, reverses_entry_id,
	created_at, posted_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (domain.JournalEntry, error) {
	var e domain.JournalEntry

	err := row.Scan(
		&e.ID,
		&e.EntityID,
		&e.Number,
		&e.Date,
		&e.FiscalYear,
		&e.FiscalPeriod,
		&e.Type,
		&e.Memo,
		&e.Reference,
		&e.Status,
		&e.WorkflowStage,
		&e.CreatedBy,
		&e.Locked,
		&e.ReversesEntryID,
		&e.CreatedAt,
		&e.PostedAt,
	)

	return e, err
}

const nextNumberQuery = `
INSERT INTO entry_sequences (entity_id, fiscal_year, last_seq)
VALUES ($1, $2, 1)
ON CONFLICT (entity_id, fiscal_year)
DO UPDATE SET last_seq = entry_sequences.last_seq + 1
RETURNING last_seq
`

// NextNumber atomically advances the entity's entry counter for a fiscal year.
func (r *RepoPGS) NextNumber(ctx context.Context, entityID int32, fiscalYear int) (int64, error) {
	l := zerolog.Ctx(ctx)

	var seq int64

	err := r.db.QueryRowContext(ctx, nextNumberQuery, entityID, fiscalYear).Scan(&seq)
	if err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return seq, nil
}

const createEntryQuery = `
INSERT INTO
	journal_entries (entity_id, number, date, fiscal_year, fiscal_period, type,
		memo, reference, created_by, reverses_entry_id)
VALUES
	($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING` + entryColumns

const createLineQuery = `
INSERT INTO
	journal_lines (entry_id, line_number, account_id, debit, credit, description)
VALUES
	($1, $2, $3, $4, $5, $6)
RETURNING id, entry_id, line_number, account_id, debit, credit, description
`

// Create creates a draft entry with its lines in a single transaction.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateEntryParams, number, createdBy string) (domain.JournalEntry, error) {
	l := zerolog.Ctx(ctx)

	var e domain.JournalEntry

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return e, errorspkg.ErrInternal
	}

	defer func() {
		_ = tx.Rollback()
	}()

	row := tx.QueryRowContext(ctx, createEntryQuery,
		arg.EntityID,
		number,
		arg.Date,
		arg.FiscalYear,
		arg.FiscalPeriod,
		arg.Type,
		arg.Memo,
		arg.Reference,
		createdBy,
		arg.ReversesEntryID,
	)

	e, err = scanEntry(row)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "journal_entries_reverses_entry_id_fkey":
				return e, domain.ErrEntryNotFound
			case "journal_entries_fiscal_period_check":
				return e, domain.ErrInvalidPeriod
			}
		}

		return e, errorspkg.ErrInternal
	}

	e.Lines, err = insertLines(ctx, tx, e.ID, arg.Lines)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "journal_lines_account_id_fkey" {
				return e, domain.ErrAccountNotFound
			}
		}

		return e, errorspkg.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return e, errorspkg.ErrInternal
	}

	return e, nil
}

func insertLines(ctx context.Context, tx *sql.Tx, entryID int64, lines []domain.LineParams) ([]domain.JournalLine, error) {
	inserted := make([]domain.JournalLine, 0, len(lines))

	for i, lp := range lines {
		row := tx.QueryRowContext(ctx, createLineQuery,
			entryID,
			i+1,
			lp.AccountID,
			lp.Debit,
			lp.Credit,
			lp.Description,
		)

		var jl domain.JournalLine

		err := row.Scan(
			&jl.ID,
			&jl.EntryID,
			&jl.LineNumber,
			&jl.AccountID,
			&jl.Debit,
			&jl.Credit,
			&jl.Description,
		)
		if err != nil {
			return nil, err
		}

		inserted = append(inserted, jl)
	}

	return inserted, nil
}

const getEntryQuery = `
SELECT` + entryColumns + `
FROM journal_entries
WHERE id = $1
`

const listLinesQuery = `
SELECT id, entry_id, line_number, account_id, debit, credit, description
FROM journal_lines
WHERE entry_id = $1
ORDER BY line_number
`

// Get returns the entry with its lines.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.JournalEntry, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getEntryQuery, id)

	e, err := scanEntry(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return e, domain.ErrEntryNotFound
		}

		return e, errorspkg.ErrInternal
	}

	e.Lines, err = r.listLines(ctx, id)
	if err != nil {
		return e, err
	}

	return e, nil
}

func (r *RepoPGS) listLines(ctx context.Context, entryID int64) ([]domain.JournalLine, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listLinesQuery, entryID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	lines := []domain.JournalLine{}

	for rows.Next() {
		var jl domain.JournalLine

		err := rows.Scan(
			&jl.ID,
			&jl.EntryID,
			&jl.LineNumber,
			&jl.AccountID,
			&jl.Debit,
			&jl.Credit,
			&jl.Description,
		)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		lines = append(lines, jl)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return lines, nil
}

const listEntriesQuery = `
SELECT` + entryColumns + `
FROM journal_entries
WHERE entity_id = $1
	AND ($2 = '' OR status = $2)
	AND ($3 = 0 OR fiscal_year = $3)
	AND ($4 = 0 OR fiscal_period = $4)
ORDER BY id
LIMIT $5 OFFSET $6
`

// List returns entry headers without lines.
func (r *RepoPGS) List(ctx context.Context, arg domain.ListEntriesParams) ([]domain.JournalEntry, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listEntriesQuery,
		arg.EntityID,
		string(arg.Status),
		arg.FiscalYear,
		arg.FiscalPeriod,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.JournalEntry{}

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const updateEntryQuery = `
UPDATE journal_entries
SET date = $1, fiscal_year = $2, fiscal_period = $3, memo = $4, reference = $5
WHERE id = $6 AND status = 'draft' AND NOT locked
RETURNING` + entryColumns

const deleteLinesQuery = `
DELETE FROM journal_lines
WHERE entry_id = $1
`

// Update rewrites a draft entry's header fields and replaces its lines.
// Entries outside draft are refused.
func (r *RepoPGS) Update(ctx context.Context, id int64, arg domain.UpdateEntryParams) (domain.JournalEntry, error) {
	l := zerolog.Ctx(ctx)

	var e domain.JournalEntry

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return e, errorspkg.ErrInternal
	}

	defer func() {
		_ = tx.Rollback()
	}()

	row := tx.QueryRowContext(ctx, updateEntryQuery,
		arg.Date,
		arg.FiscalYear,
		arg.FiscalPeriod,
		arg.Memo,
		arg.Reference,
		id,
	)

	e, err = scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return e, r.describeUpdateRefusal(ctx, id)
		}

		l.Error().Err(err).Send()

		return e, errorspkg.ErrInternal
	}

	if _, err := tx.ExecContext(ctx, deleteLinesQuery, id); err != nil {
		l.Error().Err(err).Send()
		return e, errorspkg.ErrInternal
	}

	e.Lines, err = insertLines(ctx, tx, id, arg.Lines)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Constraint == "journal_lines_account_id_fkey" {
				return e, domain.ErrAccountNotFound
			}
		}

		return e, errorspkg.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return e, errorspkg.ErrInternal
	}

	return e, nil
}

// describeUpdateRefusal distinguishes a missing entry from a non-draft one.
func (r *RepoPGS) describeUpdateRefusal(ctx context.Context, id int64) error {
	current, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	if current.Locked || current.Status == domain.StatusPosted {
		return domain.ErrEntryLocked
	}

	return domain.ErrEntryNotDraft
}

const listApprovalsQuery = `
SELECT id, entry_id, approver, action, notes, created_at
FROM approvals
WHERE entry_id = $1
ORDER BY id
`

// ListApprovals returns the entry's full audit trail in recording order.
func (r *RepoPGS) ListApprovals(ctx context.Context, entryID int64) ([]domain.ApprovalRecord, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listApprovalsQuery, entryID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	records := []domain.ApprovalRecord{}

	for rows.Next() {
		var a domain.ApprovalRecord

		err := rows.Scan(&a.ID, &a.EntryID, &a.Approver, &a.Action, &a.Notes, &a.CreatedAt)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		records = append(records, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return records, nil
}
