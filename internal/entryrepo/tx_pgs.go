package entryrepo

import (
	"context"
	"database/sql"
	"sort"

	"github.com/finvera/ledger-core/internal/accountrepo"
	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/pkg/errorspkg"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const lockEntryQuery = `
SELECT` + entryColumns + `
FROM journal_entries
WHERE id = $1
FOR UPDATE
`

func lockEntry(ctx context.Context, tx *sql.Tx, id int64) (domain.JournalEntry, error) {
	e, err := scanEntry(tx.QueryRowContext(ctx, lockEntryQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return e, domain.ErrEntryNotFound
		}

		return e, errorspkg.ErrInternal
	}

	return e, nil
}

// cycleApproversQuery lists approvals recorded since the last rejection. A
// rejection restarts the signature cycle, so earlier approvals no longer
// count toward the dual signature.
const cycleApproversQuery = `
SELECT approver
FROM approvals
WHERE entry_id = $1 AND action = 'approve'
	AND id > COALESCE(
		(SELECT max(id) FROM approvals WHERE entry_id = $1 AND action = 'reject'), 0)
ORDER BY id
`

func cycleApprovers(ctx context.Context, tx *sql.Tx, entryID int64) ([]string, error) {
	rows, err := tx.QueryContext(ctx, cycleApproversQuery, entryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	approvers := []string{}

	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, err
		}

		approvers = append(approvers, a)
	}

	return approvers, rows.Err()
}

const insertApprovalQuery = `
INSERT INTO approvals (entry_id, approver, action, notes)
VALUES ($1, $2, $3, $4)
RETURNING id, entry_id, approver, action, notes, created_at
`

func insertApproval(ctx context.Context, tx *sql.Tx, entryID int64, approver string, action domain.ApprovalAction, notes string) (domain.ApprovalRecord, error) {
	var a domain.ApprovalRecord

	row := tx.QueryRowContext(ctx, insertApprovalQuery, entryID, approver, action, notes)

	err := row.Scan(&a.ID, &a.EntryID, &a.Approver, &a.Action, &a.Notes, &a.CreatedAt)

	return a, err
}

const setStatusQuery = `
UPDATE journal_entries
SET status = $1, workflow_stage = $2
WHERE id = $3
RETURNING` + entryColumns

const submitQuery = `
UPDATE journal_entries
SET status = 'pending_approval', workflow_stage = 1
WHERE id = $1 AND status = 'draft'
RETURNING` + entryColumns

// Submit flips a draft entry to pending approval. The flip is conditional on
// the current status so concurrent submits cannot both succeed.
func (r *RepoPGS) Submit(ctx context.Context, id int64) (domain.JournalEntry, error) {
	l := zerolog.Ctx(ctx)

	e, err := scanEntry(r.db.QueryRowContext(ctx, submitQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			current, err := r.Get(ctx, id)
			if err != nil {
				return e, err
			}

			return e, domain.InvalidTransitionError{From: current.Status, To: domain.StatusPendingApproval}
		}

		l.Error().Err(err).Send()

		return e, errorspkg.ErrInternal
	}

	e.Lines, err = r.listLines(ctx, id)
	if err != nil {
		return e, err
	}

	return e, nil
}

// Approve records an approval under the entry's row lock. The first approval
// of a cycle moves the entry to approved, the second leaves state untouched
// and reports final=true so the caller can invoke the posting engine.
func (r *RepoPGS) Approve(ctx context.Context, id int64, actor string) (e domain.JournalEntry, rec domain.ApprovalRecord, final bool, err error) {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return e, rec, false, errorspkg.ErrInternal
	}

	defer func() {
		_ = tx.Rollback()
	}()

	e, err = lockEntry(ctx, tx, id)
	if err != nil {
		l.Error().Err(err).Send()
		return e, rec, false, err
	}

	switch e.Status {
	case domain.StatusPendingApproval, domain.StatusApproved:
	case domain.StatusPosted:
		return e, rec, false, domain.ErrEntryLocked
	default:
		return e, rec, false, domain.InvalidTransitionError{From: e.Status, To: domain.StatusApproved}
	}

	if actor == e.CreatedBy {
		return e, rec, false, domain.DuplicateApproverError{Approver: actor}
	}

	approvers, err := cycleApprovers(ctx, tx, id)
	if err != nil {
		l.Error().Err(err).Send()
		return e, rec, false, errorspkg.ErrInternal
	}

	for _, a := range approvers {
		if a == actor {
			return e, rec, false, domain.DuplicateApproverError{Approver: actor}
		}
	}

	rec, err = insertApproval(ctx, tx, id, actor, domain.ActionApprove, "")
	if err != nil {
		l.Error().Err(err).Send()
		return e, rec, false, errorspkg.ErrInternal
	}

	if e.Status == domain.StatusPendingApproval {
		e, err = scanEntry(tx.QueryRowContext(ctx, setStatusQuery,
			domain.StatusApproved, domain.StageFirstApproved, id))
		if err != nil {
			l.Error().Err(err).Send()
			return e, rec, false, errorspkg.ErrInternal
		}
	} else {
		final = true
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return e, rec, false, errorspkg.ErrInternal
	}

	e.Lines, err = r.listLines(ctx, id)
	if err != nil {
		return e, rec, false, err
	}

	return e, rec, final, nil
}

// Reject returns the entry to draft and appends the rejection to the audit
// trail. Notes are checked by the caller.
func (r *RepoPGS) Reject(ctx context.Context, id int64, actor, notes string) (e domain.JournalEntry, rec domain.ApprovalRecord, err error) {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return e, rec, errorspkg.ErrInternal
	}

	defer func() {
		_ = tx.Rollback()
	}()

	e, err = lockEntry(ctx, tx, id)
	if err != nil {
		l.Error().Err(err).Send()
		return e, rec, err
	}

	switch e.Status {
	case domain.StatusPendingApproval, domain.StatusApproved:
	case domain.StatusPosted:
		return e, rec, domain.ErrEntryLocked
	default:
		return e, rec, domain.InvalidTransitionError{From: e.Status, To: domain.StatusDraft}
	}

	rec, err = insertApproval(ctx, tx, id, actor, domain.ActionReject, notes)
	if err != nil {
		l.Error().Err(err).Send()
		return e, rec, errorspkg.ErrInternal
	}

	e, err = scanEntry(tx.QueryRowContext(ctx, setStatusQuery,
		domain.StatusDraft, domain.StageDraft, id))
	if err != nil {
		l.Error().Err(err).Send()
		return e, rec, errorspkg.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return e, rec, errorspkg.ErrInternal
	}

	e.Lines, err = r.listLines(ctx, id)
	if err != nil {
		return e, rec, err
	}

	return e, rec, nil
}

const postLinesQuery = `
SELECT l.account_id, l.debit, l.credit, a.normal_balance
FROM journal_lines l
JOIN accounts a ON a.id = l.account_id
WHERE l.entry_id = $1
ORDER BY l.line_number
`

const markPostedQuery = `
UPDATE journal_entries
SET status = 'posted', workflow_stage = 3, locked = true, posted_at = now()
WHERE id = $1
RETURNING` + entryColumns

// PostTx applies an approved entry to account balances exactly once.
//
// It locks the entry row, verifies the dual signature, applies per-account
// deltas in ascending account id order, and marks the entry posted, all
// within a single transaction. Re-posting an already posted entry is a no-op
// success.
func (r *RepoPGS) PostTx(ctx context.Context, id int64) (domain.PostingResult, error) {
	l := zerolog.Ctx(ctx)

	var result domain.PostingResult

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	defer func() {
		_ = tx.Rollback()
	}()

	e, err := lockEntry(ctx, tx, id)
	if err != nil {
		l.Error().Err(err).Send()
		return result, err
	}

	if e.Status == domain.StatusPosted {
		result.Entry = e
		result.AlreadyPosted = true

		result.Entry.Lines, err = r.listLines(ctx, id)
		if err != nil {
			return result, err
		}

		return result, nil
	}

	if e.Status != domain.StatusApproved || e.WorkflowStage != domain.StageFirstApproved {
		return result, domain.InvalidTransitionError{From: e.Status, To: domain.StatusPosted}
	}

	approvers, err := cycleApprovers(ctx, tx, id)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	if len(distinct(approvers)) < 2 {
		return result, domain.InvalidTransitionError{From: e.Status, To: domain.StatusPosted}
	}

	deltas, order, err := accountDeltas(ctx, tx, id)
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	accountRepo := accountrepo.NewRepoPGS(tx)

	// Consistent id order avoids deadlocks between concurrent postings.
	for _, accountID := range order {
		a, err := accountRepo.AddBalance(ctx, deltas[accountID], accountID)
		if err != nil {
			l.Error().Err(err).Send()
			return result, err
		}

		result.UpdatedAccounts = append(result.UpdatedAccounts, a)
	}

	result.Entry, err = scanEntry(tx.QueryRowContext(ctx, markPostedQuery, id))
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	result.Entry.Lines, err = r.listLines(ctx, id)
	if err != nil {
		return result, err
	}

	return result, nil
}

func accountDeltas(ctx context.Context, tx *sql.Tx, entryID int64) (map[int64]decimal.Decimal, []int64, error) {
	rows, err := tx.QueryContext(ctx, postLinesQuery, entryID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	deltas := map[int64]decimal.Decimal{}

	for rows.Next() {
		var (
			accountID     int64
			debit, credit decimal.Decimal
			side          domain.BalanceSide
		)

		if err := rows.Scan(&accountID, &debit, &credit, &side); err != nil {
			return nil, nil, err
		}

		a := domain.Account{NormalBalance: side}
		deltas[accountID] = deltas[accountID].Add(a.BalanceDelta(debit, credit))
	}

	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	order := make([]int64, 0, len(deltas))
	for accountID := range deltas {
		order = append(order, accountID)
	}

	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	return deltas, order, nil
}

func distinct(values []string) []string {
	seen := map[string]bool{}
	out := []string{}

	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}

	return out
}
