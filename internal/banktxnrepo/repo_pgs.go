// Package banktxnrepo manages repository layer of the external bank feed.
package banktxnrepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/pkg/dbpkg"
	"github.com/finvera/ledger-core/pkg/errorspkg"
)

// RepoPGS facilitates bank transaction repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns bank transaction RepoPGS scoped to an existing transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns bank transaction RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const txnColumns = `
	id, external_id, bank_account_id, date, amount, description, merchant,
	status, confidence, matched_kind, matched_ref_id, matched_by, created_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTxn(row rowScanner) (domain.BankTransaction, error) {
	var (
		t           domain.BankTransaction
		matchedKind sql.NullString
	)

	err := row.Scan(
		&t.ID,
		&t.ExternalID,
		&t.BankAccountID,
		&t.Date,
		&t.Amount,
		&t.Description,
		&t.Merchant,
		&t.Status,
		&t.Confidence,
		&matchedKind,
		&t.MatchedRefID,
		&t.MatchedBy,
		&t.CreatedAt,
	)

	if matchedKind.Valid {
		kind := domain.ReferenceKind(matchedKind.String)
		t.MatchedKind = &kind
	}

	return t, err
}

const ingestTxnQuery = `
INSERT INTO bank_transactions (external_id, bank_account_id, date, amount, description, merchant, status)
VALUES ($1, $2, $3, $4, $5, $6, 'unmatched')
ON CONFLICT (bank_account_id, external_id) DO NOTHING
RETURNING ` + txnColumns

// Ingest appends feed records for a bank account, skipping records whose
// external id was already delivered. Redelivering a batch is harmless.
func (r *RepoPGS) Ingest(ctx context.Context, bankAccountID int64, batch []domain.BankTransactionParams) ([]domain.BankTransaction, error) {
	l := zerolog.Ctx(ctx)

	var inserted []domain.BankTransaction

	for _, p := range batch {
		row := r.db.QueryRowContext(ctx, ingestTxnQuery,
			p.ExternalID,
			bankAccountID,
			p.Date,
			p.Amount,
			p.Description,
			p.Merchant,
		)

		t, err := scanTxn(row)
		if err != nil {
			if err == sql.ErrNoRows {
				continue // duplicate external id
			}

			l.Error().Err(err).Send()

			return nil, errorspkg.ErrInternal
		}

		inserted = append(inserted, t)
	}

	return inserted, nil
}

const getTxnQuery = `
SELECT ` + txnColumns + `
FROM bank_transactions
WHERE id = $1`

// Get returns the bank transaction with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.BankTransaction, error) {
	l := zerolog.Ctx(ctx)

	t, err := scanTxn(r.db.QueryRowContext(ctx, getTxnQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return t, domain.ErrBankTransactionNotFound
		}

		l.Error().Err(err).Send()

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const listTxnsQuery = `
SELECT ` + txnColumns + `
FROM bank_transactions
WHERE bank_account_id = $1
  AND ($2 = '' OR status = $2)
  AND ($3::date IS NULL OR date >= $3)
  AND ($4::date IS NULL OR date <= $4)
ORDER BY date, id
LIMIT $5 OFFSET $6`

// List returns a bank account's feed records with optional filters.
func (r *RepoPGS) List(ctx context.Context, arg domain.ListBankTransactionsParams) ([]domain.BankTransaction, error) {
	l := zerolog.Ctx(ctx)

	from := sql.NullTime{Time: arg.From, Valid: !arg.From.IsZero()}
	to := sql.NullTime{Time: arg.To, Valid: !arg.To.IsZero()}

	rows, err := r.db.QueryContext(ctx, listTxnsQuery,
		arg.BankAccountID,
		string(arg.Status),
		from,
		to,
		arg.Limit,
		arg.Offset,
	)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	var txns []domain.BankTransaction

	for rows.Next() {
		t, err := scanTxn(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		txns = append(txns, t)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return txns, nil
}
