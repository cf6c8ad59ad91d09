// Package reconrepo manages repository layer of bank reconciliations.
package reconrepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/pkg/dbpkg"
	"github.com/finvera/ledger-core/pkg/errorspkg"
)

// RepoPGS facilitates reconciliation repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewRepoPGS returns reconciliation RepoPGS with a connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const reconColumns = `
	id, bank_account_id, statement_date, beginning_balance,
	ending_balance_per_bank, ending_balance_per_books, cleared_deposits,
	cleared_withdrawals, outstanding_deposits, outstanding_checks, difference,
	balanced, status, prepared_by, approved_by, approved_at, created_at
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecon(row rowScanner) (domain.Reconciliation, error) {
	var rec domain.Reconciliation

	err := row.Scan(
		&rec.ID,
		&rec.BankAccountID,
		&rec.StatementDate,
		&rec.BeginningBalance,
		&rec.EndingBalancePerBank,
		&rec.EndingBalanceBooks,
		&rec.ClearedDeposits,
		&rec.ClearedWithdrawals,
		&rec.OutstandingDeposits,
		&rec.OutstandingChecks,
		&rec.Difference,
		&rec.Balanced,
		&rec.Status,
		&rec.PreparedBy,
		&rec.ApprovedBy,
		&rec.ApprovedAt,
		&rec.CreatedAt,
	)

	return rec, err
}

const getReconQuery = `
SELECT` + reconColumns + `
FROM reconciliations
WHERE id = $1
`

// Get returns one reconciliation.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Reconciliation, error) {
	l := zerolog.Ctx(ctx)

	rec, err := scanRecon(r.db.QueryRowContext(ctx, getReconQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return rec, domain.ErrReconciliationNotFound
		}

		l.Error().Err(err).Send()

		return rec, errorspkg.ErrInternal
	}

	return rec, nil
}

const latestReconQuery = `
SELECT` + reconColumns + `
FROM reconciliations
WHERE bank_account_id = $1
ORDER BY statement_date DESC, id DESC
LIMIT 1
`

// Latest returns the bank account's most recent reconciliation by statement date.
func (r *RepoPGS) Latest(ctx context.Context, bankAccountID int64) (domain.Reconciliation, error) {
	l := zerolog.Ctx(ctx)

	rec, err := scanRecon(r.db.QueryRowContext(ctx, latestReconQuery, bankAccountID))
	if err != nil {
		if err == sql.ErrNoRows {
			return rec, domain.ErrReconciliationNotFound
		}

		l.Error().Err(err).Send()

		return rec, errorspkg.ErrInternal
	}

	return rec, nil
}
