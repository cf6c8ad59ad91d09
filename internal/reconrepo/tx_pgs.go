package reconrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog"

	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/pkg/errorspkg"
)

const lockBankAccountQuery = `
SELECT id, bank_account
FROM accounts
WHERE id = $1
FOR UPDATE
`

// lockBankAccount serializes reconciliation work per bank account. The
// matcher takes the same lock, so a calculation never reads a half-written
// match pass.
func lockBankAccount(ctx context.Context, tx *sql.Tx, id int64) error {
	var (
		accountID int64
		isBank    bool
	)

	err := tx.QueryRowContext(ctx, lockBankAccountQuery, id).Scan(&accountID, &isBank)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.ErrAccountNotFound
		}

		return errorspkg.ErrInternal
	}

	if !isBank {
		return domain.ErrNotBankAccount
	}

	return nil
}

// priorApprovedQuery finds the approved reconciliation this statement builds
// on. Its ending balance per books seeds the beginning balance and its
// statement date bounds the cleared sums.
const priorApprovedQuery = `
SELECT statement_date, ending_balance_per_books
FROM reconciliations
WHERE bank_account_id = $1 AND status = 'approved' AND statement_date < $2
ORDER BY statement_date DESC, id DESC
LIMIT 1
`

const clearedSumsQuery = `
SELECT
	COALESCE(SUM(amount) FILTER (WHERE amount > 0), 0),
	COALESCE(SUM(-amount) FILTER (WHERE amount < 0), 0)
FROM bank_transactions
WHERE bank_account_id = $1 AND status = 'matched'
	AND date <= $2 AND ($3::date IS NULL OR date > $3)
`

// outstandingSumsQuery totals posted book activity on the bank account that
// no matched bank transaction has cleared. Debits are deposits in transit,
// credits are outstanding checks. Suggested matches do not count as cleared.
const outstandingSumsQuery = `
SELECT COALESCE(SUM(jl.debit), 0), COALESCE(SUM(jl.credit), 0)
FROM journal_lines jl
JOIN journal_entries je ON je.id = jl.entry_id
WHERE jl.account_id = $1 AND je.status = 'posted' AND je.date <= $2
	AND NOT EXISTS (
		SELECT 1 FROM bank_transactions bt
		WHERE bt.matched_kind = 'journal_line' AND bt.matched_ref_id = jl.id
			AND bt.status = 'matched')
`

const reconForStatementQuery = `
SELECT id, status
FROM reconciliations
WHERE bank_account_id = $1 AND statement_date = $2
`

const insertReconQuery = `
INSERT INTO
	reconciliations (bank_account_id, statement_date, beginning_balance,
		ending_balance_per_bank, ending_balance_per_books, cleared_deposits,
		cleared_withdrawals, outstanding_deposits, outstanding_checks,
		difference, balanced, prepared_by)
VALUES
	($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING` + reconColumns

const updateReconQuery = `
UPDATE reconciliations
SET beginning_balance = $1, ending_balance_per_bank = $2,
	ending_balance_per_books = $3, cleared_deposits = $4,
	cleared_withdrawals = $5, outstanding_deposits = $6,
	outstanding_checks = $7, difference = $8, balanced = $9, prepared_by = $10,
	created_at = now()
WHERE id = $11
RETURNING` + reconColumns

// CalculateTx gathers the reconciliation figures in one snapshot, lets build
// turn them into a draft, and persists the draft, overwriting an earlier
// draft for the same statement date. Runs under the bank account's row lock.
// An approved reconciliation for the statement date refuses recalculation.
func (r *RepoPGS) CalculateTx(
	ctx context.Context,
	bankAccountID int64,
	statementDate time.Time,
	build func(f domain.ReconciliationFigures) domain.Reconciliation,
) (domain.Reconciliation, error) {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Reconciliation{}, errorspkg.ErrInternal
	}

	defer func() {
		_ = tx.Rollback()
	}()

	if err := lockBankAccount(ctx, tx, bankAccountID); err != nil {
		return domain.Reconciliation{}, err
	}

	var (
		f         domain.ReconciliationFigures
		priorDate sql.NullTime
	)

	err = tx.QueryRowContext(ctx, priorApprovedQuery, bankAccountID, statementDate).
		Scan(&priorDate.Time, &f.BeginningBalance)
	if err != nil && err != sql.ErrNoRows {
		l.Error().Err(err).Send()
		return domain.Reconciliation{}, errorspkg.ErrInternal
	}

	priorDate.Valid = err == nil

	err = tx.QueryRowContext(ctx, clearedSumsQuery, bankAccountID, statementDate, priorDate).
		Scan(&f.ClearedDeposits, &f.ClearedWithdrawals)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Reconciliation{}, errorspkg.ErrInternal
	}

	err = tx.QueryRowContext(ctx, outstandingSumsQuery, bankAccountID, statementDate).
		Scan(&f.OutstandingDeposits, &f.OutstandingChecks)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Reconciliation{}, errorspkg.ErrInternal
	}

	draft := build(f)

	var (
		existingID     int64
		existingStatus domain.ReconciliationStatus
	)

	err = tx.QueryRowContext(ctx, reconForStatementQuery, bankAccountID, statementDate).
		Scan(&existingID, &existingStatus)

	var rec domain.Reconciliation

	switch {
	case err == sql.ErrNoRows:
		rec, err = scanRecon(tx.QueryRowContext(ctx, insertReconQuery,
			draft.BankAccountID, draft.StatementDate, draft.BeginningBalance,
			draft.EndingBalancePerBank, draft.EndingBalanceBooks,
			draft.ClearedDeposits, draft.ClearedWithdrawals,
			draft.OutstandingDeposits, draft.OutstandingChecks,
			draft.Difference, draft.Balanced, draft.PreparedBy))
	case err != nil:
		l.Error().Err(err).Send()
		return rec, errorspkg.ErrInternal
	case existingStatus == domain.ReconciliationApproved:
		return rec, domain.ErrReconciliationLocked
	default:
		rec, err = scanRecon(tx.QueryRowContext(ctx, updateReconQuery,
			draft.BeginningBalance, draft.EndingBalancePerBank,
			draft.EndingBalanceBooks, draft.ClearedDeposits,
			draft.ClearedWithdrawals, draft.OutstandingDeposits,
			draft.OutstandingChecks, draft.Difference, draft.Balanced,
			draft.PreparedBy, existingID))
	}

	if err != nil {
		l.Error().Err(err).Send()
		return rec, errorspkg.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return rec, errorspkg.ErrInternal
	}

	return rec, nil
}

const lockReconQuery = `
SELECT` + reconColumns + `
FROM reconciliations
WHERE id = $1
FOR UPDATE
`

const approveReconQuery = `
UPDATE reconciliations
SET status = 'approved', approved_by = $2, approved_at = now()
WHERE id = $1
RETURNING` + reconColumns

// ApproveTx locks and approves a balanced draft reconciliation. The signer
// must differ from the preparer; once approved the row is immutable.
func (r *RepoPGS) ApproveTx(ctx context.Context, id int64, approver string) (domain.Reconciliation, error) {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Reconciliation{}, errorspkg.ErrInternal
	}

	defer func() {
		_ = tx.Rollback()
	}()

	rec, err := scanRecon(tx.QueryRowContext(ctx, lockReconQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return rec, domain.ErrReconciliationNotFound
		}

		l.Error().Err(err).Send()

		return rec, errorspkg.ErrInternal
	}

	if rec.Status == domain.ReconciliationApproved {
		return rec, domain.ErrReconciliationLocked
	}

	if !rec.Balanced {
		return rec, domain.ErrReconciliationUnbalanced
	}

	if rec.PreparedBy == approver {
		return rec, domain.DuplicateApproverError{Approver: approver}
	}

	rec, err = scanRecon(tx.QueryRowContext(ctx, approveReconQuery, id, approver))
	if err != nil {
		l.Error().Err(err).Send()
		return rec, errorspkg.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return rec, errorspkg.ErrInternal
	}

	return rec, nil
}
