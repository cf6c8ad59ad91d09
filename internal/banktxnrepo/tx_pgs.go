package banktxnrepo

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/finvera/ledger-core/internal/billrepo"
	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/pkg/errorspkg"
)

const lockBankAccountQuery = `
SELECT id, bank_account
FROM accounts
WHERE id = $1
FOR UPDATE
`

// lockBankAccount serializes matcher work per bank account. Every pass and
// every sync batch for one account queues behind this row lock.
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

const passTxnsQuery = `
SELECT ` + txnColumns + `
FROM bank_transactions
WHERE bank_account_id = $1
  AND status IN ('unmatched', 'suggested')
  AND date >= $2 AND date <= $3
ORDER BY date, id
`

const lineCandidatesQuery = `
SELECT jl.id, je.date, jl.debit + jl.credit, jl.description
FROM journal_lines jl
JOIN journal_entries je ON je.id = jl.entry_id
WHERE jl.account_id = $1
  AND je.status = 'posted'
  AND NOT EXISTS (
	SELECT 1 FROM bank_transactions bt
	WHERE bt.matched_kind = 'journal_line' AND bt.matched_ref_id = jl.id AND bt.status = 'matched')
ORDER BY je.date, jl.id
`

// persistResultQuery writes one pass result. The status condition keeps the
// pass from clobbering a manual match committed after the snapshot was read.
const persistResultQuery = `
UPDATE bank_transactions
SET status = $1, confidence = $2, matched_kind = $3, matched_ref_id = $4, matched_by = ''
WHERE id = $5 AND status IN ('unmatched', 'suggested')
`

// RunPass loads the account's unmatched and suggested feed records in the
// date range plus the open ledger candidates, computes pairings with pair,
// and persists the results, all inside one transaction under the bank
// account's row lock. Exact matches consume their reference: a matched bill
// is marked paid.
func (r *RepoPGS) RunPass(
	ctx context.Context,
	bankAccountID int64,
	from, to time.Time,
	pair func(txns []domain.BankTransaction, candidates []domain.LedgerReference) []domain.MatchResult,
) ([]domain.MatchResult, error) {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	defer func() {
		_ = tx.Rollback()
	}()

	if err := lockBankAccount(ctx, tx, bankAccountID); err != nil {
		l.Info().Err(err).Send()
		return nil, err
	}

	txns, err := passTxns(ctx, tx, bankAccountID, from, to)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	candidates, err := r.candidates(ctx, tx, bankAccountID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	results := pair(txns, candidates)

	bills := billrepo.NewTxRepoPGS(tx)

	for _, res := range results {
		var kind, refID any
		if res.MatchedKind != nil {
			kind = string(*res.MatchedKind)
			refID = *res.MatchedRefID
		}

		_, err := tx.ExecContext(ctx, persistResultQuery,
			res.Status, res.Confidence, kind, refID, res.BankTransactionID)
		if err != nil {
			if pqErr, ok := err.(*pq.Error); ok && pqErr.Constraint == "bank_transactions_matched_ref_uidx" {
				l.Info().Err(err).Send()
				return nil, domain.ErrReferenceConsumed
			}

			l.Error().Err(err).Send()

			return nil, errorspkg.ErrInternal
		}

		if res.Status == domain.MatchMatched && res.MatchedKind != nil && *res.MatchedKind == domain.RefBill {
			if _, err := bills.SetStatus(ctx, *res.MatchedRefID, domain.BillPaid); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return results, nil
}

func passTxns(ctx context.Context, tx *sql.Tx, bankAccountID int64, from, to time.Time) ([]domain.BankTransaction, error) {
	rows, err := tx.QueryContext(ctx, passTxnsQuery, bankAccountID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []domain.BankTransaction

	for rows.Next() {
		t, err := scanTxn(rows)
		if err != nil {
			return nil, err
		}

		txns = append(txns, t)
	}

	return txns, rows.Err()
}

// candidates builds the ledger side of the pass: open bills expected to
// settle through the account, then posted journal lines on the account that
// no matched transaction has consumed.
func (r *RepoPGS) candidates(ctx context.Context, tx *sql.Tx, bankAccountID int64) ([]domain.LedgerReference, error) {
	openBills, err := billrepo.NewTxRepoPGS(tx).ListOpenByBankAccount(ctx, bankAccountID)
	if err != nil {
		return nil, err
	}

	var refs []domain.LedgerReference

	for _, b := range openBills {
		refs = append(refs, domain.LedgerReference{
			Kind:        domain.RefBill,
			RefID:       b.ID,
			Date:        b.IssueDate,
			Amount:      b.Amount,
			Description: b.Vendor,
		})
	}

	rows, err := tx.QueryContext(ctx, lineCandidatesQuery, bankAccountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		ref := domain.LedgerReference{Kind: domain.RefJournalLine}

		if err := rows.Scan(&ref.RefID, &ref.Date, &ref.Amount, &ref.Description); err != nil {
			return nil, err
		}

		refs = append(refs, ref)
	}

	return refs, rows.Err()
}

const lockTxnQuery = `
SELECT ` + txnColumns + `
FROM bank_transactions
WHERE id = $1
FOR UPDATE
`

func lockTxn(ctx context.Context, tx *sql.Tx, id int64) (domain.BankTransaction, error) {
	t, err := scanTxn(tx.QueryRowContext(ctx, lockTxnQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return t, domain.ErrBankTransactionNotFound
		}

		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const lineExistsQuery = `
SELECT 1
FROM journal_lines jl
JOIN journal_entries je ON je.id = jl.entry_id
WHERE jl.id = $1 AND je.status = 'posted'
`

const lineConsumedQuery = `
SELECT 1
FROM bank_transactions
WHERE matched_kind = 'journal_line' AND matched_ref_id = $1 AND status = 'matched' AND id <> $2
`

const manualMatchQuery = `
UPDATE bank_transactions
SET status = 'matched', confidence = NULL, matched_kind = $1, matched_ref_id = $2, matched_by = $3
WHERE id = $4
RETURNING ` + txnColumns

// ManualMatch links a bank transaction to a ledger reference by hand,
// overriding whatever the automatic pass decided. A previously held
// reference is released first, so re-pointing a matched transaction works
// in one call.
func (r *RepoPGS) ManualMatch(ctx context.Context, id int64, actor string, kind domain.ReferenceKind, refID int64) (domain.BankTransaction, error) {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.BankTransaction{}, errorspkg.ErrInternal
	}

	defer func() {
		_ = tx.Rollback()
	}()

	t, err := lockTxn(ctx, tx, id)
	if err != nil {
		l.Info().Err(err).Send()
		return t, err
	}

	bills := billrepo.NewTxRepoPGS(tx)

	if t.Status == domain.MatchMatched {
		if err := release(ctx, bills, t); err != nil {
			return t, err
		}
	}

	switch kind {
	case domain.RefBill:
		bill, err := bills.Get(ctx, refID)
		if err != nil {
			if err == domain.ErrBillNotFound {
				return t, domain.ErrReferenceNotFound
			}

			return t, err
		}

		if bill.Status != domain.BillOpen {
			return t, domain.ErrReferenceConsumed
		}
	case domain.RefJournalLine:
		var one int

		err := tx.QueryRowContext(ctx, lineExistsQuery, refID).Scan(&one)
		if err != nil {
			if err == sql.ErrNoRows {
				return t, domain.ErrReferenceNotFound
			}

			l.Error().Err(err).Send()

			return t, errorspkg.ErrInternal
		}

		err = tx.QueryRowContext(ctx, lineConsumedQuery, refID, id).Scan(&one)
		if err == nil {
			return t, domain.ErrReferenceConsumed
		}

		if err != sql.ErrNoRows {
			l.Error().Err(err).Send()
			return t, errorspkg.ErrInternal
		}
	default:
		return t, domain.ErrReferenceNotFound
	}

	t, err = scanTxn(tx.QueryRowContext(ctx, manualMatchQuery, kind, refID, actor, id))
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Constraint == "bank_transactions_matched_ref_uidx" {
			l.Info().Err(err).Send()
			return t, domain.ErrReferenceConsumed
		}

		l.Error().Err(err).Send()

		return t, errorspkg.ErrInternal
	}

	if kind == domain.RefBill {
		if _, err := bills.SetStatus(ctx, refID, domain.BillPaid); err != nil {
			return t, err
		}
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return t, errorspkg.ErrInternal
	}

	return t, nil
}

const unmatchQuery = `
UPDATE bank_transactions
SET status = 'unmatched', confidence = NULL, matched_kind = NULL, matched_ref_id = NULL, matched_by = ''
WHERE id = $1
RETURNING ` + txnColumns

// Unmatch returns a transaction and its ledger reference to unmatched.
// Unmatching an already unmatched transaction is a no-op success.
func (r *RepoPGS) Unmatch(ctx context.Context, id int64) (domain.BankTransaction, error) {
	l := zerolog.Ctx(ctx)

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.BankTransaction{}, errorspkg.ErrInternal
	}

	defer func() {
		_ = tx.Rollback()
	}()

	t, err := lockTxn(ctx, tx, id)
	if err != nil {
		l.Info().Err(err).Send()
		return t, err
	}

	if t.Status == domain.MatchUnmatched {
		return t, nil
	}

	if t.Status == domain.MatchMatched {
		if err := release(ctx, billrepo.NewTxRepoPGS(tx), t); err != nil {
			return t, err
		}
	}

	t, err = scanTxn(tx.QueryRowContext(ctx, unmatchQuery, id))
	if err != nil {
		l.Error().Err(err).Send()
		return t, errorspkg.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return t, errorspkg.ErrInternal
	}

	return t, nil
}

// release reopens the bill held by a matched transaction. Journal lines carry
// no state of their own, so clearing the link is enough for them.
func release(ctx context.Context, bills *billrepo.RepoPGS, t domain.BankTransaction) error {
	if t.MatchedKind == nil || *t.MatchedKind != domain.RefBill {
		return nil
	}

	_, err := bills.SetStatus(ctx, *t.MatchedRefID, domain.BillOpen)

	return err
}
