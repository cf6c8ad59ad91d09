// Package billrepo manages repository layer of accounts-payable bills.
package billrepo

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/pkg/dbpkg"
	"github.com/finvera/ledger-core/pkg/errorspkg"
)

// RepoPGS facilitates bill repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns bill RepoPGS.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{db: db}
}

// NewTxRepoPGS returns bill RepoPGS with the given transaction.
func NewTxRepoPGS(tx dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: tx}
}

const billColumns = `id, entity_id, vendor, amount, issue_date, due_date, status, bank_account_id, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBill(row rowScanner) (domain.Bill, error) {
	var b domain.Bill

	err := row.Scan(
		&b.ID,
		&b.EntityID,
		&b.Vendor,
		&b.Amount,
		&b.IssueDate,
		&b.DueDate,
		&b.Status,
		&b.BankAccountID,
		&b.CreatedAt,
	)

	return b, err
}

const createBillQuery = `
INSERT INTO bills (entity_id, vendor, amount, issue_date, due_date, status, bank_account_id)
VALUES ($1, $2, $3, $4, $5, 'open', $6)
RETURNING ` + billColumns

// Create registers an open bill awaiting settlement.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateBillParams) (domain.Bill, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createBillQuery,
		arg.EntityID,
		arg.Vendor,
		arg.Amount,
		arg.IssueDate,
		arg.DueDate,
		arg.BankAccountID,
	)

	bill, err := scanBill(row)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "bills_bank_account_id_fkey":
				l.Info().Err(err).Send()
				return bill, domain.ErrAccountNotFound
			}
		}

		l.Error().Err(err).Send()

		return bill, errorspkg.ErrInternal
	}

	return bill, nil
}

const getBillQuery = `
SELECT ` + billColumns + `
FROM bills
WHERE id = $1`

// Get returns the bill with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Bill, error) {
	l := zerolog.Ctx(ctx)

	bill, err := scanBill(r.db.QueryRowContext(ctx, getBillQuery, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return bill, domain.ErrBillNotFound
		}

		l.Error().Err(err).Send()

		return bill, errorspkg.ErrInternal
	}

	return bill, nil
}

const listBillsQuery = `
SELECT ` + billColumns + `
FROM bills
WHERE entity_id = $1 AND ($2 = '' OR status = $2)
ORDER BY due_date, id`

// List returns an entity's bills, optionally filtered by status.
func (r *RepoPGS) List(ctx context.Context, entityID int32, status domain.BillStatus) ([]domain.Bill, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listBillsQuery, entityID, string(status))
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	var bills []domain.Bill

	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		bills = append(bills, b)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return bills, nil
}

const listOpenBillsQuery = `
SELECT ` + billColumns + `
FROM bills
WHERE bank_account_id = $1 AND status = 'open'
ORDER BY issue_date, id`

// ListOpenByBankAccount returns the open bills expected to settle through the
// given bank account, in deterministic candidate order.
func (r *RepoPGS) ListOpenByBankAccount(ctx context.Context, bankAccountID int64) ([]domain.Bill, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listOpenBillsQuery, bankAccountID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	var bills []domain.Bill

	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		bills = append(bills, b)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return bills, nil
}

const setBillStatusQuery = `
UPDATE bills
SET status = $1
WHERE id = $2
RETURNING ` + billColumns

// SetStatus marks a bill paid when a bank transaction settles it, or reopens
// it on unmatch.
func (r *RepoPGS) SetStatus(ctx context.Context, id int64, status domain.BillStatus) (domain.Bill, error) {
	l := zerolog.Ctx(ctx)

	bill, err := scanBill(r.db.QueryRowContext(ctx, setBillStatusQuery, status, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return bill, domain.ErrBillNotFound
		}

		l.Error().Err(err).Send()

		return bill, errorspkg.ErrInternal
	}

	return bill, nil
}
