// Package accountrepo manages repository layer of the chart of accounts.
package accountrepo

import (
	"context"
	"database/sql"

	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/pkg/dbpkg"
	"github.com/finvera/ledger-core/pkg/errorspkg"

	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns account RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const accountColumns = `
	id, entity_id, number, name, type, normal_balance, parent_id,
	bank_account, currency, active, balance, created_at
`

func scanAccount(row *sql.Row) (domain.Account, error) {
	var a domain.Account

	err := row.Scan(
		&a.ID,
		&a.EntityID,
		&a.Number,
		&a.Name,
		&a.Type,
		&a.NormalBalance,
		&a.ParentID,
		&a.BankAccount,
		&a.Currency,
		&a.Active,
		&a.Balance,
		&a.CreatedAt,
	)

	return a, err
}

const createQuery = `
INSERT INTO
	accounts (entity_id, number, name, type, normal_balance, parent_id, bank_account, currency)
VALUES
	($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING` + accountColumns

// Create creates the account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery,
		arg.EntityID,
		arg.Number,
		arg.Name,
		arg.Type,
		arg.NormalBalance,
		arg.ParentID,
		arg.BankAccount,
		arg.Currency,
	)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Send()

		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Constraint {
			case "accounts_entity_id_number_key":
				return a, domain.ErrDuplicateAccountNumber
			case "accounts_parent_id_fkey":
				return a, domain.ErrParentAccountNotFound
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT` + accountColumns + `
FROM accounts
WHERE id = $1
`

// Get returns the account with the given id.
func (r *RepoPGS) Get(ctx context.Context, id int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getQuery, id)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getByNumberQuery = `
SELECT` + accountColumns + `
FROM accounts
WHERE entity_id = $1 AND number = $2
`

// GetByNumber returns the entity's account with the given account number.
func (r *RepoPGS) GetByNumber(ctx context.Context, entityID int32, number string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getByNumberQuery, entityID, number)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const listQuery = `
SELECT` + accountColumns + `
FROM accounts
WHERE entity_id = $1
ORDER BY number
`

// List returns the entity's chart of accounts ordered by account number.
func (r *RepoPGS) List(ctx context.Context, entityID int32) ([]domain.Account, error) {
	return r.list(ctx, listQuery, entityID)
}

const listBankQuery = `
SELECT` + accountColumns + `
FROM accounts
WHERE entity_id = $1 AND bank_account AND active
ORDER BY number
`

// ListBank returns the entity's active bank accounts.
func (r *RepoPGS) ListBank(ctx context.Context, entityID int32) ([]domain.Account, error) {
	return r.list(ctx, listBankQuery, entityID)
}

func (r *RepoPGS) list(ctx context.Context, query string, entityID int32) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, query, entityID)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		var a domain.Account

		err := rows.Scan(
			&a.ID,
			&a.EntityID,
			&a.Number,
			&a.Name,
			&a.Type,
			&a.NormalBalance,
			&a.ParentID,
			&a.BankAccount,
			&a.Currency,
			&a.Active,
			&a.Balance,
			&a.CreatedAt,
		)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}

const setActiveQuery = `
UPDATE accounts
SET active = $1
WHERE id = $2
RETURNING` + accountColumns

// SetActive deactivates or reactivates the account and returns it.
func (r *RepoPGS) SetActive(ctx context.Context, id int64, active bool) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, setActiveQuery, active, id)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const addBalanceQuery = `
UPDATE accounts
SET balance = balance + $1
WHERE id = $2
RETURNING` + accountColumns

// AddBalance changes the account's running balance and returns the changed account.
func (r *RepoPGS) AddBalance(ctx context.Context, delta decimal.Decimal, id int64) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, addBalanceQuery, delta, id)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Send()

		if err == sql.ErrNoRows {
			return a, domain.ErrAccountNotFound
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}
