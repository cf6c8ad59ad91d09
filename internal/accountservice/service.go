// Package accountservice manages business logic layer of the chart of accounts.
package accountservice

import (
	"context"

	"github.com/finvera/ledger-core/internal/domain"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source service.go -destination service_mock.go -package accountservice

// Repo provides data access layer interface needed by account service layer.
type Repo interface {
	Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error)
	Get(ctx context.Context, id int64) (domain.Account, error)
	GetByNumber(ctx context.Context, entityID int32, number string) (domain.Account, error)
	List(ctx context.Context, entityID int32) ([]domain.Account, error)
	ListBank(ctx context.Context, entityID int32) ([]domain.Account, error)
	SetActive(ctx context.Context, id int64, active bool) (domain.Account, error)
}

// Service facilitates account service layer logic.
type Service struct {
	repo Repo
}

// New returns account service struct to manage the chart of accounts.
func New(ar Repo) *Service {
	return &Service{repo: ar}
}

// Create creates and returns an account after checking that the normal
// balance side agrees with the account type.
func (s *Service) Create(ctx context.Context, arg domain.CreateAccountParams) (domain.Account, error) {
	side, err := domain.NormalBalanceFor(arg.Type)
	if err != nil {
		return domain.Account{}, err
	}

	if arg.NormalBalance == "" {
		arg.NormalBalance = side
	} else if arg.NormalBalance != side {
		return domain.Account{}, domain.ErrNormalBalanceMismatch
	}

	return s.repo.Create(ctx, arg)
}

// Get returns the account with the given ID.
func (s *Service) Get(ctx context.Context, id int64) (domain.Account, error) {
	return s.repo.Get(ctx, id)
}

// GetByNumber returns the entity's account with the given account number.
func (s *Service) GetByNumber(ctx context.Context, entityID int32, number string) (domain.Account, error) {
	return s.repo.GetByNumber(ctx, entityID, number)
}

// List returns the entity's chart of accounts.
func (s *Service) List(ctx context.Context, entityID int32) ([]domain.Account, error) {
	return s.repo.List(ctx, entityID)
}

// ListBank returns the entity's active bank accounts.
func (s *Service) ListBank(ctx context.Context, entityID int32) ([]domain.Account, error) {
	return s.repo.ListBank(ctx, entityID)
}

// Deactivate marks the account inactive so new journal lines cannot use it.
// Posted history keeps referencing it.
func (s *Service) Deactivate(ctx context.Context, id int64) (domain.Account, error) {
	return s.repo.SetActive(ctx, id, false)
}

// Reactivate makes a deactivated account usable again.
func (s *Service) Reactivate(ctx context.Context, id int64) (domain.Account, error) {
	return s.repo.SetActive(ctx, id, true)
}

// TrialBalance lists the entity's accounts with their running balances split
// into debit and credit columns. Total debits equal total credits whenever
// every posted entry balanced.
func (s *Service) TrialBalance(ctx context.Context, entityID int32) (domain.TrialBalance, error) {
	accounts, err := s.repo.List(ctx, entityID)
	if err != nil {
		return domain.TrialBalance{}, err
	}

	tb := domain.TrialBalance{EntityID: entityID, Rows: []domain.TrialBalanceRow{}}

	for _, a := range accounts {
		row := domain.TrialBalanceRow{
			AccountID: a.ID,
			Number:    a.Number,
			Name:      a.Name,
			Type:      a.Type,
		}

		// A negative running balance flips to the opposite column.
		side := a.NormalBalance
		balance := a.Balance

		if balance.IsNegative() {
			balance = balance.Neg()

			if side == domain.SideDebit {
				side = domain.SideCredit
			} else {
				side = domain.SideDebit
			}
		}

		if side == domain.SideDebit {
			row.DebitBalance = balance
			row.CreditBalance = decimal.Zero
		} else {
			row.DebitBalance = decimal.Zero
			row.CreditBalance = balance
		}

		tb.TotalDebits = tb.TotalDebits.Add(row.DebitBalance)
		tb.TotalCredits = tb.TotalCredits.Add(row.CreditBalance)
		tb.Rows = append(tb.Rows, row)
	}

	return tb, nil
}

// SeedDefaultChart seeds the built-in chart of accounts for the entity.
func (s *Service) SeedDefaultChart(ctx context.Context, entityID int32) ([]domain.Account, error) {
	return s.SeedChart(ctx, entityID, DefaultChart())
}

// SeedChart creates the entity's starting chart of accounts. Accounts whose
// number already exists are skipped so reseeding is safe.
func (s *Service) SeedChart(ctx context.Context, entityID int32, chart []ChartEntry) ([]domain.Account, error) {
	created := []domain.Account{}

	for _, e := range chart {
		arg := domain.CreateAccountParams{
			EntityID:    entityID,
			Number:      e.Number,
			Name:        e.Name,
			Type:        e.Type,
			BankAccount: e.BankAccount,
			Currency:    e.Currency,
		}

		a, err := s.Create(ctx, arg)
		if err != nil {
			if err == domain.ErrDuplicateAccountNumber {
				continue
			}

			return nil, err
		}

		created = append(created, a)
	}

	return created, nil
}
