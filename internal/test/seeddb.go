// Package test provides shared test helpers.
package test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvera/ledger-core/internal/accountrepo"
	"github.com/finvera/ledger-core/internal/billrepo"
	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/pkg/dbpkg"
	"github.com/finvera/ledger-core/pkg/randompkg"
)

// SeedAccount creates an account of the given type inside a test database.
func SeedAccount(t *testing.T, db dbpkg.SQLInterface, entityID int32, accountType domain.AccountType, bank bool) domain.Account {
	t.Helper()

	side, err := domain.NormalBalanceFor(accountType)
	if err != nil {
		t.Fatalf("domain.NormalBalanceFor(%v) returned error: %v", accountType, err)
	}

	arg := domain.CreateAccountParams{
		EntityID:      entityID,
		Number:        randompkg.AccountNumber(),
		Name:          randompkg.String(10),
		Type:          accountType,
		NormalBalance: side,
		BankAccount:   bank,
		Currency:      "USD",
	}

	accountRepo := accountrepo.NewRepoPGS(db)

	account, err := accountRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("accountRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return account
}

// SeedBankAccount creates an asset account flagged as a bank account.
func SeedBankAccount(t *testing.T, db dbpkg.SQLInterface, entityID int32) domain.Account {
	t.Helper()

	return SeedAccount(t, db, entityID, domain.AccountTypeAsset, true)
}

// SeedBill creates an open bill against the given bank account.
func SeedBill(t *testing.T, db *sql.DB, entityID int32, bankAccountID int64, amount decimal.Decimal, issueDate time.Time) domain.Bill {
	t.Helper()

	arg := domain.CreateBillParams{
		EntityID:      entityID,
		Vendor:        randompkg.Vendor(),
		Amount:        amount,
		IssueDate:     issueDate,
		DueDate:       issueDate.AddDate(0, 0, 30),
		BankAccountID: bankAccountID,
	}

	billRepo := billrepo.NewRepoPGS(db)

	bill, err := billRepo.Create(context.Background(), arg)
	if err != nil {
		t.Fatalf("billRepo.Create(context.Background(), %+v) returned error: %v", arg, err)
	}

	return bill
}
