// Package domain provides definitions of all ledger entities.
package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateAccountNumber indicates that the account number is already taken within the entity.
	ErrDuplicateAccountNumber = errors.New("account number already exists")
	// ErrParentAccountNotFound indicates that the referenced parent account is not found.
	ErrParentAccountNotFound = errors.New("parent account not found")
	// ErrAccountInactive indicates that the account has been deactivated.
	ErrAccountInactive = errors.New("account is inactive")
	// ErrInvalidAccountType indicates an unknown account type.
	ErrInvalidAccountType = errors.New("invalid account type")
	// ErrNormalBalanceMismatch indicates that the requested normal balance side contradicts the account type.
	ErrNormalBalanceMismatch = errors.New("normal balance side does not match account type")
	// ErrNotBankAccount indicates that the account is not flagged as a bank account.
	ErrNotBankAccount = errors.New("account is not a bank account")
)

// AccountType classifies accounts in the chart of accounts.
type AccountType string

// All account types.
const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Valid reports whether t is a known account type.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return true
	}

	return false
}

// BalanceSide is the side of the ledger an amount sits on.
type BalanceSide string

// The two sides of a double entry.
const (
	SideDebit  BalanceSide = "debit"
	SideCredit BalanceSide = "credit"
)

// NormalBalanceFor returns the fixed normal balance side for an account type.
//
// Asset and Expense accounts are debit-normal; Liability, Equity and Revenue
// accounts are credit-normal.
func NormalBalanceFor(t AccountType) (BalanceSide, error) {
	switch t {
	case AccountTypeAsset, AccountTypeExpense:
		return SideDebit, nil
	case AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue:
		return SideCredit, nil
	}

	return "", ErrInvalidAccountType
}

// Account is one row of an entity's chart of accounts.
type Account struct {
	ID            int64           `json:"id"`
	EntityID      int32           `json:"entity_id"`
	Number        string          `json:"number"`
	Name          string          `json:"name"`
	Type          AccountType     `json:"type"`
	NormalBalance BalanceSide     `json:"normal_balance"`
	ParentID      *int64          `json:"parent_id,omitempty"`
	BankAccount   bool            `json:"bank_account"`
	Currency      string          `json:"currency"`
	Active        bool            `json:"active"`
	Balance       decimal.Decimal `json:"balance"`
	CreatedAt     time.Time       `json:"created_at"`
}

// BalanceDelta returns the signed running-balance change a debit/credit pair
// causes on the account: debits increase debit-normal accounts and decrease
// credit-normal ones, credits the reverse.
func (a Account) BalanceDelta(debit, credit decimal.Decimal) decimal.Decimal {
	if a.NormalBalance == SideDebit {
		return debit.Sub(credit)
	}

	return credit.Sub(debit)
}

// CreateAccountParams is the input data to create an account.
type CreateAccountParams struct {
	EntityID      int32       `json:"entity_id"`
	Number        string      `json:"number"`
	Name          string      `json:"name"`
	Type          AccountType `json:"type"`
	NormalBalance BalanceSide `json:"normal_balance,omitempty"` // derived from Type when empty
	ParentID      *int64      `json:"parent_id,omitempty"`
	BankAccount   bool        `json:"bank_account"`
	Currency      string      `json:"currency"`
}

// TrialBalanceRow aggregates posted activity for one account.
type TrialBalanceRow struct {
	AccountID     int64           `json:"account_id"`
	Number        string          `json:"number"`
	Name          string          `json:"name"`
	Type          AccountType     `json:"type"`
	DebitBalance  decimal.Decimal `json:"debit_balance"`
	CreditBalance decimal.Decimal `json:"credit_balance"`
}

// TrialBalance is the per-entity listing of account balances split by side.
type TrialBalance struct {
	EntityID     int32             `json:"entity_id"`
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebits  decimal.Decimal   `json:"total_debits"`
	TotalCredits decimal.Decimal   `json:"total_credits"`
}
