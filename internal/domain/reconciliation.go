package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrReconciliationNotFound indicates that the reconciliation is not found.
	ErrReconciliationNotFound = errors.New("reconciliation not found")
	// ErrReconciliationUnbalanced indicates an approval attempt while the
	// difference exceeds tolerance. Not an error state by itself: an unbalanced
	// reconciliation is a reportable result that simply blocks approval.
	ErrReconciliationUnbalanced = errors.New("reconciliation does not balance")
	// ErrReconciliationLocked indicates a mutation attempt on an approved reconciliation.
	ErrReconciliationLocked = errors.New("reconciliation is approved and locked")
)

// ReconciliationStatus is the lifecycle state of a reconciliation.
type ReconciliationStatus string

// Reconciliation states.
const (
	ReconciliationDraft    ReconciliationStatus = "draft"
	ReconciliationApproved ReconciliationStatus = "approved"
)

// ReconciliationFigures are the ledger-side sums a reconciliation is computed
// from, gathered in a single transaction snapshot: the prior approved
// reconciliation's ending balance, the matched bank activity of the statement
// period, and the posted book activity that has not cleared the bank yet.
type ReconciliationFigures struct {
	BeginningBalance    decimal.Decimal `json:"beginning_balance"`
	ClearedDeposits     decimal.Decimal `json:"cleared_deposits"`
	ClearedWithdrawals  decimal.Decimal `json:"cleared_withdrawals"`
	OutstandingDeposits decimal.Decimal `json:"outstanding_deposits"`
	OutstandingChecks   decimal.Decimal `json:"outstanding_checks"`
}

// Reconciliation proves a bank account's book balance against the bank's
// statement for one period. Immutable once approved.
type Reconciliation struct {
	ID                   int64                `json:"id"`
	BankAccountID        int64                `json:"bank_account_id"`
	StatementDate        time.Time            `json:"statement_date"`
	BeginningBalance     decimal.Decimal      `json:"beginning_balance"`
	EndingBalancePerBank decimal.Decimal      `json:"ending_balance_per_bank"`
	EndingBalanceBooks   decimal.Decimal      `json:"ending_balance_per_books"`
	ClearedDeposits      decimal.Decimal      `json:"cleared_deposits"`
	ClearedWithdrawals   decimal.Decimal      `json:"cleared_withdrawals"`
	OutstandingDeposits  decimal.Decimal      `json:"outstanding_deposits"`
	OutstandingChecks    decimal.Decimal      `json:"outstanding_checks"`
	Difference           decimal.Decimal      `json:"difference"`
	Balanced             bool                 `json:"balanced"`
	Status               ReconciliationStatus `json:"status"`
	PreparedBy           string               `json:"prepared_by"`
	ApprovedBy           string               `json:"approved_by,omitempty"`
	CreatedAt            time.Time            `json:"created_at"`
	ApprovedAt           *time.Time           `json:"approved_at,omitempty"`
}
