package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrBillNotFound indicates that the bill is not found.
	ErrBillNotFound = errors.New("bill not found")
	// ErrBillNotOpen indicates an operation on a bill that is already paid.
	ErrBillNotOpen = errors.New("bill is not open")
	// ErrInvalidBillAmount indicates a bill with a non-positive amount.
	ErrInvalidBillAmount = errors.New("bill amount must be positive")
)

// BillStatus is the settlement state of a bill.
type BillStatus string

// Bill states.
const (
	BillOpen BillStatus = "open"
	BillPaid BillStatus = "paid"
)

// Bill is an open payable delivered by the accounts-payable module. The
// matcher consumes open bills as candidates and marks them paid when a bank
// transaction settles them.
type Bill struct {
	ID            int64           `json:"id"`
	EntityID      int32           `json:"entity_id"`
	Vendor        string          `json:"vendor"`
	Amount        decimal.Decimal `json:"amount"` // positive magnitude
	IssueDate     time.Time       `json:"issue_date"`
	DueDate       time.Time       `json:"due_date"`
	Status        BillStatus      `json:"status"`
	BankAccountID int64           `json:"bank_account_id"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CreateBillParams is the input data to register an open bill.
type CreateBillParams struct {
	EntityID      int32           `json:"entity_id"`
	Vendor        string          `json:"vendor"`
	Amount        decimal.Decimal `json:"amount"`
	IssueDate     time.Time       `json:"issue_date"`
	DueDate       time.Time       `json:"due_date"`
	BankAccountID int64           `json:"bank_account_id"`
}
