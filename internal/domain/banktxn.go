package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrBankTransactionNotFound indicates that the bank transaction is not found.
	ErrBankTransactionNotFound = errors.New("bank transaction not found")
	// ErrReferenceConsumed indicates that the ledger reference is already matched
	// to another bank transaction.
	ErrReferenceConsumed = errors.New("ledger reference already consumed")
	// ErrReferenceNotFound indicates that the ledger reference does not exist.
	ErrReferenceNotFound = errors.New("ledger reference not found")
)

// MatchStatus is the matching state of a bank transaction.
type MatchStatus string

// Match states. Suggested carries a confidence score but does not consume the
// ledger reference until confirmed.
const (
	MatchUnmatched MatchStatus = "unmatched"
	MatchSuggested MatchStatus = "suggested"
	MatchMatched   MatchStatus = "matched"
)

// ReferenceKind identifies which side of the ledger a match points at.
type ReferenceKind string

// Ledger reference kinds.
const (
	RefBill        ReferenceKind = "bill"
	RefJournalLine ReferenceKind = "journal_line"
)

// Valid reports whether k is a known reference kind.
func (k ReferenceKind) Valid() bool {
	return k == RefBill || k == RefJournalLine
}

// BankTransaction is one record of the external bank feed. Created only by
// feed ingestion; its match fields are mutated only by the matcher or by
// manual match/unmatch actions; never deleted.
type BankTransaction struct {
	ID            int64            `json:"id"`
	ExternalID    uuid.UUID        `json:"external_id"`
	BankAccountID int64            `json:"bank_account_id"`
	Date          time.Time        `json:"date"`
	Amount        decimal.Decimal  `json:"amount"` // signed: deposits positive, withdrawals negative
	Description   string           `json:"description,omitempty"`
	Merchant      string           `json:"merchant,omitempty"`
	Status        MatchStatus      `json:"status"`
	Confidence    *decimal.Decimal `json:"confidence,omitempty"`
	MatchedKind   *ReferenceKind   `json:"matched_kind,omitempty"`
	MatchedRefID  *int64           `json:"matched_ref_id,omitempty"`
	MatchedBy     string           `json:"matched_by,omitempty"` // empty for automatic matches
	CreatedAt     time.Time        `json:"created_at"`
}

// Deposit reports whether the transaction adds funds to the bank account.
func (t BankTransaction) Deposit() bool {
	return t.Amount.IsPositive()
}

// BankTransactionParams is one feed record to ingest. ExternalID deduplicates
// redelivered batches per bank account.
type BankTransactionParams struct {
	ExternalID  uuid.UUID       `json:"external_id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Merchant    string          `json:"merchant,omitempty"`
}

// ListBankTransactionsParams filters a bank account's feed listing. Zero
// values mean no filter.
type ListBankTransactionsParams struct {
	BankAccountID int64       `json:"bank_account_id"`
	Status        MatchStatus `json:"status,omitempty"`
	From          time.Time   `json:"from,omitempty"`
	To            time.Time   `json:"to,omitempty"`
	Limit         int32       `json:"limit"`
	Offset        int32       `json:"offset"`
}

// LedgerReference is a matchable piece of open ledger activity: an open bill
// or a posted journal line on a bank account.
type LedgerReference struct {
	Kind        ReferenceKind   `json:"kind"`
	RefID       int64           `json:"ref_id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"` // positive magnitude
	Description string          `json:"description,omitempty"`
}

// Match rule names carried on results.
const (
	RuleExact = "exact"
	RuleFuzzy = "fuzzy"
)

// MatchResult is the outcome of one bank transaction in a match pass.
type MatchResult struct {
	BankTransactionID int64            `json:"bank_transaction_id"`
	Status            MatchStatus      `json:"status"`
	Confidence        *decimal.Decimal `json:"confidence,omitempty"`
	MatchedKind       *ReferenceKind   `json:"matched_kind,omitempty"`
	MatchedRefID      *int64           `json:"matched_ref_id,omitempty"`
	Rule              string           `json:"rule,omitempty"`
}
