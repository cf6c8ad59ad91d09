package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrEntryNotFound indicates that the journal entry is not found.
	ErrEntryNotFound = errors.New("journal entry not found")
	// ErrEntryLocked indicates that the journal entry has been posted and is immutable.
	ErrEntryLocked = errors.New("journal entry is locked")
	// ErrEntryNotDraft indicates a mutation attempt on an entry that left the draft state.
	ErrEntryNotDraft = errors.New("journal entry is not in draft")
	// ErrNotCreator indicates that only the entry creator may perform the action.
	ErrNotCreator = errors.New("actor is not the entry creator")
	// ErrInvalidLineShape indicates a line with both or neither of debit/credit set,
	// a negative amount, or more than two decimal places.
	ErrInvalidLineShape = errors.New("line must carry exactly one positive side with at most two decimals")
	// ErrNoLines indicates an entry without lines.
	ErrNoLines = errors.New("entry has no lines")
	// ErrReverseUnposted indicates a reversing entry referencing an entry that is not posted.
	ErrReverseUnposted = errors.New("reversing entry must reference a posted entry")
	// ErrInvalidEntryType indicates an unknown entry type.
	ErrInvalidEntryType = errors.New("invalid entry type")
)

// EntryStatus is the lifecycle state of a journal entry.
type EntryStatus string

// Journal entry states. Posted is terminal; a rejection returns the entry to
// StatusDraft rather than parking it in a dead state.
const (
	StatusDraft           EntryStatus = "draft"
	StatusPendingApproval EntryStatus = "pending_approval"
	StatusApproved        EntryStatus = "approved"
	StatusPosted          EntryStatus = "posted"
)

// Valid reports whether s is a known entry status.
func (s EntryStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPendingApproval, StatusApproved, StatusPosted:
		return true
	}

	return false
}

// CanTransition reports whether the entry state machine permits from → to.
func CanTransition(from, to EntryStatus) bool {
	switch from {
	case StatusDraft:
		return to == StatusPendingApproval
	case StatusPendingApproval:
		return to == StatusApproved || to == StatusDraft
	case StatusApproved:
		return to == StatusPosted || to == StatusDraft
	case StatusPosted:
		return false
	}

	return false
}

// Workflow stages recorded alongside the status.
const (
	StageDraft         = 0
	StageSubmitted     = 1
	StageFirstApproved = 2
	StagePosted        = 3
)

// EntryType distinguishes the bookkeeping purpose of an entry.
type EntryType string

// All entry types.
const (
	EntryTypeStandard  EntryType = "standard"
	EntryTypeAdjusting EntryType = "adjusting"
	EntryTypeClosing   EntryType = "closing"
	EntryTypeReversing EntryType = "reversing"
)

// Valid reports whether t is a known entry type.
func (t EntryType) Valid() bool {
	switch t {
	case EntryTypeStandard, EntryTypeAdjusting, EntryTypeClosing, EntryTypeReversing:
		return true
	}

	return false
}

// JournalLine is a single debit or credit within a journal entry. Exactly one
// of Debit/Credit is nonzero.
type JournalLine struct {
	ID          int64           `json:"id"`
	EntryID     int64           `json:"entry_id"`
	LineNumber  int             `json:"line_number"`
	AccountID   int64           `json:"account_id"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// OneSided reports whether the line carries exactly one positive side with at
// most two decimal places.
func (l JournalLine) OneSided() bool {
	hasDebit := l.Debit.IsPositive()
	hasCredit := l.Credit.IsPositive()

	if hasDebit == hasCredit || l.Debit.IsNegative() || l.Credit.IsNegative() {
		return false
	}

	return wholeCents(l.Debit) && wholeCents(l.Credit)
}

var oneHundred = decimal.NewFromInt(100)

func wholeCents(d decimal.Decimal) bool {
	cents := d.Mul(oneHundred)
	return cents.Equal(cents.Floor())
}

// JournalEntry is a balanced set of journal lines moving through the approval
// workflow. Mutable only while in StatusDraft; immutable forever once posted.
type JournalEntry struct {
	ID              int64         `json:"id"`
	EntityID        int32         `json:"entity_id"`
	Number          string        `json:"number"`
	Date            time.Time     `json:"date"`
	FiscalYear      int           `json:"fiscal_year"`
	FiscalPeriod    int           `json:"fiscal_period"`
	Type            EntryType     `json:"type"`
	Memo            string        `json:"memo,omitempty"`
	Reference       string        `json:"reference,omitempty"`
	Status          EntryStatus   `json:"status"`
	WorkflowStage   int           `json:"workflow_stage"`
	CreatedBy       string        `json:"created_by"`
	Locked          bool          `json:"locked"`
	ReversesEntryID *int64        `json:"reverses_entry_id,omitempty"`
	Lines           []JournalLine `json:"lines"`
	CreatedAt       time.Time     `json:"created_at"`
	PostedAt        *time.Time    `json:"posted_at,omitempty"`
}

// TotalDebits sums the debit side of all lines.
func (e JournalEntry) TotalDebits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}

	return total
}

// TotalCredits sums the credit side of all lines.
func (e JournalEntry) TotalCredits() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}

	return total
}

// BalanceDifference returns total debits minus total credits.
func (e JournalEntry) BalanceDifference() decimal.Decimal {
	return e.TotalDebits().Sub(e.TotalCredits())
}

// Balanced reports whether debits equal credits within tolerance.
func (e JournalEntry) Balanced(tolerance decimal.Decimal) bool {
	return e.BalanceDifference().Abs().LessThanOrEqual(tolerance)
}

// OutOfBalanceError reports a debit/credit imbalance beyond tolerance.
type OutOfBalanceError struct {
	Difference decimal.Decimal
}

func (e OutOfBalanceError) Error() string {
	return fmt.Sprintf("entry out of balance by %s", e.Difference.Abs().StringFixed(2))
}

// UnknownAccountError reports a line referencing an unresolvable account.
type UnknownAccountError struct {
	AccountID int64
}

func (e UnknownAccountError) Error() string {
	return fmt.Sprintf("unknown account %d", e.AccountID)
}

// PeriodClosedError reports an entry dated into a closed fiscal period.
type PeriodClosedError struct {
	Year   int
	Period int
}

func (e PeriodClosedError) Error() string {
	return fmt.Sprintf("fiscal period %04d-%02d is closed", e.Year, e.Period)
}

// InvalidTransitionError reports a state machine violation.
type InvalidTransitionError struct {
	From EntryStatus
	To   EntryStatus
}

func (e InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %s to %s", e.From, e.To)
}

// LineTotals sums the debit and credit sides of line inputs.
func LineTotals(lines []LineParams) (debits, credits decimal.Decimal) {
	debits, credits = decimal.Zero, decimal.Zero

	for _, lp := range lines {
		debits = debits.Add(lp.Debit)
		credits = credits.Add(lp.Credit)
	}

	return debits, credits
}

// PostingResult is the outcome of running the posting engine on an entry.
// AlreadyPosted marks an idempotent re-post that changed nothing.
type PostingResult struct {
	Entry           JournalEntry `json:"entry"`
	AlreadyPosted   bool         `json:"already_posted"`
	UpdatedAccounts []Account    `json:"updated_accounts,omitempty"`
}

// LineParams is the input data for one journal line.
type LineParams struct {
	AccountID   int64           `json:"account_id"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// CreateEntryParams is the input data to create a draft journal entry.
// ReversesEntryID is set by the reversing flow, never by callers directly.
type CreateEntryParams struct {
	EntityID        int32        `json:"entity_id"`
	Date            time.Time    `json:"date"`
	FiscalYear      int          `json:"fiscal_year"`
	FiscalPeriod    int          `json:"fiscal_period"`
	Type            EntryType    `json:"type"`
	Memo            string       `json:"memo,omitempty"`
	Reference       string       `json:"reference,omitempty"`
	ReversesEntryID *int64       `json:"reverses_entry_id,omitempty"`
	Lines           []LineParams `json:"lines"`
}

// UpdateEntryParams is the input data to rewrite a draft entry in place.
type UpdateEntryParams struct {
	Date         time.Time    `json:"date"`
	FiscalYear   int          `json:"fiscal_year"`
	FiscalPeriod int          `json:"fiscal_period"`
	Memo         string       `json:"memo,omitempty"`
	Reference    string       `json:"reference,omitempty"`
	Lines        []LineParams `json:"lines"`
}

// ListEntriesParams filters the entry listing. Zero values mean no filter.
type ListEntriesParams struct {
	EntityID     int32       `json:"entity_id"`
	Status       EntryStatus `json:"status,omitempty"`
	FiscalYear   int         `json:"fiscal_year,omitempty"`
	FiscalPeriod int         `json:"fiscal_period,omitempty"`
	Limit        int32       `json:"limit"`
	Offset       int32       `json:"offset"`
}

// ReverseParams is the input data to build a reversing entry from a posted one.
type ReverseParams struct {
	EntryID      int64     `json:"entry_id"`
	Date         time.Time `json:"date"`
	FiscalYear   int       `json:"fiscal_year"`
	FiscalPeriod int       `json:"fiscal_period"`
	Memo         string    `json:"memo,omitempty"`
}
