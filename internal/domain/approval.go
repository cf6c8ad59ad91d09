package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrMissingRejectionReason indicates a reject action without notes.
	ErrMissingRejectionReason = errors.New("rejection requires notes")
	// ErrMissingActor indicates an operation invoked without an acting identity.
	ErrMissingActor = errors.New("acting identity is required")
)

// ApprovalAction is the kind of decision recorded against an entry.
type ApprovalAction string

// Approval actions.
const (
	ActionApprove ApprovalAction = "approve"
	ActionReject  ApprovalAction = "reject"
)

// ApprovalRecord is one append-only decision in an entry's audit trail.
type ApprovalRecord struct {
	ID        int64          `json:"id"`
	EntryID   int64          `json:"entry_id"`
	Approver  string         `json:"approver"`
	Action    ApprovalAction `json:"action"`
	Notes     string         `json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// EntryDetail pairs an entry with its audit trail.
type EntryDetail struct {
	Entry     JournalEntry     `json:"entry"`
	Approvals []ApprovalRecord `json:"approvals"`
}

// DuplicateApproverError reports an identity attempting a second signature on
// the same record: an approver signing twice, a creator approving their own
// entry, or a preparer approving their own reconciliation. Dual signature
// requires two distinct identities.
type DuplicateApproverError struct {
	Approver string
}

func (e DuplicateApproverError) Error() string {
	return fmt.Sprintf("approver %s cannot sign twice", e.Approver)
}
