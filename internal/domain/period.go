package domain

import "errors"

// ErrInvalidPeriod indicates a fiscal period outside 1..12.
var ErrInvalidPeriod = errors.New("fiscal period must be between 1 and 12")

// PeriodStatus is the open/closed state of a fiscal period.
type PeriodStatus string

// Period states. Periods with no recorded state are treated as open; closing
// is an explicit bookkeeping action.
const (
	PeriodOpen   PeriodStatus = "open"
	PeriodClosed PeriodStatus = "closed"
)

// FiscalPeriod is the open/closed record of one entity month.
type FiscalPeriod struct {
	EntityID int32        `json:"entity_id"`
	Year     int          `json:"year"`
	Period   int          `json:"period"`
	Status   PeriodStatus `json:"status"`
}
