// Package entryservice manages business logic layer of journal entries: the
// validation pipeline, the dual-signature approval workflow and reversals.
package entryservice

import (
	"context"
	"fmt"

	"github.com/finvera/ledger-core/internal/accountdelivery"
	"github.com/finvera/ledger-core/internal/domain"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Repo provides data access layer interface needed by entry service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package entryservice
type Repo interface {
	NextNumber(ctx context.Context, entityID int32, fiscalYear int) (int64, error)
	Create(ctx context.Context, arg domain.CreateEntryParams, number, createdBy string) (domain.JournalEntry, error)
	Get(ctx context.Context, id int64) (domain.JournalEntry, error)
	List(ctx context.Context, arg domain.ListEntriesParams) ([]domain.JournalEntry, error)
	Update(ctx context.Context, id int64, arg domain.UpdateEntryParams) (domain.JournalEntry, error)
	ListApprovals(ctx context.Context, entryID int64) ([]domain.ApprovalRecord, error)
	Submit(ctx context.Context, id int64) (domain.JournalEntry, error)
	Approve(ctx context.Context, id int64, actor string) (domain.JournalEntry, domain.ApprovalRecord, bool, error)
	Reject(ctx context.Context, id int64, actor, notes string) (domain.JournalEntry, domain.ApprovalRecord, error)
}

// PeriodRepo provides fiscal period state needed by entry service layer.
type PeriodRepo interface {
	Get(ctx context.Context, entityID int32, year, period int) (domain.FiscalPeriod, error)
	SetStatus(ctx context.Context, entityID int32, year, period int, status domain.PeriodStatus) (domain.FiscalPeriod, error)
}

// Poster applies a fully approved entry to the ledger.
type Poster interface {
	Post(ctx context.Context, entryID int64) (domain.PostingResult, error)
}

// Service facilitates entry service layer logic.
type Service struct {
	repo      Repo
	accounts  accountdelivery.Service
	periods   PeriodRepo
	poster    Poster
	tolerance decimal.Decimal
}

// New returns entry service struct to manage the journal entry lifecycle.
func New(er Repo, as accountdelivery.Service, pr PeriodRepo, p Poster, tolerance decimal.Decimal) *Service {
	return &Service{
		repo:      er,
		accounts:  as,
		periods:   pr,
		poster:    p,
		tolerance: tolerance,
	}
}

// Create validates and creates a draft entry, assigning the next entry number
// of the entity's fiscal year.
func (s *Service) Create(ctx context.Context, actor string, arg domain.CreateEntryParams) (domain.JournalEntry, error) {
	l := zerolog.Ctx(ctx)

	if actor == "" {
		return domain.JournalEntry{}, domain.ErrMissingActor
	}

	if arg.Type == "" {
		arg.Type = domain.EntryTypeStandard
	}

	if !arg.Type.Valid() {
		return domain.JournalEntry{}, domain.ErrInvalidEntryType
	}

	if err := s.validate(ctx, arg.EntityID, arg.FiscalYear, arg.FiscalPeriod, arg.Lines); err != nil {
		l.Info().Err(err).Send()
		return domain.JournalEntry{}, err
	}

	seq, err := s.repo.NextNumber(ctx, arg.EntityID, arg.FiscalYear)
	if err != nil {
		return domain.JournalEntry{}, err
	}

	number := FormatNumber(arg.FiscalYear, seq)

	return s.repo.Create(ctx, arg, number, actor)
}

// FormatNumber renders an entry number from the fiscal year sequence.
func FormatNumber(fiscalYear int, seq int64) string {
	return fmt.Sprintf("JE-%04d-%06d", fiscalYear, seq)
}

// Update rewrites a draft entry. Only the creator may update, and only while
// the entry is still in draft.
func (s *Service) Update(ctx context.Context, actor string, id int64, arg domain.UpdateEntryParams) (domain.JournalEntry, error) {
	l := zerolog.Ctx(ctx)

	if actor == "" {
		return domain.JournalEntry{}, domain.ErrMissingActor
	}

	entry, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.JournalEntry{}, err
	}

	if entry.Locked || entry.Status == domain.StatusPosted {
		return domain.JournalEntry{}, domain.ErrEntryLocked
	}

	if entry.Status != domain.StatusDraft {
		return domain.JournalEntry{}, domain.ErrEntryNotDraft
	}

	if entry.CreatedBy != actor {
		return domain.JournalEntry{}, domain.ErrNotCreator
	}

	if err := s.validate(ctx, entry.EntityID, arg.FiscalYear, arg.FiscalPeriod, arg.Lines); err != nil {
		l.Info().Err(err).Send()
		return domain.JournalEntry{}, err
	}

	return s.repo.Update(ctx, id, arg)
}

// Submit moves a draft entry to pending approval after re-running the full
// validation pipeline against current account and period state.
func (s *Service) Submit(ctx context.Context, actor string, id int64) (domain.JournalEntry, error) {
	l := zerolog.Ctx(ctx)

	if actor == "" {
		return domain.JournalEntry{}, domain.ErrMissingActor
	}

	entry, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.JournalEntry{}, err
	}

	if entry.CreatedBy != actor {
		return domain.JournalEntry{}, domain.ErrNotCreator
	}

	lines := make([]domain.LineParams, 0, len(entry.Lines))
	for _, jl := range entry.Lines {
		lines = append(lines, domain.LineParams{
			AccountID: jl.AccountID,
			Debit:     jl.Debit,
			Credit:    jl.Credit,
		})
	}

	if err := s.validate(ctx, entry.EntityID, entry.FiscalYear, entry.FiscalPeriod, lines); err != nil {
		l.Info().Err(err).Send()
		return domain.JournalEntry{}, err
	}

	return s.repo.Submit(ctx, id)
}

// Approve records one signature of the dual approval. The first signature
// moves the entry to approved; the second triggers the posting engine.
func (s *Service) Approve(ctx context.Context, actor string, id int64) (domain.JournalEntry, error) {
	l := zerolog.Ctx(ctx)

	if actor == "" {
		return domain.JournalEntry{}, domain.ErrMissingActor
	}

	entry, _, final, err := s.repo.Approve(ctx, id, actor)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.JournalEntry{}, err
	}

	if !final {
		return entry, nil
	}

	result, err := s.poster.Post(ctx, id)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.JournalEntry{}, err
	}

	return result.Entry, nil
}

// Reject returns the entry to draft. Notes are mandatory so the creator knows
// what to fix.
func (s *Service) Reject(ctx context.Context, actor string, id int64, notes string) (domain.JournalEntry, error) {
	l := zerolog.Ctx(ctx)

	if actor == "" {
		return domain.JournalEntry{}, domain.ErrMissingActor
	}

	if notes == "" {
		return domain.JournalEntry{}, domain.ErrMissingRejectionReason
	}

	entry, _, err := s.repo.Reject(ctx, id, actor, notes)
	if err != nil {
		l.Info().Err(err).Send()
		return domain.JournalEntry{}, err
	}

	return entry, nil
}

// Post runs the posting engine on an approved entry. Re-posting a posted
// entry reports success without touching balances.
func (s *Service) Post(ctx context.Context, actor string, id int64) (domain.PostingResult, error) {
	if actor == "" {
		return domain.PostingResult{}, domain.ErrMissingActor
	}

	return s.poster.Post(ctx, id)
}

// CreateReversing builds the side-swapped correction of a posted entry. The
// reversal starts its own life in draft and walks the same approval workflow.
func (s *Service) CreateReversing(ctx context.Context, actor string, arg domain.ReverseParams) (domain.JournalEntry, error) {
	source, err := s.repo.Get(ctx, arg.EntryID)
	if err != nil {
		return domain.JournalEntry{}, err
	}

	if source.Status != domain.StatusPosted {
		return domain.JournalEntry{}, domain.ErrReverseUnposted
	}

	date := arg.Date
	if date.IsZero() {
		date = source.Date
	}

	year, period := arg.FiscalYear, arg.FiscalPeriod
	if year == 0 {
		year, period = source.FiscalYear, source.FiscalPeriod
	}

	memo := arg.Memo
	if memo == "" {
		memo = "Reversal of " + source.Number
	}

	lines := make([]domain.LineParams, 0, len(source.Lines))
	for _, jl := range source.Lines {
		lines = append(lines, domain.LineParams{
			AccountID:   jl.AccountID,
			Debit:       jl.Credit,
			Credit:      jl.Debit,
			Description: jl.Description,
		})
	}

	return s.Create(ctx, actor, domain.CreateEntryParams{
		EntityID:        source.EntityID,
		Date:            date,
		FiscalYear:      year,
		FiscalPeriod:    period,
		Type:            domain.EntryTypeReversing,
		Memo:            memo,
		Reference:       source.Number,
		ReversesEntryID: &source.ID,
		Lines:           lines,
	})
}

// Get returns the entry with lines and its approval audit trail.
func (s *Service) Get(ctx context.Context, id int64) (domain.EntryDetail, error) {
	entry, err := s.repo.Get(ctx, id)
	if err != nil {
		return domain.EntryDetail{}, err
	}

	approvals, err := s.repo.ListApprovals(ctx, id)
	if err != nil {
		return domain.EntryDetail{}, err
	}

	return domain.EntryDetail{Entry: entry, Approvals: approvals}, nil
}

// List returns entry headers matching the filters.
func (s *Service) List(ctx context.Context, arg domain.ListEntriesParams) ([]domain.JournalEntry, error) {
	return s.repo.List(ctx, arg)
}

// ClosePeriod marks a fiscal period closed so no further entries can target it.
func (s *Service) ClosePeriod(ctx context.Context, entityID int32, year, period int) (domain.FiscalPeriod, error) {
	if period < 1 || period > 12 {
		return domain.FiscalPeriod{}, domain.ErrInvalidPeriod
	}

	return s.periods.SetStatus(ctx, entityID, year, period, domain.PeriodClosed)
}

// OpenPeriod reopens a closed fiscal period.
func (s *Service) OpenPeriod(ctx context.Context, entityID int32, year, period int) (domain.FiscalPeriod, error) {
	if period < 1 || period > 12 {
		return domain.FiscalPeriod{}, domain.ErrInvalidPeriod
	}

	return s.periods.SetStatus(ctx, entityID, year, period, domain.PeriodOpen)
}
