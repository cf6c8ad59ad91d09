// Package matchservice manages business logic of bank transaction matching.
package matchservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/pkg/metricspkg"
)

// Repo provides bank transaction repository interface needed by match service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package matchservice
type Repo interface {
	Ingest(ctx context.Context, bankAccountID int64, batch []domain.BankTransactionParams) ([]domain.BankTransaction, error)
	Get(ctx context.Context, id int64) (domain.BankTransaction, error)
	List(ctx context.Context, arg domain.ListBankTransactionsParams) ([]domain.BankTransaction, error)
	RunPass(
		ctx context.Context,
		bankAccountID int64,
		from, to time.Time,
		pair func(txns []domain.BankTransaction, candidates []domain.LedgerReference) []domain.MatchResult,
	) ([]domain.MatchResult, error)
	ManualMatch(ctx context.Context, id int64, actor string, kind domain.ReferenceKind, refID int64) (domain.BankTransaction, error)
	Unmatch(ctx context.Context, id int64) (domain.BankTransaction, error)
}

// BillRepo provides bill repository interface needed by match service layer.
type BillRepo interface {
	Create(ctx context.Context, arg domain.CreateBillParams) (domain.Bill, error)
	Get(ctx context.Context, id int64) (domain.Bill, error)
	List(ctx context.Context, entityID int32, status domain.BillStatus) ([]domain.Bill, error)
}

// Service facilitates match service layer logic.
type Service struct {
	repo  Repo
	bills BillRepo
	rules Rules
}

// New returns match Service.
func New(r Repo, br BillRepo, rules Rules) *Service {
	return &Service{
		repo:  r,
		bills: br,
		rules: rules,
	}
}

// Ingest appends a feed batch to a bank account. Records whose external id
// was already delivered are skipped, so redelivery is safe.
func (s *Service) Ingest(ctx context.Context, bankAccountID int64, batch []domain.BankTransactionParams) ([]domain.BankTransaction, error) {
	l := zerolog.Ctx(ctx)

	inserted, err := s.repo.Ingest(ctx, bankAccountID, batch)
	if err != nil {
		return nil, err
	}

	l.Info().
		Int64("bank_account_id", bankAccountID).
		Int("ingested", len(inserted)).
		Int("duplicates", len(batch)-len(inserted)).
		Msg("bank feed batch ingested")

	return inserted, nil
}

// RunPass matches the account's feed records in the date range against open
// ledger activity. Manual matches never participate; re-running a pass over
// the same range recomputes suggestions from the current ledger state.
func (s *Service) RunPass(ctx context.Context, bankAccountID int64, from, to time.Time) ([]domain.MatchResult, error) {
	l := zerolog.Ctx(ctx)
	start := time.Now()

	results, err := s.repo.RunPass(ctx, bankAccountID, from, to,
		func(txns []domain.BankTransaction, candidates []domain.LedgerReference) []domain.MatchResult {
			return Pair(txns, candidates, s.rules)
		})
	if err != nil {
		return nil, err
	}

	metricspkg.MatchPasses.Inc()
	metricspkg.MatchPassDuration.Observe(time.Since(start).Seconds())

	var matched, suggested int

	for _, res := range results {
		metricspkg.MatchedTransactions.WithLabelValues(string(res.Status)).Inc()

		switch res.Status {
		case domain.MatchMatched:
			matched++
		case domain.MatchSuggested:
			suggested++
		}
	}

	l.Info().
		Int64("bank_account_id", bankAccountID).
		Int("transactions", len(results)).
		Int("matched", matched).
		Int("suggested", suggested).
		Msg("match pass finished")

	return results, nil
}

// ManualMatch links a bank transaction to a ledger reference on the actor's
// authority, overriding any automatic result.
func (s *Service) ManualMatch(ctx context.Context, actor string, id int64, kind domain.ReferenceKind, refID int64) (domain.BankTransaction, error) {
	if actor == "" {
		return domain.BankTransaction{}, domain.ErrMissingActor
	}

	if !kind.Valid() {
		return domain.BankTransaction{}, domain.ErrReferenceNotFound
	}

	t, err := s.repo.ManualMatch(ctx, id, actor, kind, refID)
	if err != nil {
		return t, err
	}

	metricspkg.MatchedTransactions.WithLabelValues(string(domain.MatchMatched)).Inc()

	return t, nil
}

// Unmatch returns a transaction and its ledger reference to unmatched.
func (s *Service) Unmatch(ctx context.Context, actor string, id int64) (domain.BankTransaction, error) {
	if actor == "" {
		return domain.BankTransaction{}, domain.ErrMissingActor
	}

	return s.repo.Unmatch(ctx, id)
}

// Get returns one bank transaction.
func (s *Service) Get(ctx context.Context, id int64) (domain.BankTransaction, error) {
	return s.repo.Get(ctx, id)
}

// ListTransactions returns a bank account's feed records.
func (s *Service) ListTransactions(ctx context.Context, arg domain.ListBankTransactionsParams) ([]domain.BankTransaction, error) {
	return s.repo.List(ctx, arg)
}

// CreateBill registers an open payable as a future match candidate.
func (s *Service) CreateBill(ctx context.Context, arg domain.CreateBillParams) (domain.Bill, error) {
	if !arg.Amount.IsPositive() {
		return domain.Bill{}, domain.ErrInvalidBillAmount
	}

	return s.bills.Create(ctx, arg)
}

// ListBills returns an entity's bills, optionally filtered by status.
func (s *Service) ListBills(ctx context.Context, entityID int32, status domain.BillStatus) ([]domain.Bill, error) {
	return s.bills.List(ctx, entityID, status)
}
