// Package reconservice manages business logic of bank reconciliation.
package reconservice

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/pkg/metricspkg"
)

// Repo provides reconciliation repository interface needed by service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package reconservice
type Repo interface {
	CalculateTx(
		ctx context.Context,
		bankAccountID int64,
		statementDate time.Time,
		build func(f domain.ReconciliationFigures) domain.Reconciliation,
	) (domain.Reconciliation, error)
	ApproveTx(ctx context.Context, id int64, approver string) (domain.Reconciliation, error)
	Get(ctx context.Context, id int64) (domain.Reconciliation, error)
	Latest(ctx context.Context, bankAccountID int64) (domain.Reconciliation, error)
}

// Service facilitates reconciliation service layer logic.
type Service struct {
	repo      Repo
	tolerance decimal.Decimal
}

// New returns reconciliation Service.
func New(r Repo, tolerance decimal.Decimal) *Service {
	return &Service{
		repo:      r,
		tolerance: tolerance,
	}
}

// Compute derives the balance columns of a reconciliation from its figures.
// Pure: identical inputs always produce identical output. The books balance
// rolls the beginning balance forward by the cleared activity; the difference
// holds the statement balance against the books balance adjusted for activity
// still in transit.
func Compute(f domain.ReconciliationFigures, endingPerBank, tolerance decimal.Decimal) domain.Reconciliation {
	books := f.BeginningBalance.Add(f.ClearedDeposits).Sub(f.ClearedWithdrawals)
	difference := endingPerBank.Sub(books.Add(f.OutstandingDeposits).Sub(f.OutstandingChecks))

	return domain.Reconciliation{
		BeginningBalance:     f.BeginningBalance,
		EndingBalancePerBank: endingPerBank,
		EndingBalanceBooks:   books,
		ClearedDeposits:      f.ClearedDeposits,
		ClearedWithdrawals:   f.ClearedWithdrawals,
		OutstandingDeposits:  f.OutstandingDeposits,
		OutstandingChecks:    f.OutstandingChecks,
		Difference:           difference,
		Balanced:             difference.Abs().LessThan(tolerance),
		Status:               domain.ReconciliationDraft,
	}
}

// Calculate computes and stores a draft reconciliation for a statement. An
// unbalanced result is a normal outcome, reported rather than failed, and
// recalculating the same statement overwrites the draft.
func (s *Service) Calculate(ctx context.Context, actor string, bankAccountID int64, statementDate time.Time, endingPerBank decimal.Decimal) (domain.Reconciliation, error) {
	l := zerolog.Ctx(ctx)

	if actor == "" {
		return domain.Reconciliation{}, domain.ErrMissingActor
	}

	rec, err := s.repo.CalculateTx(ctx, bankAccountID, statementDate,
		func(f domain.ReconciliationFigures) domain.Reconciliation {
			draft := Compute(f, endingPerBank, s.tolerance)
			draft.BankAccountID = bankAccountID
			draft.StatementDate = statementDate
			draft.PreparedBy = actor

			return draft
		})
	if err != nil {
		return rec, err
	}

	metricspkg.ReconciliationsBalanced.WithLabelValues(strconv.FormatBool(rec.Balanced)).Inc()

	l.Info().
		Int64("bank_account_id", bankAccountID).
		Str("difference", rec.Difference.String()).
		Bool("balanced", rec.Balanced).
		Msg("reconciliation calculated")

	return rec, nil
}

// Approve locks a balanced reconciliation under a second signature.
func (s *Service) Approve(ctx context.Context, actor string, id int64) (domain.Reconciliation, error) {
	if actor == "" {
		return domain.Reconciliation{}, domain.ErrMissingActor
	}

	return s.repo.ApproveTx(ctx, id, actor)
}

// Get returns one reconciliation.
func (s *Service) Get(ctx context.Context, id int64) (domain.Reconciliation, error) {
	return s.repo.Get(ctx, id)
}

// Latest returns a bank account's most recent reconciliation.
func (s *Service) Latest(ctx context.Context, bankAccountID int64) (domain.Reconciliation, error) {
	return s.repo.Latest(ctx, bankAccountID)
}
