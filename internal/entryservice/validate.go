package entryservice

import (
	"context"

	"github.com/finvera/ledger-core/internal/domain"
)

// validate runs the entry validation pipeline: line shape, account
// resolution, balance within tolerance, and fiscal period state. It runs on
// create and again on submit so drafts cannot sneak past account
// deactivations or period closes that happened in between.
func (s *Service) validate(ctx context.Context, entityID int32, fiscalYear, fiscalPeriod int, lines []domain.LineParams) error {
	if fiscalPeriod < 1 || fiscalPeriod > 12 {
		return domain.ErrInvalidPeriod
	}

	if len(lines) == 0 {
		return domain.ErrNoLines
	}

	totalDebits, totalCredits := domain.LineTotals(lines)

	for _, lp := range lines {
		jl := domain.JournalLine{Debit: lp.Debit, Credit: lp.Credit}
		if !jl.OneSided() {
			return domain.ErrInvalidLineShape
		}

		account, err := s.accounts.Get(ctx, lp.AccountID)
		if err != nil {
			if err == domain.ErrAccountNotFound {
				return domain.UnknownAccountError{AccountID: lp.AccountID}
			}

			return err
		}

		if account.EntityID != entityID {
			return domain.UnknownAccountError{AccountID: lp.AccountID}
		}

		if !account.Active {
			return domain.ErrAccountInactive
		}
	}

	difference := totalDebits.Sub(totalCredits)
	if difference.Abs().GreaterThan(s.tolerance) {
		return domain.OutOfBalanceError{Difference: difference}
	}

	period, err := s.periods.Get(ctx, entityID, fiscalYear, fiscalPeriod)
	if err != nil {
		return err
	}

	if period.Status == domain.PeriodClosed {
		return domain.PeriodClosedError{Year: fiscalYear, Period: fiscalPeriod}
	}

	return nil
}
