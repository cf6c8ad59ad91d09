package matchservice

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finvera/ledger-core/internal/domain"
)

// Rules carries the matcher thresholds. The defaults are the documented
// ledger semantics; deployments tune them through config.
type Rules struct {
	ExactWindowDays int
	FuzzyWindowDays int
	AmountTolerance decimal.Decimal
	MinConfidence   decimal.Decimal
}

// DefaultRules returns the documented matching thresholds.
func DefaultRules() Rules {
	return Rules{
		ExactWindowDays: 3,
		FuzzyWindowDays: 7,
		AmountTolerance: decimal.RequireFromString("0.01"),
		MinConfidence:   decimal.RequireFromString("0.5"),
	}
}

// Pair computes pairings between bank transactions and ledger candidates.
//
// Pure and deterministic: same inputs always produce the same pairings, in
// ascending (date, id) transaction order, with each candidate claimed by at
// most one transaction. Per transaction the exact rule wins over fuzzy, and
// among equally eligible candidates the earliest (date, kind, id) wins.
func Pair(txns []domain.BankTransaction, candidates []domain.LedgerReference, rules Rules) []domain.MatchResult {
	ordered := make([]domain.BankTransaction, len(txns))
	copy(ordered, txns)

	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return ordered[i].ID < ordered[j].ID
	})

	refs := make([]domain.LedgerReference, len(candidates))
	copy(refs, candidates)

	sort.SliceStable(refs, func(i, j int) bool {
		if !refs[i].Date.Equal(refs[j].Date) {
			return refs[i].Date.Before(refs[j].Date)
		}
		if refs[i].Kind != refs[j].Kind {
			return refs[i].Kind < refs[j].Kind
		}
		return refs[i].RefID < refs[j].RefID
	})

	claimed := make([]bool, len(refs))
	results := make([]domain.MatchResult, 0, len(ordered))

	for _, t := range ordered {
		results = append(results, matchOne(t, refs, claimed, rules))
	}

	return results
}

func matchOne(t domain.BankTransaction, refs []domain.LedgerReference, claimed []bool, rules Rules) domain.MatchResult {
	amount := t.Amount.Abs()

	for i, ref := range refs {
		if claimed[i] {
			continue
		}

		if amount.Equal(ref.Amount) && daysBetween(t.Date, ref.Date) <= rules.ExactWindowDays {
			claimed[i] = true

			conf := decimal.NewFromInt(1)
			kind, refID := ref.Kind, ref.RefID

			return domain.MatchResult{
				BankTransactionID: t.ID,
				Status:            domain.MatchMatched,
				Confidence:        &conf,
				MatchedKind:       &kind,
				MatchedRefID:      &refID,
				Rule:              domain.RuleExact,
			}
		}
	}

	for i, ref := range refs {
		if claimed[i] {
			continue
		}

		days := daysBetween(t.Date, ref.Date)
		amountExact := amount.Equal(ref.Amount)
		amountClose := amount.Sub(ref.Amount).Abs().LessThanOrEqual(rules.AmountTolerance)

		if (amountExact && days <= rules.FuzzyWindowDays) ||
			(amountClose && days <= rules.ExactWindowDays) {
			claimed[i] = true

			conf := confidence(days, rules.MinConfidence)
			kind, refID := ref.Kind, ref.RefID

			return domain.MatchResult{
				BankTransactionID: t.ID,
				Status:            domain.MatchSuggested,
				Confidence:        &conf,
				MatchedKind:       &kind,
				MatchedRefID:      &refID,
				Rule:              domain.RuleFuzzy,
			}
		}
	}

	return domain.MatchResult{BankTransactionID: t.ID, Status: domain.MatchUnmatched}
}

// daysBetween counts whole calendar days between two dates, ignoring the
// time of day the feed happened to deliver.
func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)

	days := int(ad.Sub(bd).Hours() / 24)
	if days < 0 {
		days = -days
	}

	return days
}

var ten = decimal.NewFromInt(10)

// confidence scores a fuzzy pairing: 1 - days/10, floored.
func confidence(days int, floor decimal.Decimal) decimal.Decimal {
	c := decimal.NewFromInt(1).Sub(decimal.NewFromInt(int64(days)).Div(ten))
	if c.LessThan(floor) {
		return floor
	}

	return c
}
