// Package postingservice runs the posting engine: exactly-once application
// of approved entries to account running balances.
package postingservice

import (
	"context"

	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/pkg/metricspkg"

	"github.com/rs/zerolog"
)

// Repo provides the posting transaction needed by the posting engine.
//
//go:generate mockgen -source service.go -destination service_mock.go -package postingservice
type Repo interface {
	PostTx(ctx context.Context, entryID int64) (domain.PostingResult, error)
}

// Service facilitates posting engine logic.
type Service struct {
	repo Repo
}

// New returns posting service struct.
func New(r Repo) *Service {
	return &Service{repo: r}
}

// Post applies the entry to account balances exactly once. A re-post of an
// already posted entry succeeds without changing anything.
func (s *Service) Post(ctx context.Context, entryID int64) (domain.PostingResult, error) {
	l := zerolog.Ctx(ctx)

	result, err := s.repo.PostTx(ctx, entryID)
	if err != nil {
		l.Info().Err(err).Int64("entry_id", entryID).Send()
		return result, err
	}

	if result.AlreadyPosted {
		metricspkg.PostingNoops.Inc()
		l.Info().Int64("entry_id", entryID).Msg("entry already posted, no-op")

		return result, nil
	}

	metricspkg.EntriesPosted.Inc()
	l.Info().
		Int64("entry_id", entryID).
		Str("number", result.Entry.Number).
		Msg("entry posted")

	return result, nil
}
