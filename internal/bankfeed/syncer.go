package bankfeed

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/finvera/ledger-core/internal/domain"
	"github.com/finvera/ledger-core/pkg/metricspkg"
)

// FeedSource is the external feed provider the syncer polls.
//
//go:generate mockgen -source syncer.go -destination syncer_mock.go -package bankfeed
type FeedSource interface {
	Accounts(ctx context.Context) ([]int64, error)
	Fetch(ctx context.Context, bankAccountID int64) ([]domain.BankTransactionParams, error)
}

// Ingestor is the slice of the match service the syncer writes through.
type Ingestor interface {
	Ingest(ctx context.Context, bankAccountID int64, batch []domain.BankTransactionParams) ([]domain.BankTransaction, error)
	RunPass(ctx context.Context, bankAccountID int64, from, to time.Time) ([]domain.MatchResult, error)
}

// Syncer periodically pulls feed records for every bank account the source
// serves, ingests them and triggers a match pass. Syncs for one account never
// overlap: a tick finding the prior sync still writing skips that account.
type Syncer struct {
	source   FeedSource
	ingestor Ingestor
	interval time.Duration

	mu       sync.Mutex
	inFlight map[int64]bool
}

// NewSyncer returns a bank feed Syncer.
func NewSyncer(source FeedSource, ingestor Ingestor, interval time.Duration) *Syncer {
	return &Syncer{
		source:   source,
		ingestor: ingestor,
		interval: interval,
		inFlight: make(map[int64]bool),
	}
}

// Run loops until the context is cancelled, starting a sync round every
// interval.
func (s *Syncer) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sync(ctx)
		}
	}
}

// Sync starts one sync round. Each account syncs in its own goroutine;
// accounts whose previous sync is still running are skipped.
func (s *Syncer) Sync(ctx context.Context) {
	l := zerolog.Ctx(ctx)

	accounts, err := s.source.Accounts(ctx)
	if err != nil {
		l.Error().Err(err).Send()
		return
	}

	for _, id := range accounts {
		if !s.begin(id) {
			l.Info().Int64("bank_account_id", id).Msg("bank sync still running, skipped")
			continue
		}

		go func(id int64) {
			defer s.end(id)

			if err := s.syncOne(ctx, id); err != nil {
				l.Error().Err(err).Int64("bank_account_id", id).Send()
			}
		}(id)
	}
}

func (s *Syncer) begin(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight[id] {
		return false
	}

	s.inFlight[id] = true
	metricspkg.RunningSyncs.Inc()

	return true
}

func (s *Syncer) end(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.inFlight, id)
	metricspkg.RunningSyncs.Dec()
}

func (s *Syncer) syncOne(ctx context.Context, id int64) error {
	batch, err := s.source.Fetch(ctx, id)
	if err != nil {
		return err
	}

	if len(batch) == 0 {
		return nil
	}

	if _, err := s.ingestor.Ingest(ctx, id, batch); err != nil {
		return err
	}

	_, err = s.ingestor.RunPass(ctx, id, time.Time{}, time.Time{})

	return err
}
