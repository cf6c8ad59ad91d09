// Package metricspkg exposes the prometheus collectors of the ledger core.
package metricspkg

import "github.com/prometheus/client_golang/prometheus"

var (
	// EntriesPosted counts journal entries applied to the ledger.
	EntriesPosted = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ledger_entries_posted_total",
		Help: "Journal entries posted to the ledger",
	})

	// PostingNoops counts idempotent re-posts of already posted entries.
	PostingNoops = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ledger_postings_noop_total",
		Help: "Posting requests that found the entry already posted",
	})

	// MatchPasses counts automatic match passes per bank account.
	MatchPasses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "ledger_match_pass_total",
		Help: "Automatic bank transaction match passes",
	})

	// MatchedTransactions counts bank transactions by resulting match status.
	MatchedTransactions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_bank_transactions_matched_total",
		Help: "Bank transactions processed by the matcher, by resulting status",
	}, []string{"status"})

	// MatchPassDuration observes match pass latency.
	MatchPassDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ledger_match_pass_duration_seconds",
		Help:    "Duration of automatic match passes",
		Buckets: prometheus.DefBuckets,
	})

	// ReconciliationsBalanced counts computed reconciliations by outcome.
	ReconciliationsBalanced = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "ledger_reconciliations_total",
		Help: "Reconciliations computed, by balanced outcome",
	}, []string{"balanced"})

	// RunningSyncs tracks bank feed syncs currently writing.
	RunningSyncs = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "ledger_bank_syncs_running",
		Help: "Bank feed syncs in flight",
	})
)

func init() {
	prometheus.MustRegister(
		EntriesPosted,
		PostingNoops,
		MatchPasses,
		MatchedTransactions,
		MatchPassDuration,
		ReconciliationsBalanced,
		RunningSyncs,
	)
}
