// Package metrics provides Prometheus instrumentation for the leaderboard
// engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation labels used on the per-operation metrics.
const (
	OpSubmit = "submit"
	OpTopN   = "top_n"
	OpRank   = "rank"
)

const namespace = "leaderboard"

// Metrics holds the engine's Prometheus collectors. A nil *Metrics is valid
// and records nothing, so instrumentation stays optional for callers.
type Metrics struct {
	submissions      prometheus.Counter
	submissionErrors prometheus.Counter
	cacheHits        *prometheus.CounterVec
	cacheMisses      *prometheus.CounterVec
	opDuration       *prometheus.HistogramVec
}

// New creates engine metrics registered against the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		submissions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Total number of committed score submissions.",
		}),
		submissionErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submission_errors_total",
			Help:      "Total number of failed score submissions.",
		}),
		cacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Read operations served from the result cache.",
		}, []string{"op"}),
		cacheMisses: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Read operations that fell through to the aggregate store.",
		}, []string{"op"}),
		opDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Latency of engine operations.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}
}

// SubmissionRecorded counts a committed submission.
func (m *Metrics) SubmissionRecorded() {
	if m == nil {
		return
	}
	m.submissions.Inc()
}

// SubmissionFailed counts a failed submission.
func (m *Metrics) SubmissionFailed() {
	if m == nil {
		return
	}
	m.submissionErrors.Inc()
}

// CacheHit counts a read served from the cache.
func (m *Metrics) CacheHit(op string) {
	if m == nil {
		return
	}
	m.cacheHits.WithLabelValues(op).Inc()
}

// CacheMiss counts a read that fell through to the store.
func (m *Metrics) CacheMiss(op string) {
	if m == nil {
		return
	}
	m.cacheMisses.WithLabelValues(op).Inc()
}

// ObserveDuration records the latency of an engine operation.
func (m *Metrics) ObserveDuration(op string, d time.Duration) {
	if m == nil {
		return
	}
	m.opDuration.WithLabelValues(op).Observe(d.Seconds())
}
