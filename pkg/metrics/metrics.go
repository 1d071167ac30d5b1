package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// QuoteMetrics records quote aggregation outcomes.
type QuoteMetrics struct {
	duration       *prometheus.HistogramVec
	sellerFailures *prometheus.CounterVec
	cacheHits      *prometheus.CounterVec
	timeouts       prometheus.Counter
}

// NewQuoteMetrics registers the shipping quote metrics on the provided registerer.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "shipping_quote_duration_seconds",
		Help:    "Duration of shipping quote operations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	sellerFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shipping_quote_seller_failures",
		Help: "Per-seller soft failures during quote aggregation.",
	}, []string{"reason"})
	cacheHits := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "shipping_quote_cache_lookups",
		Help: "Quote cache lookups by outcome.",
	}, []string{"outcome"})
	timeouts := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "shipping_quote_timeouts",
		Help: "Whole-request aggregation deadline expirations.",
	})
	reg.MustRegister(duration, sellerFailures, cacheHits, timeouts)
	return &QuoteMetrics{
		duration:       duration,
		sellerFailures: sellerFailures,
		cacheHits:      cacheHits,
		timeouts:       timeouts,
	}
}

// ObserveDuration records the duration for the named operation.
func (q *QuoteMetrics) ObserveDuration(operation string, duration time.Duration) {
	if q == nil || q.duration == nil {
		return
	}
	q.duration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncSellerFailure increments the soft-failure counter for the given reason.
func (q *QuoteMetrics) IncSellerFailure(reason string) {
	if q == nil || q.sellerFailures == nil {
		return
	}
	q.sellerFailures.WithLabelValues(normalizeLabel(reason)).Inc()
}

// IncCacheHit increments the cache hit counter.
func (q *QuoteMetrics) IncCacheHit() {
	if q == nil || q.cacheHits == nil {
		return
	}
	q.cacheHits.WithLabelValues("hit").Inc()
}

// IncCacheMiss increments the cache miss counter.
func (q *QuoteMetrics) IncCacheMiss() {
	if q == nil || q.cacheHits == nil {
		return
	}
	q.cacheHits.WithLabelValues("miss").Inc()
}

// IncTimeout increments the whole-request timeout counter.
func (q *QuoteMetrics) IncTimeout() {
	if q == nil || q.timeouts == nil {
		return
	}
	q.timeouts.Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
