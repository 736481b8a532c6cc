package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the application's Prometheus metrics.
type Metrics struct {
	// Registry owns these metrics; the /metrics endpoint serves it.
	Registry *prometheus.Registry

	chatDuration        *prometheus.HistogramVec
	chatRequests        *prometheus.CounterVec
	catalogSearches     *prometheus.CounterVec
	classifierFallbacks prometheus.Counter
}

// NewMetrics creates a dedicated registry and registers all metrics in
// it. A private registry avoids duplicate-collector panics when
// NewMetrics runs more than once in tests.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		chatDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stylist_chat_duration_seconds",
				Help:    "Duration of chat exchanges by action.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"action"},
		),
		chatRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stylist_chat_requests_total",
				Help: "Chat exchanges processed, by classified action.",
			},
			[]string{"action"},
		),
		catalogSearches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stylist_catalog_searches_total",
				Help: "Catalog lookups, by outcome.",
			},
			[]string{"outcome"},
		),
		classifierFallbacks: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "stylist_classifier_fallbacks_total",
				Help: "Intent classifications served by the rule-based fallback.",
			},
		),
	}
}

// RecordChat records one finished chat exchange.
func (m *Metrics) RecordChat(action string, d time.Duration) {
	m.chatRequests.WithLabelValues(action).Inc()
	m.chatDuration.WithLabelValues(action).Observe(d.Seconds())
}

// IncrCatalogSearch counts a catalog lookup outcome ("hit" or "empty").
func (m *Metrics) IncrCatalogSearch(outcome string) {
	m.catalogSearches.WithLabelValues(outcome).Inc()
}

// IncrClassifierFallback counts a rule-based fallback classification.
func (m *Metrics) IncrClassifierFallback() {
	m.classifierFallbacks.Inc()
}
