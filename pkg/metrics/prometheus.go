package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	PassesIssued   prometheus.Counter
	EmailsSent     prometheus.Counter
	BatchesIssued  *prometheus.CounterVec
	ProcessingTime prometheus.Histogram
	ErrorsCount    *prometheus.CounterVec
}

// NewMetrics registers the service metrics on reg. Pass
// prometheus.DefaultRegisterer to expose them on /metrics.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		PassesIssued: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passes_issued_total",
			Help:      "The total number of persisted boarding passes",
		}),
		EmailsSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "emails_sent_total",
			Help:      "The total number of boarding pass emails dispatched",
		}),
		BatchesIssued: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batches_total",
			Help:      "The total number of issuance batches by outcome",
		}, []string{"outcome"}),
		ProcessingTime: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_processing_time_seconds",
			Help:      "Time taken to issue a batch of boarding passes",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
