package metrics

import (
	"github.com/nglmq/chi-checksum/internal/validation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
)

type Metrics struct {
	registry    *prometheus.Registry
	identifiers *prometheus.CounterVec
	batchSize   prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		identifiers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chichecksum",
			Name:      "identifiers_total",
			Help:      "Identifiers checked, by outcome.",
		}, []string{"status"}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "chichecksum",
			Name:      "batch_size",
			Help:      "Identifiers per validated batch.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
	}

	m.registry.MustRegister(m.identifiers, m.batchSize)

	return m
}

func (m *Metrics) ObserveBatch(statuses []validation.Status) {
	m.batchSize.Observe(float64(len(statuses)))

	for _, s := range statuses {
		m.identifiers.WithLabelValues(s.String()).Inc()
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
