package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	aggregationsTotal   *prometheus.CounterVec
	aggregationDuration *prometheus.HistogramVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		aggregationsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aggregations_total",
				Help: "Total number of summaries and reports generated",
			},
			[]string{"name"},
		),
		aggregationDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aggregation_duration_milliseconds",
				Help:    "Summary and report generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"name"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	m.aggregationsTotal.WithLabelValues(name).Inc()
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	m.aggregationDuration.WithLabelValues(name).Observe(float64(duration.Milliseconds()))
}
