// Package metrics exposes Prometheus instrumentation for dataset
// resolution.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"campusboard/pkg/contracts/domain"
)

// Metrics holds the dataset collectors.
type Metrics struct {
	LoadsTotal   *prometheus.CounterVec
	LoadFailures *prometheus.CounterVec
	LoadDuration *prometheus.HistogramVec
	CacheWrites  *prometheus.CounterVec
}

// New creates the collectors and registers them with the registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		LoadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campusboard",
			Name:      "dataset_loads_total",
			Help:      "Dataset resolutions by domain and source.",
		}, []string{"domain", "source"}),
		LoadFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campusboard",
			Name:      "dataset_load_failures_total",
			Help:      "Dataset resolutions that returned an error.",
		}, []string{"domain"}),
		LoadDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "campusboard",
			Name:      "dataset_load_duration_seconds",
			Help:      "Time spent resolving a dataset.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"domain", "source"}),
		CacheWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "campusboard",
			Name:      "dataset_cache_writes_total",
			Help:      "Workbook cache writes by domain and outcome.",
		}, []string{"domain", "outcome"}),
	}
	reg.MustRegister(m.LoadsTotal, m.LoadFailures, m.LoadDuration, m.CacheWrites)
	return m
}

// ObserveLoad records a successful resolution.
func (m *Metrics) ObserveLoad(d domain.Domain, source string, seconds float64) {
	if m == nil {
		return
	}
	m.LoadsTotal.WithLabelValues(d.String(), source).Inc()
	m.LoadDuration.WithLabelValues(d.String(), source).Observe(seconds)
}

// ObserveFailure records a failed resolution.
func (m *Metrics) ObserveFailure(d domain.Domain) {
	if m == nil {
		return
	}
	m.LoadFailures.WithLabelValues(d.String()).Inc()
}

// ObserveCacheWrite records a cache write attempt outcome
// ("written", "blocked" or "error").
func (m *Metrics) ObserveCacheWrite(d domain.Domain, outcome string) {
	if m == nil {
		return
	}
	m.CacheWrites.WithLabelValues(d.String(), outcome).Inc()
}
