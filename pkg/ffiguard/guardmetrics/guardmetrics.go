package guardmetrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ffiguard/ffiguard-go/pkg/ffiguard"
)

var (
	panicsTotal   *prometheus.CounterVec
	failuresTotal *prometheus.CounterVec

	// Registration guard
	metricsOnce sync.Once
)

// InitMetrics registers all Prometheus metrics with the default registry.
// It runs at most once; every entry point of this package calls it, so
// explicit initialization at startup is optional.
func InitMetrics() {
	metricsOnce.Do(func() {
		panicsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ffiguard_panics_total",
				Help: "Total number of panics intercepted at the foreign boundary",
			},
			[]string{"site"},
		)

		failuresTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ffiguard_failures_total",
				Help: "Total number of guarded calls that reported a work failure",
			},
			[]string{"site"},
		)
	})
}

// Sink returns a PanicSink that increments the panic counter for the given
// boundary site (conventionally the exported C symbol name).
func Sink(site string) ffiguard.PanicSink {
	InitMetrics()
	return func(string) {
		panicsTotal.WithLabelValues(site).Inc()
	}
}

// RecordFailure increments the work-failure counter for site. Call it from
// the work closure when returning an error, next to building the message.
func RecordFailure(site string) {
	InitMetrics()
	failuresTotal.WithLabelValues(site).Inc()
}

// PanicsTotal returns the panic counter vector for inspection in tests.
func PanicsTotal() *prometheus.CounterVec {
	InitMetrics()
	return panicsTotal
}

// FailuresTotal returns the work-failure counter vector for inspection in
// tests.
func FailuresTotal() *prometheus.CounterVec {
	InitMetrics()
	return failuresTotal
}
