// Package guardmetrics exposes Prometheus counters for boundary-guard
// outcomes: panics intercepted at the foreign boundary and ordinary work
// failures reported through error slots. Metrics are registered lazily on
// first use against the default registry.
package guardmetrics
