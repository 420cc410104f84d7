// Package metrics records per-operation counters and latencies for services.
package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OperationMetrics is the recording surface a service sees.
type OperationMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, d time.Duration)
}

// Collector owns the prometheus vectors shared by every service. Register it
// once per registry and hand out scoped recorders with Service.
type Collector struct {
	attempts  *prometheus.CounterVec
	successes *prometheus.CounterVec
	failures  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewCollector registers the operation vectors on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)
	labels := []string{"service", "operation"}
	return &Collector{
		attempts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "service_operation_attempts_total",
			Help: "Service operations started.",
		}, labels),
		successes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "service_operation_successes_total",
			Help: "Service operations that completed without error.",
		}, labels),
		failures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "service_operation_failures_total",
			Help: "Service operations that failed with an unexpected error.",
		}, labels),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "service_operation_duration_seconds",
			Help:    "Service operation latency.",
			Buckets: prometheus.DefBuckets,
		}, labels),
	}
}

// Service returns a recorder bound to one service label.
func (c *Collector) Service(name string) OperationMetrics {
	return &serviceMetrics{c: c, service: name}
}

type serviceMetrics struct {
	c       *Collector
	service string
}

func (m *serviceMetrics) RecordOperationAttempt(_ context.Context, op string) {
	m.c.attempts.WithLabelValues(m.service, op).Inc()
}

func (m *serviceMetrics) RecordOperationSuccess(_ context.Context, op string) {
	m.c.successes.WithLabelValues(m.service, op).Inc()
}

func (m *serviceMetrics) RecordOperationFailure(_ context.Context, op string) {
	m.c.failures.WithLabelValues(m.service, op).Inc()
}

func (m *serviceMetrics) RecordOperationDuration(_ context.Context, op string, d time.Duration) {
	m.c.duration.WithLabelValues(m.service, op).Observe(d.Seconds())
}

// NoOp discards everything. Used in tests.
type NoOp struct{}

func (NoOp) RecordOperationAttempt(context.Context, string)                 {}
func (NoOp) RecordOperationSuccess(context.Context, string)                 {}
func (NoOp) RecordOperationFailure(context.Context, string)                 {}
func (NoOp) RecordOperationDuration(context.Context, string, time.Duration) {}
