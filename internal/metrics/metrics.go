// Package metrics exposes Prometheus instrumentation for campaign operations.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"crowdfund/internal/core/domain"
)

// Operations counts campaign operations by kind and result and sums the
// lamports each successful operation moved. A nil *Operations and an
// unregistered one are both valid and record nothing.
type Operations struct {
	total    *prometheus.CounterVec
	lamports *prometheus.CounterVec

	registerOnce sync.Once
}

// NewOperations returns Operations registered with registry. A nil registry
// yields a no-op recorder.
func NewOperations(registry prometheus.Registerer) *Operations {
	m := &Operations{}
	m.Register(registry)
	return m
}

// Register registers the collectors with registry. It is idempotent.
func (m *Operations) Register(registry prometheus.Registerer) {
	if registry == nil {
		return
	}
	m.registerOnce.Do(func() {
		factory := promauto.With(registry)

		m.total = factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crowdfund_operations_total",
			Help: "Total number of campaign operations by kind and result",
		}, []string{"op", "result"})

		m.lamports = factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crowdfund_lamports_moved_total",
			Help: "Total lamports moved by successful campaign operations",
		}, []string{"op"})
	})
}

// Observe records the outcome of op. amount is only counted on success.
func (m *Operations) Observe(op string, amount uint64, err error) {
	if m == nil || m.total == nil {
		return
	}
	m.total.WithLabelValues(op, domain.ErrorCode(err)).Inc()
	if err == nil && amount > 0 {
		m.lamports.WithLabelValues(op).Add(float64(amount))
	}
}
