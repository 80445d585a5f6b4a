// Package observability exposes Prometheus metrics for workflow runs,
// bridged into the engine through lifecycle hooks.
package observability

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"gigflow/pkg/domain"
)

// Metrics holds the collectors for one engine instance.
type Metrics struct {
	runsTotal     *prometheus.CounterVec
	failuresTotal *prometheus.CounterVec
	paymentAmount *prometheus.HistogramVec
	stageDuration *prometheus.HistogramVec

	mu      sync.Mutex
	entered map[string]time.Time
}

// NewMetrics creates the collectors and registers them with reg. Pass
// prometheus.DefaultRegisterer for the process-global registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gigflow_runs_total",
				Help: "Total number of workflow runs by outcome",
			},
			[]string{"outcome"},
		),
		failuresTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gigflow_failures_total",
				Help: "Total number of aborted runs by failing stage",
			},
			[]string{"stage"},
		),
		paymentAmount: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gigflow_payment_amount_dollars",
				Help:    "Processed payment amounts",
				Buckets: prometheus.ExponentialBuckets(10, 4, 8),
			},
			[]string{"kind"},
		),
		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gigflow_stage_duration_seconds",
				Help:    "Duration of pipeline stages",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
		entered: make(map[string]time.Time),
	}
	reg.MustRegister(m.runsTotal, m.failuresTotal, m.paymentAmount, m.stageDuration)
	return m
}

// Hooks returns lifecycle hooks that feed the collectors. Merge with any
// caller hooks before handing them to the engine.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStageEnter: func(_ context.Context, e *domain.StageEvent) {
			m.mu.Lock()
			m.entered[stageKey(e)] = e.Timestamp
			m.mu.Unlock()
		},
		OnStageLeave: func(_ context.Context, e *domain.StageEvent) {
			m.observeStage(e)
			// leaving the last stage means the run succeeded
			if e.Stage == domain.StageReceipt {
				m.runsTotal.WithLabelValues("success").Inc()
			}
		},
		OnPaymentProcessed: func(_ context.Context, e *domain.PaymentEvent) {
			m.paymentAmount.WithLabelValues(e.Kind).Observe(e.Amount)
		},
		OnRunFailed: func(_ context.Context, e *domain.FailureEvent) {
			m.runsTotal.WithLabelValues("failure").Inc()
			m.failuresTotal.WithLabelValues(string(e.Stage)).Inc()
		},
	}
}

func (m *Metrics) observeStage(e *domain.StageEvent) {
	m.mu.Lock()
	start, ok := m.entered[stageKey(e)]
	delete(m.entered, stageKey(e))
	m.mu.Unlock()
	if ok {
		m.stageDuration.WithLabelValues(string(e.Stage)).Observe(e.Timestamp.Sub(start).Seconds())
	}
}

func stageKey(e *domain.StageEvent) string {
	return e.Project + "\x00" + string(e.Stage)
}

// MergeHooks fans events out to each hook set in order.
func MergeHooks(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	var merged domain.LifecycleHooks
	merged.OnStageEnter = func(ctx context.Context, e *domain.StageEvent) {
		for _, h := range sets {
			if h.OnStageEnter != nil {
				h.OnStageEnter(ctx, e)
			}
		}
	}
	merged.OnStageLeave = func(ctx context.Context, e *domain.StageEvent) {
		for _, h := range sets {
			if h.OnStageLeave != nil {
				h.OnStageLeave(ctx, e)
			}
		}
	}
	merged.OnPaymentProcessed = func(ctx context.Context, e *domain.PaymentEvent) {
		for _, h := range sets {
			if h.OnPaymentProcessed != nil {
				h.OnPaymentProcessed(ctx, e)
			}
		}
	}
	merged.OnRunFailed = func(ctx context.Context, e *domain.FailureEvent) {
		for _, h := range sets {
			if h.OnRunFailed != nil {
				h.OnRunFailed(ctx, e)
			}
		}
	}
	return merged
}
