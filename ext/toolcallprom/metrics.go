// Package toolcallprom records Prometheus metrics for toolcall executions.
package toolcallprom

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/skosovsky/toolcall"
)

const outcomeOK = "ok"

// Metrics holds the collectors shared by every tool.
type Metrics struct {
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg
// (prometheus.DefaultRegisterer when nil).
func New(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toolcall_calls_total",
				Help: "Tool executions by tool and outcome (ok, not_found, bad_args, execution).",
			},
			[]string{"tool", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "toolcall_call_duration_seconds",
				Help:    "Duration of tool executions.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"tool"},
		),
	}
	for _, c := range []prometheus.Collector{m.calls, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Middleware returns a toolcall.Middleware feeding these collectors.
func (m *Metrics) Middleware() toolcall.Middleware {
	return func(next toolcall.ExecFunc) toolcall.ExecFunc {
		return func(ctx context.Context, t *toolcall.Tool, args []string) (string, error) {
			start := time.Now()
			res, err := next(ctx, t, args)
			m.duration.WithLabelValues(t.Name()).Observe(time.Since(start).Seconds())
			outcome := outcomeOK
			if err != nil {
				outcome = toolcall.KindOf(err).String()
			}
			m.calls.WithLabelValues(t.Name(), outcome).Inc()
			return res, err
		}
	}
}
