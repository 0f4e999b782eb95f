package observability

import (
	"context"
	"errors"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts ticks, actions, transitions and errors per node.
type Metrics struct {
	Ticks       *prometheus.CounterVec
	Actions     *prometheus.CounterVec
	Transitions *prometheus.CounterVec
	Errors      *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_ticks_total",
				Help: "Total number of ticks per active node",
			},
			[]string{"node"},
		),
		Actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_actions_total",
				Help: "Total number of actions run",
			},
			[]string{"action"},
		),
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_transitions_total",
				Help: "Total number of active node changes",
			},
			[]string{"from", "to"},
		),
		Errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_errors_total",
				Help: "Total number of failed ticks by error kind",
			},
			[]string{"kind"},
		),
	}
	for _, c := range []prometheus.Collector{m.Ticks, m.Actions, m.Transitions, m.Errors} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTick: func(_ context.Context, e *domain.NodeEvent) {
			m.Ticks.WithLabelValues(e.Identifier).Inc()
		},
		OnAction: func(_ context.Context, e *domain.NodeEvent) {
			m.Actions.WithLabelValues(e.Identifier).Inc()
		},
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			m.Transitions.WithLabelValues(e.FromIdentifier, e.ToIdentifier).Inc()
		},
		OnError: func(_ context.Context, e *domain.ErrorEvent) {
			m.Errors.WithLabelValues(ErrorKind(e.Err)).Inc()
		},
	}
}

// ErrorKind classifies err into a low-cardinality label value.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingCapability):
		return "missing_capability"
	case errors.Is(err, domain.ErrNoPermittedAncestor):
		return "no_permitted_ancestor"
	case errors.Is(err, domain.ErrDanglingPointer):
		return "dangling_pointer"
	case errors.Is(err, domain.ErrInvalidStrategy):
		return "invalid_strategy"
	default:
		return "actor"
	}
}
