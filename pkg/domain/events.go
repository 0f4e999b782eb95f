package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventTick       EventType = "tick"
	EventAction     EventType = "action"
	EventTransition EventType = "transition"
	EventError      EventType = "error"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// NodeEvent describes a tick on, or an action run by, a node.
type NodeEvent struct {
	EventBase
	NodeID     int    `json:"node_id"`
	Identifier string `json:"identifier"`
	Kind       Kind   `json:"kind"`
	Report     any    `json:"report,omitempty"`
}

// TransitionEvent describes a change of active node.
type TransitionEvent struct {
	EventBase
	FromID         int    `json:"from_id"`
	FromIdentifier string `json:"from_identifier"`
	ToID           int    `json:"to_id"`
	ToIdentifier   string `json:"to_identifier"`
	Escalated      bool   `json:"escalated,omitempty"`
	Report         any    `json:"report,omitempty"`
}

// ErrorEvent describes a failed tick.
type ErrorEvent struct {
	EventBase
	NodeID     int    `json:"node_id"`
	Identifier string `json:"identifier"`
	Err        error  `json:"-"`
}

// LifecycleHooks defines callbacks for engine observability.
// Any of them may be nil.
type LifecycleHooks struct {
	OnTick       func(context.Context, *NodeEvent)
	OnAction     func(context.Context, *NodeEvent)
	OnTransition func(context.Context, *TransitionEvent)
	OnError      func(context.Context, *ErrorEvent)
}

// Merge returns hooks that call h first, then other.
func (h LifecycleHooks) Merge(other LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnTick:       chain(h.OnTick, other.OnTick),
		OnAction:     chain(h.OnAction, other.OnAction),
		OnTransition: chain(h.OnTransition, other.OnTransition),
		OnError:      chain(h.OnError, other.OnError),
	}
}

func chain[E any](a, b func(context.Context, E)) func(context.Context, E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(ctx context.Context, e E) {
		a(ctx, e)
		b(ctx, e)
	}
}
