package runtime

import (
	"context"
	"time"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/tree"
)

func (e *Engine) emitTick(ctx context.Context, n *tree.Node) {
	if e.hooks.OnTick == nil {
		return
	}
	e.hooks.OnTick(ctx, nodeEvent(domain.EventTick, n))
}

func (e *Engine) emitAction(ctx context.Context, n *tree.Node) {
	if e.hooks.OnAction == nil {
		return
	}
	e.hooks.OnAction(ctx, nodeEvent(domain.EventAction, n))
}

func (e *Engine) emitTransition(ctx context.Context, from, to *tree.Node, escalated bool) {
	e.logger.Debug("transition", "from", from.Identifier, "to", to.Identifier, "escalated", escalated)
	if e.hooks.OnTransition == nil {
		return
	}
	e.hooks.OnTransition(ctx, &domain.TransitionEvent{
		EventBase:      domain.EventBase{Timestamp: time.Now(), Type: domain.EventTransition},
		FromID:         int(from.ID),
		FromIdentifier: from.Identifier,
		ToID:           int(to.ID),
		ToIdentifier:   to.Identifier,
		Escalated:      escalated,
		Report:         to.Report,
	})
}

func (e *Engine) emitError(ctx context.Context, n *tree.Node, err error) {
	e.logger.Debug("tick failed", "identifier", n.Identifier, "err", err)
	if e.hooks.OnError == nil {
		return
	}
	e.hooks.OnError(ctx, &domain.ErrorEvent{
		EventBase:  domain.EventBase{Timestamp: time.Now(), Type: domain.EventError},
		NodeID:     int(n.ID),
		Identifier: n.Identifier,
		Err:        err,
	})
}

func nodeEvent(t domain.EventType, n *tree.Node) *domain.NodeEvent {
	return &domain.NodeEvent{
		EventBase:  domain.EventBase{Timestamp: time.Now(), Type: t},
		NodeID:     int(n.ID),
		Identifier: n.Identifier,
		Kind:       n.Kind,
		Report:     n.Report,
	}
}
