package runtime

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/registry"
	"github.com/aretw0/arbor/pkg/tree"
)

// Engine is the traversal and decision core.
// It is stateless between ticks: the active node is owned by the caller.
type Engine struct {
	tree   *tree.Tree
	caps   registry.Capabilities
	logger *slog.Logger
	hooks  domain.LifecycleHooks
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// NewEngine creates an engine driving t with the actor capabilities caps.
func NewEngine(t *tree.Tree, caps registry.Capabilities, opts ...EngineOption) *Engine {
	e := &Engine{
		tree:   t,
		caps:   caps,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Tree returns the tree the engine drives.
func (e *Engine) Tree() *tree.Tree { return e.tree }

// Tick advances the active node by one step and returns the next active node.
// On error the returned id is tree.NoNode and the caller keeps its previous cursor.
func (e *Engine) Tick(ctx context.Context, active tree.NodeID) (tree.NodeID, error) {
	n := e.tree.Node(active)
	if n == nil {
		return tree.NoNode, fmt.Errorf("%w: node %d", domain.ErrUnknownNode, active)
	}
	next, escalated, err := e.step(ctx, n)
	if err != nil {
		e.emitError(ctx, n, err)
		return tree.NoNode, err
	}
	if next != active {
		e.emitTransition(ctx, n, e.tree.Node(next), escalated)
	}
	return next, nil
}

func (e *Engine) step(ctx context.Context, n *tree.Node) (tree.NodeID, bool, error) {
	e.logger.Debug("tick", "node", n.ID, "identifier", n.Identifier)
	e.emitTick(ctx, n)

	if n.IsLeaf() {
		if err := e.run(ctx, n); err != nil {
			return tree.NoNode, false, err
		}
	}

	next, err := e.nextState(n)
	if err != nil {
		return tree.NoNode, false, err
	}
	if next != tree.NoNode {
		target, err := e.Transition(next)
		return target, false, err
	}

	ok, err := e.Can(n.ID)
	if err != nil {
		return tree.NoNode, false, err
	}
	if ok {
		return n.ID, false, nil
	}

	ancestor, err := e.NearestPermittedAncestor(n.ID)
	if err != nil {
		return tree.NoNode, false, err
	}
	e.logger.Debug("escalate", "from", n.Identifier, "to", e.tree.Node(ancestor).Identifier)
	target, err := e.Transition(ancestor)
	return target, true, err
}

// run invokes the action named by the node's identifier.
func (e *Engine) run(ctx context.Context, n *tree.Node) error {
	action, ok := e.caps.LookupAction(n.Identifier)
	if !ok {
		return &domain.CapabilityError{Name: n.Identifier, Identifier: n.Identifier, Role: "action"}
	}
	e.logger.Debug("action", "identifier", n.Identifier)
	e.emitAction(ctx, n)
	if err := action(); err != nil {
		return fmt.Errorf("action %q: %w", n.Identifier, err)
	}
	return nil
}

// Transition resolves where control lands when id is reached.
// A State is its own target; a Pointer applies its redirection strategy,
// repeatedly if it lands on another Pointer.
func (e *Engine) Transition(id tree.NodeID) (tree.NodeID, error) {
	// Every redirection lands on a strict ancestor, and ancestors have smaller
	// ids than their descendants, so the loop ends.
	for {
		n := e.tree.Node(id)
		if n == nil {
			return tree.NoNode, fmt.Errorf("%w: node %d", domain.ErrUnknownNode, id)
		}
		if !n.IsPointer() {
			return id, nil
		}
		switch n.Redirection() {
		case domain.StrategyHereditary:
			target := e.NearestNamesakeAncestor(id, n.Identifier)
			if target == tree.NoNode {
				return tree.NoNode, &domain.NodeError{
					Kind:       domain.ErrDanglingPointer,
					NodeID:     int(id),
					Identifier: n.Identifier,
				}
			}
			id = target
		default:
			return tree.NoNode, fmt.Errorf("%w: pointer %q uses %s", domain.ErrInvalidStrategy, n.Identifier, n.Redirection())
		}
	}
}
