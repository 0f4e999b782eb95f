package arbor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/internal/runtime"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/registry"
	"github.com/aretw0/arbor/pkg/tree"
)

// Version is the library version reported by the CLI.
const Version = "0.3.0"

// Machine is the high-level entry point for the Arbor library.
// It owns a built tree, an engine and the caller-side cursor (the active node).
// A Machine is not safe for concurrent use.
type Machine struct {
	tree      *tree.Tree
	engine    *runtime.Engine
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
	strict    bool
	initial   string
	buildOpts []tree.BuildOption

	start   tree.NodeID // initial node, already resolved past pointers
	active  tree.NodeID
	started bool
}

// Option defines a functional option for configuring the Machine.
type Option func(*Machine)

// WithLogger sets a custom structured logger for the machine.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithLifecycleHooks registers observability hooks. Repeated calls merge.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = m.hooks.Merge(hooks)
	}
}

// WithStrictValidation rejects trees with statically detectable problems,
// such as pointers without a namesake ancestor, at construction time.
func WithStrictValidation() Option {
	return func(m *Machine) {
		m.strict = true
	}
}

// WithInitialNode makes Start activate the node at path (identifiers joined
// with "/", starting at the root) instead of the root. If that node is a
// pointer, its redirection target is activated instead.
func WithInitialNode(path string) Option {
	return func(m *Machine) {
		m.initial = path
	}
}

// WithLazyCapabilities defers missing-action detection from build time to the
// tick that needs the action.
func WithLazyCapabilities() Option {
	return func(m *Machine) {
		m.buildOpts = append(m.buildOpts, tree.WithoutCapabilityCheck())
	}
}

// New builds the tree described by desc against the actor capabilities caps.
func New(desc domain.Description, caps registry.Capabilities, opts ...Option) (*Machine, error) {
	m := &Machine{active: tree.NoNode}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = logging.NewNop()
	}
	if caps == nil {
		return nil, fmt.Errorf("%w: nil capabilities", domain.ErrInvalidDescription)
	}

	t, err := tree.Build(desc, caps, m.buildOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build tree: %w", err)
	}
	if m.strict {
		if err := tree.Validate(t); err != nil {
			return nil, fmt.Errorf("invalid tree: %w", err)
		}
	}
	initial := tree.Root
	if m.initial != "" {
		id, ok := t.Find(m.initial)
		if !ok {
			return nil, fmt.Errorf("%w: initial node %q", domain.ErrUnknownNode, m.initial)
		}
		initial = id
	}

	m.tree = t
	m.logger = m.logger.With("tree", t.Root().Identifier)
	m.engine = runtime.NewEngine(t, caps,
		runtime.WithLogger(m.logger),
		runtime.WithLifecycleHooks(m.hooks),
	)

	// A pointer is never active: starting on one starts on its target.
	m.start, err = m.engine.Transition(initial)
	if err != nil {
		return nil, fmt.Errorf("invalid initial node %q: %w", t.Path(initial), err)
	}
	return m, nil
}

// Tree returns the built tree.
func (m *Machine) Tree() *tree.Tree { return m.tree }

// Start activates the initial node (the root unless WithInitialNode was given).
// An initial pointer is resolved to the node it redirects to.
// Calling Start again resets the cursor.
func (m *Machine) Start() *tree.Node {
	m.active = m.start
	m.started = true
	return m.tree.Node(m.active)
}

// Active returns the active node, or nil before Start.
func (m *Machine) Active() *tree.Node {
	if !m.started {
		return nil
	}
	return m.tree.Node(m.active)
}

// Tick advances the active node by one step.
// On error the cursor is left unchanged so the caller may retry on a later tick.
func (m *Machine) Tick(ctx context.Context) (*tree.Node, error) {
	if !m.started {
		return nil, domain.ErrNotStarted
	}
	next, err := m.Step(ctx, m.active)
	if err != nil {
		m.logger.Warn("tick failed", "node", m.tree.Path(m.active), "error", err)
		return nil, err
	}
	m.active = next
	return m.tree.Node(next), nil
}

// Step is the stateless drive API: it ticks active and returns the next
// active node without touching the machine's cursor.
func (m *Machine) Step(ctx context.Context, active tree.NodeID) (tree.NodeID, error) {
	return m.engine.Tick(ctx, active)
}

// Can reports whether the node at id currently permits itself to be active.
func (m *Machine) Can(id tree.NodeID) (bool, error) {
	return m.engine.Can(id)
}
