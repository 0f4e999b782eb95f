package tree

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/registry"
)

// BuildOption configures Build.
type BuildOption func(*buildConfig)

type buildConfig struct {
	skipCapabilities bool
}

// WithoutCapabilityCheck defers missing-action detection to tick time.
func WithoutCapabilityCheck() BuildOption {
	return func(c *buildConfig) {
		c.skipCapabilities = true
	}
}

// Build compiles desc into a Tree.
// Every leaf State must name an action known to caps; all problems found are
// returned together as a *domain.AggregateError. caps may be nil only when
// WithoutCapabilityCheck is given.
func Build(desc domain.Description, caps registry.Capabilities, opts ...BuildOption) (*Tree, error) {
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if caps == nil && !cfg.skipCapabilities {
		return nil, fmt.Errorf("%w: nil capabilities", domain.ErrInvalidDescription)
	}

	b := &builder{
		caps: caps,
		cfg:  cfg,
		tree: &Tree{nodes: make([]Node, 0, desc.Count())},
	}
	b.read(desc, NoNode)

	if len(b.errs) > 0 {
		return nil, &domain.AggregateError{Errors: b.errs}
	}
	return b.tree, nil
}

type builder struct {
	caps registry.Capabilities
	cfg  buildConfig
	tree *Tree
	errs []error
}

// read appends the node for d, then its children in input order.
func (b *builder) read(d domain.Description, parent NodeID) NodeID {
	id := NodeID(len(b.tree.nodes))
	b.tree.nodes = append(b.tree.nodes, Node{
		ID:         id,
		Identifier: d.Identifier,
		Test:       d.Test,
		Strategy:   d.Strategy,
		Kind:       d.Kind(),
		Parent:     parent,
		Report:     d.Report,
	})
	b.check(id, d)

	if len(d.Children) > 0 {
		children := make([]NodeID, 0, len(d.Children))
		for _, c := range d.Children {
			children = append(children, b.read(c, id))
		}
		b.tree.nodes[id].Children = children
	}
	return id
}

func (b *builder) check(id NodeID, d domain.Description) {
	if d.Identifier == "" {
		b.errs = append(b.errs, fmt.Errorf("%w: node %d has no identifier", domain.ErrInvalidDescription, id))
	}
	switch {
	case d.Pointer && d.Strategy.IsSelection():
		b.errs = append(b.errs, fmt.Errorf("%w: pointer %q cannot use %s", domain.ErrInvalidStrategy, d.Identifier, d.Strategy))
	case !d.Pointer && d.Strategy.IsRedirection():
		b.errs = append(b.errs, fmt.Errorf("%w: state %q cannot use %s", domain.ErrInvalidStrategy, d.Identifier, d.Strategy))
	}

	if b.cfg.skipCapabilities || d.Pointer || len(d.Children) > 0 || d.Identifier == "" {
		return
	}
	if _, ok := b.caps.LookupAction(d.Identifier); !ok {
		b.errs = append(b.errs, &domain.CapabilityError{
			Name:       d.Identifier,
			Identifier: d.Identifier,
			Role:       "action",
		})
	}
}
