package tree

import (
	"github.com/aretw0/arbor/pkg/domain"
)

// Validate performs static checks that Build leaves to tick time:
// every hereditary pointer must have a namesake ancestor.
func Validate(t *Tree) error {
	var errs []error
	t.Walk(func(n *Node, _ int) bool {
		if !n.IsPointer() || n.Redirection() != domain.StrategyHereditary {
			return true
		}
		if t.NamesakeAncestor(n.ID, n.Identifier) == NoNode {
			errs = append(errs, &domain.NodeError{
				Kind:       domain.ErrDanglingPointer,
				NodeID:     int(n.ID),
				Identifier: n.Identifier,
			})
		}
		return true
	})
	if len(errs) > 0 {
		return &domain.AggregateError{Errors: errs}
	}
	return nil
}

// NamesakeAncestor walks parent links upward from id and returns the first
// ancestor whose identifier equals identifier, or NoNode.
func (t *Tree) NamesakeAncestor(id NodeID, identifier string) NodeID {
	for p := t.Parent(id); p != nil; p = t.Parent(p.ID) {
		if p.Identifier == identifier {
			return p.ID
		}
	}
	return NoNode
}
