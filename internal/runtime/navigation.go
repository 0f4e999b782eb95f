package runtime

import (
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/tree"
)

// NearestPermittedAncestor walks parent links upward from id and returns the
// first ancestor whose guard holds. Reaching the root without one is
// domain.ErrNoPermittedAncestor.
func (e *Engine) NearestPermittedAncestor(id tree.NodeID) (tree.NodeID, error) {
	for p := e.tree.Parent(id); p != nil; p = e.tree.Parent(p.ID) {
		ok, err := e.Can(p.ID)
		if err != nil {
			return tree.NoNode, err
		}
		if ok {
			return p.ID, nil
		}
	}
	n := e.tree.Node(id)
	return tree.NoNode, &domain.NodeError{
		Kind:       domain.ErrNoPermittedAncestor,
		NodeID:     int(id),
		Identifier: n.Identifier,
	}
}

// NearestNamesakeAncestor returns the first ancestor of id named identifier,
// or tree.NoNode.
func (e *Engine) NearestNamesakeAncestor(id tree.NodeID, identifier string) tree.NodeID {
	return e.tree.NamesakeAncestor(id, identifier)
}

// strategyFor returns the selection strategy governing n: its own, or the
// nearest ancestor's. Redirection strategies are never inherited.
func (e *Engine) strategyFor(n *tree.Node) domain.Strategy {
	for cur := n; cur != nil; cur = e.tree.Node(cur.Parent) {
		if cur.Strategy.IsSelection() {
			return cur.Strategy
		}
	}
	return domain.StrategyNone
}
