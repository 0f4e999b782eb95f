package runtime

import (
	"slices"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/tree"
)

// nextState computes the node control moves to from n, or tree.NoNode.
func (e *Engine) nextState(n *tree.Node) (tree.NodeID, error) {
	switch e.strategyFor(n) {
	case domain.StrategyPrioritized:
		return e.prioritized(n)
	case domain.StrategySequential:
		return e.sequential(n)
	default:
		return tree.NoNode, nil
	}
}

// prioritized returns the first child of n whose guard holds.
func (e *Engine) prioritized(n *tree.Node) (tree.NodeID, error) {
	return e.firstRunnable(n.Children)
}

// sequential continues a sequence from a leaf, or enters one from a node that
// owns children. When nothing is left to run it escalates instead of yielding
// tree.NoNode.
func (e *Engine) sequential(n *tree.Node) (tree.NodeID, error) {
	var candidates []tree.NodeID
	if n.IsLeaf() {
		if parent := e.tree.Node(n.Parent); parent != nil {
			// Identifiers may repeat among siblings, so locate n by id.
			if i := slices.Index(parent.Children, n.ID); i >= 0 {
				candidates = parent.Children[i+1:]
			}
		}
	} else {
		candidates = n.Children
	}

	next, err := e.firstRunnable(candidates)
	if err != nil || next != tree.NoNode {
		return next, err
	}
	return e.NearestPermittedAncestor(n.ID)
}

func (e *Engine) firstRunnable(ids []tree.NodeID) (tree.NodeID, error) {
	for _, id := range ids {
		ok, err := e.Can(id)
		if err != nil {
			return tree.NoNode, err
		}
		if ok {
			return id, nil
		}
	}
	return tree.NoNode, nil
}
