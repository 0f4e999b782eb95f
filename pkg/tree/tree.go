package tree

import (
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
)

// NodeID addresses a node inside its Tree.
type NodeID int

// NoNode is the parent of the root.
const NoNode NodeID = -1

// Root is the NodeID of every tree's root.
const Root NodeID = 0

// Node is one compiled unit of the tree.
type Node struct {
	ID         NodeID
	Identifier string
	Test       string // guard name override, empty for the default convention
	Strategy   domain.Strategy // as declared; see Redirection for pointers
	Kind       domain.Kind
	Parent     NodeID
	Children   []NodeID
	Report     any
}

// IsPointer reports whether n redirects control elsewhere.
func (n *Node) IsPointer() bool { return n.Kind == domain.KindPointer }

// IsTransition reports whether n hands control on rather than running an action.
func (n *Node) IsTransition() bool { return len(n.Children) > 0 || n.IsPointer() }

// IsLeaf reports whether n is an action node.
func (n *Node) IsLeaf() bool { return !n.IsTransition() }

// Redirection returns the policy a pointer applies when reached, defaulting
// to hereditary when none was declared. It is StrategyNone for states.
func (n *Node) Redirection() domain.Strategy {
	if !n.IsPointer() {
		return domain.StrategyNone
	}
	if n.Strategy == domain.StrategyNone {
		return domain.StrategyHereditary
	}
	return n.Strategy
}

// Tree is an arena of nodes built once and never mutated.
type Tree struct {
	nodes []Node
}

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Root returns the root node.
func (t *Tree) Root() *Node { return &t.nodes[Root] }

// Node returns the node with the given id, or nil if it is out of range.
func (t *Tree) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil
	}
	return &t.nodes[id]
}

// Parent returns the parent of id, or nil for the root.
func (t *Tree) Parent(id NodeID) *Node {
	n := t.Node(id)
	if n == nil {
		return nil
	}
	return t.Node(n.Parent)
}

// Children returns the children of id in order.
func (t *Tree) Children(id NodeID) []*Node {
	n := t.Node(id)
	if n == nil {
		return nil
	}
	out := make([]*Node, len(n.Children))
	for i, c := range n.Children {
		out[i] = &t.nodes[c]
	}
	return out
}

// Depth returns the number of edges between id and the root.
func (t *Tree) Depth(id NodeID) int {
	d := 0
	for n := t.Node(id); n != nil && n.Parent != NoNode; n = t.Node(n.Parent) {
		d++
	}
	return d
}

// Path returns the identifiers from the root down to id, joined with "/".
func (t *Tree) Path(id NodeID) string {
	var parts []string
	for n := t.Node(id); n != nil; n = t.Node(n.Parent) {
		parts = append(parts, n.Identifier)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

// Find returns the first node, in pre-order, whose Path equals path.
func (t *Tree) Find(path string) (NodeID, bool) {
	found := NoNode
	t.Walk(func(n *Node, _ int) bool {
		if t.Path(n.ID) == path {
			found = n.ID
			return false
		}
		return true
	})
	return found, found != NoNode
}

// Walk visits every node in pre-order (parent first, children in order).
// Returning false from fn stops the walk.
func (t *Tree) Walk(fn func(n *Node, depth int) bool) {
	if len(t.nodes) == 0 {
		return
	}
	t.walk(Root, 0, fn)
}

func (t *Tree) walk(id NodeID, depth int, fn func(*Node, int) bool) bool {
	n := &t.nodes[id]
	if !fn(n, depth) {
		return false
	}
	for _, c := range n.Children {
		if !t.walk(c, depth+1, fn) {
			return false
		}
	}
	return true
}

// Describe converts the tree back into its description form.
func (t *Tree) Describe() domain.Description {
	return t.describe(Root)
}

func (t *Tree) describe(id NodeID) domain.Description {
	n := &t.nodes[id]
	d := domain.Description{
		Pointer:    n.IsPointer(),
		Identifier: n.Identifier,
		Test:       n.Test,
		Strategy:   n.Strategy,
		Report:     n.Report,
	}
	for _, c := range n.Children {
		d.Children = append(d.Children, t.describe(c))
	}
	return d
}
