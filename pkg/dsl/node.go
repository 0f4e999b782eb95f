package dsl

import "github.com/aretw0/arbor/pkg/domain"

// NodeBuilder provides a fluent API for configuring a description node.
type NodeBuilder struct {
	node     domain.Description
	children []*NodeBuilder
}

// State starts a state node named identifier.
func State(identifier string) *NodeBuilder {
	return &NodeBuilder{node: domain.Description{Identifier: identifier}}
}

// Pointer starts a pointer node that redirects to a namesake ancestor.
func Pointer(identifier string) *NodeBuilder {
	return &NodeBuilder{node: domain.Description{
		Pointer:    true,
		Identifier: identifier,
		Strategy:   domain.StrategyHereditary,
	}}
}

// Strategy sets the node's strategy explicitly.
func (n *NodeBuilder) Strategy(s domain.Strategy) *NodeBuilder {
	n.node.Strategy = s
	return n
}

// Prioritized makes the node pick its first runnable child.
func (n *NodeBuilder) Prioritized() *NodeBuilder {
	return n.Strategy(domain.StrategyPrioritized)
}

// Sequential makes the node run its children in order.
func (n *NodeBuilder) Sequential() *NodeBuilder {
	return n.Strategy(domain.StrategySequential)
}

// Hereditary makes a pointer redirect to its nearest namesake ancestor.
func (n *NodeBuilder) Hereditary() *NodeBuilder {
	return n.Strategy(domain.StrategyHereditary)
}

// Test overrides the guard name.
func (n *NodeBuilder) Test(guard string) *NodeBuilder {
	n.node.Test = guard
	return n
}

// Report attaches opaque metadata to the node.
func (n *NodeBuilder) Report(v any) *NodeBuilder {
	n.node.Report = v
	return n
}

// Children appends children in order.
func (n *NodeBuilder) Children(children ...*NodeBuilder) *NodeBuilder {
	n.children = append(n.children, children...)
	return n
}

// Build returns the description rooted at n.
func (n *NodeBuilder) Build() domain.Description {
	d := n.node
	d.Children = nil
	for _, c := range n.children {
		d.Children = append(d.Children, c.Build())
	}
	return d
}
