/*
Package tree compiles a domain.Description into an immutable behavior tree.

Nodes live in an arena addressed by NodeID. Each node records its parent's index
and the ordered indices of its children, so the graph has no ownership cycles and
can be shared read-only once built. The root is always NodeID 0.
*/
package tree
