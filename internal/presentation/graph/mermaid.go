package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/tree"
)

// GraphOverlay contains dynamic state data to visualize on the graph.
type GraphOverlay struct {
	VisitedNodes []tree.NodeID
	CurrentNode  tree.NodeID
}

// GenerateMermaid produces a Mermaid flowchart of a built tree.
// It applies semantic styling:
// - Root: ((Circle))
// - Action (leaf state): [[Subroutine]]
// - Pointer: [/Parallelogram/]
// - Default (state with children): [Rectangle]
// Child edges carry the parent's strategy and the child's position; pointer
// redirections are drawn dotted to their namesake target.
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(t *tree.Tree, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	t.Walk(func(n *tree.Node, _ int) bool {
		opener, closer := "[", "]"
		switch {
		case n.ID == tree.Root:
			opener, closer = "((", "))" // Circle
		case n.IsPointer():
			opener, closer = "[/", "/]" // Parallelogram
		case n.IsLeaf():
			opener, closer = "[[", "]]" // Subroutine
		}

		label := escapeLabel(n.Identifier)
		if n.Test != "" {
			label = fmt.Sprintf("%s <br/> ? %s", label, escapeLabel(n.Test))
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", mermaidID(n.ID), opener, label, closer))
		return true
	})

	t.Walk(func(n *tree.Node, _ int) bool {
		strategy := n.Strategy
		for i, c := range n.Children {
			arrow := "-->"
			if strategy.IsSelection() {
				arrow = fmt.Sprintf("-- \"%s %d\" -->", strategy, i+1)
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", mermaidID(n.ID), arrow, mermaidID(c)))
		}

		if n.Redirection() == domain.StrategyHereditary {
			if target := t.NamesakeAncestor(n.ID, n.Identifier); target != tree.NoNode {
				sb.WriteString(fmt.Sprintf("    %s -. \"%s\" .-> %s\n", mermaidID(n.ID), n.Redirection(), mermaidID(target)))
			} else {
				sb.WriteString(fmt.Sprintf("    %s -. \"dangling\" .-> %s_missing((\"?\"))\n", mermaidID(n.ID), mermaidID(n.ID)))
			}
		}
		return true
	})

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		visitedSet := make(map[tree.NodeID]bool)
		for _, id := range overlay.VisitedNodes {
			if !visitedSet[id] && t.Node(id) != nil {
				visitedSet[id] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", mermaidID(id)))
			}
		}

		if t.Node(overlay.CurrentNode) != nil {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", mermaidID(overlay.CurrentNode)))
		}
	}

	return sb.String()
}

// mermaidID is positional because identifiers may repeat across the tree.
func mermaidID(id tree.NodeID) string {
	return fmt.Sprintf("n%d", id)
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
