package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/arbor/pkg/tree"
	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// NewRenderer returns a function that renders markdown using glamour.
// When styled is false the markdown is returned untouched, which keeps piped
// output readable.
func NewRenderer(styled bool) func(string) (string, error) {
	if !styled {
		return func(markdown string) (string, error) { return markdown, nil }
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(), // Automatically detect light/dark background
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return func(markdown string) (string, error) { return markdown, nil }
	}
	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// Outline describes a tree as a nested markdown list.
func Outline(t *tree.Tree) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", t.Root().Identifier)
	t.Walk(func(n *tree.Node, depth int) bool {
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString("- ")
		sb.WriteString(outlineEntry(t, n))
		sb.WriteString("\n")
		return true
	})
	return sb.String()
}

func outlineEntry(t *tree.Tree, n *tree.Node) string {
	var parts []string
	switch {
	case n.IsPointer():
		target := "dangling"
		if id := t.NamesakeAncestor(n.ID, n.Identifier); id != tree.NoNode {
			target = t.Path(id)
		}
		parts = append(parts, fmt.Sprintf("pointer **%s** (%s to `%s`)", n.Identifier, n.Redirection(), target))
	case n.IsLeaf():
		parts = append(parts, fmt.Sprintf("action **%s**", n.Identifier))
	default:
		parts = append(parts, fmt.Sprintf("**%s**", n.Identifier))
	}
	if n.Strategy.IsSelection() {
		parts = append(parts, fmt.Sprintf("_%s_", n.Strategy))
	}
	if n.Test != "" {
		parts = append(parts, fmt.Sprintf("guard `%s`", n.Test))
	}
	if n.Report != nil {
		parts = append(parts, fmt.Sprintf("report `%v`", n.Report))
	}
	return strings.Join(parts, " · ")
}
