package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/arbor/internal/compiler"
	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/aretw0/arbor/pkg/actor/script"
	"github.com/aretw0/arbor/pkg/tree"
)

// LoadTree parses and builds a tree file. When actorPath is set, actions are
// checked against that script; otherwise the capability check is skipped.
func LoadTree(treePath, actorPath string) (*tree.Tree, error) {
	desc, err := compiler.ParseFile(treePath)
	if err != nil {
		return nil, err
	}
	if actorPath == "" {
		return tree.Build(desc, nil, tree.WithoutCapabilityCheck())
	}
	actor, err := script.Load(actorPath)
	if err != nil {
		return nil, err
	}
	return tree.Build(desc, actor)
}

// Validate loads a tree and runs the static checks.
func Validate(treePath, actorPath string) error {
	t, err := LoadTree(treePath, actorPath)
	if err != nil {
		return err
	}
	return tree.Validate(t)
}

// WriteGraph prints the Mermaid diagram of a tree.
func WriteGraph(w io.Writer, treePath string) error {
	t, err := LoadTree(treePath, "")
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, graph.GenerateMermaid(t, nil))
	return err
}

// WriteOutline prints a markdown outline of a tree, styled when requested.
func WriteOutline(w io.Writer, treePath string, styled bool) error {
	t, err := LoadTree(treePath, "")
	if err != nil {
		return err
	}
	out, err := tui.NewRenderer(styled)(tui.Outline(t))
	if err != nil {
		return fmt.Errorf("failed to render outline: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
