package tui

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aretw0/arbor/pkg/tree"
	"github.com/muesli/termenv"
)

// Tracer formats one line per tick, colored when the output supports it.
type Tracer struct {
	out  *termenv.Output
	tree *tree.Tree
}

// NewTracer creates a tracer writing to w. Extra termenv options (such as a
// forced profile) are passed through.
func NewTracer(w io.Writer, t *tree.Tree, opts ...termenv.OutputOption) *Tracer {
	return &Tracer{out: termenv.NewOutput(w, opts...), tree: t}
}

// Tick writes the trace line for a completed tick.
func (tr *Tracer) Tick(tick int, active *tree.Node, vars map[string]any) {
	num := tr.out.String(fmt.Sprintf("%4d", tick)).Faint()
	kind := "state"
	color := "#818cf8"
	if active.IsLeaf() {
		kind = "action"
		color = "#f472b6"
	}
	path := tr.out.String(tr.tree.Path(active.ID)).Foreground(tr.out.Color(color)).Bold()

	line := fmt.Sprintf("%s  %-6s %s", num, kind, path)
	if len(vars) > 0 {
		line += "  " + tr.out.String(formatVars(vars)).Faint().String()
	}
	fmt.Fprintln(tr.out, line)
}

// Error writes a failed tick.
func (tr *Tracer) Error(tick int, err error) {
	msg := tr.out.String(fmt.Sprintf("%4d  error  %v", tick, err)).Foreground(tr.out.Color("#fb7185"))
	fmt.Fprintln(tr.out, msg)
}

func formatVars(vars map[string]any) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, vars[k])
	}
	return strings.Join(parts, " ")
}
