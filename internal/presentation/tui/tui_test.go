package tui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/dsl"
	"github.com/aretw0/arbor/pkg/tree"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree(t *testing.T) *tree.Tree {
	t.Helper()
	tr, err := tree.Build(dsl.State("guard").Prioritized().Children(
		dsl.State("flee").Test("isScared").Report("run!"),
		dsl.State("patrol").Sequential().Children(
			dsl.State("walk"),
			dsl.Pointer("patrol"),
			dsl.Pointer("ghost"),
		),
	).Build(), nil, tree.WithoutCapabilityCheck())
	require.NoError(t, err)
	return tr
}

func TestOutline(t *testing.T) {
	got := Outline(sampleTree(t))
	lines := strings.Split(strings.TrimSpace(got), "\n")

	assert.Equal(t, "# guard", lines[0])
	assert.Equal(t, "- **guard** · _prioritized_", lines[2])
	assert.Equal(t, "  - action **flee** · guard `isScared` · report `run!`", lines[3])
	assert.Equal(t, "  - **patrol** · _sequential_", lines[4])
	assert.Equal(t, "    - action **walk**", lines[5])
	assert.Equal(t, "    - pointer **patrol** (hereditary to `guard/patrol`)", lines[6])
	assert.Equal(t, "    - pointer **ghost** (hereditary to `dangling`)", lines[7])
}

func TestOutline_UndeclaredPointer(t *testing.T) {
	tr, err := tree.Build(domain.Description{
		Identifier: "loop",
		Children:   []domain.Description{{Identifier: "loop", Pointer: true}},
	}, nil, tree.WithoutCapabilityCheck())
	require.NoError(t, err)

	assert.Contains(t, Outline(tr), "  - pointer **loop** (hereditary to `loop`)")
}

func TestNewRenderer_Plain(t *testing.T) {
	out, err := NewRenderer(false)("# title")
	require.NoError(t, err)
	assert.Equal(t, "# title", out)
}

func TestTracer(t *testing.T) {
	tr := sampleTree(t)
	var buf bytes.Buffer
	tracer := NewTracer(&buf, tr, termenv.WithProfile(termenv.Ascii))

	walk, ok := tr.Find("guard/patrol/walk")
	require.True(t, ok)
	tracer.Tick(1, tr.Node(walk), map[string]any{"b": 2, "a": 1})
	tracer.Tick(2, tr.Root(), nil)
	tracer.Error(3, errors.New("no permitted ancestor"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "   1  action guard/patrol/walk  a=1 b=2", lines[0])
	assert.Equal(t, "   2  state  guard", lines[1])
	assert.Equal(t, "   3  error  no permitted ancestor", lines[2])
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, termenv.WithProfile(termenv.Ascii))
	assert.Contains(t, buf.String(), `/_/   \_\_|  |_.__/ \___/|_|`)
}
