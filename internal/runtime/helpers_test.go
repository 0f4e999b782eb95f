package runtime_test

import (
	"errors"
	"testing"

	"github.com/aretw0/arbor/internal/runtime"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/registry"
	"github.com/aretw0/arbor/pkg/tree"
	"github.com/stretchr/testify/require"
)

// testActor records actions and serves guards from a mutable map.
type testActor struct {
	*registry.Registry
	guards map[string]bool
	ran    []string
}

func newActor(actions ...string) *testActor {
	a := &testActor{Registry: registry.NewRegistry(), guards: map[string]bool{}}
	for _, name := range actions {
		name := name
		a.Do(name, func() { a.ran = append(a.ran, name) })
	}
	return a
}

// set installs (or updates) a guard backed by the actor's map.
func (a *testActor) set(guard string, allowed bool) *testActor {
	if _, ok := a.guards[guard]; !ok {
		a.When(guard, func() bool { return a.guards[guard] })
	}
	a.guards[guard] = allowed
	return a
}

func (a *testActor) failGuard(guard string, err error) *testActor {
	a.Guard(guard, func() (bool, error) { return false, err })
	return a
}

func (a *testActor) failAction(name string, err error) *testActor {
	a.Action(name, func() error { return err })
	return a
}

func newEngine(t *testing.T, desc domain.Description, actor *testActor, opts ...runtime.EngineOption) *runtime.Engine {
	t.Helper()
	tr, err := tree.Build(desc, actor)
	require.NoError(t, err)
	return runtime.NewEngine(tr, actor, opts...)
}

// find returns the id of the first node (pre-order) at the given identifier path.
func find(t *testing.T, e *runtime.Engine, path string) tree.NodeID {
	t.Helper()
	id, ok := e.Tree().Find(path)
	require.True(t, ok, "no node at %s", path)
	return id
}

var errBoom = errors.New("boom")
