package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/arbor/internal/runtime"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/dsl"
	"github.com/aretw0/arbor/pkg/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuardName(t *testing.T) {
	tests := []struct {
		node tree.Node
		want string
	}{
		{tree.Node{Identifier: "patrol"}, "canPatrol"},
		{tree.Node{Identifier: "Patrol"}, "canPatrol"},
		{tree.Node{Identifier: "élan"}, "canÉlan"},
		{tree.Node{Identifier: ""}, "can"},
		{tree.Node{Identifier: "flee", Test: "isScared"}, "isScared"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, runtime.GuardName(&tt.node))
	}
}

func TestCan_DefaultsToPermitted(t *testing.T) {
	e := newEngine(t, dsl.State("root").Children(dsl.State("wander")).Build(), newActor("wander"))
	ok, err := e.Can(find(t, e, "root/wander"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCan_OverrideWins(t *testing.T) {
	actor := newActor("flee").set("canFlee", true).set("isScared", false)
	e := newEngine(t, dsl.State("root").Children(dsl.State("flee").Test("isScared")).Build(), actor)

	ok, err := e.Can(find(t, e, "root/flee"))
	require.NoError(t, err)
	assert.False(t, ok, "override guard decides, not the convention")

	actor.set("isScared", true).set("canFlee", false)
	ok, err = e.Can(find(t, e, "root/flee"))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCan_GuardErrorSurfaces(t *testing.T) {
	actor := newActor("flee").failGuard("canFlee", errBoom)
	e := newEngine(t, dsl.State("root").Children(dsl.State("flee")).Build(), actor)

	_, err := e.Can(find(t, e, "root/flee"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "canFlee")

	_, err = e.Can(tree.NodeID(99))
	assert.ErrorIs(t, err, domain.ErrUnknownNode)
}

func TestTick_PrioritizedIsDeterministic(t *testing.T) {
	actor := newActor("a", "b", "c").set("canA", false).set("canB", true).set("canC", true)
	e := newEngine(t, dsl.State("root").Prioritized().Children(
		dsl.State("a"), dsl.State("b"), dsl.State("c"),
	).Build(), actor)
	want := find(t, e, "root/b")

	for i := 0; i < 5; i++ {
		next, err := e.Tick(context.Background(), tree.Root)
		require.NoError(t, err)
		assert.Equal(t, want, next)
	}
	assert.Empty(t, actor.ran, "a transition node runs no action")
}

func TestTick_PrioritizedNoneRunnable(t *testing.T) {
	actor := newActor("a").set("canA", false)
	e := newEngine(t, dsl.State("root").Prioritized().Children(dsl.State("a")).Build(), actor)

	next, err := e.Tick(context.Background(), tree.Root)
	require.NoError(t, err)
	assert.Equal(t, tree.Root, next, "permitted root with no runnable child stays active")

	actor.set("canRoot", false)
	_, err = e.Tick(context.Background(), tree.Root)
	assert.ErrorIs(t, err, domain.ErrNoPermittedAncestor, "root cannot escalate")
}

func TestTick_LeafStaysWhilePermitted(t *testing.T) {
	actor := newActor("eat").set("canEat", true)
	e := newEngine(t, dsl.State("root").Prioritized().Children(dsl.State("eat")).Build(), actor)
	eat := find(t, e, "root/eat")

	active := eat
	for i := 0; i < 3; i++ {
		var err error
		active, err = e.Tick(context.Background(), active)
		require.NoError(t, err)
		assert.Equal(t, eat, active)
	}
	assert.Equal(t, []string{"eat", "eat", "eat"}, actor.ran)

	actor.set("canEat", false)
	active, err := e.Tick(context.Background(), active)
	require.NoError(t, err)
	assert.Equal(t, tree.Root, active, "escalates to the nearest permitted ancestor")
	assert.Len(t, actor.ran, 4, "the action still runs on the tick that escalates")
}

func TestTick_SequentialTraversal(t *testing.T) {
	actor := newActor("a", "b", "c")
	e := newEngine(t, dsl.State("root").Prioritized().Children(
		dsl.State("seq").Sequential().Children(
			dsl.State("a"), dsl.State("b"), dsl.State("c"),
		),
	).Build(), actor)

	ctx := context.Background()
	active := find(t, e, "root/seq/a")
	var visited []string
	for i := 0; i < 4; i++ {
		visited = append(visited, e.Tree().Node(active).Identifier)
		var err error
		active, err = e.Tick(ctx, active)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"a", "b", "c", "seq"}, visited)
	assert.Equal(t, find(t, e, "root/seq/a"), active, "re-entering the sequence starts from its first child")
	assert.Equal(t, []string{"a", "b", "c"}, actor.ran)
}

func TestTick_SequentialSkipsBlockedSibling(t *testing.T) {
	actor := newActor("a", "b", "c").set("canB", false)
	e := newEngine(t, dsl.State("seq").Sequential().Children(
		dsl.State("a"), dsl.State("b"), dsl.State("c"),
	).Build(), actor)

	next, err := e.Tick(context.Background(), find(t, e, "seq/a"))
	require.NoError(t, err)
	assert.Equal(t, find(t, e, "seq/c"), next)
}

func TestTick_SequentialRepeatedIdentifiers(t *testing.T) {
	actor := newActor("step", "rest")
	e := newEngine(t, dsl.State("walk").Sequential().Children(
		dsl.State("step"), dsl.State("rest"), dsl.State("step"),
	).Build(), actor)
	children := e.Tree().Root().Children

	next, err := e.Tick(context.Background(), children[1])
	require.NoError(t, err)
	assert.Equal(t, children[2], next)

	next, err = e.Tick(context.Background(), children[2])
	require.NoError(t, err)
	assert.Equal(t, tree.Root, next, "the second step is the last in the sequence")
}

func TestTick_SequentialEntryEscalatesWhenEmpty(t *testing.T) {
	actor := newActor("a").set("canA", false)
	e := newEngine(t, dsl.State("root").Prioritized().Children(
		dsl.State("seq").Sequential().Children(dsl.State("a")),
	).Build(), actor)

	next, err := e.Tick(context.Background(), find(t, e, "root/seq"))
	require.NoError(t, err)
	assert.Equal(t, tree.Root, next)
}

func TestTick_InheritsStrategyFromGrandparent(t *testing.T) {
	actor := newActor("a", "b")
	e := newEngine(t, dsl.State("root").Sequential().Children(
		dsl.State("group").Children(dsl.State("a"), dsl.State("b")),
	).Build(), actor)

	next, err := e.Tick(context.Background(), find(t, e, "root/group/a"))
	require.NoError(t, err)
	assert.Equal(t, find(t, e, "root/group/b"), next)
}

func TestTick_NoStrategyStays(t *testing.T) {
	actor := newActor("only")
	e := newEngine(t, dsl.State("only").Build(), actor)

	next, err := e.Tick(context.Background(), tree.Root)
	require.NoError(t, err)
	assert.Equal(t, tree.Root, next)
	assert.Equal(t, []string{"only"}, actor.ran)
}

func TestTick_EscalationTerminal(t *testing.T) {
	actor := newActor("a").set("canRoot", false).set("canMid", false).set("canA", false)
	e := newEngine(t, dsl.State("root").Prioritized().Children(
		dsl.State("mid").Children(dsl.State("a")),
	).Build(), actor)

	next, err := e.Tick(context.Background(), find(t, e, "root/mid/a"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoPermittedAncestor)
	assert.Equal(t, tree.NoNode, next)

	var nodeErr *domain.NodeError
	require.ErrorAs(t, err, &nodeErr)
	assert.Equal(t, "a", nodeErr.Identifier)
}

func TestTick_EscalationSkipsBlockedAncestors(t *testing.T) {
	actor := newActor("a").set("canMid", false).set("canA", false)
	e := newEngine(t, dsl.State("root").Prioritized().Children(
		dsl.State("mid").Children(dsl.State("a")),
	).Build(), actor)

	next, err := e.Tick(context.Background(), find(t, e, "root/mid/a"))
	require.NoError(t, err)
	assert.Equal(t, tree.Root, next)
}

func TestTick_UnknownNode(t *testing.T) {
	e := newEngine(t, dsl.State("root").Build(), newActor("root"))
	_, err := e.Tick(context.Background(), tree.NodeID(42))
	assert.ErrorIs(t, err, domain.ErrUnknownNode)
}

func TestTick_MissingCapabilityAtTick(t *testing.T) {
	tr, err := tree.Build(dsl.State("root").Children(dsl.State("jump")).Build(), nil, tree.WithoutCapabilityCheck())
	require.NoError(t, err)
	actor := newActor()
	e := runtime.NewEngine(tr, actor)

	_, err = e.Tick(context.Background(), tr.Root().Children[0])
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingCapability)
	var capErr *domain.CapabilityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "jump", capErr.Name)
}

func TestTick_ActorErrorsPropagate(t *testing.T) {
	desc := dsl.State("root").Prioritized().Children(dsl.State("dig")).Build()

	t.Run("action", func(t *testing.T) {
		actor := newActor("dig").failAction("dig", errBoom)
		e := newEngine(t, desc, actor)
		_, err := e.Tick(context.Background(), find(t, e, "root/dig"))
		assert.ErrorIs(t, err, errBoom)
	})

	t.Run("guard", func(t *testing.T) {
		actor := newActor("dig").failGuard("canDig", errBoom)
		e := newEngine(t, desc, actor)
		_, err := e.Tick(context.Background(), tree.Root)
		assert.ErrorIs(t, err, errBoom)
	})
}
