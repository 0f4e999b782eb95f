package runtime_test

import (
	"context"
	"testing"

	"github.com/aretw0/arbor/internal/runtime"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_LifecycleHooks(t *testing.T) {
	var (
		ticks       []string
		actions     []string
		transitions []*domain.TransitionEvent
		failures    []*domain.ErrorEvent
	)
	hooks := domain.LifecycleHooks{
		OnTick:   func(_ context.Context, e *domain.NodeEvent) { ticks = append(ticks, e.Identifier) },
		OnAction: func(_ context.Context, e *domain.NodeEvent) { actions = append(actions, e.Identifier) },
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			transitions = append(transitions, e)
		},
		OnError: func(_ context.Context, e *domain.ErrorEvent) { failures = append(failures, e) },
	}

	actor := newActor("sleep").set("canSleep", true)
	e := newEngine(t, dsl.State("root").Prioritized().Children(
		dsl.State("sleep").Report(map[string]any{"icon": "zzz"}),
	).Build(), actor, runtime.WithLifecycleHooks(hooks))
	ctx := context.Background()

	sleep, err := e.Tick(ctx, 0)
	require.NoError(t, err)
	_, err = e.Tick(ctx, sleep)
	require.NoError(t, err)

	actor.set("canSleep", false)
	_, err = e.Tick(ctx, sleep)
	require.NoError(t, err)

	assert.Equal(t, []string{"root", "sleep", "sleep"}, ticks)
	assert.Equal(t, []string{"sleep", "sleep"}, actions)
	require.Len(t, transitions, 2, "staying active is not a transition")
	assert.Equal(t, "sleep", transitions[0].ToIdentifier)
	assert.Equal(t, map[string]any{"icon": "zzz"}, transitions[0].Report, "report forwarded verbatim")
	assert.False(t, transitions[0].Escalated)
	assert.Equal(t, "root", transitions[1].ToIdentifier)
	assert.True(t, transitions[1].Escalated)

	actor.set("canRoot", false)
	_, err = e.Tick(ctx, 0)
	require.Error(t, err)
	require.Len(t, failures, 1)
	assert.ErrorIs(t, failures[0].Err, domain.ErrNoPermittedAncestor)
	assert.Equal(t, "root", failures[0].Identifier)
}
