package registry

import (
	"errors"
	"testing"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guardDog struct {
	barks   int
	hungry  bool
	failure error
}

func (d *guardDog) Bark() { d.barks++ }
func (d *guardDog) Eat() error { return d.failure }
func (d *guardDog) CanBark() bool { return !d.hungry }
func (d *guardDog) CanEat() (bool, error) { return d.hungry, d.failure }
func (d *guardDog) Name(prefix string) string { return prefix + "rex" }
func (d *guardDog) Count() int { return d.barks }

func TestRegistry_ActionsAndGuards(t *testing.T) {
	calls := 0
	r := NewRegistry().
		Do("wander", func() { calls++ }).
		When("canWander", func() bool { return true })

	require.NoError(t, r.Run("wander"))
	assert.Equal(t, 1, calls)

	guard, ok := r.LookupGuard("canWander")
	require.True(t, ok)
	got, err := guard()
	require.NoError(t, err)
	assert.True(t, got)

	_, ok = r.LookupAction("missing")
	assert.False(t, ok)
	err = r.Run("missing")
	assert.ErrorIs(t, err, domain.ErrMissingCapability)
	var capErr *domain.CapabilityError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, "missing", capErr.Name)

	assert.Equal(t, []string{"wander"}, r.Actions())
	assert.Equal(t, []string{"canWander"}, r.Guards())
}

func TestFromMethods(t *testing.T) {
	dog := &guardDog{}
	r, err := FromMethods(dog)
	require.NoError(t, err)

	bark, ok := r.LookupAction("bark")
	require.True(t, ok, "lowercase alias registered")
	_, ok = r.LookupAction("Bark")
	require.True(t, ok, "go name registered")
	require.NoError(t, bark())
	assert.Equal(t, 1, dog.barks)

	canBark, ok := r.LookupGuard("canBark")
	require.True(t, ok)
	allowed, err := canBark()
	require.NoError(t, err)
	assert.True(t, allowed)

	dog.hungry = true
	allowed, err = canBark()
	require.NoError(t, err)
	assert.False(t, allowed, "guard reads live actor state")

	t.Run("errors propagate", func(t *testing.T) {
		dog.failure = errors.New("bowl is empty")
		eat, ok := r.LookupAction("eat")
		require.True(t, ok)
		assert.EqualError(t, eat(), "bowl is empty")

		canEat, ok := r.LookupGuard("canEat")
		require.True(t, ok)
		_, err := canEat()
		assert.EqualError(t, err, "bowl is empty")
	})

	t.Run("unsupported shapes ignored", func(t *testing.T) {
		_, ok := r.LookupAction("name")
		assert.False(t, ok)
		_, ok = r.LookupGuard("count")
		assert.False(t, ok)
		_, ok = r.LookupAction("count")
		assert.False(t, ok)
	})

	_, err = FromMethods(nil)
	assert.Error(t, err)
}
