// Package registry holds the capabilities an actor exposes to a behavior tree:
// named actions and named guards, resolved once at build time.
package registry

import (
	"sort"

	"github.com/aretw0/arbor/pkg/domain"
)

// ActionFunc is a zero-argument, side-effecting action.
type ActionFunc func() error

// GuardFunc is a zero-argument predicate gating whether a node may be active.
type GuardFunc func() (bool, error)

// Capabilities is the lookup surface the engine needs from an actor.
type Capabilities interface {
	LookupAction(name string) (ActionFunc, bool)
	LookupGuard(name string) (GuardFunc, bool)
}

// Registry maps names to actions and guards.
// It is not safe for concurrent mutation; register everything before building a tree.
type Registry struct {
	actions map[string]ActionFunc
	guards  map[string]GuardFunc
}

var _ Capabilities = (*Registry)(nil)

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		actions: make(map[string]ActionFunc),
		guards:  make(map[string]GuardFunc),
	}
}

// Action registers an action under name.
// If an action with the same name exists, it is overwritten.
func (r *Registry) Action(name string, fn ActionFunc) *Registry {
	r.actions[name] = fn
	return r
}

// Do registers an action that cannot fail.
func (r *Registry) Do(name string, fn func()) *Registry {
	return r.Action(name, func() error {
		fn()
		return nil
	})
}

// Guard registers a guard under name.
func (r *Registry) Guard(name string, fn GuardFunc) *Registry {
	r.guards[name] = fn
	return r
}

// When registers a guard that cannot fail.
func (r *Registry) When(name string, fn func() bool) *Registry {
	return r.Guard(name, func() (bool, error) {
		return fn(), nil
	})
}

// LookupAction returns the action registered under name.
func (r *Registry) LookupAction(name string) (ActionFunc, bool) {
	fn, ok := r.actions[name]
	return fn, ok
}

// LookupGuard returns the guard registered under name.
func (r *Registry) LookupGuard(name string) (GuardFunc, bool) {
	fn, ok := r.guards[name]
	return fn, ok
}

// Actions returns the registered action names, sorted.
func (r *Registry) Actions() []string {
	return sortedKeys(r.actions)
}

// Guards returns the registered guard names, sorted.
func (r *Registry) Guards() []string {
	return sortedKeys(r.guards)
}

// Run executes the named action.
// An unknown name yields a *domain.CapabilityError.
func (r *Registry) Run(name string) error {
	fn, ok := r.actions[name]
	if !ok {
		return &domain.CapabilityError{Name: name, Identifier: name, Role: "action"}
	}
	return fn()
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
