package script

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/registry"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"gopkg.in/yaml.v3"
)

// ErrInvalidScript is returned when a script cannot be decoded or compiled.
var ErrInvalidScript = errors.New("invalid script")

// Document is the decoded form of a script file.
type Document struct {
	Vars    map[string]any      `yaml:"vars" json:"vars"`
	Guards  map[string]string   `yaml:"guards" json:"guards"`
	Actions map[string][]Effect `yaml:"actions" json:"actions"`
}

// Effect assigns the value of an expression to a variable.
type Effect struct {
	Set string `yaml:"set" json:"set"`
	To  string `yaml:"to" json:"to"`
}

type effect struct {
	target  string
	program *vm.Program
}

// Actor evaluates a Document against its own mutable blackboard.
type Actor struct {
	vars     map[string]any
	guards   map[string]*vm.Program
	actions  map[string][]effect
	registry *registry.Registry
	history  []string
	logger   *slog.Logger
}

// Option configures an Actor.
type Option func(*Actor)

// WithLogger sets the structured logger used to trace actions.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Actor) {
		a.logger = logger
	}
}

// Load reads a script file. JSON is used for .json files, YAML otherwise.
func Load(path string, opts ...Option) (*Actor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	var doc Document
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidScript, filepath.Base(path), err)
	}
	return New(doc, opts...)
}

// New compiles doc into an Actor.
func New(doc Document, opts ...Option) (*Actor, error) {
	a := &Actor{
		vars:     make(map[string]any, len(doc.Vars)),
		guards:   make(map[string]*vm.Program, len(doc.Guards)),
		actions:  make(map[string][]effect, len(doc.Actions)),
		registry: registry.NewRegistry(),
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	maps.Copy(a.vars, doc.Vars)

	var errs []error
	for _, name := range sortedKeys(doc.Guards) {
		program, err := expr.Compile(doc.Guards[name], expr.Env(a.vars), expr.AsBool())
		if err != nil {
			errs = append(errs, fmt.Errorf("guard %q: %w", name, err))
			continue
		}
		a.guards[name] = program
		a.registry.Guard(name, a.guard(name))
	}

	for _, name := range sortedKeys(doc.Actions) {
		compiled, err := a.compileEffects(doc.Actions[name])
		if err != nil {
			errs = append(errs, fmt.Errorf("action %q: %w", name, err))
			continue
		}
		a.actions[name] = compiled
		a.registry.Action(name, a.action(name))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, errors.Join(errs...))
	}
	return a, nil
}

func (a *Actor) compileEffects(effects []Effect) ([]effect, error) {
	out := make([]effect, 0, len(effects))
	for i, eff := range effects {
		if _, ok := a.vars[eff.Set]; !ok {
			return nil, fmt.Errorf("effect %d assigns undeclared variable %q", i, eff.Set)
		}
		program, err := expr.Compile(eff.To, expr.Env(a.vars))
		if err != nil {
			return nil, fmt.Errorf("effect %d: %w", i, err)
		}
		out = append(out, effect{target: eff.Set, program: program})
	}
	return out, nil
}

func (a *Actor) guard(name string) registry.GuardFunc {
	return func() (bool, error) {
		out, err := expr.Run(a.guards[name], a.vars)
		if err != nil {
			return false, fmt.Errorf("guard %q: %w", name, err)
		}
		allowed, _ := out.(bool)
		return allowed, nil
	}
}

func (a *Actor) action(name string) registry.ActionFunc {
	return func() error {
		for _, eff := range a.actions[name] {
			out, err := expr.Run(eff.program, a.vars)
			if err != nil {
				return fmt.Errorf("action %q: set %s: %w", name, eff.target, err)
			}
			a.vars[eff.target] = out
		}
		a.history = append(a.history, name)
		a.logger.Debug("script action", "action", name, "vars", a.vars)
		return nil
	}
}

// Registry exposes the actor's capabilities to a tree.
func (a *Actor) Registry() *registry.Registry { return a.registry }

// LookupAction implements registry.Capabilities.
func (a *Actor) LookupAction(name string) (registry.ActionFunc, bool) {
	return a.registry.LookupAction(name)
}

// LookupGuard implements registry.Capabilities.
func (a *Actor) LookupGuard(name string) (registry.GuardFunc, bool) {
	return a.registry.LookupGuard(name)
}

// Var returns the current value of a blackboard variable.
func (a *Actor) Var(name string) (any, bool) {
	v, ok := a.vars[name]
	return v, ok
}

// Vars returns a copy of the blackboard.
func (a *Actor) Vars() map[string]any {
	return maps.Clone(a.vars)
}

// History returns the names of the actions run so far, in order.
func (a *Actor) History() []string {
	return append([]string(nil), a.history...)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
