package domain

import (
	"fmt"
	"strings"
)

// Strategy is the closed set of policies a node can carry.
// Selection strategies choose among children; redirection strategies
// decide where a Pointer sends control.
type Strategy uint8

const (
	// StrategyNone means the node carries no strategy of its own.
	StrategyNone Strategy = iota
	// StrategyPrioritized picks the first child whose guard holds.
	StrategyPrioritized
	// StrategySequential runs children in order, then escalates.
	StrategySequential
	// StrategyHereditary redirects a Pointer to its nearest namesake ancestor.
	StrategyHereditary
)

var strategyNames = map[Strategy]string{
	StrategyNone:        "",
	StrategyPrioritized: "prioritized",
	StrategySequential:  "sequential",
	StrategyHereditary:  "hereditary",
}

// aliases accepted on input, including the legacy "prioritised" and "hereditory" spellings.
var strategyAliases = map[string]Strategy{
	"":            StrategyNone,
	"none":        StrategyNone,
	"prioritized": StrategyPrioritized,
	"prioritised": StrategyPrioritized,
	"sequential":  StrategySequential,
	"hereditary":  StrategyHereditary,
	"hereditory":  StrategyHereditary,
}

// ParseStrategy converts a strategy name into a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	st, ok := strategyAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return StrategyNone, fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
	}
	return st, nil
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		if name == "" {
			return "none"
		}
		return name
	}
	return fmt.Sprintf("strategy(%d)", uint8(s))
}

// IsSelection reports whether s chooses among children.
func (s Strategy) IsSelection() bool {
	return s == StrategyPrioritized || s == StrategySequential
}

// IsRedirection reports whether s is a Pointer policy.
func (s Strategy) IsRedirection() bool {
	return s == StrategyHereditary
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	name, ok := strategyNames[s]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStrategy, uint8(s))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	st, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// IsZero lets yaml.v3 omit an empty strategy.
func (s Strategy) IsZero() bool { return s == StrategyNone }
