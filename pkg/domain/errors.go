package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingCapability is returned when an identifier has no matching action on the actor.
	ErrMissingCapability = errors.New("missing capability")

	// ErrNoPermittedAncestor is returned when escalation reaches the root without
	// finding a node whose guard holds.
	ErrNoPermittedAncestor = errors.New("no permitted ancestor")

	// ErrDanglingPointer is returned when a pointer has no valid redirection target.
	ErrDanglingPointer = errors.New("dangling pointer")

	// ErrInvalidStrategy is returned for unknown strategies or strategies used on the wrong variant.
	ErrInvalidStrategy = errors.New("invalid strategy")

	// ErrInvalidDescription is returned when a description cannot be decoded or compiled.
	ErrInvalidDescription = errors.New("invalid description")

	// ErrUnknownNode is returned when a node id does not belong to the tree.
	ErrUnknownNode = errors.New("unknown node")

	// ErrNotStarted is returned when a machine is ticked before Start.
	ErrNotStarted = errors.New("machine not started")
)

// CapabilityError reports a name the actor does not provide.
type CapabilityError struct {
	Name       string // capability name looked up
	Identifier string // node identifier that required it
	Role       string // "action" or "guard"
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s: %s %q required by node %q", ErrMissingCapability, e.Role, e.Name, e.Identifier)
}

func (e *CapabilityError) Unwrap() error { return ErrMissingCapability }

// NodeError ties one of the traversal error kinds to the node where it was raised.
type NodeError struct {
	Kind       error
	NodeID     int
	Identifier string
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("%s at node %d (%q)", e.Kind, e.NodeID, e.Identifier)
}

func (e *NodeError) Unwrap() error { return e.Kind }

// AggregateError represents multiple build or validation failures.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	msg := fmt.Sprintf("%d errors:\n", len(e.Errors))
	for i, err := range e.Errors {
		msg += fmt.Sprintf("  %d. %s\n", i+1, err.Error())
	}
	return msg
}

// Unwrap exposes every aggregated error to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// ValidationErrors returns all errors if err is an AggregateError.
// Otherwise returns nil.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}
