package runtime

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/tree"
)

// GuardName returns the guard consulted for n: the test override if set,
// otherwise "can" followed by the capitalized identifier.
func GuardName(n *tree.Node) string {
	if n.Test != "" {
		return n.Test
	}
	return "can" + capitalize(n.Identifier)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Can reports whether the node id currently permits itself to be active.
// A node without a guard is always permitted. Guard errors are returned as is,
// wrapped with the guard name.
func (e *Engine) Can(id tree.NodeID) (bool, error) {
	n := e.tree.Node(id)
	if n == nil {
		return false, fmt.Errorf("%w: node %d", domain.ErrUnknownNode, id)
	}
	name := GuardName(n)
	guard, ok := e.caps.LookupGuard(name)
	if !ok {
		return true, nil
	}
	allowed, err := guard()
	if err != nil {
		return false, fmt.Errorf("guard %q of node %q: %w", name, n.Identifier, err)
	}
	return allowed, nil
}
