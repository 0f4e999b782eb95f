package domain

// Kind is the node variant. It decides the semantics of a transition.
type Kind uint8

const (
	// KindState is a regular node: once reached it is the active node.
	KindState Kind = iota
	// KindPointer redirects elsewhere in the tree using its own strategy.
	KindPointer
)

func (k Kind) String() string {
	switch k {
	case KindState:
		return "state"
	case KindPointer:
		return "pointer"
	default:
		return "unknown"
	}
}

// Description is the declarative form of a (sub)tree.
// It is what parsers produce and what the tree builder compiles.
type Description struct {
	Pointer    bool   `json:"pointer,omitempty" yaml:"pointer,omitempty" mapstructure:"pointer"`
	Identifier string `json:"identifier" yaml:"identifier" mapstructure:"identifier"`

	// Test overrides the default "can<Identifier>" guard name.
	Test string `json:"test,omitempty" yaml:"test,omitempty" mapstructure:"test"`

	Strategy Strategy `json:"strategy,omitempty" yaml:"strategy,omitempty" mapstructure:"strategy"`

	// Report is opaque metadata forwarded verbatim to lifecycle hooks.
	Report any `json:"report,omitempty" yaml:"report,omitempty" mapstructure:"report"`

	// Children order is significant: it is both priority and sequence order.
	Children []Description `json:"children,omitempty" yaml:"children,omitempty" mapstructure:"children"`
}

// Kind reports the variant this description compiles to.
func (d Description) Kind() Kind {
	if d.Pointer {
		return KindPointer
	}
	return KindState
}

// Count returns the number of nodes in the description, itself included.
func (d Description) Count() int {
	n := 1
	for _, c := range d.Children {
		n += c.Count()
	}
	return n
}
