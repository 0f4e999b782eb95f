/*
Package dsl provides a Go DSL for programmatically constructing Arbor tree descriptions.

It allows developers to define behavior trees with a fluent builder instead of
relying on external YAML or JSON files. This is particularly useful for tests,
generated trees and leveraging IDE autocompletion/type-checking.

Example usage:

	desc := dsl.State("guard").Prioritized().Children(
		dsl.State("flee").Test("isScared"),
		dsl.State("patrol").Sequential().Children(
			dsl.State("walkLeft"),
			dsl.State("walkRight"),
		),
		dsl.State("idle"),
	).Build()

	// desc is a domain.Description ready for arbor.New(desc, caps)
*/
package dsl
