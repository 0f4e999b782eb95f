/*
Package domain contains the core domain models of the Arbor behavior tree engine.

It defines the declarative tree description consumed by the builder, the closed set
of strategies, the node variants and the error kinds surfaced by a tick. The package
is kept pure and free of I/O, so adapters (parsers, actors, metrics) depend on it and
never the other way round.

# Key Entities

  - Description: the wire form of a tree (pointer flag, identifier, guard override,
    strategy, opaque report, ordered children).
  - Strategy: child-selection (prioritized, sequential) or redirection (hereditary).
  - Kind: the node variant, State or Pointer.
  - LifecycleHooks: callbacks through which reports reach an integration layer.
*/
package domain
