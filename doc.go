/*
Package arbor is a behavior tree engine for driving an external actor, such as a
game entity's AI.

A tree description is compiled once into an immutable node graph. A driver then
ticks the currently active node, and the engine decides on each tick which node
becomes active next, running the actor's actions and consulting its guards.

# Concept

Every node is either a State or a Pointer. A leaf State runs the action named by
its identifier. A State with children hands control to one of them according to a
strategy (prioritized or sequential), inherited from the nearest ancestor when the
node has none. A Pointer redirects control to its nearest namesake ancestor
(hereditary). When a node's guard fails and no child is eligible, control escalates
to the nearest ancestor whose guard holds.

The actor is a registry of named actions and guards. Guards default to the name
"can" + capitalized identifier, can be overridden per node, and are treated as
permitted when absent. Missing actions are detected when the tree is built.

# Usage

	actor := registry.NewRegistry().
		Do("wander", dog.Wander).
		Do("eat", dog.Eat).
		When("canEat", dog.Hungry)

	desc := dsl.State("dog").Prioritized().Children(
		dsl.State("eat"),
		dsl.State("wander"),
	).Build()

	m, err := arbor.New(desc, actor)
	if err != nil {
		log.Fatal(err)
	}
	m.Start()

	// Main Loop: the caller owns the clock.
	for range ticker.C {
		if _, err := m.Tick(ctx); err != nil {
			log.Fatal(err)
		}
	}
*/
package arbor
