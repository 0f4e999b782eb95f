/*
Package script implements a data-driven actor for Arbor trees.

A script declares a blackboard of variables, guards written as boolean
expr-lang expressions, and actions made of ordered assignments:

	vars:
	  hunger: 0
	  scared: false
	guards:
	  canEat: hunger > 5
	  isScared: scared
	actions:
	  wander:
	    - set: hunger
	      to: hunger + 1
	  eat:
	    - set: hunger
	      to: hunger - 3

Every expression is compiled when the script is loaded, so typos surface
before the first tick rather than during one.
*/
package script
