package component

import "letterbound/behavior"

// Behavior binds an enemy entity to its behavior state machine. Spec is the
// prefab name the params came from, kept for hot reload; Script optionally
// names a tengo hook run on state changes.
type Behavior struct {
	Agent   *behavior.Agent
	Machine *behavior.Machine
	Spec    string
	Script  string

	// Vision origin offset from the body position, in units.
	VisionOffsetX float64
	VisionOffsetY float64
}

var BehaviorComponent = NewComponent[Behavior]()
