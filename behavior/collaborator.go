package behavior

import "github.com/jakecoffman/cp"

// Clock supplies monotonic simulation time in seconds. The host loop owns
// the cadence; the machine never measures wall time itself.
type Clock interface {
	Now() float64
}

// TargetLocator reports the current position of the entity being chased,
// typically the player. Implementations should return a position far out of
// any vision window when no target exists.
type TargetLocator interface {
	Position() cp.Vector
}

// Actuator is the transform/physics service for an agent. The machine reads
// positions through it and requests horizontal movement and facing flips; it
// never mutates a transform directly.
type Actuator interface {
	Position(a *Agent) cp.Vector
	VisionOrigin(a *Agent) cp.Vector
	Translate(a *Agent, deltaX float64)
	SetFacing(a *Agent, right bool)
}

// AnimatorBridge drives the agent's animation clips.
type AnimatorBridge interface {
	SetWalking(a *Agent, walking bool)
	TriggerAttack(a *Agent)
}

// EventSink receives a fire-and-forget state notification once per tick,
// even when the state did not change.
type EventSink interface {
	Publish(agentID uint64, state State)
}
