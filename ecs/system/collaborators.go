package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"letterbound/behavior"
	"letterbound/ecs"
	"letterbound/ecs/component"
)

// StateEventType tags the per-tick behavior state notification on the world
// event queue.
const StateEventType = "behavior_state"

// StateChangeEvent is published once per behavior tick per enemy, carrying
// the (possibly unchanged) current state.
type StateChangeEvent struct {
	Entity ecs.Entity
	State  behavior.State
}

// NewPlayerLocator returns a target locator that follows the first player
// entity. When no player exists it reports a position outside every vision
// window, which reads as "no target visible".
func NewPlayerLocator(w *ecs.World) behavior.TargetLocator {
	return &playerLocator{w: w}
}

type playerLocator struct {
	w *ecs.World
}

func (l *playerLocator) Position() cp.Vector {
	if player, ok := ecs.First(l.w, component.PlayerTagComponent.Kind()); ok {
		if pb, ok := ecs.Get(l.w, player, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
			return pb.Body.Position()
		}
		if t, ok := ecs.Get(l.w, player, component.TransformComponent.Kind()); ok {
			return cp.Vector{X: t.X, Y: t.Y}
		}
	}
	return cp.Vector{X: math.Inf(1), Y: math.Inf(1)}
}

// NewBodyActuator returns an actuator over the entity's Chipmunk body and
// sprite. Translate is a horizontal velocity request in units/s; vertical
// velocity (gravity, knockback) is left to the physics step.
func NewBodyActuator(w *ecs.World) behavior.Actuator {
	return &bodyActuator{w: w}
}

type bodyActuator struct {
	w *ecs.World
}

func (b *bodyActuator) Position(a *behavior.Agent) cp.Vector {
	e := ecs.Entity(a.ID)
	if pb, ok := ecs.Get(b.w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
		return pb.Body.Position()
	}
	if t, ok := ecs.Get(b.w, e, component.TransformComponent.Kind()); ok {
		return cp.Vector{X: t.X, Y: t.Y}
	}
	return cp.Vector{}
}

func (b *bodyActuator) VisionOrigin(a *behavior.Agent) cp.Vector {
	pos := b.Position(a)
	if bc, ok := ecs.Get(b.w, ecs.Entity(a.ID), component.BehaviorComponent.Kind()); ok {
		pos.X += bc.VisionOffsetX
		pos.Y += bc.VisionOffsetY
	}
	return pos
}

func (b *bodyActuator) Translate(a *behavior.Agent, deltaX float64) {
	e := ecs.Entity(a.ID)
	pb, ok := ecs.Get(b.w, e, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil {
		return
	}
	vel := pb.Body.Velocity()
	pb.Body.SetVelocityVector(cp.Vector{X: deltaX, Y: vel.Y})
}

func (b *bodyActuator) SetFacing(a *behavior.Agent, right bool) {
	if spr, ok := ecs.Get(b.w, ecs.Entity(a.ID), component.SpriteComponent.Kind()); ok {
		spr.FacingLeft = !right
	}
}

// NewAnimatorBridge returns an animator over the Animation component.
func NewAnimatorBridge(w *ecs.World) behavior.AnimatorBridge {
	return &animatorBridge{w: w}
}

type animatorBridge struct {
	w *ecs.World
}

func (b *animatorBridge) SetWalking(a *behavior.Agent, walking bool) {
	clip := "idle"
	if walking {
		clip = "walk"
	}
	setClip(b.w, ecs.Entity(a.ID), clip, false)
}

func (b *animatorBridge) TriggerAttack(a *behavior.Agent) {
	setClip(b.w, ecs.Entity(a.ID), "attack", true)
}

// setClip switches the entity's current animation clip. When restart is
// false a clip that is already playing keeps its frame.
func setClip(w *ecs.World, e ecs.Entity, clip string, restart bool) {
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok {
		return
	}
	if _, ok := anim.Defs[clip]; !ok {
		return
	}
	if anim.Current == clip && !restart {
		return
	}
	anim.Current = clip
	anim.Frame = 0
	anim.FrameTimer = 0
	anim.Playing = true
}

// NewStateSink returns an event sink that publishes state notifications on
// the world event queue.
func NewStateSink(w *ecs.World) behavior.EventSink {
	return &stateSink{w: w}
}

type stateSink struct {
	w *ecs.World
}

func (s *stateSink) Publish(agentID uint64, state behavior.State) {
	s.w.Events().Publish(ecs.Event{
		Type: StateEventType,
		Data: StateChangeEvent{Entity: ecs.Entity(agentID), State: state},
	})
}
