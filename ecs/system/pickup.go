package system

import (
	"log"
	"math"

	"letterbound/ecs"
	"letterbound/ecs/component"
)

// LetterEventType is published when the player collects a letter.
const LetterEventType = "letter_collected"

// LetterCollectedEvent carries the collected letter.
type LetterCollectedEvent struct {
	Entity ecs.Entity
	Letter string
}

// PickupSystem bobs collectible letters in place and hands them to the
// player on overlap.
type PickupSystem struct{}

func NewPickupSystem() *PickupSystem {
	return &PickupSystem{}
}

func (s *PickupSystem) Update(w *ecs.World) {
	dt := w.Clock().Step()

	ecs.ForEach2(w, component.LetterPickupComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, p *component.LetterPickup, t *component.Transform) {
			if !p.Initialized {
				p.BaseY = t.Y
				p.Initialized = true
			}
			p.BobPhase += p.BobSpeed * dt
			t.Y = p.BaseY + math.Sin(p.BobPhase)*p.BobAmplitude
		})

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	pb, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
	if !ok {
		return
	}
	playerPos := entityPosition(w, player)

	ecs.ForEach2(w, component.LetterPickupComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, p *component.LetterPickup, t *component.Transform) {
			if !overlaps(playerPos.X, playerPos.Y, pb.Width, pb.Height, t.X, t.Y, p.Width, p.Height) {
				return
			}
			log.Printf("PickupSystem: collected letter %q", p.Letter)
			w.Events().Publish(ecs.Event{Type: LetterEventType, Data: LetterCollectedEvent{Entity: e, Letter: p.Letter}})
			ecs.DestroyEntity(w, e)
		})
}

// overlaps tests two center-based AABBs.
func overlaps(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return math.Abs(ax-bx) <= (aw+bw)/2 && math.Abs(ay-by) <= (ah+bh)/2
}
