package system

import (
	"letterbound/ecs"
	"letterbound/ecs/component"
)

// BehaviorSystem drives every enemy's state machine once per tick. The
// one-shot edge signal from the physics system is consumed first so the
// override lands before the regular per-state evaluation.
type BehaviorSystem struct{}

func NewBehaviorSystem() *BehaviorSystem {
	return &BehaviorSystem{}
}

func (s *BehaviorSystem) Update(w *ecs.World) {
	now := w.Clock().Now()
	ecs.ForEach(w, component.BehaviorComponent.Kind(), func(e ecs.Entity, b *component.Behavior) {
		if b.Agent == nil || b.Machine == nil {
			return
		}
		if ecs.Has(w, e, component.EdgeContactLostComponent.Kind()) {
			b.Machine.NotifyEdgeLost(b.Agent)
			ecs.Remove(w, e, component.EdgeContactLostComponent.Kind())
		}
		b.Machine.Tick(b.Agent, now)
	})
}
