package system

import (
	"letterbound/ecs"
	"letterbound/ecs/component"
)

// PhysicsSystem creates bodies for entities that don't have one yet, steps
// the Chipmunk space, writes body positions back into transforms, and turns
// drained ground-sensor separations into one-shot EdgeContactLost signals.
type PhysicsSystem struct{}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{}
}

func (s *PhysicsSystem) Update(w *ecs.World) {
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
			if pb.Body == nil {
				pw.AddBody(e, t, pb)
			}
		})

	pw.Step(w.Clock().Step())

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
			if pb.Body == nil {
				return
			}
			pos := pb.Body.Position()
			t.X = pos.X - pb.OffsetX
			t.Y = pos.Y - pb.OffsetY
		})

	for _, e := range pw.DrainEdgeLost() {
		if !ecs.Has(w, e, component.BehaviorComponent.Kind()) {
			continue
		}
		_ = ecs.Add(w, e, component.EdgeContactLostComponent.Kind(), &component.EdgeContactLost{})
	}
}
