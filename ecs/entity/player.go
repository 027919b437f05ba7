package entity

import (
	"letterbound/ecs"
	"letterbound/ecs/component"
	"letterbound/prefabs"
)

// NewPlayer spawns the player at the level's spawn point.
func NewPlayer(w *ecs.World, x, y float64) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, err
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, err
	}
	_ = ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), buildSprite(spec.Sprite))
	if anim := buildAnimation(spec.Animation); anim != nil {
		_ = ecs.Add(w, e, component.AnimationComponent.Kind(), anim)
	}
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    spec.Collider.Width,
		Height:   spec.Collider.Height,
		Mass:     1,
		IsPlayer: true,
	})
	_ = ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Initial: spec.Health, Current: spec.Health})
	_ = ecs.Add(w, e, component.PlayerControllerComponent.Kind(), &component.PlayerController{
		MoveSpeed: spec.MoveSpeed,
		JumpSpeed: spec.JumpSpeed,
	})
	return e, nil
}
