package entity

import (
	"fmt"

	"letterbound/ecs"
	"letterbound/ecs/component"
	"letterbound/prefabs"
)

// NewLetter spawns one collectible letter.
func NewLetter(w *ecs.World, letter string, x, y float64) (ecs.Entity, error) {
	if letter == "" {
		return 0, fmt.Errorf("entity: letter must not be empty")
	}
	spec, err := prefabs.LoadLetterSpec()
	if err != nil {
		return 0, err
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, err
	}
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), buildSprite(spec.Sprite))
	_ = ecs.Add(w, e, component.LetterPickupComponent.Kind(), &component.LetterPickup{
		Letter:       letter,
		BobAmplitude: spec.BobAmplitude,
		BobSpeed:     spec.BobSpeed,
		Width:        spec.Collider.Width,
		Height:       spec.Collider.Height,
	})
	return e, nil
}
