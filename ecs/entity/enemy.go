package entity

import (
	"fmt"
	"math/rand"

	"letterbound/behavior"
	"letterbound/ecs"
	"letterbound/ecs/component"
	"letterbound/ecs/system"
	"letterbound/prefabs"
)

// NewEnemy spawns one enemy from a prefab spec at a world position. The
// behavior machine is initialized exactly once here; a bad spec or
// collaborator set aborts the spawn.
func NewEnemy(w *ecs.World, specName string, x, y float64, rng *rand.Rand) (ecs.Entity, error) {
	spec, err := prefabs.LoadEnemySpec(specName)
	if err != nil {
		return 0, err
	}

	machine, err := behavior.NewMachine(behavior.MachineConfig{
		Clock:    w.Clock(),
		Target:   system.NewPlayerLocator(w),
		Actuator: system.NewBodyActuator(w),
		Animator: system.NewAnimatorBridge(w),
		Events:   system.NewStateSink(w),
		Rand:     rng,
	})
	if err != nil {
		return 0, fmt.Errorf("entity: enemy %s: %w", spec.Name, err)
	}

	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, err
	}
	_ = ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
	_ = ecs.Add(w, e, component.SpriteComponent.Kind(), buildSprite(spec.Sprite))
	if anim := buildAnimation(spec.Animation); anim != nil {
		_ = ecs.Add(w, e, component.AnimationComponent.Kind(), anim)
	}
	_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:   spec.Collider.Width,
		Height:  spec.Collider.Height,
		Mass:    1,
		IsEnemy: true,
	})
	_ = ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Initial: spec.Health, Current: spec.Health})
	_ = ecs.Add(w, e, component.TouchDamageComponent.Kind(), &component.TouchDamage{Amount: spec.Damage})

	agent := &behavior.Agent{ID: uint64(e)}
	if err := machine.Initialize(agent, spec.Params()); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("entity: enemy %s: %w", spec.Name, err)
	}
	_ = ecs.Add(w, e, component.BehaviorComponent.Kind(), &component.Behavior{
		Agent:         agent,
		Machine:       machine,
		Spec:          spec.Name,
		Script:        spec.Script,
		VisionOffsetX: spec.VisionOffset.X,
		VisionOffsetY: spec.VisionOffset.Y,
	})

	return e, nil
}
