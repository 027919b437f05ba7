package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"

	"letterbound/ecs"
	"letterbound/ecs/component"
)

// PlayerDiedEventType is published when the player's health reaches zero.
const PlayerDiedEventType = "player_died"

// PlayerDiedEvent reports which entity died.
type PlayerDiedEvent struct {
	Entity ecs.Entity
}

// Invulnerability window after a hit, in ticks.
const invulnTicks = 45

// DamageSystem applies touch damage from attacking enemies to the player
// and files a reload request when the player dies.
type DamageSystem struct{}

func NewDamageSystem() *DamageSystem {
	return &DamageSystem{}
}

func (s *DamageSystem) Update(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok {
		return
	}
	if health.InvulnFrames > 0 {
		health.InvulnFrames--
	}
	if health.Current <= 0 {
		return
	}
	playerPos := entityPosition(w, player)

	ecs.ForEach2(w, component.BehaviorComponent.Kind(), component.TouchDamageComponent.Kind(),
		func(e ecs.Entity, b *component.Behavior, dmg *component.TouchDamage) {
			if b.Agent == nil || !b.Agent.Attacking {
				return
			}
			if health.InvulnFrames > 0 || health.Current <= 0 {
				return
			}
			if entityPosition(w, e).Distance(playerPos) > b.Agent.Params().AttackDistance {
				return
			}

			health.Current -= dmg.Amount
			health.InvulnFrames = invulnTicks
			log.Printf("DamageSystem: player hit for %d, %d/%d left", dmg.Amount, health.Current, health.Initial)

			if health.Current <= 0 {
				health.Current = 0
				w.Events().Publish(ecs.Event{Type: PlayerDiedEventType, Data: PlayerDiedEvent{Entity: player}})
				req := ecs.CreateEntity(w)
				_ = ecs.Add(w, req, component.ReloadRequestComponent.Kind(), &component.ReloadRequest{})
			}
		})
}

func entityPosition(w *ecs.World, e ecs.Entity) cp.Vector {
	if pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok && pb.Body != nil {
		return pb.Body.Position()
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		return cp.Vector{X: t.X, Y: t.Y}
	}
	return cp.Vector{X: math.Inf(1), Y: math.Inf(1)}
}
