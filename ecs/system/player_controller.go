package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"

	"letterbound/ecs"
	"letterbound/ecs/component"
)

// PlayerControllerSystem turns keyboard input into player movement.
type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	pc, ok := ecs.Get(w, player, component.PlayerControllerComponent.Kind())
	if !ok {
		return
	}
	pb, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil {
		return
	}

	vel := pb.Body.Velocity()
	vx := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		vx -= pc.MoveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		vx += pc.MoveSpeed
	}

	vy := vel.Y
	onGround := math.Abs(vel.Y) < 0.01
	if onGround && (inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp)) {
		vy = -pc.JumpSpeed
	}

	pb.Body.SetVelocityVector(cp.Vector{X: vx, Y: vy})

	if spr, ok := ecs.Get(w, player, component.SpriteComponent.Kind()); ok {
		if vx < 0 {
			spr.FacingLeft = true
		} else if vx > 0 {
			spr.FacingLeft = false
		}
	}
	clip := "idle"
	if vx != 0 {
		clip = "run"
	}
	setClip(w, player, clip, false)
}
