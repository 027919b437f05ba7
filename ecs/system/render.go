package system

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"letterbound/common"
	"letterbound/ecs"
	"letterbound/ecs/component"
	"letterbound/levels"
)

var groundColor = color.RGBA{R: 0x4a, G: 0x4a, B: 0x52, A: 0xff}

// Renderer draws the world. It is not a System: ebiten separates Update
// from Draw, so the game calls Draw directly with the current level.
type Renderer struct {
	camX, camY float64
	snapped    bool

	// Debug overlays enemy behavior state above each enemy.
	Debug bool
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Reset snaps the camera on the next draw, for level changes.
func (r *Renderer) Reset() {
	r.snapped = false
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image, level *levels.Level) {
	if w == nil || screen == nil || level == nil {
		return
	}
	ppu := common.PixelsPerUnit
	sw := float64(screen.Bounds().Dx())
	sh := float64(screen.Bounds().Dy())

	r.updateCamera(w, level, sw, sh)

	for _, g := range level.Grounds {
		vector.DrawFilledRect(screen,
			float32(g.X*ppu-r.camX), float32(g.Y*ppu-r.camY),
			float32(g.Width*ppu), float32(g.Height*ppu),
			groundColor, false)
	}

	ecs.ForEach2(w, component.SpriteComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, spr *component.Sprite, t *component.Transform) {
			r.drawSprite(screen, spr, t, ppu)
		})

	ecs.ForEach2(w, component.LetterPickupComponent.Kind(), component.TransformComponent.Kind(),
		func(e ecs.Entity, p *component.LetterPickup, t *component.Transform) {
			ebitenutil.DebugPrintAt(screen, p.Letter,
				int(t.X*ppu-r.camX)-3, int(t.Y*ppu-r.camY)-8)
		})

	if r.Debug {
		ecs.ForEach2(w, component.BehaviorComponent.Kind(), component.TransformComponent.Kind(),
			func(e ecs.Entity, b *component.Behavior, t *component.Transform) {
				if b.Agent == nil {
					return
				}
				ebitenutil.DebugPrintAt(screen, b.Agent.State.String(),
					int(t.X*ppu-r.camX)-12, int(t.Y*ppu-r.camY)-40)
			})
	}
}

func (r *Renderer) drawSprite(screen *ebiten.Image, spr *component.Sprite, t *component.Transform, ppu float64) {
	wpx := spr.Width * ppu
	hpx := spr.Height * ppu
	x := t.X*ppu - r.camX - wpx/2
	y := t.Y*ppu - r.camY - hpx/2

	if spr.Image == nil {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(wpx), float32(hpx), spr.Color, false)
		return
	}

	bounds := spr.Image.Bounds()
	sx := wpx / float64(bounds.Dx())
	sy := hpx / float64(bounds.Dy())

	op := &ebiten.DrawImageOptions{}
	if spr.FacingLeft {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(bounds.Dx()), 0)
	}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(x, y)
	screen.DrawImage(spr.Image, op)
}

func (r *Renderer) updateCamera(w *ecs.World, level *levels.Level, sw, sh float64) {
	ppu := common.PixelsPerUnit
	targetX, targetY := r.camX, r.camY
	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			targetX = t.X*ppu - sw/2
			targetY = t.Y*ppu - sh/2
		}
	}
	maxX := level.Width*ppu - sw
	maxY := level.Height*ppu - sh
	targetX = common.Clamp(targetX, 0, maxX)
	targetY = common.Clamp(targetY, 0, maxY)
	if maxX < 0 {
		targetX = maxX / 2
	}
	if maxY < 0 {
		targetY = maxY / 2
	}

	if !r.snapped {
		r.camX, r.camY = targetX, targetY
		r.snapped = true
		return
	}
	r.camX = common.Lerp(r.camX, targetX, 0.1)
	r.camY = common.Lerp(r.camY, targetY, 0.1)
}

// DrawHUD prints the collected letters and player health in the corner.
func DrawHUD(w *ecs.World, screen *ebiten.Image, letters []string) {
	hud := fmt.Sprintf("letters: %v", letters)
	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if h, ok := ecs.Get(w, player, component.HealthComponent.Kind()); ok {
			hud = fmt.Sprintf("hp: %d/%d  %s", h.Current, h.Initial, hud)
		}
	}
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)
}
