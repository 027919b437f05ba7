package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"letterbound/ecs"
	"letterbound/ecs/component"
)

// AnimationSystem advances clip playback and slices the current frame out
// of the sprite sheet. Entities without a sheet still advance their clip
// state so gameplay timing is identical with or without art.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(w *ecs.World) {
	dt := w.Clock().Step()
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(),
		func(e ecs.Entity, anim *component.Animation, spr *component.Sprite) {
			def, ok := anim.Defs[anim.Current]
			if !ok || def.FrameCount <= 0 || def.FPS <= 0 {
				return
			}

			if anim.Playing {
				anim.FrameTimer += dt
				frameDur := 1.0 / def.FPS
				for anim.FrameTimer >= frameDur {
					anim.FrameTimer -= frameDur
					anim.Frame++
					if anim.Frame >= def.FrameCount {
						if def.Loop {
							anim.Frame = 0
						} else {
							anim.Frame = def.FrameCount - 1
							anim.Playing = false
						}
					}
				}
			}

			if anim.Sheet == nil {
				return
			}
			x := (def.ColStart + anim.Frame) * def.FrameW
			y := def.Row * def.FrameH
			rect := image.Rect(x, y, x+def.FrameW, y+def.FrameH)
			spr.Image = anim.Sheet.SubImage(rect).(*ebiten.Image)
		})
}
