// Package entity builds game entities from prefab specs.
package entity

import (
	"bytes"
	"image"
	"image/color"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"letterbound/ecs/component"
	"letterbound/prefabs"
)

var missingColor = color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}

// parseColor reads a "#rrggbb" hex color. Bad input gets the loud magenta
// so a typo in a prefab is visible in game.
func parseColor(s string) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return missingColor
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return missingColor
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// loadImage reads a sheet from the assets directory. Missing art is not an
// error: the renderer falls back to flat rectangles.
func loadImage(path string) *ebiten.Image {
	if path == "" {
		return nil
	}
	b, err := os.ReadFile(filepath.Join("assets", filepath.FromSlash(path)))
	if err != nil {
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		log.Printf("entity: decode %s: %v", path, err)
		return nil
	}
	return ebiten.NewImageFromImage(img)
}

func buildSprite(spec prefabs.SpriteSpec) *component.Sprite {
	return &component.Sprite{
		Image:  loadImage(spec.Sheet),
		Width:  spec.Width,
		Height: spec.Height,
		Color:  parseColor(spec.Color),
	}
}

func buildAnimation(spec prefabs.AnimationSpec) *component.Animation {
	if len(spec.Defs) == 0 {
		return nil
	}
	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, d := range spec.Defs {
		defs[name] = component.AnimationDef{
			Row:        d.Row,
			ColStart:   d.ColStart,
			FrameCount: d.FrameCount,
			FrameW:     d.FrameW,
			FrameH:     d.FrameH,
			FPS:        d.FPS,
			Loop:       d.Loop,
		}
	}
	current := spec.Current
	if _, ok := defs[current]; !ok {
		for name := range defs {
			current = name
			break
		}
	}
	return &component.Animation{
		Sheet:   loadImage(spec.Sheet),
		Defs:    defs,
		Current: current,
		Playing: true,
	}
}
