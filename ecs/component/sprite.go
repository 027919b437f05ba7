package component

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is the renderable for an entity. When Image is nil the renderer
// falls back to a flat rectangle of Color, so the game runs without art.
type Sprite struct {
	Image      *ebiten.Image
	Width      float64 // units
	Height     float64 // units
	OriginX    float64
	OriginY    float64
	Color      color.RGBA
	FacingLeft bool
}

var SpriteComponent = NewComponent[Sprite]()
