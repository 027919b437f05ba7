package component

import "github.com/hajimehoshi/ebiten/v2"

// AnimationDef describes one clip inside a sprite sheet.
type AnimationDef struct {
	Row        int
	ColStart   int
	FrameCount int
	FrameW     int
	FrameH     int
	FPS        float64
	Loop       bool
}

// Animation tracks clip playback. Sheet may be nil when art is missing;
// clip state still advances so gameplay and tests are unaffected.
type Animation struct {
	Sheet      *ebiten.Image
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer float64
	Playing    bool
}

var AnimationComponent = NewComponent[Animation]()
