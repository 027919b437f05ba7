package component

// LetterPickup is a collectible letter with a reusable bob animation.
type LetterPickup struct {
	Letter       string
	BaseY        float64
	BobAmplitude float64
	BobSpeed     float64
	BobPhase     float64
	Width        float64
	Height       float64
	Initialized  bool
}

var LetterPickupComponent = NewComponent[LetterPickup]()
