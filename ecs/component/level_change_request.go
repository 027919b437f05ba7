package component

// LevelChangeRequest asks the game manager to swap levels. Added to a fresh
// entity and consumed (entity destroyed) when handled.
type LevelChangeRequest struct {
	TargetLevel string
}

var LevelChangeRequestComponent = NewComponent[LevelChangeRequest]()
