package component

// ReloadRequest asks the game manager to rebuild the current level, e.g.
// after the player dies.
type ReloadRequest struct{}

var ReloadRequestComponent = NewComponent[ReloadRequest]()
