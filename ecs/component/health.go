package component

// Health is a simple hit-point pool with invulnerability frames applied
// after taking damage.
type Health struct {
	Initial      int
	Current      int
	InvulnFrames int
}

var HealthComponent = NewComponent[Health]()
