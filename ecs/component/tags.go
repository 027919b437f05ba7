package component

// PlayerTag marks the chase target.
type PlayerTag struct{}

// EnemyTag marks behavior-driven enemies.
type EnemyTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()
var EnemyTagComponent = NewComponent[EnemyTag]()
