package component

// PlayerController holds the player's movement tuning.
type PlayerController struct {
	MoveSpeed float64
	JumpSpeed float64
}

var PlayerControllerComponent = NewComponent[PlayerController]()
