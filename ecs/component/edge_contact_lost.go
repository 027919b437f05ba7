package component

// EdgeContactLost is a one-shot signal that an enemy's ground sensor left
// its last solid contact. The physics system adds it; the behavior system
// consumes it before running the per-tick evaluation.
type EdgeContactLost struct{}

var EdgeContactLostComponent = NewComponent[EdgeContactLost]()
