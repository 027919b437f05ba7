package component

// TouchDamage is dealt to the player while an attacking enemy is in reach.
type TouchDamage struct {
	Amount int
}

var TouchDamageComponent = NewComponent[TouchDamage]()
