package behavior

// Vertical tolerance of the vision window around the vision origin, in
// world units and signed dy (target minus origin). The band is
// deliberately asymmetric.
const (
	visionBandPlus  = 5.0
	visionBandMinus = 3.0
)

// CanSeeTarget reports whether the chase target is inside the agent's
// vision window: within the [-visionBandMinus, +visionBandPlus] vertical
// band of the vision origin, and horizontally between the origin and
// origin.X + VisionLength on the side the agent currently faces.
func (m *Machine) CanSeeTarget(a *Agent) bool {
	origin := m.actuator.VisionOrigin(a)
	target := m.target.Position()

	dy := target.Y - origin.Y
	if dy > visionBandPlus || dy < -visionBandMinus {
		return false
	}

	if a.FacingRight {
		return target.X >= origin.X && target.X <= origin.X+a.params.VisionLength
	}
	return target.X <= origin.X && target.X >= origin.X-a.params.VisionLength
}

// InAttackReach reports whether the target is close enough for a melee
// attack: Euclidean distance from the vision origin within AttackDistance.
func (m *Machine) InAttackReach(a *Agent) bool {
	origin := m.actuator.VisionOrigin(a)
	return origin.Distance(m.target.Position()) <= a.params.AttackDistance
}
