package ecs

// Clock is the fixed-step simulation clock. It advances once per world
// update; Now is stable for the whole tick.
type Clock struct {
	step    float64
	elapsed float64
}

// Now returns elapsed simulation time in seconds.
func (c *Clock) Now() float64 {
	return c.elapsed
}

// Step returns the fixed timestep in seconds.
func (c *Clock) Step() float64 {
	return c.step
}

// Advance moves the clock forward one step.
func (c *Clock) Advance() {
	c.elapsed += c.step
}
