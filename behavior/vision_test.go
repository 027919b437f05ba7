package behavior

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestVisionVerticalBand(t *testing.T) {
	cases := []struct {
		name    string
		dy      float64
		visible bool
	}{
		{"four_above", 4, true},
		{"five_above", 5, true},
		{"six_above", 6, false},
		{"three_below", -3, true},
		{"four_below", -4, false},
		{"level", 0, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t)
			f.target.pos = cp.Vector{X: 2, Y: c.dy}
			a := f.agent(StateChase)

			if got := f.machine.CanSeeTarget(a); got != c.visible {
				t.Fatalf("CanSeeTarget with dy=%v = %v, want %v", c.dy, got, c.visible)
			}
		})
	}
}

func TestVisionHorizontalWindow(t *testing.T) {
	cases := []struct {
		name        string
		facingRight bool
		x           float64
		visible     bool
	}{
		{"right_at_origin", true, 0, true},
		{"right_inside", true, 3, true},
		{"right_at_limit", true, 5, true},
		{"right_past_limit", true, 5.5, false},
		{"right_behind", true, -0.5, false},
		{"left_at_origin", false, 0, true},
		{"left_inside", false, -3, true},
		{"left_at_limit", false, -5, true},
		{"left_past_limit", false, -5.5, false},
		{"left_behind", false, 0.5, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t)
			f.target.pos = cp.Vector{X: c.x, Y: 1}
			a := f.agent(StateChase)
			a.FacingRight = c.facingRight

			if got := f.machine.CanSeeTarget(a); got != c.visible {
				t.Fatalf("CanSeeTarget facing right=%v x=%v = %v, want %v", c.facingRight, c.x, got, c.visible)
			}
		})
	}
}

func TestVisionOriginOffset(t *testing.T) {
	f := newFixture(t)
	f.act.origin = cp.Vector{X: 10, Y: 10}
	f.target.pos = cp.Vector{X: 13, Y: 11}
	a := f.agent(StateChase)

	if !f.machine.CanSeeTarget(a) {
		t.Fatalf("expected target visible relative to the vision origin")
	}

	f.target.pos = cp.Vector{X: 3, Y: 1}
	if f.machine.CanSeeTarget(a) {
		t.Fatalf("expected target outside the shifted vision window")
	}
}

func TestAttackReach(t *testing.T) {
	cases := []struct {
		name    string
		target  cp.Vector
		inReach bool
	}{
		{"at_distance", cp.Vector{X: 0.5, Y: 0}, true},
		{"inside", cp.Vector{X: 0.2, Y: 0.1}, true},
		{"just_outside", cp.Vector{X: 0.51, Y: 0}, false},
		{"diagonal_outside", cp.Vector{X: 3, Y: 1}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := newFixture(t)
			f.target.pos = c.target
			a := f.agent(StateChase)

			if got := f.machine.InAttackReach(a); got != c.inReach {
				t.Fatalf("InAttackReach target=%v = %v, want %v", c.target, got, c.inReach)
			}
		})
	}
}
