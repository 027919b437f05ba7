package common

// PixelsPerUnit converts world units (used by physics and gameplay) to
// screen pixels. One unit is one tile.
const PixelsPerUnit = 32.0

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
