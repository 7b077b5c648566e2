package gamemath

// ClampToward applies accel to v without passing target.
// A zero target decelerates from either side and never flips the sign.
func ClampToward(v, accel, target float64) float64 {
	switch {
	case target > 0:
		return min(v+accel, target)
	case target < 0:
		return max(v+accel, target)
	case accel > 0:
		return min(v+accel, 0)
	case accel < 0:
		return max(v+accel, 0)
	}
	return 0
}

// Sign returns -1, 0 or 1.
func Sign(v float64) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
