package gamemath

// Vec2 is a velocity or a sub-pixel accumulator.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}
