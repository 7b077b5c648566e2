package gamemath

import (
	"math"

	cfg "github.com/automoto/blutti/config"
)

// Axis selects which velocity component a stop applies to.
type Axis int

const (
	AxisX Axis = iota + 1
	AxisY
	AxisBoth
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisBoth:
		return "Both"
	}
	return "None"
}

// Body is an actor the resolver can move pixel by pixel.
type Body interface {
	// CollisionAt reports whether the body's footprint at p is blocked.
	CollisionAt(p Point) bool
	// StopMovement is called once when a step on axis is blocked.
	StopMovement(axis Axis)
}

// takeWhole adds v to the carried remainder and returns the whole pixel
// amount to move, rounded half up. The fraction stays in the remainder.
func takeWhole(remainder, v float64) (amount int, rest float64) {
	remainder += v
	whole := math.Floor(remainder + 0.5)
	return int(whole), remainder - whole
}

// MoveHorizontally steps pos along X one pixel at a time. A blocked step
// is retried one pixel higher so bodies can climb a one pixel lip.
func MoveHorizontally(b Body, pos Point, vel, rem Vec2) (Point, Vec2) {
	amount, rest := takeWhole(rem.X, vel.X)
	rem.X = rest
	step := 1
	if amount < 0 {
		step, amount = -1, -amount
	}
	for range amount {
		test := pos.AddX(step)
		nudge := test.AddY(-1)
		if test.InScreen() && !b.CollisionAt(test) {
			pos = test
		} else if nudge.InScreen() && !b.CollisionAt(nudge) {
			pos = nudge
		} else {
			b.StopMovement(AxisX)
			break
		}
	}
	return pos, rem
}

// MoveVertically steps pos along Y one pixel at a time. There is no nudge.
func MoveVertically(b Body, pos Point, vel, rem Vec2) (Point, Vec2) {
	amount, rest := takeWhole(rem.Y, vel.Y)
	rem.Y = rest
	step := 1
	if amount < 0 {
		step, amount = -1, -amount
	}
	for range amount {
		test := pos.AddY(step)
		if test.Y >= 0 && test.Y < cfg.Screen.Height && !b.CollisionAt(test) {
			pos = test
		} else {
			b.StopMovement(AxisY)
			break
		}
	}
	return pos, rem
}
