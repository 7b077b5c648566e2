package core

// PlayerState is Blutti's movement state.
type PlayerState int

const (
	Idle PlayerState = iota
	RunningLeft
	RunningRight
	RunningStop
	Jumping
	JumpingLeft
	JumpingRight
	JumpingStop
	DashingLeft
	DashingRight
	ClimbingUp
	ClimbingDown
	ClimbingStop
	ClimbingSideways
	ClimbingSidewaysStop
	ClimbingIdle
	Falling
	FallingLeft
	FallingRight
)

var stateNames = [...]string{
	Idle:                 "Idle",
	RunningLeft:          "RunningLeft",
	RunningRight:         "RunningRight",
	RunningStop:          "RunningStop",
	Jumping:              "Jumping",
	JumpingLeft:          "JumpingLeft",
	JumpingRight:         "JumpingRight",
	JumpingStop:          "JumpingStop",
	DashingLeft:          "DashingLeft",
	DashingRight:         "DashingRight",
	ClimbingUp:           "ClimbingUp",
	ClimbingDown:         "ClimbingDown",
	ClimbingStop:         "ClimbingStop",
	ClimbingSideways:     "ClimbingSideways",
	ClimbingSidewaysStop: "ClimbingSidewaysStop",
	ClimbingIdle:         "ClimbingIdle",
	Falling:              "Falling",
	FallingLeft:          "FallingLeft",
	FallingRight:         "FallingRight",
}

func (s PlayerState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

func (s PlayerState) IsClimbing() bool {
	switch s {
	case ClimbingUp, ClimbingDown, ClimbingStop, ClimbingIdle, ClimbingSideways, ClimbingSidewaysStop:
		return true
	}
	return false
}

func (s PlayerState) IsIdling() bool {
	return s == Idle || s == ClimbingIdle
}

// IsJumping includes the JumpingStop descent.
func (s PlayerState) IsJumping() bool {
	switch s {
	case Jumping, JumpingLeft, JumpingRight, JumpingStop:
		return true
	}
	return false
}

func (s PlayerState) IsJumpingUp() bool {
	switch s {
	case Jumping, JumpingLeft, JumpingRight:
		return true
	}
	return false
}

func (s PlayerState) IsRunning() bool {
	switch s {
	case RunningLeft, RunningRight, RunningStop:
		return true
	}
	return false
}

func (s PlayerState) IsDashing() bool {
	return s == DashingLeft || s == DashingRight
}

func (s PlayerState) IsFalling() bool {
	switch s {
	case Falling, FallingLeft, FallingRight:
		return true
	}
	return false
}
