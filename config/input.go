package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionJump
	ActionDash
	ActionConfirm // start / restart / back
	ActionCredits
	ActionInfo
	ActionDebug
	ActionCheatRestart
	ActionCheatLives
	ActionCheatPoints
	ActionCount // Must be last - used for array sizing
)

// InputConfig holds stick thresholds. Axis values are in [-1000, 1000].
type InputConfig struct {
	WalkThreshold int     // |axis| above this moves
	RunThreshold  int     // |axis| above this runs
	WalkSpeed     float64 // movement modifier when walking
	RunSpeed      float64
	AxisRange     int
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		WalkThreshold: 100,
		RunThreshold:  400,
		WalkSpeed:     0.5,
		RunSpeed:      1.0,
		AxisRange:     1000,
	}
}

// AxisToSpeed converts an axis magnitude to a movement modifier.
func AxisToSpeed(axis int) float64 {
	if axis < 0 {
		axis = -axis
	}
	if axis > Input.RunThreshold {
		return Input.RunSpeed
	}
	return Input.WalkSpeed
}
