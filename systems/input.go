package systems

import (
	"math"

	"github.com/automoto/blutti/components"
	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Binding maps an action to keys and standard gamepad buttons.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionMoveUp: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	cfg.ActionMoveDown: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	cfg.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeyZ, ebiten.KeySpace},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionDash: {
		Keys:                   []ebiten.Key{ebiten.KeyX, ebiten.KeyShiftLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightLeft},
	},
	cfg.ActionConfirm: {
		Keys:                   []ebiten.Key{ebiten.KeyEnter, ebiten.KeyE},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop, ebiten.StandardGamepadButtonCenterRight},
	},
	cfg.ActionCredits:      {Keys: []ebiten.Key{ebiten.KeyC}},
	cfg.ActionInfo:         {Keys: []ebiten.Key{ebiten.KeyI}},
	cfg.ActionDebug:        {Keys: []ebiten.Key{ebiten.KeyF3}},
	cfg.ActionCheatRestart: {Keys: []ebiten.Key{ebiten.KeyF5}},
	cfg.ActionCheatLives:   {Keys: []ebiten.Key{ebiten.KeyF6}},
	cfg.ActionCheatPoints:  {Keys: []ebiten.Key{ebiten.KeyF7}},
}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into the Input component.
// Must run BEFORE UpdateGame in the system order.
func UpdateInput(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	input.AxisX, input.AxisY = 0, 0

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Left stick of the first standard gamepad that is pushed.
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		x := scaleAxis(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal))
		y := scaleAxis(ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical))
		if x != 0 || y != 0 {
			input.AxisX, input.AxisY = x, y
			break
		}
	}
}

func scaleAxis(v float64) int {
	return int(math.Round(v * float64(cfg.Input.AxisRange)))
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// CoreInput turns one frame of actions into simulation input. Keys move at
// full speed; the stick walks or runs depending on how far it is pushed.
func CoreInput(input *components.InputData) core.Input {
	held := func(id cfg.ActionID) bool { return input.Current[id] }
	pressed := func(id cfg.ActionID) bool { return GetAction(input, id).JustPressed }

	in := core.Input{
		Left:         held(cfg.ActionMoveLeft),
		Right:        held(cfg.ActionMoveRight),
		Up:           held(cfg.ActionMoveUp),
		Down:         held(cfg.ActionMoveDown),
		JumpPressed:  pressed(cfg.ActionJump),
		JumpReleased: GetAction(input, cfg.ActionJump).JustReleased,
		DashPressed:  pressed(cfg.ActionDash),
		Confirm:      pressed(cfg.ActionConfirm),
		Credits:      pressed(cfg.ActionCredits),
		Info:         pressed(cfg.ActionInfo),
		ToggleDebug:  pressed(cfg.ActionDebug),
		CheatRestart: pressed(cfg.ActionCheatRestart),
		CheatLives:   pressed(cfg.ActionCheatLives),
		CheatPoints:  pressed(cfg.ActionCheatPoints),
	}

	if !in.Left && !in.Right && abs(input.AxisX) > cfg.Input.WalkThreshold {
		in.Left = input.AxisX < 0
		in.Right = input.AxisX > 0
		in.SpeedX = cfg.AxisToSpeed(input.AxisX)
	}
	if !in.Up && !in.Down && abs(input.AxisY) > cfg.Input.WalkThreshold {
		in.Up = input.AxisY < 0
		in.Down = input.AxisY > 0
		in.SpeedY = cfg.AxisToSpeed(input.AxisY)
	}
	return in
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
