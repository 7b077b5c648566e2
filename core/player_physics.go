package core

import (
	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/shared/gamemath"
	"github.com/automoto/blutti/shared/leveldata"
)

// Update runs one physics tick: velocities, movement, then state upkeep.
func (p *Player) Update(w *World) {
	p.Animation.Update()

	p.updateHorizontalVelocity(w)
	p.updateVerticalVelocity()

	// Landing resets the fall timer, so keep what it was for the fall damage check.
	fallen := p.fallTimer
	body := playerBody{p: p, w: w}
	p.Pos, p.Remainder = gamemath.MoveHorizontally(body, p.Pos, p.Velocity, p.Remainder)
	p.Pos, p.Remainder = gamemath.MoveVertically(body, p.Pos, p.Velocity, p.Remainder)

	p.updateStates(w, fallen)
}

func (p *Player) horizontalTarget() (accel, target float64) {
	pc := cfg.Player
	left := p.FacingX == cfg.DirectionLeft
	switch p.State {
	case RunningLeft:
		return -pc.RunningAcceleration, -pc.MaxVelocity
	case RunningRight:
		return pc.RunningAcceleration, pc.MaxVelocity
	case RunningStop:
		if left {
			return pc.RunningAcceleration, 0
		}
		return -pc.RunningAcceleration, 0
	case JumpingLeft:
		return -pc.JumpAcceleration, -pc.JumpVelocity
	case JumpingRight:
		return pc.JumpAcceleration, pc.JumpVelocity
	case JumpingStop:
		switch gamemath.Sign(p.Velocity.X) {
		case 1:
			return pc.JumpAcceleration, pc.JumpVelocity
		case -1:
			return -pc.JumpAcceleration, -pc.JumpVelocity
		}
	case DashingLeft:
		return -pc.DashAcceleration, -pc.DashVelocity
	case DashingRight:
		return pc.DashAcceleration, pc.DashVelocity
	case ClimbingSideways:
		if left {
			return -pc.ClimbSidewaysAcceleration, -pc.ClimbSidewaysVelocity
		}
		return pc.ClimbSidewaysAcceleration, pc.ClimbSidewaysVelocity
	case ClimbingSidewaysStop:
		if left {
			return pc.ClimbStopAcceleration, 0
		}
		return -pc.ClimbStopAcceleration, 0
	case FallingLeft:
		return -pc.FallingXAcceleration, -pc.MaxFallingVelocity
	case FallingRight:
		return pc.FallingXAcceleration, pc.MaxFallingVelocity
	}
	return 0, 0
}

func (p *Player) verticalTarget() (accel, target float64) {
	pc := cfg.Player
	switch p.State {
	case Jumping, JumpingLeft, JumpingRight:
		return pc.JumpRiseAccel, pc.JumpRiseTarget
	case JumpingStop:
		return pc.JumpStopAccel, pc.JumpStopTarget
	case ClimbingUp:
		return -pc.ClimbAcceleration, -pc.ClimbVelocity
	case ClimbingDown:
		return pc.ClimbAcceleration, pc.ClimbVelocity
	case ClimbingStop:
		return pc.ClimbHoldAcceleration, 0
	case Falling, FallingLeft, FallingRight:
		return cfg.Physics.GravityAcceleration, cfg.Physics.GravityMax
	}
	return 0, 0
}

func (p *Player) updateHorizontalVelocity(w *World) {
	accel, target := p.horizontalTarget()
	accel *= p.modifier
	target *= p.modifier

	if p.standingOn(w, leveldata.Conveyor) {
		accel += cfg.Player.ConveyorAcceleration
		switch {
		case target > 0:
			target += cfg.Player.ConveyorSpeed
		case target < 0:
			target -= cfg.Player.ConveyorSpeed
		default:
			// The belt runs right; a resting player drifts with it.
			target = cfg.Player.ConveyorSpeed
		}
	}
	p.Velocity.X = gamemath.ClampToward(p.Velocity.X, accel, target)
}

func (p *Player) updateVerticalVelocity() {
	accel, target := p.verticalTarget()
	p.Velocity.Y = gamemath.ClampToward(p.Velocity.Y, accel*p.modifier, target*p.modifier)
}

func (p *Player) updateStates(w *World, fallen int) {
	if p.State.IsFalling() {
		p.fallTimer++
	}

	if p.jumpBuffer > 0 && p.standing(w) {
		p.jump(w)
	}
	if p.State.IsFalling() || p.State.IsJumping() {
		p.jumpBuffer = max(p.jumpBuffer-1, 0)
	}

	onLadder := p.onLadder(w)
	if !p.IsMoving() && !p.State.IsIdling() && !p.State.IsJumping() ||
		p.State.IsClimbing() && !onLadder ||
		p.State == Idle && onLadder {
		p.stopMovement(w, gamemath.AxisBoth)
	}

	if p.State == RunningStop {
		if p.stopTimer > 0 {
			p.stopTimer--
		} else {
			p.stopMovement(w, gamemath.AxisX)
		}
	}

	if p.State.IsJumping() {
		if p.State == JumpingStop {
			p.jumpTimer--
			if p.jumpTimer <= 0 {
				p.stopMovement(w, gamemath.AxisY)
			}
		} else {
			p.jumpTimer++
			if p.jumpTimer > p.jumpMaxTime {
				p.State = JumpingStop
			}
		}
	}

	if p.State.IsDashing() {
		p.dashTimer--
		if p.dashTimer == 0 {
			p.stopMovement(w, gamemath.AxisX)
			p.dashTimer = -cfg.Player.DashWaitTime
		}
	} else if p.dashTimer < 0 {
		p.dashTimer++
	}

	if p.standing(w) {
		if max(p.fallTimer, fallen) > cfg.Player.MaxFallHeight {
			p.Die(w)
			return
		}
	} else if !p.State.IsJumping() && !p.State.IsDashing() && !p.State.IsFalling() {
		p.stopMovement(w, gamemath.AxisY)
	}

	if p.Pos.Y >= cfg.Screen.Height-cfg.Level.TileSize {
		p.Die(w)
		return
	}

	if w.Level.DeadlyMonsterOverlaps(p.Rect()) {
		p.Die(w)
	}
}

// stopMovement clears the axis velocity and the ability timers, then
// settles into an idle state.
func (p *Player) stopMovement(w *World, axis gamemath.Axis) {
	p.jumpTimer = 0
	p.dashTimer = 0
	if axis != gamemath.AxisX {
		p.fallTimer = 0
	}
	p.modifier = 1
	p.Remainder = gamemath.Vec2{}
	switch axis {
	case gamemath.AxisX:
		p.Velocity.X = 0
	case gamemath.AxisY:
		p.Velocity.Y = 0
	case gamemath.AxisBoth:
		p.Velocity = gamemath.Vec2{}
	}
	p.startIdling(w)
}

// playerBody is the player as seen by the resolver.
type playerBody struct {
	p *Player
	w *World
}

func (b playerBody) CollisionAt(pos gamemath.Point) bool {
	for _, c := range b.p.collisionPoints(pos) {
		if !b.p.positionFree(b.w, c) {
			return true
		}
	}
	return false
}

func (b playerBody) StopMovement(axis gamemath.Axis) {
	b.p.stopMovement(b.w, axis)
}

// collisionPoints are the four probe points of the footprint at pos. The
// body is narrower than a tile on the side it faces away from, and
// narrower still on both sides while climbing.
func (p *Player) collisionPoints(pos gamemath.Point) [4]gamemath.Point {
	r := cfg.Player.LadderReach
	left := p.FacingX == cfg.DirectionLeft
	switch {
	case p.State.IsClimbing() && left:
		return [4]gamemath.Point{pos.AddX(r), pos.TopRight().AddX(-r - 1), pos.BottomLeft().AddX(r), pos.BottomRight().AddX(-r - 1)}
	case p.State.IsClimbing():
		return [4]gamemath.Point{pos.AddX(r + 1), pos.TopRight().AddX(-r), pos.BottomLeft().AddX(r + 1), pos.BottomRight().AddX(-r)}
	case left:
		return [4]gamemath.Point{pos, pos.TopRight().AddX(-r), pos.BottomLeft(), pos.BottomRight().AddX(-r)}
	}
	return [4]gamemath.Point{pos.AddX(r), pos.TopRight(), pos.BottomLeft().AddX(r), pos.BottomRight()}
}

func (p *Player) positionFree(w *World, pt gamemath.Point) bool {
	return !w.Level.Collider(pt).Blocking() && !w.Level.MonsterAt(pt, nil, (*Monster).BlocksPlayer)
}

func (p *Player) standing(w *World) bool {
	if p.standingOn(w, leveldata.Climbable) {
		return true
	}
	return !(p.positionFree(w, p.Pos.BelowBottomLeft()) && p.positionFree(w, p.Pos.BelowBottomRight()))
}

func (p *Player) standingOn(w *World, c leveldata.Collider) bool {
	return w.Level.Collider(p.Pos.BelowBottomLeft()) == c || w.Level.Collider(p.Pos.BelowBottomRight()) == c
}

func (p *Player) canClimb(w *World) bool {
	if p.FacingY == cfg.DirectionUp {
		return p.onLadder(w)
	}
	return p.onLadderBelow(w)
}

// onLadder checks the feet, or the tile under them when facing down.
func (p *Player) onLadder(w *World) bool {
	if p.FacingY == cfg.DirectionDown {
		return p.onLadderBelow(w)
	}
	return p.ladderAt(w, p.Pos.BottomLeft(), p.Pos.BottomRight())
}

func (p *Player) onLadderBelow(w *World) bool {
	return p.ladderAt(w, p.Pos.BelowBottomLeft(), p.Pos.BelowBottomRight())
}

// ladderAt tests a left and right foot point, pulled in on the side the
// player faces away from.
func (p *Player) ladderAt(w *World, left, right gamemath.Point) bool {
	if p.FacingX == cfg.DirectionLeft {
		right = right.AddX(-cfg.Player.LadderReach)
	} else {
		left = left.AddX(cfg.Player.LadderReach)
	}
	return w.Level.Collider(left) == leveldata.Climbable || w.Level.Collider(right) == leveldata.Climbable
}
