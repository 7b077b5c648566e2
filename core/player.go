package core

import (
	"github.com/automoto/blutti/assets/animations"
	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/shared/gamemath"
	"github.com/automoto/blutti/shared/leveldata"
)

// Player is Blutti.
type Player struct {
	Pos       gamemath.Point
	Start     gamemath.Point
	FacingX   int
	FacingY   int
	State     PlayerState
	Velocity  gamemath.Vec2
	Remainder gamemath.Vec2
	Animation *animations.Animation

	Points      int
	Stars       int
	Lives       int
	LevelNumber int

	Died         bool
	Finished     bool
	Invulnerable bool

	modifier    float64
	jumpTimer   int
	jumpMaxTime int
	jumpBuffer  int
	dashTimer   int
	fallTimer   int
	stopTimer   int
	currentTile int
}

// NewPlayer returns a fresh player with full lives at start.
func NewPlayer(start gamemath.Point, level int) *Player {
	return &Player{
		Pos:         start,
		Start:       start,
		FacingX:     cfg.DirectionRight,
		FacingY:     cfg.DirectionUp,
		State:       Idle,
		Animation:   animations.FromDef(cfg.Animations.IdleRight),
		Lives:       cfg.Player.StartingLives,
		LevelNumber: level,
		modifier:    1,
	}
}

// AtNewLevel returns a fresh player that keeps points, lives and cheats.
func (p *Player) AtNewLevel(start gamemath.Point, level int) *Player {
	next := NewPlayer(start, level)
	next.Points = p.Points
	next.Lives = p.Lives
	next.Invulnerable = p.Invulnerable
	return next
}

func (p *Player) Position() gamemath.Point {
	return p.Pos
}

func (p *Player) Rect() gamemath.Rect {
	return gamemath.TileRect(p.Pos)
}

func (p *Player) Alive() bool {
	return p.Lives > 0
}

// StandingOnRect reports whether either foot rests on r.
func (p *Player) StandingOnRect(r gamemath.Rect) bool {
	return r.Contains(p.Pos.BelowBottomLeft()) || r.Contains(p.Pos.BelowBottomRight())
}

// ForceMove carries the player along by v, e.g. on a moving platform.
func (p *Player) ForceMove(v gamemath.Vec2) {
	p.Remainder = p.Remainder.Add(v)
}

func (p *Player) AddLives(n int) int {
	p.Lives += n
	return p.Lives
}

func (p *Player) AddPoints(n int) int {
	p.Points += n
	return p.Points
}

// IsMoving reports whether the player still has velocity.
func (p *Player) IsMoving() bool {
	return !p.Velocity.IsZero()
}

func (p *Player) MoveLeft(w *World, speed float64) {
	p.modifier = speed
	p.turn(w, cfg.DirectionLeft)
	p.startMoving(w)
}

func (p *Player) MoveRight(w *World, speed float64) {
	p.modifier = speed
	p.turn(w, cfg.DirectionRight)
	p.startMoving(w)
}

func (p *Player) MoveUp(w *World, speed float64) {
	p.modifier = speed
	p.FacingY = cfg.DirectionUp
	p.startClimbing(w)
}

func (p *Player) MoveDown(w *World, speed float64) {
	p.modifier = speed
	p.FacingY = cfg.DirectionDown
	p.startClimbing(w)
}

// Stop eases out of the current directional movement. Slippery floors
// ignore it.
func (p *Player) Stop(w *World) {
	if p.standingOn(w, leveldata.Slippery) {
		return
	}
	switch p.State {
	case RunningLeft, RunningRight:
		p.stopTimer = cfg.Player.RunningStopTime
		p.State = RunningStop
	case FallingLeft, FallingRight:
		p.State = Falling
	case ClimbingUp, ClimbingDown:
		p.State = ClimbingStop
	case ClimbingSideways:
		p.State = ClimbingSidewaysStop
	}
}

// StartJump jumps when grounded or shortly after walking off a ledge.
// Otherwise the press is buffered and fires on landing.
func (p *Player) StartJump(w *World) {
	if p.standing(w) || p.State.IsFalling() && p.fallTimer < cfg.Player.CoyoteThreshold {
		p.jump(w)
		return
	}
	// +1 because the buffer is also counted down on the tick it is armed.
	p.jumpBuffer = cfg.Player.JumpBuffer + 1
}

// StopJump cuts the ascent short.
func (p *Player) StopJump() {
	if p.State.IsJumping() {
		p.State = JumpingStop
	}
}

func (p *Player) StartDash(w *World) {
	if p.dashTimer < 0 {
		return
	}
	if !p.State.IsJumping() && !p.State.IsFalling() {
		return
	}
	switch {
	case p.State == JumpingLeft || p.State == FallingLeft:
		p.State = DashingLeft
	case p.State == JumpingRight || p.State == FallingRight:
		p.State = DashingRight
	case p.FacingX == cfg.DirectionLeft:
		p.State = DashingLeft
	default:
		p.State = DashingRight
	}
	p.dashTimer = cfg.Player.DashTime

	offset := -cfg.Particle.DashOffset
	if p.FacingX == cfg.DirectionLeft {
		offset = cfg.Particle.DashOffset
	}
	w.Level.AddParticle(NewFollowingParticle(p.Pos, p.byFacingDef(cfg.Particles.DashLeft, cfg.Particles.DashRight), offset))
	w.Effects.PlaySound(cfg.SoundDash)
}

func (p *Player) startMoving(w *World) {
	switch {
	case p.onLadder(w):
		if p.State != ClimbingSideways {
			p.Velocity.Y = 0
			p.State = ClimbingSideways
		}
	case p.State.IsFalling():
		p.State = p.byFacing(FallingLeft, FallingRight)
	case p.State.IsJumpingUp():
		p.State = p.byFacing(JumpingLeft, JumpingRight)
	case p.standing(w):
		if !p.State.IsRunning() {
			p.setAnimation(p.byFacingDef(cfg.Animations.RunningLeft, cfg.Animations.RunningRight))
			p.State = p.byFacing(RunningLeft, RunningRight)
		}
	}
}

func (p *Player) startClimbing(w *World) {
	if !p.canClimb(w) || p.State == ClimbingUp || p.State == ClimbingDown {
		return
	}
	p.Velocity.X = 0
	if !p.State.IsClimbing() {
		p.setAnimation(p.climbAnimation())
	}
	if p.FacingY == cfg.DirectionUp {
		p.State = ClimbingUp
	} else {
		p.State = ClimbingDown
	}
}

func (p *Player) startIdling(w *World) {
	switch {
	case p.onLadder(w):
		if p.State != ClimbingIdle {
			p.State = ClimbingIdle
			p.setAnimation(p.climbAnimation())
		}
	case !p.standing(w):
		p.State = Falling
	case p.State != Idle:
		p.State = Idle
		p.setAnimation(p.byFacingDef(cfg.Animations.IdleLeft, cfg.Animations.IdleRight))
	}
}

func (p *Player) turn(w *World, dir int) {
	if p.FacingX == dir {
		return
	}
	p.FacingX = dir
	at := p.Pos.BottomRight()
	if dir == cfg.DirectionLeft {
		at = p.Pos.BottomLeft()
	}
	turned := p.byFacingDef(cfg.Particles.TurnLeft, cfg.Particles.TurnRight)
	w.Level.AddParticle(NewStationaryParticle(at.AddY(-cfg.Particle.TurnRaise), turned))
	p.setAnimation(p.byFacingDef(cfg.Animations.RunningLeft, cfg.Animations.RunningRight))
}

func (p *Player) jump(w *World) {
	w.Effects.PlaySound(cfg.SoundJump)
	switch p.State {
	case RunningLeft:
		p.State = JumpingLeft
	case RunningRight:
		p.State = JumpingRight
	default:
		p.State = Jumping
	}
	p.jumpMaxTime = cfg.Player.JumpTime
	if p.standingOn(w, leveldata.Slippery) {
		p.jumpMaxTime = cfg.Player.JumpTime / cfg.Player.SlipperyJumpRatio
	}
	p.jumpBuffer = 0
	w.Level.AddParticle(NewStationaryParticle(p.Pos.BottomLeft(), p.byFacingDef(cfg.Particles.JumpLeft, cfg.Particles.JumpRight)))
}

func (p *Player) byFacing(left, right PlayerState) PlayerState {
	if p.FacingX == cfg.DirectionLeft {
		return left
	}
	return right
}

func (p *Player) byFacingDef(left, right cfg.AnimationDef) cfg.AnimationDef {
	if p.FacingX == cfg.DirectionLeft {
		return left
	}
	return right
}

func (p *Player) climbAnimation() cfg.AnimationDef {
	return p.byFacingDef(cfg.Animations.ClimbLeft, cfg.Animations.ClimbRight)
}

func (p *Player) setAnimation(def cfg.AnimationDef) {
	p.Animation = animations.FromDef(def)
}
