package core

import (
	"github.com/automoto/blutti/assets/animations"
	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/shared/gamemath"
	"github.com/automoto/blutti/shared/leveldata"
	"github.com/automoto/blutti/tags"
	"github.com/solarlune/resolv"
)

// Rider is what a monster needs to know about the player.
type Rider interface {
	Position() gamemath.Point
	StandingOnRect(r gamemath.Rect) bool
}

// Monster is a level actor. Its footprint is W×H pixels.
type Monster struct {
	Collision leveldata.MonsterCollision
	Movement  leveldata.MonsterMovement
	Gravity   bool
	Pos       gamemath.Point
	Velocity  gamemath.Vec2
	W, H      int

	remainder gamemath.Vec2
	forward   animations.Set
	reverse   animations.Set
	obj       *resolv.Object
}

func NewMonster(d leveldata.MonsterData) *Monster {
	tpf := cfg.Monster.TicksPerFrame
	m := &Monster{
		Collision: d.Collision,
		Movement:  d.Movement,
		Gravity:   d.Gravity,
		Pos:       d.Position,
		Velocity:  d.Velocity,
		W:         d.Width,
		H:         d.Height,
		forward:   animations.NewSet(d.Sprites, d.Frames, tpf),
		reverse:   animations.NewSet(d.ReverseSprites, d.Frames, tpf),
	}
	m.obj = resolv.NewObject(float64(m.Pos.X), float64(m.Pos.Y), float64(m.W), float64(m.H), tags.ResolvMonster)
	switch m.Collision {
	case leveldata.CollisionBlocking:
		m.obj.AddTags(tags.ResolvBlocking)
	case leveldata.CollisionBlockingMonster:
		m.obj.AddTags(tags.ResolvBlockingMonster)
	case leveldata.CollisionDeadly:
		m.obj.AddTags(tags.ResolvDeadly)
	}
	m.obj.Data = m
	return m
}

func (m *Monster) Rect() gamemath.Rect {
	return gamemath.NewRect(m.Pos, m.W, m.H)
}

// BlocksPlayer reports whether the player collides with this monster like a wall.
func (m *Monster) BlocksPlayer() bool {
	return m.Collision == leveldata.CollisionBlocking
}

// BlocksMonsters reports whether other monsters collide with this monster.
func (m *Monster) BlocksMonsters() bool {
	return m.Collision == leveldata.CollisionBlocking || m.Collision == leveldata.CollisionBlockingMonster
}

func (m *Monster) Deadly() bool {
	return m.Collision == leveldata.CollisionDeadly
}

// Update runs one tick. When the player rides a blocking monster, the
// monster's velocity is returned so the caller can carry the player along.
func (m *Monster) Update(l *Level, rider Rider) (push gamemath.Vec2, pushed bool) {
	m.forward.Update()
	m.reverse.Update()

	if m.Gravity {
		m.Velocity.Y = min(m.Velocity.Y+cfg.Physics.GravityAcceleration, cfg.Physics.GravityMax)
	}

	body := monsterBody{m: m, l: l}
	if m.Movement == leveldata.MovementFlying || body.standing() {
		if m.Movement == leveldata.MovementFollowsPlayer {
			m.steerToward(rider.Position())
		}
		m.Pos, m.remainder = gamemath.MoveHorizontally(body, m.Pos, m.Velocity, m.remainder)
	}
	m.Pos, m.remainder = gamemath.MoveVertically(body, m.Pos, m.Velocity, m.remainder)
	l.syncMonster(m)

	if m.BlocksPlayer() && rider.StandingOnRect(m.Rect()) {
		return m.Velocity, true
	}
	return gamemath.Vec2{}, false
}

// steerToward turns around when the target is behind the monster.
func (m *Monster) steerToward(target gamemath.Point) {
	if (target.X > m.Pos.X && m.Velocity.X < 0) || (target.X < m.Pos.X && m.Velocity.X > 0) {
		m.turnX()
	}
}

func (m *Monster) turnX() {
	m.Velocity.X = -m.Velocity.X
	m.forward.Restart()
}

// Sprites are the current sprites, column by column.
func (m *Monster) Sprites() []int {
	if m.Velocity.X > 0 || m.Velocity.Y > 0 {
		return m.forward.Sprites()
	}
	return m.reverse.Sprites()
}

// TileOrigins are the draw positions matching Sprites.
func (m *Monster) TileOrigins() []gamemath.Point {
	ts := cfg.Level.TileSize
	cols, rows := max(m.W/ts, 1), max(m.H/ts, 1)
	out := make([]gamemath.Point, 0, cols*rows)
	for x := range cols {
		for y := range rows {
			out = append(out, gamemath.Pt(m.Pos.X+x*ts, m.Pos.Y+y*ts))
		}
	}
	return out
}

// monsterBody is a monster as seen by the resolver.
type monsterBody struct {
	m *Monster
	l *Level
}

func (b monsterBody) free(p gamemath.Point) bool {
	return !b.l.Collider(p).Blocking() && !b.l.MonsterAt(p, b.m, (*Monster).BlocksMonsters)
}

func (b monsterBody) CollisionAt(p gamemath.Point) bool {
	r := gamemath.NewRect(p, b.m.W, b.m.H)
	for _, c := range r.Corners() {
		if !b.free(c) {
			return true
		}
	}
	return b.edgeBelow(r)
}

// edgeBelow reports a missing floor ahead of an edge-turning monster.
func (b monsterBody) edgeBelow(r gamemath.Rect) bool {
	if b.m.Movement != leveldata.MovementTurnsAtEdge {
		return false
	}
	switch {
	case b.m.Velocity.X < 0:
		return b.free(r.BelowBottomLeft())
	case b.m.Velocity.X > 0:
		return b.free(r.BelowBottomRight())
	}
	return false
}

func (b monsterBody) StopMovement(axis gamemath.Axis) {
	switch axis {
	case gamemath.AxisX:
		b.m.turnX()
	case gamemath.AxisY:
		if !b.m.Gravity {
			b.m.Velocity.Y = -b.m.Velocity.Y
			b.m.reverse.Restart()
		}
	}
}

func (b monsterBody) standing() bool {
	r := b.m.Rect()
	bl, br := r.BelowBottomLeft(), r.BelowBottomRight()
	if b.l.Collider(bl) == leveldata.Climbable || b.l.Collider(br) == leveldata.Climbable {
		return true
	}
	return !(b.free(bl) && b.free(br))
}
