package core

import (
	"testing"

	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/shared/gamemath"
	"github.com/automoto/blutti/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonsterTurnsAtEdge(t *testing.T) {
	d := floorLevel()
	fillRow(d, 15, 5, 9, tileFull)
	d.Monsters = []leveldata.MonsterData{
		monster(gamemath.Pt(48, 112), gamemath.Vec2{X: 1}, leveldata.CollisionDeadly, leveldata.MovementTurnsAtEdge),
	}
	l := NewLevel(0, d, &script{})
	m := l.Monsters[0]

	minX, maxX := m.Pos.X, m.Pos.X
	turnedAt := 0
	for range 80 {
		before := m.Velocity.X
		l.Update(rider{pos: gamemath.Pt(200, groundY)})
		minX, maxX = min(minX, m.Pos.X), max(maxX, m.Pos.X)
		if before > 0 && m.Velocity.X < 0 && turnedAt == 0 {
			turnedAt = m.Pos.X
		}
	}
	assert.Equal(t, 72, maxX, "right edge stays on the last platform tile")
	assert.Equal(t, 72, turnedAt)
	assert.Equal(t, 40, minX)
	assert.Equal(t, 112, m.Pos.Y)
}

func TestMovingMonsterFallsOffEdge(t *testing.T) {
	d := floorLevel()
	fillRow(d, 15, 5, 9, tileFull)
	walker := monster(gamemath.Pt(72, 112), gamemath.Vec2{X: 1}, leveldata.CollisionDeadly, leveldata.MovementMoving)
	walker.Gravity = true
	d.Monsters = []leveldata.MonsterData{walker}
	l := NewLevel(0, d, &script{})

	for range 60 {
		l.Update(rider{pos: gamemath.Pt(200, 40)})
	}
	m := l.Monsters[0]
	assert.Equal(t, groundY, m.Pos.Y)
	assert.Greater(t, m.Pos.X, 80)
	assert.Positive(t, m.Velocity.Y, "gravity keeps pulling without bouncing")
}

func TestLandedMonsterKeepsAnimating(t *testing.T) {
	walker := monster(gamemath.Pt(40, groundY), gamemath.Vec2{X: -0.5}, leveldata.CollisionDeadly, leveldata.MovementMoving)
	walker.Gravity = true
	walker.Frames = 2
	d := floorLevel()
	d.Monsters = []leveldata.MonsterData{walker}
	l := NewLevel(0, d, &script{})
	m := l.Monsters[0]

	// The floor blocks the fall every tick; that must not rewind the walk cycle.
	for range cfg.Monster.TicksPerFrame + 1 {
		l.Update(rider{pos: gamemath.Pt(200, groundY)})
	}
	require.Equal(t, groundY, m.Pos.Y)
	assert.Equal(t, []int{monsterSprite + 2}, m.reverse.Sprites())
}

func TestMonsterWithoutGroundWaits(t *testing.T) {
	d := emptyLevel(gamemath.Pt(16, groundY))
	d.Monsters = []leveldata.MonsterData{
		monster(gamemath.Pt(80, 40), gamemath.Vec2{X: 1}, leveldata.CollisionDeadly, leveldata.MovementMoving),
	}
	l := NewLevel(0, d, &script{})
	for range 10 {
		l.Update(rider{})
	}
	assert.Equal(t, gamemath.Pt(80, 40), l.Monsters[0].Pos)
}

func TestFlyingMonsterBouncesVertically(t *testing.T) {
	d := floorLevel()
	d.Monsters = []leveldata.MonsterData{
		monster(gamemath.Pt(80, 136), gamemath.Vec2{Y: 1}, leveldata.CollisionDeadly, leveldata.MovementFlying),
	}
	l := NewLevel(0, d, &script{})
	m := l.Monsters[0]
	forward := m.Sprites()

	for range 10 {
		l.Update(rider{})
	}
	assert.Equal(t, 143, m.Pos.Y)
	assert.Negative(t, m.Velocity.Y)
	assert.NotEqual(t, forward, m.Sprites(), "moving up shows the reverse sprites")
}

func TestBlockingMonstersBlockEachOther(t *testing.T) {
	d := floorLevel()
	d.Monsters = []leveldata.MonsterData{
		monster(gamemath.Pt(40, groundY), gamemath.Vec2{X: 1}, leveldata.CollisionDeadly, leveldata.MovementMoving),
		monster(gamemath.Pt(64, groundY), gamemath.Vec2{}, leveldata.CollisionBlockingMonster, leveldata.MovementMoving),
	}
	l := NewLevel(0, d, &script{})
	for range 20 {
		l.Update(rider{pos: gamemath.Pt(200, groundY)})
	}
	walker := l.Monsters[0]
	assert.LessOrEqual(t, walker.Pos.X, 56)
	assert.Negative(t, walker.Velocity.X)
}

func TestFollowingMonsterTurnsTowardPlayer(t *testing.T) {
	d := floorLevel()
	d.Monsters = []leveldata.MonsterData{
		monster(gamemath.Pt(120, groundY), gamemath.Vec2{X: 1}, leveldata.CollisionDeadly, leveldata.MovementFollowsPlayer),
	}
	l := NewLevel(0, d, &script{})
	l.Update(rider{pos: gamemath.Pt(16, groundY)})

	m := l.Monsters[0]
	assert.Negative(t, m.Velocity.X)
	assert.Equal(t, 119, m.Pos.X)
}

func TestMonsterTileOrigins(t *testing.T) {
	d := monster(gamemath.Pt(40, 80), gamemath.Vec2{}, leveldata.CollisionNone, leveldata.MovementFlying)
	d.Width, d.Height = 16, 16
	d.Sprites = []int{10, 20, 30, 40}
	d.ReverseSprites = []int{11, 21, 31, 41}
	m := NewMonster(d)

	require.Equal(t, []gamemath.Point{
		gamemath.Pt(40, 80), gamemath.Pt(40, 88), gamemath.Pt(48, 80), gamemath.Pt(48, 88),
	}, m.TileOrigins())
	assert.Equal(t, []int{11, 21, 31, 41}, m.Sprites())
}
