package core

import (
	"testing"

	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/shared/gamemath"
	"github.com/automoto/blutti/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rider struct {
	pos gamemath.Point
}

func (r rider) Position() gamemath.Point {
	return r.pos
}

func (r rider) StandingOnRect(rect gamemath.Rect) bool {
	return rect.Contains(r.pos.BelowBottomLeft()) || rect.Contains(r.pos.BelowBottomRight())
}

func TestLevelCollider(t *testing.T) {
	d := floorLevel()
	setTile(d, 5, 10, tileLadder)
	l := NewLevel(0, d, &script{})

	tests := []struct {
		name string
		at   gamemath.Point
		want leveldata.Collider
	}{
		{name: "empty", at: gamemath.Pt(8, 8), want: leveldata.None},
		{name: "floor", at: gamemath.Pt(100, 155), want: leveldata.Full},
		{name: "ladder", at: gamemath.Pt(43, 87), want: leveldata.Climbable},
		{name: "left of grid", at: gamemath.Pt(-1, 40), want: leveldata.Full},
		{name: "below grid", at: gamemath.Pt(40, 160), want: leveldata.Full},
		{name: "right of grid", at: gamemath.Pt(240, 40), want: leveldata.Full},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Collider(tt.at))
		})
	}

	_, ok := l.CollisionAt(gamemath.Pt(8, 8))
	assert.False(t, ok)
	c, ok := l.CollisionAt(gamemath.Pt(43, 87))
	require.True(t, ok)
	assert.Equal(t, gamemath.Pt(43, 87), c.Pos)
}

func TestRemoveTileLeavesAssetIntact(t *testing.T) {
	d := floorLevel()
	setTile(d, 3, 3, tileCoin)
	l := NewLevel(0, d, &script{})

	l.RemoveTile(gamemath.Pt(30, 29))
	assert.Equal(t, 0, l.Tile(gamemath.Pt(24, 24)))
	assert.Equal(t, tileCoin, d.Tiles[3*cfg.Level.TilesH+3])

	l.RemoveTile(gamemath.Pt(-5, -5))
}

func TestMonstersAt(t *testing.T) {
	d := floorLevel()
	wide := monster(gamemath.Pt(40, 80), gamemath.Vec2{}, leveldata.CollisionBlocking, leveldata.MovementFlying)
	wide.Width = 24
	d.Monsters = []leveldata.MonsterData{
		wide,
		monster(gamemath.Pt(100, 80), gamemath.Vec2{}, leveldata.CollisionDeadly, leveldata.MovementFlying),
	}
	l := NewLevel(0, d, &script{})

	assert.Len(t, l.MonstersAt(gamemath.Pt(40, 80)), 1)
	assert.Len(t, l.MonstersAt(gamemath.Pt(63, 87)), 1)
	assert.Empty(t, l.MonstersAt(gamemath.Pt(64, 87)))
	assert.Empty(t, l.MonstersAt(gamemath.Pt(40, 88)))

	blocker := l.Monsters[0]
	assert.True(t, l.MonsterAt(gamemath.Pt(50, 84), nil, (*Monster).BlocksPlayer))
	assert.False(t, l.MonsterAt(gamemath.Pt(50, 84), blocker, (*Monster).BlocksPlayer))
	assert.False(t, l.MonsterAt(gamemath.Pt(102, 84), nil, (*Monster).BlocksPlayer))

	assert.True(t, l.DeadlyMonsterOverlaps(gamemath.TileRect(gamemath.Pt(96, 76))))
	assert.False(t, l.DeadlyMonsterOverlaps(gamemath.TileRect(gamemath.Pt(40, 80))))
}

func TestLevelResetRespawnsMonsters(t *testing.T) {
	d := floorLevel()
	d.Monsters = []leveldata.MonsterData{
		monster(gamemath.Pt(40, 40), gamemath.Vec2{X: 1}, leveldata.CollisionDeadly, leveldata.MovementFlying),
	}
	l := NewLevel(0, d, &script{})
	for range 10 {
		l.Update(rider{pos: gamemath.Pt(200, groundY)})
	}
	require.Equal(t, 50, l.Monsters[0].Pos.X)
	l.AddParticle(NewStationaryParticle(gamemath.Pt(8, 8), cfg.Particles.JumpRight))

	l.Reset()
	require.Len(t, l.Monsters, 1)
	assert.Len(t, l.Particles, 1, "particles survive a monster reset")
	assert.Len(t, l.Objects(), 2, "old monster objects leave the space")
	assert.Equal(t, gamemath.Pt(40, 40), l.Monsters[0].Pos)
	assert.True(t, l.DeadlyMonsterOverlaps(gamemath.TileRect(gamemath.Pt(40, 40))))
	assert.False(t, l.DeadlyMonsterOverlaps(gamemath.TileRect(gamemath.Pt(50, 50))))
}

func TestAmbientParticleSpawnChance(t *testing.T) {
	d := floorLevel()
	d.ParticleChance = 10
	d.ParticleSprite = particleSprite0

	// Rolls: spawn check, then spawn x, then two drift rolls per live particle.
	rolls := script{50, 9, 120, 0, 0}
	l := NewLevel(0, d, &rolls)

	l.Update(rider{})
	assert.Empty(t, l.Particles)

	l.Update(rider{})
	require.Len(t, l.Particles, 1)
	p := l.Particles[0]
	assert.Equal(t, ParticleFalling, p.Movement)
	assert.Equal(t, gamemath.Pt(120, cfg.Particle.SpawnY), p.Pos)
	assert.Equal(t, particleSprite0, p.Animation.Sprite())
	assert.Empty(t, rolls)
}

func TestExpiredParticlesAreCulled(t *testing.T) {
	l := NewLevel(0, floorLevel(), &script{})
	l.AddParticle(NewStationaryParticle(gamemath.Pt(8, 8), cfg.Particles.JumpRight))
	l.AddParticle(&Particle{
		Pos:       gamemath.Pt(8, cfg.Screen.Height+1),
		Animation: NewStationaryParticle(gamemath.Pt(0, 0), cfg.Particles.JumpRight).Animation,
	})

	l.Update(rider{})
	require.Len(t, l.Particles, 1)

	for range 40 {
		l.Update(rider{})
	}
	assert.Empty(t, l.Particles)
}
