package core

import (
	"slices"

	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/shared/gamemath"
	"github.com/automoto/blutti/shared/leveldata"
	"github.com/automoto/blutti/tags"
	"github.com/solarlune/resolv"
)

// Collision is a tile collider found at a point.
type Collision struct {
	Collider leveldata.Collider
	Pos      gamemath.Point
}

// Level is the live, mutable copy of a level asset.
type Level struct {
	Number          int
	Name            string
	BackgroundColor string
	FontColor       string
	Stars           int
	Start           gamemath.Point
	Monsters        []*Monster
	Particles       []*Particle

	tiles          []int
	particleChance int
	particleSprite int
	spawns         []leveldata.MonsterData
	space          *resolv.Space
	probe          *resolv.Object
	rng            Roller
}

// NewLevel copies data so the asset itself is never mutated.
func NewLevel(number int, data *leveldata.LevelData, rng Roller) *Level {
	l := &Level{
		Number:          number,
		Name:            data.Name,
		BackgroundColor: data.BackgroundColor,
		FontColor:       data.FontColor,
		Stars:           data.Stars,
		Start:           data.StartPosition,
		tiles:           slices.Clone(data.Tiles),
		particleChance:  data.ParticleChance,
		particleSprite:  data.ParticleSprite,
		spawns:          slices.Clone(data.Monsters),
		rng:             rng,
	}
	ts := cfg.Level.TileSize
	l.space = resolv.NewSpace(cfg.Screen.Width, cfg.Screen.Height, ts, ts)
	l.probe = resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe)
	l.space.Add(l.probe)
	l.spawnMonsters()
	return l
}

func (l *Level) spawnMonsters() {
	for _, m := range l.Monsters {
		l.space.Remove(m.obj)
	}
	l.Monsters = l.Monsters[:0]
	for _, d := range l.spawns {
		m := NewMonster(d)
		l.space.Add(m.obj)
		l.Monsters = append(l.Monsters, m)
	}
}

// Reset puts every monster back at its spawn. Tiles and particles are left
// alone; World.ReloadLevel rebuilds from the asset for those.
func (l *Level) Reset() {
	l.spawnMonsters()
}

// Tile returns the 1-based sprite id at p, or the out-of-range sprite
// for points outside the grid.
func (l *Level) Tile(p gamemath.Point) int {
	idx, ok := p.TileIndex()
	if !ok || idx >= len(l.tiles) {
		return cfg.Level.OutOfRangeSprite
	}
	return l.tiles[idx]
}

// Tiles exposes the grid for drawing. Callers must not modify it.
func (l *Level) Tiles() []int {
	return l.tiles
}

// Collider is the tile collider at p. Points outside the grid are Full.
func (l *Level) Collider(p gamemath.Point) leveldata.Collider {
	sprite := l.Tile(p)
	if sprite == 0 {
		return leveldata.None
	}
	return leveldata.SpriteCollider(sprite - 1)
}

// CollisionAt reports the tile collision at p, if any.
func (l *Level) CollisionAt(p gamemath.Point) (Collision, bool) {
	c := l.Collider(p)
	if c == leveldata.None {
		return Collision{}, false
	}
	return Collision{Collider: c, Pos: p}, true
}

// RemoveTile clears the tile containing p.
func (l *Level) RemoveTile(p gamemath.Point) {
	if idx, ok := p.TileIndex(); ok && idx < len(l.tiles) {
		l.tiles[idx] = 0
	}
}

// MonstersAt returns the monsters whose footprint contains p.
func (l *Level) MonstersAt(p gamemath.Point) []*Monster {
	var out []*Monster
	l.eachCandidate(gamemath.NewRect(p, 1, 1), tags.ResolvMonster, func(m *Monster) {
		if m.Rect().Contains(p) {
			out = append(out, m)
		}
	})
	return out
}

// MonsterAt reports whether a monster other than self that satisfies
// match covers p.
func (l *Level) MonsterAt(p gamemath.Point, self *Monster, match func(*Monster) bool) bool {
	for _, m := range l.MonstersAt(p) {
		if m != self && match(m) {
			return true
		}
	}
	return false
}

// DeadlyMonsterOverlaps reports whether any deadly monster overlaps r.
func (l *Level) DeadlyMonsterOverlaps(r gamemath.Rect) bool {
	found := false
	l.eachCandidate(r, tags.ResolvDeadly, func(m *Monster) {
		if m.Rect().Overlaps(r) {
			found = true
		}
	})
	return found
}

// eachCandidate runs fn for the monsters sharing a broadphase cell with r.
func (l *Level) eachCandidate(r gamemath.Rect, tag string, fn func(*Monster)) {
	l.probe.X, l.probe.Y = float64(r.Pos.X), float64(r.Pos.Y)
	l.probe.W, l.probe.H = float64(r.W), float64(r.H)
	check := l.probe.Check(0, 0, tag)
	if check == nil {
		return
	}
	for _, obj := range check.Objects {
		if m, ok := obj.Data.(*Monster); ok {
			fn(m)
		}
	}
}

func (l *Level) syncMonster(m *Monster) {
	m.obj.X, m.obj.Y = float64(m.Pos.X), float64(m.Pos.Y)
	m.obj.Update()
}

// Objects lists the broadphase objects, probe included, for the debug overlay.
func (l *Level) Objects() []*resolv.Object {
	return l.space.Objects()
}

// AddParticle spawns p on the level.
func (l *Level) AddParticle(p *Particle) {
	l.Particles = append(l.Particles, p)
}

// Update moves monsters and particles. The returned push is the sum of the
// velocities of blocking monsters the rider is standing on.
func (l *Level) Update(rider Rider) (push gamemath.Vec2) {
	for _, m := range l.Monsters {
		if v, ok := m.Update(l, rider); ok {
			push = push.Add(v)
		}
	}

	if l.particleChance > 0 && l.rng.IntN(cfg.Particle.RollRange) < l.particleChance {
		l.AddParticle(NewAmbientParticle(l.particleSprite, l.rng))
	}

	pos := rider.Position()
	for _, p := range l.Particles {
		p.Update(pos, l.rng)
	}
	l.Particles = slices.DeleteFunc(l.Particles, (*Particle).Expired)
	return push
}
