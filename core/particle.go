package core

import (
	"github.com/automoto/blutti/assets/animations"
	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/shared/gamemath"
)

// Roller yields uniform integers in [0, n).
type Roller interface {
	IntN(n int) int
}

// ParticleMovement decides how a particle moves each tick.
type ParticleMovement int

const (
	ParticleStationary ParticleMovement = iota
	ParticleFalling
	ParticleFollowing
)

// Particle is a short-lived visual effect.
type Particle struct {
	Pos       gamemath.Point
	Animation *animations.Animation
	Movement  ParticleMovement
	OffsetX   int // Following only
}

func NewStationaryParticle(pos gamemath.Point, def cfg.AnimationDef) *Particle {
	return &Particle{Pos: pos, Animation: animations.FromDef(def), Movement: ParticleStationary}
}

// NewFollowingParticle tracks the player at a horizontal offset.
func NewFollowingParticle(pos gamemath.Point, def cfg.AnimationDef, offsetX int) *Particle {
	return &Particle{
		Pos:       pos.AddX(offsetX),
		Animation: animations.FromDef(def),
		Movement:  ParticleFollowing,
		OffsetX:   offsetX,
	}
}

// NewAmbientParticle spawns a looping falling particle above the screen.
// sprite is the level's 0-based particle sprite; it alternates with the next one.
func NewAmbientParticle(sprite int, rng Roller) *Particle {
	pos := gamemath.Pt(rng.IntN(cfg.Screen.Width+cfg.Particle.SpawnExtraWidth), cfg.Particle.SpawnY)
	return &Particle{
		Pos:       pos,
		Animation: animations.NewLooping([]int{sprite, sprite + 1}, cfg.Particle.AmbientTicks),
		Movement:  ParticleFalling,
	}
}

// Update advances the animation and moves the particle. player is the
// current player position.
func (p *Particle) Update(player gamemath.Point, rng Roller) {
	p.Animation.Update()

	switch p.Movement {
	case ParticleFalling:
		p.Pos.X += driftX(rng.IntN(cfg.Particle.RollRange)) * cfg.Particle.Speed
		p.Pos.Y += driftY(rng.IntN(cfg.Particle.RollRange)) * cfg.Particle.Speed
	case ParticleFollowing:
		p.Pos = player.AddX(p.OffsetX)
	}
}

func driftX(roll int) int {
	switch {
	case roll >= cfg.Particle.DriftRightAbove:
		return 1
	case roll >= cfg.Particle.DriftLeftAbove:
		return -1
	}
	return 0
}

func driftY(roll int) int {
	switch {
	case roll >= cfg.Particle.DriftUpAbove:
		return -1
	case roll >= cfg.Particle.DriftDownAbove:
		return 1
	}
	return 0
}

// Expired particles are removed from the level.
func (p *Particle) Expired() bool {
	return p.Animation.Finished || p.Pos.Y > cfg.Screen.Height
}
