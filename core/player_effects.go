package core

import (
	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/shared/gamemath"
	"github.com/automoto/blutti/shared/leveldata"
)

// HandleEffects applies the tile the player touches: pickups, hazards and
// the exit. When several corners touch something, the last one wins.
func (p *Player) HandleEffects(w *World) {
	if p.Died {
		return
	}
	var (
		hit   Collision
		found bool
	)
	for _, corner := range p.Rect().Corners() {
		if c, ok := w.Level.CollisionAt(corner); ok {
			hit, found = c, true
		}
	}
	if found {
		switch hit.Collider.Kind {
		case leveldata.ColliderCollectible:
			p.collect(w, hit)
			p.AddPoints(hit.Collider.Points)
			w.Effects.PlaySound(cfg.SoundCoin)
		case leveldata.ColliderDeadly:
			p.Die(w)
			return
		case leveldata.ColliderExit:
			p.exit(w)
		case leveldata.ColliderExtraLife:
			p.collect(w, hit)
			p.AddLives(1)
			w.Effects.PlaySound(cfg.SoundPowerup)
		case leveldata.ColliderStar:
			p.collect(w, hit)
			p.AddPoints(1)
			p.Stars++
			w.Effects.RecordProgress(cfg.ProgressStars, 1)
			w.Effects.PlaySound(cfg.SoundCoin)
		}
	}
	p.currentTile = tileIndex(p.Pos)
}

func (p *Player) collect(w *World, c Collision) {
	w.Level.RemoveTile(c.Pos)
	w.Level.AddParticle(NewStationaryParticle(c.Pos.TileOrigin(), cfg.Particles.Collection))
}

// exit finishes the level once enough stars are held. Otherwise the
// wrong sound plays once per tile entered.
func (p *Player) exit(w *World) {
	if p.Finished {
		return
	}
	if p.Stars >= w.Level.Stars {
		w.Effects.PlaySound(cfg.SoundExit)
		p.Finished = true
		p.setAnimation(p.byFacingDef(cfg.Animations.ExitLeft, cfg.Animations.ExitRight))
		w.Effects.RecordProgress(cfg.ProgressLevels, 1)
		return
	}
	if tile := tileIndex(p.Pos); tile != p.currentTile {
		w.Effects.PlaySound(cfg.SoundWrong)
		p.currentTile = tile
	}
}

// Die costs a life, rebuilds the level from its asset and moves the player
// back to the spawn. The died flag holds until Reset.
func (p *Player) Die(w *World) {
	if p.Invulnerable {
		return
	}
	w.ReloadLevel()
	p.Pos = p.Start
	p.stopMovement(w, gamemath.AxisBoth)
	p.State = Idle
	p.setAnimation(cfg.Animations.Death)
	p.AddLives(-1)
	w.Effects.RecordProgress(cfg.ProgressDeaths, 1)
	p.Died = true
	w.Effects.PlaySound(cfg.SoundDeath)
}

// Reset readies the player at the spawn after a death.
func (p *Player) Reset(w *World) {
	p.Died = false
	p.FacingX = cfg.DirectionRight
	p.FacingY = cfg.DirectionUp
	p.Pos = p.Start
	p.stopMovement(w, gamemath.AxisBoth)
	p.setAnimation(cfg.Animations.IdleRight)
	p.currentTile = 0
}

// Visible is false once a one-shot animation such as the exit has played.
func (p *Player) Visible() bool {
	return !p.Animation.Finished
}

// Inspection is a snapshot for the debug overlay.
type Inspection struct {
	State      PlayerState
	Pos        gamemath.Point
	Velocity   gamemath.Vec2
	JumpTimer  int
	JumpBuffer int
	FallTimer  int
	DashTimer  int
	OnLadder   bool
	CanClimb   bool
	Standing   bool
}

func (p *Player) Inspect(w *World) Inspection {
	return Inspection{
		State:      p.State,
		Pos:        p.Pos,
		Velocity:   p.Velocity,
		JumpTimer:  p.jumpTimer,
		JumpBuffer: p.jumpBuffer,
		FallTimer:  p.fallTimer,
		DashTimer:  p.dashTimer,
		OnLadder:   p.onLadder(w),
		CanClimb:   p.canClimb(w),
		Standing:   p.standing(w),
	}
}

func tileIndex(p gamemath.Point) int {
	idx, ok := p.TileIndex()
	if !ok {
		return -1
	}
	return idx
}
