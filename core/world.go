package core

import (
	"fmt"
	"log"
	"math/rand/v2"

	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/shared/leveldata"
)

// LevelSource hands out pristine level assets by number.
type LevelSource interface {
	Level(number int) (*leveldata.LevelData, error)
	Count() int
}

// Input is one tick of player intent. Speeds are analog magnitudes.
type Input struct {
	Left, Right, Up, Down bool
	SpeedX, SpeedY        float64

	JumpPressed  bool
	JumpReleased bool
	DashPressed  bool

	Confirm      bool
	Credits      bool
	Info         bool
	ToggleDebug  bool
	CheatRestart bool
	CheatLives   bool
	CheatPoints  bool
}

// World is the simulation state handed to every actor update.
type World struct {
	Level   *Level
	Player  *Player
	Effects Effects

	source LevelSource
	rng    *rand.Rand
}

// NewWorld loads level number and places a fresh player at its start.
func NewWorld(source LevelSource, number int, effects Effects, seed uint64) (*World, error) {
	if effects == nil {
		effects = NopEffects{}
	}
	w := &World{
		Effects: effects,
		source:  source,
		rng:     rand.New(rand.NewPCG(seed, seed)),
	}
	if err := w.LoadLevel(number); err != nil {
		return nil, err
	}
	w.Player = NewPlayer(w.Level.Start, number)
	return w, nil
}

// LoadLevel replaces the level. The player is left alone.
func (w *World) LoadLevel(number int) error {
	data, err := w.source.Level(number)
	if err != nil {
		return fmt.Errorf("load level %d: %w", number, err)
	}
	w.Level = NewLevel(number, data, w.rng)
	return nil
}

// ReloadLevel rebuilds the current level from its asset, restoring
// collected tiles and monster spawns.
func (w *World) ReloadLevel() {
	if err := w.LoadLevel(w.Level.Number); err != nil {
		log.Printf("Warning: %v, resetting monsters only", err)
		w.Level.Reset()
	}
}

// Tick advances the simulation by one frame.
func (w *World) Tick(in Input) {
	p := w.Player
	speedX, speedY := in.SpeedX, in.SpeedY
	if speedX == 0 {
		speedX = cfg.Input.RunSpeed
	}
	if speedY == 0 {
		speedY = cfg.Input.RunSpeed
	}

	switch {
	case in.Left:
		p.MoveLeft(w, speedX)
	case in.Right:
		p.MoveRight(w, speedX)
	}
	switch {
	case in.Up:
		p.MoveUp(w, speedY)
	case in.Down:
		p.MoveDown(w, speedY)
	}
	if !in.Left && !in.Right && !in.Up && !in.Down {
		p.Stop(w)
	}
	if in.JumpPressed {
		p.StartJump(w)
	}
	if in.JumpReleased {
		p.StopJump()
	}
	if in.DashPressed {
		p.StartDash(w)
	}

	p.Update(w)
	w.Player.ForceMove(w.Level.Update(w.Player))
	w.Player.HandleEffects(w)
}
