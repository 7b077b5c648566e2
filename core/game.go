package core

import (
	"log"

	cfg "github.com/automoto/blutti/config"
)

// Game is the screen state machine wrapped around the world.
type Game struct {
	State cfg.GameStateID
	Won   bool
	Debug bool
	World *World
}

// NewGame boots on the title screen with the start level loaded.
func NewGame(source LevelSource, effects Effects, seed uint64) (*Game, error) {
	w, err := NewWorld(source, cfg.Level.StartLevel, effects, seed)
	if err != nil {
		return nil, err
	}
	w.Player.Invulnerable = cfg.Debug.Invulnerable
	g := &Game{State: cfg.StateTitle, World: w, Debug: cfg.Debug.Overlay}
	if cfg.Debug.SkipTitle {
		g.State = cfg.StatePlaying
	}
	return g, nil
}

// Update advances one tick.
func (g *Game) Update(in Input) {
	switch g.State {
	case cfg.StateTitle:
		switch {
		case in.Confirm:
			g.State = cfg.StatePlaying
		case in.Credits:
			g.State = cfg.StateCredits
		case in.Info:
			g.State = cfg.StateInfo
		}
	case cfg.StateCredits, cfg.StateInfo:
		if in.Confirm {
			g.State = cfg.StateTitle
		}
	case cfg.StateDied:
		if in.Confirm {
			g.World.Player.Reset(g.World)
			g.State = cfg.StatePlaying
		}
	case cfg.StateGameOver:
		if in.Confirm {
			if g.Won {
				g.restart(g.World.Level.Number+1, true)
			} else {
				g.restart(cfg.Level.StartLevel, false)
			}
		}
	case cfg.StatePlaying:
		g.play(in)
	}
}

func (g *Game) play(in Input) {
	if in.ToggleDebug {
		g.Debug = !g.Debug
	}
	if cfg.Debug.CheatsEnabled {
		g.cheat(in)
	}

	w := g.World
	w.Tick(in)

	p := w.Player
	switch {
	case !p.Alive() || p.Finished:
		g.Won = p.Finished
		g.State = cfg.StateGameOver
	case p.Died:
		g.State = cfg.StateDied
	}
}

func (g *Game) cheat(in Input) {
	p := g.World.Player
	switch {
	case in.CheatRestart:
		g.restart(g.World.Level.Number, true)
	case in.CheatLives:
		p.AddLives(cfg.Debug.CheatLives)
	case in.CheatPoints:
		p.AddPoints(cfg.Debug.CheatPoints)
	}
}

// restart loads level, wrapping past the last one. A won restart carries
// points and lives over; a lost one starts from scratch on the title.
func (g *Game) restart(level int, won bool) {
	if level >= g.World.source.Count() {
		level = cfg.Level.StartLevel
	}
	w := g.World
	if err := w.LoadLevel(level); err != nil {
		log.Printf("Warning: %v", err)
		w.ReloadLevel()
	}
	if won {
		w.Player = w.Player.AtNewLevel(w.Level.Start, w.Level.Number)
		g.State = cfg.StatePlaying
	} else {
		w.Player = NewPlayer(w.Level.Start, w.Level.Number)
		w.Player.Invulnerable = cfg.Debug.Invulnerable
		g.State = cfg.StateTitle
	}
	g.Won = false
}
