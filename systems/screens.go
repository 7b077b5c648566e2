package systems

import (
	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

// ScreenMessage is the centered text shown on top of the world, if any.
func ScreenMessage(state cfg.GameStateID, won bool) []string {
	switch state {
	case cfg.StateTitle:
		return cfg.TitleMessage
	case cfg.StateDied:
		return cfg.DiedMessage
	case cfg.StateGameOver:
		if won {
			return cfg.WonMessage
		}
		return cfg.GameOverMessage
	}
	return nil
}

// DrawScreens renders the title, credits and info screens, and the
// messages over a paused world.
func DrawScreens(e *ecs.ECS, screen *ebiten.Image) {
	g, ok := gameFrom(e.World)
	if !ok {
		return
	}

	switch g.State {
	case cfg.StateTitle:
		screen.Fill(paletteColor("DarkBlue"))
		title := cfg.Screen.Title
		w, _ := text.Measure(title, face(fonts.MonoTitle), 0)
		textOp.GeoM.Reset()
		textOp.GeoM.Translate(float64(cfg.Screen.Width)/2-w/2, float64(cfg.Screen.Height)/4)
		textOp.ColorScale.Reset()
		textOp.ColorScale.ScaleWithColor(paletteColor("Yellow"))
		text.Draw(screen, title, face(fonts.MonoTitle), textOp)
		drawCentered(screen, ScreenMessage(g.State, g.Won), paletteColor("White"))
	case cfg.StateCredits:
		screen.Fill(paletteColor("White"))
		drawLeft(screen, cfg.Credits, paletteColor("Black"))
	case cfg.StateInfo:
		screen.Fill(paletteColor("White"))
		drawLeft(screen, cfg.Info, paletteColor("Black"))
	case cfg.StateDied, cfg.StateGameOver:
		drawCentered(screen, ScreenMessage(g.State, g.Won), paletteColor(g.World.Level.FontColor))
	}
}
