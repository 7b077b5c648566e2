package systems

import (
	"image/color"

	"github.com/automoto/blutti/components"
	cfg "github.com/automoto/blutti/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFade starts a fade-in whenever the game changes screens and steps
// the running tween.
func UpdateFade(e *ecs.ECS) {
	entry, ok := components.Fade.First(e.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)

	if g, ok := gameFrom(e.World); ok && g.State != fade.LastState {
		fade.LastState = g.State
		fade.Tween = gween.New(cfg.Fade.MaxAlpha, 0, cfg.Fade.Duration, ease.OutQuad)
	}
	if fade.Tween == nil {
		return
	}

	alpha, finished := fade.Tween.Update(1 / float32(cfg.Screen.TPS))
	fade.Alpha = alpha
	if finished {
		fade.Tween = nil
		fade.Alpha = 0
	}
}

func DrawFade(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Fade.First(e.World)
	if !ok {
		return
	}
	fade := components.Fade.Get(entry)
	if fade.Alpha <= 0 {
		return
	}
	a := uint8(min(fade.Alpha, 1) * 255)
	vector.FillRect(screen, 0, 0, float32(cfg.Screen.Width), float32(cfg.Screen.Height), color.RGBA{0, 0, 0, a}, false)
}
