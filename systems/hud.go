package systems

import (
	"fmt"

	"github.com/automoto/blutti/assets"
	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// HeartOrigins places one heart per life, right to left from the top-right corner.
func HeartOrigins(lives int) []gamemath.Point {
	ts := cfg.Level.TileSize
	out := make([]gamemath.Point, 0, max(lives, 0))
	for i := range max(lives, 0) {
		out = append(out, gamemath.Pt(cfg.Screen.Width-i*ts-ts-cfg.HUD.HeartRight, cfg.HUD.Margin))
	}
	return out
}

// DrawHUD renders the points counter and the lives.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	g, ok := gameFrom(e.World)
	if !ok || !showsWorld(g) {
		return
	}
	p := g.World.Player
	m := float64(cfg.HUD.Margin)

	drawText(screen, fmt.Sprintf("Points: %d", p.Points), m, m, paletteColor(g.World.Level.FontColor))

	heart := assets.GetSprite(cfg.HUD.HeartSprite)
	for _, at := range HeartOrigins(p.Lives) {
		drawSprite(screen, heart, at)
	}
}
