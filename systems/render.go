package systems

import (
	"github.com/automoto/blutti/assets"
	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/core"
	"github.com/automoto/blutti/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var renderOp = &ebiten.DrawImageOptions{}

func drawSprite(screen *ebiten.Image, img *ebiten.Image, at gamemath.Point) {
	if img == nil {
		return
	}
	renderOp.GeoM.Reset()
	renderOp.GeoM.Translate(float64(at.X), float64(at.Y))
	screen.DrawImage(img, renderOp)
}

// showsWorld reports whether the level is visible behind the current screen.
func showsWorld(g *core.Game) bool {
	switch g.State {
	case cfg.StatePlaying, cfg.StateDied, cfg.StateGameOver:
		return true
	}
	return false
}

// DrawWorld renders the level, Blutti, monsters and particles, in that order.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	g, ok := gameFrom(e.World)
	if !ok || !showsWorld(g) {
		return
	}
	level := g.World.Level

	screen.Fill(paletteColor(level.BackgroundColor))
	ts := cfg.Level.TileSize
	for i, id := range level.Tiles() {
		if id == 0 {
			continue
		}
		at := gamemath.Pt(i%cfg.Level.TilesH*ts, i/cfg.Level.TilesH*ts)
		drawSprite(screen, assets.GetTile(id), at)
	}

	if p := g.World.Player; p.Visible() {
		drawSprite(screen, assets.GetSprite(p.Animation.Sprite()), p.Pos)
	}

	for _, m := range level.Monsters {
		sprites, origins := m.Sprites(), m.TileOrigins()
		for i := range min(len(sprites), len(origins)) {
			drawSprite(screen, assets.GetSprite(sprites[i]), origins[i])
		}
	}

	for _, pt := range level.Particles {
		drawSprite(screen, assets.GetSprite(pt.Animation.Sprite()), pt.Pos)
	}
}
