package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/core"
	"github.com/automoto/blutti/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DebugLines formats the player inspection for the overlay.
func DebugLines(in core.Inspection) []string {
	return []string{
		in.State.String(),
		fmt.Sprintf("Pos %d,%d", in.Pos.X, in.Pos.Y),
		fmt.Sprintf("Vel %.2f,%.2f", in.Velocity.X, in.Velocity.Y),
		fmt.Sprintf("Jump %d Buf %d", in.JumpTimer, in.JumpBuffer),
		fmt.Sprintf("Fall %d Dash %d", in.FallTimer, in.DashTimer),
		fmt.Sprintf("OnLadder %t", in.OnLadder),
		fmt.Sprintf("CanClimb %t", in.CanClimb),
		fmt.Sprintf("Standing %t", in.Standing),
	}
}

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	g, ok := gameFrom(e.World)
	if !ok || !g.Debug || !showsWorld(g) {
		return
	}
	w := g.World

	for _, obj := range w.Level.Objects() {
		if obj.HasTags(tags.ResolvProbe) {
			continue
		}
		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(tags.ResolvDeadly):
			c = color.RGBA{255, 0, 0, 255}
		case obj.HasTags(tags.ResolvBlocking):
			c = color.RGBA{100, 100, 100, 255}
		case obj.HasTags(tags.ResolvBlockingMonster):
			c = color.RGBA{255, 165, 0, 255}
		}
		outline(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), c)
	}

	r := w.Player.Rect()
	outline(screen, float32(r.Pos.X), float32(r.Pos.Y), float32(r.W), float32(r.H), color.RGBA{0, 0, 255, 255})

	lines := DebugLines(w.Player.Inspect(w))
	m := float64(cfg.HUD.Margin)
	for i, line := range lines {
		drawText(screen, line, m, m+float64((i+1)*cfg.HUD.LineHeight), paletteColor("White"))
	}
}

func outline(screen *ebiten.Image, x, y, w, h float32, c color.Color) {
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
