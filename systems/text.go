package systems

import (
	"image/color"

	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var faces = map[fonts.FontName]*text.GoXFace{}

func face(name fonts.FontName) *text.GoXFace {
	f, ok := faces[name]
	if !ok {
		f = text.NewGoXFace(name.Get())
		faces[name] = f
	}
	return f
}

var textOp = &text.DrawOptions{}

// drawText draws s with its top-left corner at x, y.
func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	textOp.GeoM.Reset()
	textOp.GeoM.Translate(x, y)
	textOp.ColorScale.Reset()
	textOp.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face(fonts.Mono), textOp)
}

// drawCentered stacks lines around the middle of the screen.
func drawCentered(screen *ebiten.Image, lines []string, clr color.Color) {
	lh := float64(cfg.HUD.LineHeight)
	y := float64(cfg.Screen.Height)/2 - float64(len(lines))*lh/2
	for i, line := range lines {
		w, _ := text.Measure(line, face(fonts.Mono), lh)
		drawText(screen, line, float64(cfg.Screen.Width)/2-w/2, y+float64(i)*lh, clr)
	}
}

// drawLeft lists lines from the top-left margin.
func drawLeft(screen *ebiten.Image, lines []string, clr color.Color) {
	m := float64(cfg.HUD.Margin)
	for i, line := range lines {
		drawText(screen, line, m, m+float64(i*cfg.HUD.LineHeight), clr)
	}
}

func paletteColor(name string) color.RGBA {
	if c, ok := cfg.Palette[name]; ok {
		return c
	}
	return cfg.Palette["White"]
}
