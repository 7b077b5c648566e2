package main

import (
	"fmt"
	"strings"

	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/shared/leveldata"
	"github.com/charmbracelet/lipgloss"
)

type glyph struct {
	r     rune
	style lipgloss.Style
}

func cell(r rune, fg string) glyph {
	return glyph{r: r, style: lipgloss.NewStyle().Foreground(lipgloss.Color(hex(fg))).Bold(true)}
}

func hex(name string) string {
	c := cfg.Palette[name]
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var (
	glyphs = map[leveldata.ColliderKind]glyph{
		leveldata.ColliderFull:        cell('#', "Gray"),
		leveldata.ColliderSlippery:    cell('~', "LightBlue"),
		leveldata.ColliderConveyor:    cell('>', "Yellow"),
		leveldata.ColliderClimbable:   cell('H', "Orange"),
		leveldata.ColliderExit:        cell('E', "Purple"),
		leveldata.ColliderDeadly:      cell('^', "Red"),
		leveldata.ColliderStar:        cell('*', "Yellow"),
		leveldata.ColliderExtraLife:   cell('+', "Red"),
		leveldata.ColliderCollectible: cell('o', "Yellow"),
	}
	emptyGlyph   = glyph{r: ' ', style: lipgloss.NewStyle()}
	startGlyph   = cell('S', "Blue")
	monsterGlyph = cell('M', "Green")

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(hex("Orange"))).
			Bold(true)

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(hex("DarkGray")))
)

// previewGrid maps the level to glyphs: tiles first, then monsters and the
// start on top.
func previewGrid(d *leveldata.LevelData) []glyph {
	grid := make([]glyph, cfg.Level.TilesH*cfg.Level.TilesV)
	for i := range grid {
		g, ok := glyphs[d.Collider(i).Kind]
		if !ok {
			g = emptyGlyph
		}
		if c := d.Collider(i); c.Kind == leveldata.ColliderCollectible && c.Points > 1 {
			g.r = 'O'
		}
		grid[i] = g
	}
	for _, m := range d.Monsters {
		if i, ok := m.Position.TileIndex(); ok {
			grid[i] = monsterGlyph
		}
	}
	if i, ok := d.StartPosition.TileIndex(); ok {
		grid[i] = startGlyph
	}
	return grid
}

func renderPreview(d *leveldata.LevelData) string {
	grid := previewGrid(d)

	var b strings.Builder
	for row := range cfg.Level.TilesV {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := range cfg.Level.TilesH {
			g := grid[row*cfg.Level.TilesH+col]
			b.WriteString(g.style.Render(string(g.r)))
		}
	}

	title := titleStyle.Render(fmt.Sprintf("%s  stars %d  monsters %d", d.Name, d.Stars, len(d.Monsters)))
	return lipgloss.JoinVertical(lipgloss.Left, title, frameStyle.Render(b.String())) + "\n"
}
