package gamemath

import cfg "github.com/automoto/blutti/config"

// Point is an integer pixel position. Unless stated otherwise the helpers
// treat it as the top-left corner of a tile-sized footprint.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) AddX(d int) Point {
	return Point{X: p.X + d, Y: p.Y}
}

func (p Point) AddY(d int) Point {
	return Point{X: p.X, Y: p.Y + d}
}

func (p Point) TopRight() Point {
	return Point{X: p.X + cfg.Level.TileSize - 1, Y: p.Y}
}

func (p Point) BottomLeft() Point {
	return Point{X: p.X, Y: p.Y + cfg.Level.TileSize - 1}
}

func (p Point) BottomRight() Point {
	return Point{X: p.X + cfg.Level.TileSize - 1, Y: p.Y + cfg.Level.TileSize - 1}
}

// BelowBottomLeft is the first pixel under the footprint's left edge.
func (p Point) BelowBottomLeft() Point {
	return Point{X: p.X, Y: p.Y + cfg.Level.TileSize}
}

func (p Point) BelowBottomRight() Point {
	return Point{X: p.X + cfg.Level.TileSize - 1, Y: p.Y + cfg.Level.TileSize}
}

// InScreen reports whether a tile-sized footprint at p is fully on screen.
func (p Point) InScreen() bool {
	maxX := cfg.Screen.Width - cfg.Level.TileSize
	maxY := cfg.Screen.Height - cfg.Level.TileSize
	return p.X >= 0 && p.X <= maxX && p.Y >= 0 && p.Y <= maxY
}

// TileIndex converts a pixel to an index into the level grid.
// ok is false for pixels outside the grid.
func (p Point) TileIndex() (idx int, ok bool) {
	ts := cfg.Level.TileSize
	if p.X < 0 || p.Y < 0 || p.X >= cfg.Level.TilesH*ts || p.Y >= cfg.Level.TilesV*ts {
		return 0, false
	}
	return (p.Y/ts)*cfg.Level.TilesH + p.X/ts, true
}

// TileOrigin snaps p to the top-left pixel of the tile containing it.
func (p Point) TileOrigin() Point {
	ts := cfg.Level.TileSize
	return Point{X: p.X / ts * ts, Y: p.Y / ts * ts}
}
