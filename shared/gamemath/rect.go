package gamemath

import cfg "github.com/automoto/blutti/config"

// Rect is an axis-aligned footprint. Corners are inclusive pixels.
type Rect struct {
	Pos Point
	W   int
	H   int
}

// TileRect is a tile-sized rect at p.
func TileRect(p Point) Rect {
	return Rect{Pos: p, W: cfg.Level.TileSize, H: cfg.Level.TileSize}
}

func NewRect(p Point, w, h int) Rect {
	return Rect{Pos: p, W: w, H: h}
}

func (r Rect) TopLeft() Point {
	return r.Pos
}

func (r Rect) TopRight() Point {
	return Point{X: r.Pos.X + r.W - 1, Y: r.Pos.Y}
}

func (r Rect) BottomLeft() Point {
	return Point{X: r.Pos.X, Y: r.Pos.Y + r.H - 1}
}

func (r Rect) BottomRight() Point {
	return Point{X: r.Pos.X + r.W - 1, Y: r.Pos.Y + r.H - 1}
}

func (r Rect) BelowBottomLeft() Point {
	return Point{X: r.Pos.X, Y: r.Pos.Y + r.H}
}

func (r Rect) BelowBottomRight() Point {
	return Point{X: r.Pos.X + r.W - 1, Y: r.Pos.Y + r.H}
}

// Corners returns top-left, top-right, bottom-left, bottom-right.
func (r Rect) Corners() [4]Point {
	return [4]Point{r.TopLeft(), r.TopRight(), r.BottomLeft(), r.BottomRight()}
}

// Contains is an inclusive bounds test.
func (r Rect) Contains(p Point) bool {
	br := r.BottomRight()
	return p.X >= r.Pos.X && p.X <= br.X && p.Y >= r.Pos.Y && p.Y <= br.Y
}

// Overlaps reports whether other's origin or bottom-right corner lies in r.
// Good enough for actors no larger than a few tiles.
func (r Rect) Overlaps(other Rect) bool {
	return r.Contains(other.Pos) || r.Contains(other.BottomRight())
}
