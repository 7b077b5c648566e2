package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointHelpers(t *testing.T) {
	p := Pt(16, 24)
	assert.Equal(t, Pt(23, 24), p.TopRight())
	assert.Equal(t, Pt(16, 31), p.BottomLeft())
	assert.Equal(t, Pt(23, 31), p.BottomRight())
	assert.Equal(t, Pt(16, 32), p.BelowBottomLeft())
	assert.Equal(t, Pt(23, 32), p.BelowBottomRight())
	assert.Equal(t, Pt(16, 24), Pt(21, 30).TileOrigin())

	idx, ok := Pt(17, 9).TileIndex()
	assert.True(t, ok)
	assert.Equal(t, 32, idx)

	_, ok = Pt(10, 160).TileIndex()
	assert.False(t, ok)
	_, ok = Pt(-1, 10).TileIndex()
	assert.False(t, ok)

	assert.True(t, Pt(232, 152).InScreen())
	assert.False(t, Pt(233, 0).InScreen())
	assert.False(t, Pt(0, -1).InScreen())
}

func TestRectContainsIsInclusive(t *testing.T) {
	r := NewRect(Pt(8, 8), 16, 8)
	assert.True(t, r.Contains(Pt(8, 8)))
	assert.True(t, r.Contains(Pt(23, 15)))
	assert.False(t, r.Contains(Pt(24, 15)))
	assert.False(t, r.Contains(Pt(8, 16)))
	assert.Equal(t, Pt(8, 16), r.BelowBottomLeft())
	assert.Equal(t, Pt(23, 16), r.BelowBottomRight())
}

func TestRectOverlaps(t *testing.T) {
	a := TileRect(Pt(10, 10))
	assert.True(t, a.Overlaps(TileRect(Pt(14, 14))))
	assert.True(t, a.Overlaps(TileRect(Pt(4, 4))))
	assert.False(t, a.Overlaps(TileRect(Pt(18, 10))))
}
