package assets

import (
	"image"
	"testing"

	cfg "github.com/automoto/blutti/config"
	"github.com/stretchr/testify/assert"
)

func TestSpriteRect(t *testing.T) {
	tests := []struct {
		sprite int
		want   image.Rectangle
	}{
		{0, image.Rect(0, 0, 8, 8)},
		{15, image.Rect(120, 0, 128, 8)},
		{16, image.Rect(0, 8, 8, 16)},
		{162, image.Rect(16, 80, 24, 88)},
		{255, image.Rect(120, 120, 128, 128)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SpriteRect(tt.sprite), "sprite %d", tt.sprite)
	}
}

func opaque(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}

func TestSheetImage(t *testing.T) {
	sheet := SheetImage()
	assert.Equal(t, image.Rect(0, 0, 128, 128), sheet.Bounds())

	// Blocking tiles are solid.
	full := SpriteRect(3)
	assert.Equal(t, 64, opaque(sheet, full))
	assert.Equal(t, cfg.Palette["LightGray"], sheet.RGBAAt(full.Min.X, full.Min.Y))

	// Empty and unused sprites stay transparent.
	assert.Zero(t, opaque(sheet, SpriteRect(0)))
	assert.Zero(t, opaque(sheet, SpriteRect(100)))

	// Everything the game draws has pixels.
	for _, def := range []cfg.AnimationDef{
		cfg.Animations.IdleLeft, cfg.Animations.RunningRight, cfg.Animations.Death,
		cfg.Particles.DashLeft, cfg.Particles.TurnRight, cfg.Particles.Collection,
	} {
		for _, s := range def.Sprites {
			assert.Positive(t, opaque(sheet, SpriteRect(s)), "sprite %d", s)
		}
	}
	for _, s := range []int{10, 11, 12, 16, 17, 116, 118, 128, 136, 148, cfg.HUD.HeartSprite} {
		assert.Positive(t, opaque(sheet, SpriteRect(s)), "sprite %d", s)
	}
}

func TestBluttiFacing(t *testing.T) {
	sheet := SheetImage()
	right := SpriteRect(cfg.Animations.IdleRight.Sprites[0])
	left := SpriteRect(cfg.Animations.IdleLeft.Sprites[0])
	white := cfg.Palette["White"]

	assert.Equal(t, white, sheet.RGBAAt(right.Min.X+5, right.Min.Y+3))
	assert.Equal(t, white, sheet.RGBAAt(left.Min.X+2, left.Min.Y+3))
}
