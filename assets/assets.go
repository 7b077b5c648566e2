package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"slices"

	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite ranges in the sheet, 0-based.
const (
	ambientFirst = 112
	monsterFirst = 128
	playerFirst  = 160
	effectFirst  = 192
	effectLast   = 211
)

// SpriteRect is the source rectangle of a 0-based sprite index.
func SpriteRect(sprite int) image.Rectangle {
	size := cfg.Level.TileSize
	x := (sprite % cfg.Level.SpritesH) * size
	y := (sprite / cfg.Level.SpritesH) * size
	return image.Rect(x, y, x+size, y+size)
}

// SheetImage draws the whole sprite sheet. Sprites are generated from the
// collider table and the sprite ranges, so the game ships without binary art.
func SheetImage() *image.RGBA {
	size := cfg.Level.TileSize
	sheet := image.NewRGBA(image.Rect(0, 0, cfg.Level.SpritesH*size, cfg.Level.SpritesV*size))
	for i := range cfg.Level.SpritesH * cfg.Level.SpritesV {
		paintSprite(sheet, i)
	}
	return sheet
}

func pal(name string) color.RGBA {
	return cfg.Palette[name]
}

func paintSprite(sheet *image.RGBA, sprite int) {
	r := SpriteRect(sprite)
	fill := func(x0, y0, x1, y1 int, c color.Color) {
		draw.Draw(sheet, image.Rect(r.Min.X+x0, r.Min.Y+y0, r.Min.X+x1, r.Min.Y+y1), image.NewUniform(c), image.Point{}, draw.Src)
	}
	dot := func(x, y int, c color.RGBA) {
		sheet.SetRGBA(r.Min.X+x, r.Min.Y+y, c)
	}

	switch c := leveldata.SpriteCollider(sprite); c.Kind {
	case leveldata.ColliderFull:
		fill(0, 0, 8, 8, pal("Gray"))
		fill(0, 0, 8, 1, pal("LightGray"))
		fill(0, 7, 8, 8, pal("DarkGray"))
		dot(3, 3, pal("DarkGray"))
		return
	case leveldata.ColliderSlippery:
		fill(0, 0, 8, 8, pal("LightBlue"))
		fill(0, 0, 8, 2, pal("White"))
		return
	case leveldata.ColliderConveyor:
		fill(0, 0, 8, 8, pal("DarkGray"))
		for x := sprite % 2; x < 8; x += 2 {
			dot(x, 1, pal("Yellow"))
			dot(x, 6, pal("Yellow"))
		}
		return
	case leveldata.ColliderClimbable:
		fill(1, 0, 2, 8, pal("Orange"))
		fill(6, 0, 7, 8, pal("Orange"))
		for y := 1; y < 8; y += 3 {
			fill(1, y, 7, y+1, pal("Orange"))
		}
		return
	case leveldata.ColliderExit:
		fill(1, 0, 7, 8, pal("Purple"))
		fill(2, 1, 6, 8, pal("Black"))
		dot(5, 4, pal("Yellow"))
		return
	case leveldata.ColliderDeadly:
		for x := 0; x < 8; x += 4 {
			fill(x+1, 4, x+3, 8, pal("LightGray"))
			fill(x+1, 2, x+3, 4, pal("White"))
		}
		return
	case leveldata.ColliderStar:
		fill(3, 0, 5, 8, pal("Yellow"))
		fill(0, 3, 8, 5, pal("Yellow"))
		fill(3, 3, 5, 5, pal("White"))
		return
	case leveldata.ColliderExtraLife:
		paintHeart(fill)
		return
	case leveldata.ColliderCollectible:
		coin := map[int]string{1: "Yellow", 5: "Cyan", 10: "LightGreen"}[c.Points]
		fill(2, 2, 6, 6, pal(coin))
		fill(3, 1, 5, 7, pal(coin))
		dot(3, 3, pal("White"))
		return
	}

	switch {
	case sprite >= ambientFirst && sprite < monsterFirst:
		// Two frames per ambient particle, the second one offset by a pixel.
		off := sprite % 2
		fill(3+off, 3, 5+off, 5, pal("White"))
	case sprite >= monsterFirst && sprite < playerFirst:
		paintMonster(fill, dot, sprite)
	case sprite >= playerFirst && sprite < effectFirst:
		paintBlutti(fill, dot, sprite)
	case sprite >= effectFirst && sprite <= effectLast:
		n := sprite % 4
		fill(3-n, 3-n, 5+n, 5+n, pal("LightGray"))
		fill(4-n/2, 4-n/2, 4+n/2, 4+n/2, color.Transparent)
	}
}

func paintHeart(fill func(x0, y0, x1, y1 int, c color.Color)) {
	red := pal("Red")
	fill(1, 1, 3, 3, red)
	fill(5, 1, 7, 3, red)
	fill(0, 2, 8, 5, red)
	fill(1, 5, 7, 6, red)
	fill(2, 6, 6, 7, red)
	fill(3, 7, 5, 8, red)
}

func paintMonster(fill func(x0, y0, x1, y1 int, c color.Color), dot func(x, y int, c color.RGBA), sprite int) {
	body := []string{"Red", "Green", "Orange", "Purple"}[(sprite-monsterFirst)/8%4]
	frame := sprite % 2
	fill(1, 1+frame, 7, 7, pal(body))
	fill(0, 7, 2, 8, pal(body))
	fill(6, 7, 8, 8, pal(body))
	dot(2, 3+frame, pal("White"))
	dot(5, 3+frame, pal("White"))
}

func paintBlutti(fill func(x0, y0, x1, y1 int, c color.Color), dot func(x, y int, c color.RGBA), sprite int) {
	frame := sprite % 4
	fill(1, 1, 7, 7, pal("Blue"))
	fill(2, 0, 6, 1, pal("LightBlue"))
	eye := 5
	if facesLeft(sprite) {
		eye = 2
	}
	dot(eye, 3, pal("White"))
	fill(1+frame%2, 7, 3+frame%2, 8, pal("DarkBlue"))
	fill(5-frame%2, 7, 7-frame%2, 8, pal("DarkBlue"))
}

func facesLeft(sprite int) bool {
	for _, def := range []cfg.AnimationDef{
		cfg.Animations.IdleLeft,
		cfg.Animations.RunningLeft,
		cfg.Animations.ClimbLeft,
		cfg.Animations.ExitLeft,
	} {
		if slices.Contains(def.Sprites, sprite) {
			return true
		}
	}
	return false
}

// SpriteLoader hands out cached sub-images of the sheet.
type SpriteLoader struct {
	sheet *ebiten.Image
	cache map[int]*ebiten.Image
}

func NewSpriteLoader() *SpriteLoader {
	return &SpriteLoader{
		cache: make(map[int]*ebiten.Image),
	}
}

func (l *SpriteLoader) Sheet() *ebiten.Image {
	if l.sheet == nil {
		l.sheet = ebiten.NewImageFromImage(SheetImage())
	}
	return l.sheet
}

// Sprite returns the cached sub-image for a 0-based sprite index.
func (l *SpriteLoader) Sprite(sprite int) *ebiten.Image {
	if img, ok := l.cache[sprite]; ok {
		return img
	}
	if sprite < 0 || sprite >= cfg.Level.SpritesH*cfg.Level.SpritesV {
		panic(fmt.Sprintf("sprite %d out of range", sprite))
	}
	img := l.Sheet().SubImage(SpriteRect(sprite)).(*ebiten.Image)
	l.cache[sprite] = img
	return img
}

// Tile returns the sub-image for a 1-based tile id, or nil for an empty tile.
func (l *SpriteLoader) Tile(id int) *ebiten.Image {
	if id <= 0 {
		return nil
	}
	return l.Sprite(id - 1)
}

// Preload fills the cache so the first frame does not stall on uploads.
func (l *SpriteLoader) Preload() {
	for i := range cfg.Level.SpritesH * cfg.Level.SpritesV {
		_ = l.Sprite(i)
	}
}

var spriteLoader = NewSpriteLoader()

func GetSprite(sprite int) *ebiten.Image {
	return spriteLoader.Sprite(sprite)
}

func GetTile(id int) *ebiten.Image {
	return spriteLoader.Tile(id)
}

func PreloadSprites() {
	spriteLoader.Preload()
}
