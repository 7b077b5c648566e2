package core

import (
	"errors"
	"testing"

	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/shared/gamemath"
	"github.com/automoto/blutti/shared/leveldata"
	"github.com/stretchr/testify/require"
)

// 1-based tile ids as stored in level assets.
const (
	tileFull        = 4
	tileLadder      = 10
	tileStar        = 11
	tileExtraLife   = 12
	tileExit        = 13
	tileSpikes      = 15
	tileCoin        = 17
	tileSlippery    = 26
	tileConveyor    = 59
	floorRow        = 19
	groundY         = 144
	monsterSprite   = 128
	particleSprite0 = 116
)

var errNoLevel = errors.New("no such level")

type recorder struct {
	sounds   []cfg.SoundID
	progress map[cfg.ProgressKind]int
}

func newRecorder() *recorder {
	return &recorder{progress: map[cfg.ProgressKind]int{}}
}

func (r *recorder) PlaySound(id cfg.SoundID) {
	r.sounds = append(r.sounds, id)
}

func (r *recorder) RecordProgress(kind cfg.ProgressKind, amount int) {
	r.progress[kind] += amount
}

func (r *recorder) count(id cfg.SoundID) int {
	n := 0
	for _, s := range r.sounds {
		if s == id {
			n++
		}
	}
	return n
}

type memSource []*leveldata.LevelData

func (s memSource) Level(n int) (*leveldata.LevelData, error) {
	if n < 0 || n >= len(s) {
		return nil, errNoLevel
	}
	return s[n], nil
}

func (s memSource) Count() int {
	return len(s)
}

// emptyLevel has no tiles at all. The player spawns at start.
func emptyLevel(start gamemath.Point) *leveldata.LevelData {
	return &leveldata.LevelData{
		Name:            "test",
		Tiles:           make([]int, cfg.Level.TilesH*cfg.Level.TilesV),
		BackgroundColor: "Black",
		FontColor:       "White",
		StartPosition:   start,
	}
}

// floorLevel has a solid bottom row and spawns the player on it.
func floorLevel() *leveldata.LevelData {
	d := emptyLevel(gamemath.Pt(16, groundY))
	fillRow(d, floorRow, 0, cfg.Level.TilesH-1, tileFull)
	return d
}

func setTile(d *leveldata.LevelData, col, row, tile int) {
	d.Tiles[row*cfg.Level.TilesH+col] = tile
}

func fillRow(d *leveldata.LevelData, row, from, to, tile int) {
	for col := from; col <= to; col++ {
		setTile(d, col, row, tile)
	}
}

func fillCol(d *leveldata.LevelData, col, from, to, tile int) {
	for row := from; row <= to; row++ {
		setTile(d, col, row, tile)
	}
}

func monster(pos gamemath.Point, vel gamemath.Vec2, collision leveldata.MonsterCollision, movement leveldata.MonsterMovement) leveldata.MonsterData {
	return leveldata.MonsterData{
		Collision:      collision,
		Movement:       movement,
		Frames:         1,
		Position:       pos,
		Velocity:       vel,
		Sprites:        []int{monsterSprite},
		ReverseSprites: []int{monsterSprite + 1},
		Width:          cfg.Level.TileSize,
		Height:         cfg.Level.TileSize,
	}
}

func newTestWorld(t *testing.T, d *leveldata.LevelData) (*World, *recorder) {
	t.Helper()
	rec := newRecorder()
	w, err := NewWorld(memSource{d}, 0, rec, 4711)
	require.NoError(t, err)
	return w, rec
}

func tickN(w *World, n int, in Input) {
	for range n {
		w.Tick(in)
	}
}

// script is a Roller that replays fixed values.
type script []int

func (s *script) IntN(n int) int {
	v := (*s)[0]
	*s = (*s)[1:]
	return v % n
}
