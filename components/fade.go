package components

import (
	cfg "github.com/automoto/blutti/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData darkens the screen for a moment after the game state changes.
type FadeData struct {
	Tween     *gween.Tween
	Alpha     float32
	LastState cfg.GameStateID
}

var Fade = donburi.NewComponentType[FadeData]()
