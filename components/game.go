package components

import (
	"github.com/automoto/blutti/core"
	"github.com/yohamta/donburi"
)

// GameData holds the headless simulation (singleton component)
type GameData struct {
	Game *core.Game
}

var Game = donburi.NewComponentType[GameData]()
