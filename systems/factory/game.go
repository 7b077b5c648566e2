package factory

import (
	"github.com/automoto/blutti/archetypes"
	"github.com/automoto/blutti/components"
	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/core"
	"github.com/automoto/blutti/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGame spawns the game singleton. saved may be nil.
func CreateGame(ecs *ecs.ECS, source core.LevelSource, seed uint64, saved *components.ProgressData) (*donburi.Entry, error) {
	g, err := core.NewGame(source, systems.Effects{World: ecs.World}, seed)
	if err != nil {
		return nil, err
	}

	game := archetypes.Game.Spawn(ecs)
	components.Game.SetValue(game, components.GameData{Game: g})
	components.Audio.SetValue(game, components.AudioData{
		SFXVolume: cfg.Audio.DefaultSFXVol,
	})
	if saved != nil {
		progress := *saved
		progress.Dirty = false
		components.Progress.SetValue(game, progress)
	}
	return game, nil
}

func CreateFade(ecs *ecs.ECS) *donburi.Entry {
	fade := archetypes.Fade.Spawn(ecs)
	components.Fade.SetValue(fade, components.FadeData{
		LastState: cfg.StateTitle,
	})
	return fade
}
