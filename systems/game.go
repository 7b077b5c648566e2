package systems

import (
	"github.com/automoto/blutti/components"
	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/core"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Effects forwards simulation side effects into the ECS: sounds go to the
// audio queue and progress to the Progress component.
type Effects struct {
	World donburi.World
}

func (f Effects) PlaySound(id cfg.SoundID) {
	QueueSFX(f.World, id)
}

func (f Effects) RecordProgress(kind cfg.ProgressKind, amount int) {
	entry, ok := components.Progress.First(f.World)
	if !ok {
		return
	}
	components.Progress.Get(entry).Record(kind, amount)
}

func gameFrom(w donburi.World) (*core.Game, bool) {
	entry, ok := components.Game.First(w)
	if !ok {
		return nil, false
	}
	g := components.Game.Get(entry).Game
	return g, g != nil
}

// UpdateGame runs one tick of the simulation with this frame's input.
func UpdateGame(e *ecs.ECS) {
	entry, ok := components.Game.First(e.World)
	if !ok {
		return
	}
	g := components.Game.Get(entry).Game
	if g == nil {
		return
	}

	g.Update(CoreInput(components.Input.Get(entry)))

	if entry.HasComponent(components.Progress) {
		progress := components.Progress.Get(entry)
		if n := g.World.Level.Number; n > progress.HighestLevel {
			progress.HighestLevel = n
			progress.Dirty = true
		}
	}
}
