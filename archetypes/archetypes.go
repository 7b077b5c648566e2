package archetypes

import (
	"github.com/automoto/blutti/components"
	"github.com/automoto/blutti/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Render layers. config stays free of ebiten, so they live here.
const (
	LayerWorld ecs.LayerID = iota
	LayerOverlay
)

var (
	Game = newArchetype(
		tags.Game,
		components.Game,
		components.Input,
		components.Audio,
		components.Progress,
	)
	Fade = newArchetype(
		tags.Fade,
		components.Fade,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		LayerWorld,
		append(a.components, cs...)...,
	))
	return e
}
