package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/blutti/archetypes"
	"github.com/automoto/blutti/assets"
	"github.com/automoto/blutti/core"
	"github.com/automoto/blutti/systems"
	"github.com/automoto/blutti/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Seed of the particle dice. Fixed so runs are reproducible.
const Seed = 4711

type PlatformerScene struct {
	ecs    *ecs.ECS
	source core.LevelSource
	once   sync.Once
}

func NewPlatformerScene(source core.LevelSource) *PlatformerScene {
	return &PlatformerScene{source: source}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()
	assets.PreloadSprites()

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateGame)
	ecs.AddSystem(systems.UpdateAudio)
	ecs.AddSystem(systems.UpdatePersistence)
	ecs.AddSystem(systems.UpdateFade)

	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawWorld)
	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawHUD)
	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawDebug)
	ecs.AddRenderer(archetypes.LayerOverlay, systems.DrawScreens)
	ecs.AddRenderer(archetypes.LayerOverlay, systems.DrawFade)

	saved, err := systems.LoadProgress()
	if err != nil {
		log.Printf("Warning: Ignoring saved progress: %v", err)
	}
	if _, err := factory.CreateGame(ecs, ps.source, Seed, saved); err != nil {
		log.Fatalf("Failed to start game: %v", err)
	}
	factory.CreateFade(ecs)

	ps.ecs = ecs
}
