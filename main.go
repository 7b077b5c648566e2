package main

import (
	"log"

	"github.com/automoto/blutti/assets/levels"
	cfg "github.com/automoto/blutti/config"
	"github.com/automoto/blutti/fonts"
	"github.com/automoto/blutti/scenes"
	"github.com/automoto/blutti/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(cfg.HUD.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	source, err := levels.Load()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	log.Printf("Loaded %d levels", source.Count())

	return &Game{
		scene: scenes.NewPlatformerScene(source),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	ebiten.SetWindowSize(cfg.C.Width*cfg.Screen.Scale, cfg.C.Height*cfg.Screen.Scale)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetTPS(cfg.Screen.TPS)

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
