package main

import (
	"flag"
	"image"
	"log"
	"time"

	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/config"
	"github.com/automoto/brawler/fonts"
	"github.com/automoto/brawler/round"
	"github.com/automoto/brawler/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(deps scenes.Deps) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewSelectScene(g, deps)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML tuning overrides")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	fresh := flag.Bool("fresh", false, "Ignore saved round progress")
	flag.BoolVar(&config.Debug.ShowBoxes, "debug", false, "Draw collision boxes")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	deps := scenes.Deps{
		Roster: assets.MustLoadRoster(),
		Stages: assets.MustLoadStages(),
		Seed:   *seed,
	}

	// Initialize persistence; without it progress lasts one session
	store, err := round.OpenGDataStore(config.AppName)
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	} else {
		if *fresh {
			if err := store.Clear(); err != nil {
				log.Printf("Warning: Could not clear round progress: %v", err)
			}
		}
		deps.Store = store
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Brawler")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(deps)); err != nil {
		log.Fatal(err)
	}
}
