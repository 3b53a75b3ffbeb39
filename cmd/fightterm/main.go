// Command fightterm plays against the CPU in a text terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/round"
	"github.com/automoto/brawler/terminal"
	"github.com/gdamore/tcell/v2"
)

func main() {
	fighter := flag.String("fighter", "Carlos-Freire", "Fighter to play")
	configPath := flag.String("config", "", "YAML tuning overrides")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	save := flag.Bool("save", false, "Keep round progress between runs")
	logPath := flag.String("log", "", "Write logs to this file")
	mute := flag.Bool("mute", false, "Disable the hit sound")
	flag.Parse()

	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		// the screen owns stdout
		log.SetOutput(io.Discard)
	}

	if *configPath != "" {
		if err := cfg.LoadOverrides(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	roster, err := assets.LoadRoster()
	if err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}
	stages, err := assets.LoadStages()
	if err != nil {
		log.Fatalf("Failed to load stages: %v", err)
	}

	var store round.Store
	if *save {
		gs, err := round.OpenGDataStore(cfg.AppName)
		if err != nil {
			log.Printf("Warning: Could not open save data: %v", err)
		} else {
			store = gs
		}
	}

	rng := rand.New(rand.NewSource(*seed))
	ctrl := round.NewController(roster, stages, store, rng)
	fight, err := ctrl.Start(*fighter)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fightterm: %v\n", err)
		os.Exit(1)
	}

	var beeper *terminal.Beeper
	if !*mute {
		beeper = terminal.NewBeeper(cfg.Terminal.HitToneHz, cfg.Terminal.HitToneLen)
		if err := beeper.Init(); err != nil {
			log.Printf("Warning: Could not open speaker: %v", err)
		}
		defer beeper.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fightterm: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "fightterm: %v\n", err)
		os.Exit(1)
	}

	client := terminal.NewClient(screen, ctrl, beeper, func() components.RandomSource {
		return rand.New(rand.NewSource(rng.Int63()))
	})
	client.Start(fight)
	err = client.Run()
	screen.Fini()
	if err != nil {
		fmt.Fprintf(os.Stderr, "fightterm: %v\n", err)
		os.Exit(1)
	}
}
