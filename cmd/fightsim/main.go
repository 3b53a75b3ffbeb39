// Command fightsim plays headless matches against the CPU and writes a JSON
// summary.
package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/autopilot"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/engine"
	"github.com/automoto/brawler/round"
)

func main() {
	runs := flag.Int("n", 100, "Number of matches")
	workers := flag.Int("workers", runtime.NumCPU(), "Parallel workers")
	seed := flag.Int64("seed", 1, "Base random seed")
	configPath := flag.String("config", "", "YAML tuning overrides")
	fighter := flag.String("fighter", "Carlos-Freire", "Player fighter id")
	opponent := flag.String("opponent", "", "CPU fighter id (empty = random)")
	stageName := flag.String("stage", "", "Stage name (empty = random)")
	difficulty := flag.Float64("difficulty", 1, "CPU difficulty (>= 1)")
	roundNum := flag.Int("round", 1, "Round number")
	script := flag.String("script", "", "Autopilot script instead of the bot, e.g. \"right*4 punch -\"")
	step := flag.Duration("step", 50*time.Millisecond, "Virtual time between inputs")
	limit := flag.Duration("limit", 3*time.Minute, "Virtual time limit per match")
	trail := flag.Int("trail", 10, "Snapshot every N steps when -n 1")
	out := flag.String("out", "", "Output file (empty = stdout)")
	verbose := flag.Bool("v", false, "Log every match")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadOverrides(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	roster, err := assets.LoadRoster()
	if err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}
	stages, err := assets.LoadStages()
	if err != nil {
		log.Fatalf("Failed to load stages: %v", err)
	}
	if _, err := roster.Lookup(*fighter); err != nil {
		log.Fatalf("Invalid -fighter: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	ctx := round.NewContext(*fighter)
	ctx.Round = *roundNum
	ctx.Difficulty = *difficulty
	ctx.CPUFighter = *opponent
	if ctx.CPUFighter == "" {
		if ctx.CPUFighter, err = roster.PickOpponent(rng, *fighter, nil); err != nil {
			log.Fatalf("Failed to pick opponent: %v", err)
		}
	} else if _, err := roster.Lookup(ctx.CPUFighter); err != nil {
		log.Fatalf("Invalid -opponent: %v", err)
	}

	fight := round.Fight{Context: ctx.Normalize()}
	if *stageName != "" {
		st, ok := stages.Lookup(*stageName)
		if !ok {
			log.Fatalf("Unknown stage %q", *stageName)
		}
		fight.Stage = st
	} else if fight.Stage, err = stages.Pick(rng); err != nil {
		log.Fatalf("Failed to pick stage: %v", err)
	}
	fight.Context.Stage = fight.Stage.Name

	driver := func(s int64) autopilot.Driver { return autopilot.NewBot(s) }
	if *script != "" {
		if _, err := autopilot.ParseScript(*script); err != nil {
			log.Fatalf("Invalid -script: %v", err)
		}
		driver = func(int64) autopilot.Driver {
			s, _ := autopilot.ParseScript(*script)
			return s
		}
	}
	play := autopilot.PlayOptions{Step: *step, Limit: *limit}

	var report any
	if *runs == 1 {
		play.TrailEvery = *trail
		e := engine.New(engine.Options{
			Fight:  fight,
			Random: rand.New(rand.NewSource(autopilot.RunSeed(*seed, 0))),
		})
		report = autopilot.Play(e, driver(autopilot.RunSeed(*seed, 0)), play)
	} else {
		report = autopilot.RunBatch(autopilot.BatchOptions{
			Runs:    *runs,
			Workers: *workers,
			Seed:    *seed,
			Fight:   fight,
			Play:    play,
			Driver:  driver,
		})
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode report: %v", err)
	}
	data = append(data, '\n')

	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}
}
