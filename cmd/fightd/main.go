// Command fightd runs bot-driven matches in real time and serves them to
// spectators over HTTP.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/brawler/assets"
	"github.com/automoto/brawler/autopilot"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/engine"
	"github.com/automoto/brawler/round"
	"github.com/automoto/brawler/spectator"
	"github.com/gin-gonic/gin"
)

func main() {
	addr := flag.String("addr", cfg.Spectator.Addr, "HTTP listen address")
	tickRate := flag.Int("tickrate", cfg.Scheduler.TickRate, "Engine ticks per second")
	fighter := flag.String("fighter", "Carlos-Freire", "Fighter the bot plays")
	configPath := flag.String("config", "", "YAML tuning overrides")
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed")
	flag.BoolVar(&cfg.Debug.ShowBoxes, "debug", false, "Draw collision boxes in frames")
	flag.Parse()

	if *configPath != "" {
		if err := cfg.LoadOverrides(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	gin.SetMode(gin.ReleaseMode)

	roster, err := assets.LoadRoster()
	if err != nil {
		log.Fatalf("Failed to load roster: %v", err)
	}
	stages, err := assets.LoadStages()
	if err != nil {
		log.Fatalf("Failed to load stages: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed))
	ctrl := round.NewController(roster, stages, &round.MemoryStore{}, rng)
	fight, err := ctrl.Start(*fighter)
	if err != nil {
		log.Fatalf("Failed to start round: %v", err)
	}

	var loop *engine.GameLoop
	var newEngine func(round.Fight) *engine.Engine
	newEngine = func(f round.Fight) *engine.Engine {
		return engine.New(engine.Options{
			Fight:  f,
			Random: rand.New(rand.NewSource(rng.Int63())),
			OnMatchEnd: func(winner cfg.Side) {
				log.Printf("Round %d won by %s", f.Round, winner)
			},
			OnHandoff: func(h round.Handoff) {
				next, err := ctrl.Next(h)
				if err != nil {
					log.Printf("Warning: Could not prepare next round: %v", err)
					return
				}
				loop.SetEngine(newEngine(next))
			},
		})
	}
	loop = engine.NewGameLoop(newEngine(fight), *tickRate)

	go drive(loop, autopilot.NewBot(*seed))

	srv := &http.Server{
		Addr:    *addr,
		Handler: spectator.NewServer(func() spectator.Source { return loop.Engine() }, nil).Handler(),
	}
	go func() {
		log.Printf("Spectator server listening on %s", *addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down server...")
		loop.Stop()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Warning: Shutdown: %v", err)
		}
	}()

	loop.Run()
}

// drive feeds the bot's keys to whichever engine the loop is running.
func drive(loop *engine.GameLoop, bot *autopilot.Bot) {
	ticker := time.NewTicker(cfg.Scheduler.PlayerHold)
	defer ticker.Stop()
	for range ticker.C {
		if !loop.Running() {
			continue
		}
		e := loop.Engine()
		if e == nil || e.Paused() {
			continue
		}
		e.OnInput(bot.Next(e.Snapshot()))
	}
}
