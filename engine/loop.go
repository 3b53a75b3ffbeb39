package engine

import (
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// GameLoop advances an engine in real time. The engine can be swapped
// between rounds while the loop keeps running.
type GameLoop struct {
	engine   atomic.Pointer[Engine]
	tickRate int
	running  atomic.Bool
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(engine *Engine, tickRate int) *GameLoop {
	g := &GameLoop{
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
	g.engine.Store(engine)
	return g
}

// Run blocks until Stop is called. Each tick advances the engine by the
// wall time elapsed since the previous tick.
func (g *GameLoop) Run() {
	g.running.Store(true)
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	last := time.Now()
	for {
		select {
		case <-g.stopChan:
			g.running.Store(false)
			log.Println("Game loop stopped")
			return
		case now := <-ticker.C:
			g.tick(now.Sub(last))
			last = now
		}
	}
}

func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) Running() bool {
	return g.running.Load()
}

// Engine returns the engine currently being driven.
func (g *GameLoop) Engine() *Engine {
	return g.engine.Load()
}

// SetEngine replaces the driven engine, typically from a handoff callback.
func (g *GameLoop) SetEngine(e *Engine) {
	g.engine.Store(e)
}

func (g *GameLoop) tick(dt time.Duration) {
	if e := g.engine.Load(); e != nil {
		e.Advance(dt)
	}
}
