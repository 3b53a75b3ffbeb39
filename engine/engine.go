// Package engine runs one match behind a concurrency-safe API: input
// arrives from the presentation thread, time advances from a loop, and
// results leave through callbacks.
package engine

import (
	"log"
	"sync"
	"time"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/round"
	"github.com/automoto/brawler/scheduler"
	"github.com/automoto/brawler/stage"
	"github.com/automoto/brawler/systems"
	"github.com/automoto/brawler/systems/factory"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Options configures a match. Callbacks run on the goroutine that caused
// them, after the engine lock has been released, so they may call back
// into the engine.
type Options struct {
	Fight  round.Fight
	Random components.RandomSource // nil seeds from the wall clock

	OnMatchEnd func(winner cfg.Side)
	OnHandoff  func(round.Handoff)
	OnHit      func(systems.HitEvent)
}

// Engine owns a match world. All methods are safe for concurrent use.
type Engine struct {
	mu    sync.Mutex
	world donburi.World
	clock *scheduler.Scheduler

	// post outlives the match clock so the handoff can fire after the
	// match has stopped every gameplay timer.
	post *scheduler.Scheduler

	opts    Options
	handoff *round.Handoff
	queued  []func()
}

// New creates the match described by opts.Fight and registers its tasks.
func New(opts Options) *Engine {
	e := &Engine{
		world: donburi.NewWorld(),
		clock: scheduler.New(),
		post:  scheduler.New(),
		opts:  opts,
	}

	fight := opts.Fight
	mc := factory.MatchConfig{
		Round:             fight.Round,
		Difficulty:        fight.Difficulty,
		PlayerFighter:     fight.PlayerFighter,
		CPUFighter:        fight.CPUFighter,
		PreviousOpponents: fight.PreviousOpponents,
		Clock:             e.clock,
		Random:            opts.Random,
	}
	if st := fight.Stage; st != nil {
		mc.ArenaWidth = st.Width
		mc.PlayerStart = st.PlayerStart
		mc.CPUStart = st.CPUStart
	}
	factory.CreateMatch(e.world, mc)
	systems.RegisterTasks(e.world)

	systems.MatchEndedEvents.Subscribe(e.world, e.onMatchEnded)
	systems.HitEvents.Subscribe(e.world, e.onHit)

	match := systems.GetMatch(e.world)
	log.Printf("Match %s started: %s vs %s, round %d, difficulty %.1f",
		match.ID, match.PlayerFighter, match.CPUFighter, match.Round, match.Difficulty)
	return e
}

// OnInput applies the live key state of the human side.
func (e *Engine) OnInput(keys cfg.KeyState) {
	e.do(func() {
		input := systems.UpdateInput(e.world, keys)
		systems.UpdatePause(e.world, input)
		e.syncPost()
		systems.UpdatePlayer(e.world)
	})
}

// Advance moves the match forward by dt, firing every task and timer that
// comes due in order.
func (e *Engine) Advance(dt time.Duration) {
	e.do(func() {
		e.clock.Advance(dt)
		events.ProcessAllEvents(e.world)
		e.post.Advance(dt)
	})
}

// Pause freezes the match. Reports whether the state changed.
func (e *Engine) Pause() bool {
	return e.setPaused(true)
}

// Resume unfreezes the match. Timers continue with their remaining time.
func (e *Engine) Resume() bool {
	return e.setPaused(false)
}

// TogglePause flips pause and returns the new state.
func (e *Engine) TogglePause() bool {
	var paused bool
	e.do(func() {
		paused = !systems.IsPaused(e.world)
		systems.SetPaused(e.world, paused)
		e.syncPost()
	})
	return paused
}

func (e *Engine) setPaused(paused bool) bool {
	var changed bool
	e.do(func() {
		changed = systems.SetPaused(e.world, paused)
		e.syncPost()
	})
	return changed
}

func (e *Engine) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return systems.IsPaused(e.world)
}

// Snapshot copies the current match state for rendering.
func (e *Engine) Snapshot() systems.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return systems.TakeSnapshot(e.world)
}

// Finished reports whether a combatant has been defeated.
func (e *Engine) Finished() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !systems.IsMatchPlaying(e.world)
}

// Handoff returns the round handoff once it has fired.
func (e *Engine) Handoff() (round.Handoff, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.handoff == nil {
		return round.Handoff{}, false
	}
	return *e.handoff, true
}

// Stage is the stage the match was created on, or nil for the default arena.
func (e *Engine) Stage() *stage.Stage {
	return e.opts.Fight.Stage
}

func (e *Engine) MatchID() uuid.UUID {
	e.mu.Lock()
	defer e.mu.Unlock()
	return systems.GetMatch(e.world).ID
}

// do runs fn under the lock, then the callbacks it queued without it.
func (e *Engine) do(fn func()) {
	e.mu.Lock()
	fn()
	events.ProcessAllEvents(e.world)
	calls := e.queued
	e.queued = nil
	e.mu.Unlock()

	for _, call := range calls {
		call()
	}
}

// syncPost keeps the handoff timer frozen while the match is paused.
func (e *Engine) syncPost() {
	if systems.IsPaused(e.world) {
		e.post.Pause()
	} else {
		e.post.Resume()
	}
}

func (e *Engine) onHit(_ donburi.World, ev systems.HitEvent) {
	if e.opts.OnHit != nil {
		cb := e.opts.OnHit
		e.queued = append(e.queued, func() { cb(ev) })
	}
}

func (e *Engine) onMatchEnded(w donburi.World, ev systems.MatchEndedEvent) {
	if cb := e.opts.OnMatchEnd; cb != nil {
		e.queued = append(e.queued, func() { cb(ev.Winner) })
	}

	h := e.buildHandoff(w, ev)
	// post runs in step with the match clock, so the delay counts from the
	// moment of the knockout even when it happened mid-Advance.
	delay := ev.At + cfg.Round.HandoffDelay - e.post.Now()
	e.post.After(delay, func() {
		e.handoff = &h
		log.Printf("Match %s handed off to round controller", h.MatchID)
		if cb := e.opts.OnHandoff; cb != nil {
			e.queued = append(e.queued, func() { cb(h) })
		}
	})
}

func (e *Engine) buildHandoff(w donburi.World, ev systems.MatchEndedEvent) round.Handoff {
	match := systems.GetMatch(w)
	return round.Handoff{
		MatchID:           match.ID,
		Winner:            ev.Winner,
		PlayerFighterID:   match.PlayerFighter,
		CPUFighterID:      match.CPUFighter,
		Stage:             e.opts.Fight.Context.Stage,
		RoundCount:        match.Round,
		Difficulty:        match.Difficulty,
		PreviousOpponents: append([]string(nil), match.PreviousOpponents...),
		Duration:          match.Duration(ev.At),
	}
}
