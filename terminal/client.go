// Package terminal plays a fight in a text terminal.
package terminal

import (
	"fmt"
	"log"
	"time"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/engine"
	"github.com/automoto/brawler/round"
	"github.com/automoto/brawler/systems"
	"github.com/gdamore/tcell/v2"
)

// Client runs matches back to back on a tcell screen until the player quits.
type Client struct {
	screen tcell.Screen
	ctrl   *round.Controller
	keys   *KeyTracker
	beeper *Beeper
	random func() components.RandomSource

	engine *engine.Engine
	err    error
}

// NewClient prepares a client. random seeds each match's CPU and may be nil.
func NewClient(screen tcell.Screen, ctrl *round.Controller, beeper *Beeper, random func() components.RandomSource) *Client {
	return &Client{
		screen: screen,
		ctrl:   ctrl,
		keys:   NewKeyTracker(cfg.Terminal.HoldWindow),
		beeper: beeper,
		random: random,
	}
}

// Start begins a match. The next one starts on its own after the handoff.
func (c *Client) Start(fight round.Fight) {
	opts := engine.Options{
		Fight:     fight,
		OnHandoff: c.onHandoff,
		OnHit: func(ev systems.HitEvent) {
			if ev.Outcome.Result == systems.HitLanded && c.beeper != nil {
				c.beeper.PlayHit()
			}
		},
	}
	if c.random != nil {
		opts.Random = c.random()
	}
	c.engine = engine.New(opts)
}

func (c *Client) onHandoff(h round.Handoff) {
	next, err := c.ctrl.Next(h)
	if err != nil {
		c.err = fmt.Errorf("next round: %w", err)
		return
	}
	log.Printf("Round %d: %s vs %s", next.Round, next.PlayerFighter, next.CPUFighter)
	c.Start(next)
}

// Run blocks until the player quits or the next round cannot be built.
func (c *Client) Run() error {
	if c.engine == nil {
		return fmt.Errorf("no match started")
	}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := c.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Scheduler.TickRate))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			if !c.handle(ev) {
				return nil
			}
		case now := <-ticker.C:
			c.engine.OnInput(c.keys.State(now))
			c.engine.Advance(now.Sub(last))
			last = now
			if c.err != nil {
				return c.err
			}
			Draw(c.screen, c.engine.Snapshot())
			c.screen.Show()
		}
	}
}

// handle returns false when the player asked to quit.
func (c *Client) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q')) {
			return false
		}
		if a, ok := ActionForKey(ev); ok {
			c.keys.Press(a, ev.When())
		}
	case *tcell.EventResize:
		c.screen.Sync()
	}
	return true
}
