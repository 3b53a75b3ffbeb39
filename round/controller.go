package round

import (
	"fmt"
	"log"
	"math/rand"

	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/stage"
)

// Opponents picks the CPU fighter for the next match.
type Opponents interface {
	PickOpponent(rng *rand.Rand, playerID string, previous []string) (string, error)
}

// Stages picks the stage for the next match.
type Stages interface {
	Pick(rng *rand.Rand) (*stage.Stage, error)
}

// Fight is a fully prepared next match. Stage is nil when no stage set is
// configured and the default arena is used.
type Fight struct {
	Context
	Stage *stage.Stage
}

// Controller builds the context of each match from the previous result.
type Controller struct {
	opponents Opponents
	stages    Stages
	store     Store
	rng       *rand.Rand
}

// NewController wires the collaborators. stages and store may be nil.
func NewController(opponents Opponents, stages Stages, store Store, rng *rand.Rand) *Controller {
	if store == nil {
		store = &MemoryStore{}
	}
	return &Controller{
		opponents: opponents,
		stages:    stages,
		store:     store,
		rng:       rng,
	}
}

// Start resumes saved progress for playerID, or begins at round 1.
func (c *Controller) Start(playerID string) (Fight, error) {
	ctx := NewContext(playerID)

	saved, ok, err := c.store.Load()
	switch {
	case err != nil:
		log.Printf("Warning: Could not load round progress: %v", err)
	case ok && saved.PlayerFighter == playerID:
		ctx = saved
	}

	return c.prepare(ctx)
}

// Next builds the following match. A player win advances the round, raises
// the difficulty and records the beaten opponent. A CPU win replays the same
// round against a freshly picked opponent.
func (c *Controller) Next(h Handoff) (Fight, error) {
	ctx := Context{
		PlayerFighter:     h.PlayerFighterID,
		Round:             h.RoundCount,
		Difficulty:        h.Difficulty,
		PreviousOpponents: append([]string(nil), h.PreviousOpponents...),
	}
	if h.PlayerWon() {
		ctx.Round++
		ctx.Difficulty += cfg.Round.DifficultyStep
		ctx.PreviousOpponents = append(ctx.PreviousOpponents, h.CPUFighterID)
	}
	return c.prepare(ctx)
}

func (c *Controller) prepare(ctx Context) (Fight, error) {
	ctx = ctx.Normalize()

	opponent, err := c.opponents.PickOpponent(c.rng, ctx.PlayerFighter, ctx.PreviousOpponents)
	if err != nil {
		return Fight{}, fmt.Errorf("pick opponent for %s: %w", ctx.PlayerFighter, err)
	}
	ctx.CPUFighter = opponent

	fight := Fight{Context: ctx}
	if c.stages != nil {
		st, err := c.stages.Pick(c.rng)
		if err != nil {
			return Fight{}, fmt.Errorf("pick stage: %w", err)
		}
		fight.Stage = st
		fight.Context.Stage = st.Name
	}

	if err := c.store.Save(fight.Context); err != nil {
		log.Printf("Warning: Could not save round progress: %v", err)
	}
	return fight, nil
}
