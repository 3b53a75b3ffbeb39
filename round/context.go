// Package round carries a fight's context across matches: round count,
// difficulty and opponent history.
package round

import (
	"math"
	"time"

	cfg "github.com/automoto/brawler/config"
	"github.com/google/uuid"
)

// Context is what a match is created with.
type Context struct {
	PlayerFighter     string   `json:"playerFighter"`
	CPUFighter        string   `json:"cpuFighter"`
	Stage             string   `json:"stage"`
	Round             int      `json:"round"`
	Difficulty        float64  `json:"difficulty"`
	PreviousOpponents []string `json:"previousOpponents"`
}

// NewContext starts a run for playerID at round 1.
func NewContext(playerID string) Context {
	return Context{
		PlayerFighter: playerID,
		Round:         1,
		Difficulty:    cfg.Round.StartDifficulty,
	}
}

// Normalize raises round and difficulty to 1 and detaches the opponent
// history from the caller's slice.
func (c Context) Normalize() Context {
	if c.Round < 1 {
		c.Round = 1
	}
	if math.IsNaN(c.Difficulty) || math.IsInf(c.Difficulty, 0) || c.Difficulty < 1 {
		c.Difficulty = 1
	}
	c.PreviousOpponents = append([]string(nil), c.PreviousOpponents...)
	return c
}

// Handoff is passed to the round controller once a match has ended and
// the result has been on screen for the handoff delay.
type Handoff struct {
	MatchID           uuid.UUID     `json:"matchId"`
	Winner            cfg.Side      `json:"winner"`
	PlayerFighterID   string        `json:"playerFighterId"`
	CPUFighterID      string        `json:"cpuFighterId"`
	Stage             string        `json:"stage"`
	RoundCount        int           `json:"roundCount"`
	Difficulty        float64       `json:"difficulty"`
	PreviousOpponents []string      `json:"previousOpponents"`
	Duration          time.Duration `json:"duration"`
}

// PlayerWon reports whether the human side won the match.
func (h Handoff) PlayerWon() bool {
	return h.Winner == cfg.SidePlayer
}
