package autopilot

import (
	"time"

	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/engine"
	"github.com/automoto/brawler/systems"
	"github.com/google/uuid"
)

// PlayOptions controls a headless match.
type PlayOptions struct {
	// Virtual time between input steps.
	Step time.Duration
	// Matches still running after this much virtual time are abandoned.
	Limit time.Duration
	// Record a snapshot every TrailEvery steps; 0 records none.
	TrailEvery int
}

// Result summarises one headless match.
type Result struct {
	MatchID      uuid.UUID          `json:"matchId"`
	Winner       cfg.Side           `json:"winner"`
	Duration     time.Duration      `json:"duration"`
	PlayerHealth int                `json:"playerHealth"`
	CPUHealth    int                `json:"cpuHealth"`
	Steps        int                `json:"steps"`
	TimedOut     bool               `json:"timedOut"`
	Final        systems.Snapshot   `json:"final"`
	Trail        []systems.Snapshot `json:"trail,omitempty"`
}

// Play feeds driver input into e until the match ends or the limit passes.
// The engine is advanced as fast as the CPU allows.
func Play(e *engine.Engine, d Driver, opts PlayOptions) Result {
	if opts.Step <= 0 {
		opts.Step = cfg.Scheduler.PlayerHold
	}
	if opts.Limit <= 0 {
		opts.Limit = 5 * time.Minute
	}

	var res Result
	var elapsed time.Duration
	for !e.Finished() && elapsed < opts.Limit {
		snap := e.Snapshot()
		if opts.TrailEvery > 0 && res.Steps%opts.TrailEvery == 0 {
			res.Trail = append(res.Trail, snap)
		}
		e.OnInput(d.Next(snap))
		e.Advance(opts.Step)
		elapsed += opts.Step
		res.Steps++
	}

	final := e.Snapshot()
	res.MatchID = final.MatchID
	res.Winner = final.Winner
	res.Duration = final.Time
	res.PlayerHealth = final.Player.Health
	res.CPUHealth = final.CPU.Health
	res.TimedOut = !e.Finished()
	res.Final = final
	return res
}
