package systems

import (
	"time"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// CombatantSnapshot is the read-only view of one fighter handed to
// presentation.
type CombatantSnapshot struct {
	Side          cfg.Side          `json:"side"`
	FighterID     string            `json:"fighterId"`
	Position      float64           `json:"position"`
	FrameLeft     float64           `json:"frameLeft"`
	CenterX       float64           `json:"centerX"`
	BoxLeft       float64           `json:"boxLeft"`
	BoxRight      float64           `json:"boxRight"`
	State         cfg.StateID       `json:"state"`
	FacingLeft    bool              `json:"facingLeft"`
	Health        int               `json:"health"`
	MaxHealth     int               `json:"maxHealth"`
	IsHit         bool              `json:"isHit"`
	IsWalking     bool              `json:"isWalking"`
	JumpDirection cfg.JumpDirection `json:"jumpDirection"`
}

// Snapshot is a copy of the whole match. It shares no memory with the world.
type Snapshot struct {
	MatchID     uuid.UUID        `json:"matchId"`
	Time        time.Duration    `json:"time"`
	State       cfg.MatchStateID `json:"state"`
	Winner      cfg.Side         `json:"winner"`
	Paused      bool             `json:"paused"`
	Round       int              `json:"round"`
	Difficulty  float64          `json:"difficulty"`
	ArenaWidth  float64          `json:"arenaWidth"`
	HitCooldown bool             `json:"hitCooldown"`

	Player CombatantSnapshot `json:"player"`
	CPU    CombatantSnapshot `json:"cpu"`
}

// Combatant returns the snapshot of one side.
func (s Snapshot) Combatant(side cfg.Side) CombatantSnapshot {
	if side == cfg.SideCPU {
		return s.CPU
	}
	return s.Player
}

// TakeSnapshot copies the current match state.
func TakeSnapshot(w donburi.World) Snapshot {
	var snap Snapshot
	match := GetMatch(w)
	if match == nil {
		return snap
	}

	width := arenaWidth(w)
	snap.MatchID = match.ID
	snap.State = match.State
	snap.Winner = match.Winner
	snap.Paused = IsPaused(w)
	snap.Round = match.Round
	snap.Difficulty = match.Difficulty
	snap.ArenaWidth = width
	snap.HitCooldown = HitCooldownActive(w)
	if clock := getClock(w); clock != nil {
		snap.Time = clock.Now()
	}

	if player, ok := GetPlayer(w); ok {
		snap.Player = snapshotCombatant(player, width)
	}
	if cpu, ok := GetCPU(w); ok {
		snap.CPU = snapshotCombatant(cpu, width)
	}
	return snap
}

func snapshotCombatant(entry *donburi.Entry, width float64) CombatantSnapshot {
	c := components.Combatant.Get(entry)
	health := components.Health.Get(entry)
	boxLeft, boxRight := c.Box(width)
	return CombatantSnapshot{
		Side:          c.Side,
		FighterID:     c.FighterID,
		Position:      c.Position,
		FrameLeft:     c.FrameLeft(width),
		CenterX:       c.CenterX(width),
		BoxLeft:       boxLeft,
		BoxRight:      boxRight,
		State:         components.State.Get(entry).CurrentState,
		FacingLeft:    c.FacingLeft,
		Health:        health.Current,
		MaxHealth:     health.Max,
		IsHit:         c.IsHit,
		IsWalking:     c.IsWalking,
		JumpDirection: c.JumpDirection,
	}
}
