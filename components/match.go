package components

import (
	"time"

	cfg "github.com/automoto/brawler/config"
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// MatchData stores the current match state.
// This is a singleton component - only one match exists at a time.
type MatchData struct {
	ID     uuid.UUID
	State  cfg.MatchStateID
	Winner cfg.Side

	// Round context the match was created with
	Round             int
	Difficulty        float64
	PlayerFighter     string
	CPUFighter        string
	PreviousOpponents []string

	StartedAt time.Duration
	EndedAt   time.Duration
}

var Match = donburi.NewComponentType[MatchData]()

// IsOver reports whether a combatant has been defeated.
func (m *MatchData) IsOver() bool {
	return m.State == cfg.MatchStateFinished
}

// Duration is the virtual fight time, up to now while still playing.
func (m *MatchData) Duration(now time.Duration) time.Duration {
	if m.IsOver() {
		return m.EndedAt - m.StartedAt
	}
	return now - m.StartedAt
}
