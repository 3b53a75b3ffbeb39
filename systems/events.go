package systems

import (
	"time"

	cfg "github.com/automoto/brawler/config"
	"github.com/google/uuid"
	"github.com/yohamta/donburi/features/events"
)

// HitEvent is published for every attack that commits damage.
type HitEvent struct {
	Attacker       cfg.Side
	Defender       cfg.Side
	Kind           cfg.StateID
	Outcome        HitOutcome
	DefenderHealth int
	At             time.Duration
}

// MatchEndedEvent is published once, when a combatant reaches 0 health.
type MatchEndedEvent struct {
	MatchID uuid.UUID
	Winner  cfg.Side
	At      time.Duration
}

var (
	HitEvents        = events.NewEventType[HitEvent]()
	MatchEndedEvents = events.NewEventType[MatchEndedEvent]()
)
