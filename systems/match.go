package systems

import (
	"log"

	cfg "github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
)

// IsMatchPlaying returns true while no combatant has been defeated.
func IsMatchPlaying(w donburi.World) bool {
	match := GetMatch(w)
	return match != nil && match.State == cfg.MatchStatePlaying
}

// EndMatch finishes the match in favour of winner. Every task and timer of
// the match clock is cancelled, so nothing mutates the fighters afterwards.
// Only the first call has an effect.
func EndMatch(w donburi.World, winner cfg.Side) bool {
	match := GetMatch(w)
	if match == nil || match.IsOver() {
		return false
	}

	clock := getClock(w)
	match.State = cfg.MatchStateFinished
	match.Winner = winner
	match.EndedAt = clock.Now()
	clock.Stop()

	log.Printf("Match %s finished: %s wins after %v", match.ID, winner, match.Duration(clock.Now()))

	MatchEndedEvents.Publish(w, MatchEndedEvent{
		MatchID: match.ID,
		Winner:  winner,
		At:      match.EndedAt,
	})
	return true
}
