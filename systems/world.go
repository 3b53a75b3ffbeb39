package systems

import (
	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/scheduler"
	"github.com/automoto/brawler/tags"
	"github.com/yohamta/donburi"
)

// GetMatch returns the match singleton, or nil before a match is created.
func GetMatch(w donburi.World) *components.MatchData {
	entry, ok := components.Match.First(w)
	if !ok {
		return nil
	}
	return components.Match.Get(entry)
}

// GetPlayer returns the human-controlled combatant.
func GetPlayer(w donburi.World) (*donburi.Entry, bool) {
	return tags.Player.First(w)
}

// GetCPU returns the computer-controlled combatant.
func GetCPU(w donburi.World) (*donburi.Entry, bool) {
	return tags.CPU.First(w)
}

// Opponent returns the other combatant, or nil if it does not exist.
func Opponent(w donburi.World, entry *donburi.Entry) *donburi.Entry {
	var other *donburi.Entry
	var ok bool
	if entry.HasComponent(tags.CPU) {
		other, ok = GetPlayer(w)
	} else {
		other, ok = GetCPU(w)
	}
	if !ok {
		return nil
	}
	return other
}

func getClock(w donburi.World) *scheduler.Scheduler {
	entry, ok := components.Clock.First(w)
	if !ok {
		return nil
	}
	return components.Clock.Get(entry).Scheduler
}

func getRandom(w donburi.World) components.RandomSource {
	entry, ok := components.Random.First(w)
	if !ok {
		return nil
	}
	return components.Random.Get(entry).Source
}

func arenaWidth(w donburi.World) float64 {
	entry, ok := components.Arena.First(w)
	if !ok {
		return 0
	}
	return components.Arena.Get(entry).Width
}

func getHitCooldown(w donburi.World) *components.HitCooldownData {
	entry, ok := components.HitCooldown.First(w)
	if !ok {
		return nil
	}
	return components.HitCooldown.Get(entry)
}
