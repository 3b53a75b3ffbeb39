package systems

import (
	"time"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
)

// Periodic task names, in the order they fire on a shared due time.
const (
	TaskPlayerHold  = "player-hold"
	TaskCPUFast     = "cpu-fast"
	TaskCPUReactive = "cpu-reactive"
)

// RegisterTasks installs the match's periodic tasks on its clock. The
// reactive period follows the match difficulty.
func RegisterTasks(w donburi.World) {
	clock := getClock(w)
	match := GetMatch(w)
	if clock == nil || match == nil {
		return
	}

	rt := ReactionTime(match.Difficulty)
	if cpu, ok := GetCPU(w); ok {
		brain := components.CPU.Get(cpu)
		brain.ReactionTime = rt
		brain.LastReaction = clock.Now()
	}

	tasks := []struct {
		name   string
		period time.Duration
		system func(donburi.World)
	}{
		{TaskPlayerHold, cfg.Scheduler.PlayerHold, UpdatePlayerHold},
		{TaskCPUFast, cfg.Scheduler.CPUFast, UpdateCPUFast},
		{TaskCPUReactive, rt, UpdateCPUReactive},
	}
	for _, t := range tasks {
		system := WithPauseCheck(t.system)
		clock.Every(t.name, t.period, func() { system(w) })
	}
}
