package systems

import (
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
)

// UpdatePause toggles pause on a fresh press of the pause action.
// This system should run AFTER the input buffers swap but BEFORE gameplay.
func UpdatePause(w donburi.World, input *components.InputData) {
	if GetAction(input, cfg.ActionPause).JustPressed {
		SetPaused(w, !IsPaused(w))
	}
}

// SetPaused freezes or unfreezes the match clock. Timers keep their
// remaining time across a pause. Reports whether anything changed.
func SetPaused(w donburi.World, paused bool) bool {
	pause := GetOrCreatePause(w)
	if pause.IsPaused == paused {
		return false
	}
	pause.IsPaused = paused

	if clock := getClock(w); clock != nil {
		if paused {
			clock.Pause()
		} else {
			clock.Resume()
		}
	}
	return true
}

func IsPaused(w donburi.World) bool {
	return GetOrCreatePause(w).IsPaused
}

func GetOrCreatePause(w donburi.World) *components.PauseData {
	if _, ok := components.Pause.First(w); !ok {
		ent := w.Entry(w.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused: false,
		})
	}

	ent, _ := components.Pause.First(w)
	return components.Pause.Get(ent)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system func(donburi.World)) func(donburi.World) {
	return func(w donburi.World) {
		if IsPaused(w) {
			return
		}
		system(w)
	}
}
