package terminal

import (
	"time"

	cfg "github.com/automoto/brawler/config"
	"github.com/gdamore/tcell/v2"
)

// ActionForKey maps a terminal key event to a game action.
func ActionForKey(ev *tcell.EventKey) (cfg.ActionID, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return cfg.ActionMoveLeft, true
	case tcell.KeyRight:
		return cfg.ActionMoveRight, true
	case tcell.KeyUp:
		return cfg.ActionJump, true
	case tcell.KeyDown:
		return cfg.ActionDuck, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'd', 'D':
			return cfg.ActionPunch, true
		case 'a', 'A':
			return cfg.ActionKick, true
		case 's', 'S':
			return cfg.ActionDefence, true
		case 'p', 'P':
			return cfg.ActionPause, true
		}
	}
	return cfg.ActionNone, false
}

// KeyTracker turns key events into held key state. Terminals report no
// releases, so a key counts as held for a window after its last event;
// auto-repeat keeps it alive while the key stays down.
type KeyTracker struct {
	window time.Duration
	last   [cfg.ActionCount]time.Time
}

func NewKeyTracker(window time.Duration) *KeyTracker {
	return &KeyTracker{window: window}
}

// Press records a key event for a at the given time.
func (k *KeyTracker) Press(a cfg.ActionID, at time.Time) {
	if a <= cfg.ActionNone || a >= cfg.ActionCount {
		return
	}
	k.last[a] = at
}

// State returns the actions held at now.
func (k *KeyTracker) State(now time.Time) cfg.KeyState {
	var keys cfg.KeyState
	for a, at := range k.last {
		if !at.IsZero() && now.Sub(at) < k.window {
			keys[a] = true
		}
	}
	return keys
}
