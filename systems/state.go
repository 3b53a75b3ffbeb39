package systems

import (
	"context"
	"time"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
)

// RequestTransition asks a combatant's state machine to enter target.
// Actions start from idle only, except a kick requested mid-jump which
// becomes a jump kick. Rejected requests are dropped and report false.
func RequestTransition(w donburi.World, entry *donburi.Entry, target cfg.StateID) bool {
	if !IsMatchPlaying(w) {
		return false
	}

	state := components.State.Get(entry)
	event := target.String()
	switch target {
	case cfg.Idle:
		event = components.EventRevert
	case cfg.Walk:
		// walking is reported through IsWalking, never as a state
		return false
	case cfg.JumpKick:
		if state.CurrentState != cfg.Jump {
			return false
		}
		event = cfg.Kick.String()
	}

	if !state.FSM.Can(event) {
		return false
	}
	if err := state.FSM.Event(context.Background(), event); err != nil {
		return false
	}

	next, ok := cfg.ParseState(state.FSM.Current())
	if !ok {
		return false
	}
	enterState(w, entry, state, next)
	return true
}

// Revert returns a busy combatant to idle.
func Revert(w donburi.World, entry *donburi.Entry) bool {
	return RequestTransition(w, entry, cfg.Idle)
}

func enterState(w donburi.World, entry *donburi.Entry, state *components.StateData, next cfg.StateID) {
	clock := getClock(w)
	combatant := components.Combatant.Get(entry)

	state.PreviousState = state.CurrentState
	state.CurrentState = next
	state.Since = clock.Now()

	if next == cfg.Idle {
		combatant.JumpDirection = cfg.JumpNone
		combatant.LastAction = cfg.Idle
		return
	}

	combatant.IsWalking = false
	combatant.LastAction = next

	// A jump kick ends with the jump it started from.
	if next == cfg.JumpKick {
		return
	}

	state.Token++
	if d := StateDuration(combatant.Side, next); d > 0 {
		armRevert(w, entry, state.Token, d)
	}
}

func armRevert(w donburi.World, entry *donburi.Entry, token uint64, d time.Duration) {
	getClock(w).After(d, func() {
		state := components.State.Get(entry)
		if state.Token != token || state.CurrentState == cfg.Idle {
			return
		}
		Revert(w, entry)
	})
}

// StateDuration is how long a state lasts before reverting to idle. Zero
// means the state has no timer: idle itself, and the player's duck, which
// lasts while the key is held.
func StateDuration(side cfg.Side, s cfg.StateID) time.Duration {
	switch s {
	case cfg.Punch:
		return cfg.Timing.Punch
	case cfg.Kick:
		return cfg.Timing.Kick
	case cfg.Defence:
		return cfg.Timing.Defence
	case cfg.Jump:
		return cfg.Timing.Jump
	case cfg.Duck:
		if side == cfg.SideCPU {
			return cfg.Timing.CPUDuck
		}
	}
	return 0
}

// PerformAction enters an action state and, for attacks, resolves the hit
// against the opponent at once.
func PerformAction(w donburi.World, entry *donburi.Entry, action cfg.StateID) bool {
	if !RequestTransition(w, entry, action) {
		return false
	}

	state := components.State.Get(entry)
	if state.CurrentState.IsAttack() {
		if opponent := Opponent(w, entry); opponent != nil {
			ResolveAttack(w, entry, opponent, state.CurrentState)
		}
	}
	return true
}
