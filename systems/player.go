package systems

import (
	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
)

// UpdatePlayer applies one input change to the player: single-step moves on
// a fresh direction press, a directional jump, the held duck and the
// one-shot attacks. Does nothing while paused or after the match ended.
func UpdatePlayer(w donburi.World) {
	if IsPaused(w) || !IsMatchPlaying(w) {
		return
	}
	entry, ok := GetPlayer(w)
	if !ok {
		return
	}

	input := components.Input.Get(entry)
	player := components.Player.Get(entry)
	combatant := components.Combatant.Get(entry)

	left := GetAction(input, cfg.ActionMoveLeft)
	right := GetAction(input, cfg.ActionMoveRight)

	if left.JustPressed && canWalk(entry) {
		combatant.IsWalking = true
		player.HoldArmed = false
		TryMove(w, entry, -cfg.Movement.TapStep)
	}
	if right.JustPressed && canWalk(entry) {
		combatant.IsWalking = true
		player.HoldArmed = false
		TryMove(w, entry, cfg.Movement.TapStep)
	}
	if (left.JustReleased || right.JustReleased) && !left.Pressed && !right.Pressed {
		combatant.IsWalking = false
	}

	if GetAction(input, cfg.ActionJump).JustPressed {
		playerJump(w, entry, left.Pressed, right.Pressed)
	}

	updateDuck(w, entry, input)

	if GetAction(input, cfg.ActionPunch).JustPressed {
		PerformAction(w, entry, cfg.Punch)
	}
	if GetAction(input, cfg.ActionKick).JustPressed {
		PerformAction(w, entry, cfg.Kick)
	}
	if GetAction(input, cfg.ActionDefence).JustPressed {
		PerformAction(w, entry, cfg.Defence)
	}
}

// UpdatePlayerHold runs on the hold period. While a direction is held it
// walks the player in small steps; it also keeps duck in line with the key.
func UpdatePlayerHold(w donburi.World) {
	if !IsMatchPlaying(w) {
		return
	}
	entry, ok := GetPlayer(w)
	if !ok {
		return
	}

	input := components.Input.Get(entry)
	player := components.Player.Get(entry)
	combatant := components.Combatant.Get(entry)
	state := components.State.Get(entry)

	updateDuck(w, entry, input)

	left, right := input.Current[cfg.ActionMoveLeft], input.Current[cfg.ActionMoveRight]
	if !left && !right {
		combatant.IsWalking = false
		player.HoldArmed = false
		return
	}
	if state.CurrentState == cfg.Duck {
		return
	}
	if state.CurrentState == cfg.Idle {
		combatant.IsWalking = true
	}
	if !canWalk(entry) {
		return
	}

	// The first hold tick after a press belongs to the tap step.
	if !player.HoldArmed {
		player.HoldArmed = true
		return
	}

	if right {
		TryMove(w, entry, cfg.Movement.HoldStep)
	} else {
		TryMove(w, entry, -cfg.Movement.HoldStep)
	}
}

// canWalk is false while jumping, defending or ducking.
func canWalk(entry *donburi.Entry) bool {
	switch components.State.Get(entry).CurrentState {
	case cfg.Idle, cfg.Punch, cfg.Kick:
		return true
	}
	return false
}

func playerJump(w donburi.World, entry *donburi.Entry, left, right bool) {
	if !RequestTransition(w, entry, cfg.Jump) {
		return
	}

	combatant := components.Combatant.Get(entry)
	switch {
	case left:
		combatant.JumpDirection = cfg.JumpLeft
		TryMove(w, entry, -cfg.Movement.JumpStep)
	case right:
		combatant.JumpDirection = cfg.JumpRight
		TryMove(w, entry, cfg.Movement.JumpStep)
	}
}

// updateDuck is level-triggered: duck while the key is held and the player
// is free, stand up as soon as it is released.
func updateDuck(w donburi.World, entry *donburi.Entry, input *components.InputData) {
	held := input.Current[cfg.ActionDuck]
	switch state := components.State.Get(entry).CurrentState; {
	case held && state == cfg.Idle:
		RequestTransition(w, entry, cfg.Duck)
	case !held && state == cfg.Duck:
		Revert(w, entry)
	}
}
