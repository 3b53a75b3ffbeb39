package systems

import (
	"time"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
)

// ReactionTime is the reactive tick period for a difficulty, shrinking by
// ReactionStep per point above 1 down to MinReaction.
func ReactionTime(difficulty float64) time.Duration {
	if difficulty < 1 {
		difficulty = 1
	}
	rt := cfg.CPU.BaseReaction - time.Duration((difficulty-1)*float64(cfg.CPU.ReactionStep))
	if rt < cfg.CPU.MinReaction {
		rt = cfg.CPU.MinReaction
	}
	return rt
}

// UpdateCPUFast is the movement and close-range attack tick. It acts only
// while the CPU is idle.
//
// Roll order per tick, each roll taken only when reached:
//  1. attack roll, when in range and off cooldown
//  2. move roll, unless the idle counter forced a step
//  3. evade roll, then duck-or-jump roll when evading
func UpdateCPUFast(w donburi.World) {
	if !IsMatchPlaying(w) {
		return
	}
	cpu, ok := GetCPU(w)
	if !ok {
		return
	}
	player, ok := GetPlayer(w)
	if !ok {
		return
	}
	if components.State.Get(cpu).CurrentState != cfg.Idle {
		return
	}

	brain := components.CPU.Get(cpu)
	self := components.Combatant.Get(cpu)
	target := components.Combatant.Get(player)
	rng := getRandom(w)
	width := arenaWidth(w)

	FaceOpponent(w, cpu)

	if distance(self, target, width) < cfg.CPU.AttackRange && !brain.AttackCooldown {
		roll := rng.Float64()
		if roll < cfg.CPU.AttackChance {
			self.IsWalking = false
			cpuAttack(w, cpu, attackFor(roll))
			brain.IdleTicks = 0
			return
		}
	}

	brain.IdleTicks++
	if brain.IdleTicks > cfg.CPU.IdleForce {
		self.IsWalking = true
		stepToward(w, cpu, self, target, width)
		brain.IdleTicks = 0
		return
	}

	if rng.Float64() < cfg.CPU.MoveChance {
		self.IsWalking = true
		stepToward(w, cpu, self, target, width)
		brain.IdleTicks = 0
	} else {
		self.IsWalking = false
	}

	if rng.Float64() < cfg.CPU.EvadeChance && components.State.Get(cpu).CurrentState == cfg.Idle {
		self.IsWalking = false
		if rng.Float64() < cfg.CPU.DuckOrJump {
			RequestTransition(w, cpu, cfg.Duck)
		} else {
			RequestTransition(w, cpu, cfg.Jump)
		}
		brain.IdleTicks = 0
	}
}

// attackFor maps an attack roll below AttackChance to an action.
func attackFor(roll float64) cfg.StateID {
	switch {
	case roll < cfg.CPU.PunchBelow:
		return cfg.Punch
	case roll < cfg.CPU.KickBelow:
		return cfg.Kick
	}
	return cfg.Defence
}

// cpuAttack starts an action and holds the attack cooldown until the same
// duration has passed again after the action reverts.
func cpuAttack(w donburi.World, cpu *donburi.Entry, action cfg.StateID) {
	brain := components.CPU.Get(cpu)
	brain.AttackCooldown = true
	PerformAction(w, cpu, action)

	d := StateDuration(cfg.SideCPU, action)
	getClock(w).After(2*d, func() {
		components.CPU.Get(cpu).AttackCooldown = false
	})
}

func stepToward(w donburi.World, cpu *donburi.Entry, self, target *components.CombatantData, width float64) {
	dx := cfg.Movement.CPUStep
	if target.CenterX(width) < self.CenterX(width) {
		dx = -dx
	}
	TryMove(w, cpu, dx)
}

// UpdateCPUReactive is the slower tick that dodges the player's current
// action. Branches are tried in order against a single roll:
//  1. kick: duck
//  2. punch: jump
//  3. punch or kick: defence
func UpdateCPUReactive(w donburi.World) {
	if !IsMatchPlaying(w) {
		return
	}
	cpu, ok := GetCPU(w)
	if !ok {
		return
	}
	player, ok := GetPlayer(w)
	if !ok {
		return
	}

	brain := components.CPU.Get(cpu)
	now := getClock(w).Now()
	if now-brain.LastReaction < brain.ReactionTime {
		return
	}

	roll := getRandom(w).Float64()
	FaceOpponent(w, cpu)

	idle := components.State.Get(cpu).CurrentState == cfg.Idle
	last := components.Combatant.Get(player).LastAction
	switch {
	case idle && last == cfg.Kick && roll < cfg.CPU.DuckOnKick:
		react(w, cpu, cfg.Duck)
	case idle && last == cfg.Punch && roll < cfg.CPU.JumpOnPunch:
		react(w, cpu, cfg.Jump)
	case idle && (last == cfg.Punch || last == cfg.Kick) && roll < cfg.CPU.DefendOnHit:
		react(w, cpu, cfg.Defence)
	}

	brain.LastReaction = now
}

func react(w donburi.World, cpu *donburi.Entry, action cfg.StateID) {
	components.Combatant.Get(cpu).IsWalking = false
	RequestTransition(w, cpu, action)
	components.CPU.Get(cpu).IdleTicks = 0
}
