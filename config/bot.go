package config

import "time"

// CPUConfig holds tuning values for the computer-controlled opponent
type CPUConfig struct {
	// Fast tick: movement and close-range attacks
	AttackRange  float64 `yaml:"attack_range"`  // strict: distance must be below this
	AttackChance float64 `yaml:"attack_chance"` // roll below this attacks
	PunchBelow   float64 `yaml:"punch_below"`   // attack roll below this punches
	KickBelow    float64 `yaml:"kick_below"`    // attack roll below this (and >= PunchBelow) kicks; otherwise defence
	MoveChance   float64 `yaml:"move_chance"`
	IdleForce    int     `yaml:"idle_force"` // idle ticks beyond this force a step toward the player
	EvadeChance  float64 `yaml:"evade_chance"`
	DuckOrJump   float64 `yaml:"duck_or_jump"` // evade roll below this ducks, otherwise jumps

	// Reactive tick: dodges keyed on the player's last action
	DuckOnKick   float64       `yaml:"duck_on_kick"`
	JumpOnPunch  float64       `yaml:"jump_on_punch"`
	DefendOnHit  float64       `yaml:"defend_on_hit"`
	BaseReaction time.Duration `yaml:"base_reaction"`
	ReactionStep time.Duration `yaml:"reaction_step"` // removed per difficulty point above 1
	MinReaction  time.Duration `yaml:"min_reaction"`
}

// CPU holds CPU opponent configuration
var CPU CPUConfig

func init() {
	CPU = CPUConfig{
		AttackRange:  170,
		AttackChance: 0.6,
		PunchBelow:   0.3,
		KickBelow:    0.5,
		MoveChance:   0.5,
		IdleForce:    3,
		EvadeChance:  0.1,
		DuckOrJump:   0.5,

		DuckOnKick:   0.7,
		JumpOnPunch:  0.7,
		DefendOnHit:  0.4,
		BaseReaction: 500 * time.Millisecond,
		ReactionStep: 100 * time.Millisecond,
		MinReaction:  200 * time.Millisecond,
	}
}
