package config

import (
	"image/color"
	"time"
)

// AppName names the per-user data directory.
const AppName = "brawler"

// ArenaConfig describes the 1-D fighting floor.
type ArenaConfig struct {
	// Default width used when no stage supplies one.
	Width float64 `yaml:"width"`

	// Smallest width a match will accept; narrower arenas are widened.
	MinWidth float64 `yaml:"min_width"`

	// Positions are offsets from each combatant's home edge and stay in
	// [MinPosition, Width-EdgeMargin].
	MinPosition float64 `yaml:"min_position"`
	EdgeMargin  float64 `yaml:"edge_margin"`

	// Starting home-edge offsets.
	PlayerStart float64 `yaml:"player_start"`
	CPUStart    float64 `yaml:"cpu_start"`
}

// FighterConfig contains combatant dimensions and vitals
type FighterConfig struct {
	Health int `yaml:"health"`

	// Dimensions
	FrameWidth           float64 `yaml:"frame_width"` // centerX is derived from this
	FrameHeight          float64 `yaml:"frame_height"`
	PlayerCollisionWidth float64 `yaml:"player_collision_width"`
	CPUCollisionWidth    float64 `yaml:"cpu_collision_width"`
}

// MovementConfig contains step sizes for every movement trigger
type MovementConfig struct {
	TapStep  float64 `yaml:"tap_step"`  // single key edge
	HoldStep float64 `yaml:"hold_step"` // each hold tick while a direction is held
	JumpStep float64 `yaml:"jump_step"` // directional jump displacement
	CPUStep  float64 `yaml:"cpu_step"`  // CPU walk step
}

// CombatConfig contains damage, reach and hit timing values
type CombatConfig struct {
	PunchDamage    int `yaml:"punch_damage"`
	KickDamage     int `yaml:"kick_damage"`
	JumpKickDamage int `yaml:"jump_kick_damage"`
	ChipDamage     int `yaml:"chip_damage"` // damage taken while in defence

	PunchReach float64 `yaml:"punch_reach"`
	KickReach  float64 `yaml:"kick_reach"`

	HitFlash    time.Duration `yaml:"hit_flash"`
	HitCooldown time.Duration `yaml:"hit_cooldown"`
}

// TimingConfig contains how long each timed state lasts
type TimingConfig struct {
	Punch   time.Duration `yaml:"punch"`
	Kick    time.Duration `yaml:"kick"`
	Defence time.Duration `yaml:"defence"`
	Jump    time.Duration `yaml:"jump"`
	CPUDuck time.Duration `yaml:"cpu_duck"`
}

// SchedulerConfig contains the periods of the independent timers
type SchedulerConfig struct {
	PlayerHold time.Duration `yaml:"player_hold"`
	CPUFast    time.Duration `yaml:"cpu_fast"`

	// Real-time loop rate used by GameLoop
	TickRate int `yaml:"tick_rate"`
}

// RoundConfig contains round progression values
type RoundConfig struct {
	StartDifficulty float64       `yaml:"start_difficulty"`
	DifficultyStep  float64       `yaml:"difficulty_step"`
	HandoffDelay    time.Duration `yaml:"handoff_delay"`
}

// SpectatorConfig contains the HTTP spectator defaults
type SpectatorConfig struct {
	Addr        string
	FrameWidth  int
	FrameHeight int
	MaxScale    float64
}

// TerminalConfig contains terminal client values
type TerminalConfig struct {
	// Keys count as held for this long after their last event.
	HoldWindow time.Duration
	HitToneHz  float64
	HitToneLen time.Duration
}

// UIConfig contains the client presentation values
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarMargin float64
	FloorHeight     float64
	JumpHeight      float64

	PlayerColor color.RGBA
	CPUColor    color.RGBA
	HitColor    color.RGBA
	GuardColor  color.RGBA
	HealthBg    color.RGBA
	HealthFg    color.RGBA
	TextColor   color.RGBA
	Overlay     color.RGBA
}

// Config holds general client configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Fighter FighterConfig
var Movement MovementConfig
var Combat CombatConfig
var Timing TimingConfig
var Scheduler SchedulerConfig
var Round RoundConfig
var Spectator SpectatorConfig
var Terminal TerminalConfig
var UI UIConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowBoxes bool // draw collision boxes and reach
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  1280,
		Height: 720,
	}

	Arena = ArenaConfig{
		Width:       1280,
		MinWidth:    500,
		MinPosition: 50,
		EdgeMargin:  150,
		PlayerStart: 150,
		CPUStart:    150,
	}

	Fighter = FighterConfig{
		Health: 100,

		FrameWidth:           140,
		FrameHeight:          200,
		PlayerCollisionWidth: 100,
		CPUCollisionWidth:    90, // slightly smaller than the player
	}

	Movement = MovementConfig{
		TapStep:  20,
		HoldStep: 10,
		JumpStep: 50,
		CPUStep:  15,
	}

	Combat = CombatConfig{
		PunchDamage:    5,
		KickDamage:     10,
		JumpKickDamage: 15,
		ChipDamage:     1,

		PunchReach: 140,
		KickReach:  170,

		HitFlash:    300 * time.Millisecond,
		HitCooldown: 500 * time.Millisecond,
	}

	Timing = TimingConfig{
		Punch:   300 * time.Millisecond,
		Kick:    400 * time.Millisecond,
		Defence: 500 * time.Millisecond,
		Jump:    500 * time.Millisecond,
		CPUDuck: 400 * time.Millisecond,
	}

	Scheduler = SchedulerConfig{
		PlayerHold: 50 * time.Millisecond,
		CPUFast:    200 * time.Millisecond,
		TickRate:   60,
	}

	Round = RoundConfig{
		StartDifficulty: 1.0,
		DifficultyStep:  0.5,
		HandoffDelay:    2 * time.Second,
	}

	Spectator = SpectatorConfig{
		Addr:        ":8080",
		FrameWidth:  1280,
		FrameHeight: 360,
		MaxScale:    2,
	}

	Terminal = TerminalConfig{
		HoldWindow: 150 * time.Millisecond,
		HitToneHz:  880,
		HitToneLen: 50 * time.Millisecond,
	}

	UI = UIConfig{
		HealthBarWidth:  400,
		HealthBarHeight: 24,
		HealthBarMargin: 32,
		FloorHeight:     80,
		JumpHeight:      120,

		PlayerColor: LightBlue,
		CPUColor:    Orange,
		HitColor:    LightRed,
		GuardColor:  White,
		HealthBg:    DarkGray,
		HealthFg:    Green,
		TextColor:   White,
		Overlay:     BlackOverlay,
	}
}
