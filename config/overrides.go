package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidOverride is returned when an override file fails validation.
var ErrInvalidOverride = errors.New("invalid config override")

// overrideFile mirrors the tunable groups. Decoding into pointers to copies of
// the globals applies only the keys present in the file.
type overrideFile struct {
	Arena     *ArenaConfig     `yaml:"arena"`
	Fighter   *FighterConfig   `yaml:"fighter"`
	Movement  *MovementConfig  `yaml:"movement"`
	Combat    *CombatConfig    `yaml:"combat"`
	Timing    *TimingConfig    `yaml:"timing"`
	Scheduler *SchedulerConfig `yaml:"scheduler"`
	Round     *RoundConfig     `yaml:"round"`
	CPU       *CPUConfig       `yaml:"cpu"`
}

// LoadOverrides reads a YAML file and applies it on top of the defaults.
func LoadOverrides(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read overrides %s: %w", path, err)
	}
	return ApplyOverrides(b)
}

// ApplyOverrides applies YAML overrides held in memory. Nothing is changed
// when decoding or validation fails.
func ApplyOverrides(b []byte) error {
	arena, fighter, movement, combat := Arena, Fighter, Movement, Combat
	timing, scheduler, round, cpu := Timing, Scheduler, Round, CPU

	doc := overrideFile{
		Arena:     &arena,
		Fighter:   &fighter,
		Movement:  &movement,
		Combat:    &combat,
		Timing:    &timing,
		Scheduler: &scheduler,
		Round:     &round,
		CPU:       &cpu,
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode overrides: %w", err)
	}

	if err := validate(arena, fighter, combat, scheduler, round, cpu); err != nil {
		return err
	}

	Arena, Fighter, Movement, Combat = arena, fighter, movement, combat
	Timing, Scheduler, Round, CPU = timing, scheduler, round, cpu
	return nil
}

func validate(arena ArenaConfig, fighter FighterConfig, combat CombatConfig, scheduler SchedulerConfig, round RoundConfig, cpu CPUConfig) error {
	switch {
	case fighter.Health <= 0:
		return fmt.Errorf("%w: fighter.health must be positive", ErrInvalidOverride)
	case fighter.PlayerCollisionWidth > fighter.FrameWidth || fighter.CPUCollisionWidth > fighter.FrameWidth:
		return fmt.Errorf("%w: collision width exceeds frame width", ErrInvalidOverride)
	case arena.MinPosition < 0 || arena.EdgeMargin < fighter.FrameWidth:
		return fmt.Errorf("%w: arena bounds do not fit a fighter frame", ErrInvalidOverride)
	case arena.MinWidth <= 2*arena.MinPosition+fighter.PlayerCollisionWidth+fighter.CPUCollisionWidth:
		return fmt.Errorf("%w: arena.min_width leaves no room between the fighters", ErrInvalidOverride)
	case combat.HitCooldown <= 0 || combat.HitFlash <= 0:
		return fmt.Errorf("%w: hit timings must be positive", ErrInvalidOverride)
	case scheduler.PlayerHold <= 0 || scheduler.CPUFast <= 0 || scheduler.TickRate <= 0:
		return fmt.Errorf("%w: scheduler periods must be positive", ErrInvalidOverride)
	case cpu.MinReaction <= 0 || cpu.BaseReaction < cpu.MinReaction:
		return fmt.Errorf("%w: cpu reaction bounds", ErrInvalidOverride)
	case cpu.PunchBelow > cpu.KickBelow || cpu.KickBelow > cpu.AttackChance:
		return fmt.Errorf("%w: cpu attack thresholds must be ordered", ErrInvalidOverride)
	case round.StartDifficulty < 1:
		return fmt.Errorf("%w: round.start_difficulty must be at least 1", ErrInvalidOverride)
	}
	return nil
}
