// Package autopilot drives the human side of a match without a keyboard,
// for batch simulation and unattended servers.
package autopilot

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/systems"
)

// Driver chooses the key state for the next input step.
type Driver interface {
	Next(snap systems.Snapshot) cfg.KeyState
}

// Bot walks toward the CPU and trades blows once in reach. Every press is
// followed by a release so each one registers as a fresh key edge.
type Bot struct {
	rng *rand.Rand

	// Chance per step to attack while in reach.
	Aggression float64
	// Chance per step to guard or hop while the CPU is in kick reach.
	Caution float64

	pressed bool
}

func NewBot(seed int64) *Bot {
	return &Bot{
		rng:        rand.New(rand.NewSource(seed)),
		Aggression: 0.6,
		Caution:    0.15,
	}
}

func (b *Bot) Next(snap systems.Snapshot) cfg.KeyState {
	if b.pressed {
		b.pressed = false
		return cfg.KeyState{}
	}
	if snap.State != cfg.MatchStatePlaying || snap.Paused || snap.Player.State != cfg.Idle {
		return cfg.KeyState{}
	}

	p, c := snap.Player, snap.CPU
	dist := math.Abs(c.CenterX - p.CenterX)
	toward := cfg.ActionMoveRight
	if c.CenterX < p.CenterX {
		toward = cfg.ActionMoveLeft
	}

	action := cfg.ActionNone
	switch roll := b.rng.Float64(); {
	case dist < systems.Reach(cfg.Kick) && roll < b.Caution:
		action = cfg.ActionDefence
		if b.rng.Float64() < 0.5 {
			action = cfg.ActionJump
		}
	case dist < systems.Reach(cfg.Punch) && roll < b.Aggression:
		action = cfg.ActionPunch
	case dist < systems.Reach(cfg.Kick) && roll < b.Aggression:
		action = cfg.ActionKick
	case dist >= systems.Reach(cfg.Kick):
		action = toward
	}

	if action == cfg.ActionNone {
		return cfg.KeyState{}
	}
	b.pressed = true
	return cfg.Keys(action)
}

// Script replays a fixed sequence of key states, looping at the end.
type Script struct {
	steps []cfg.KeyState
	next  int
}

// ParseScript reads whitespace separated steps. A step is one or more
// action names joined by "+", or "-" for no keys, optionally followed by
// "*n" to repeat it: "right*3 punch - kick+left -*4".
func ParseScript(src string) (*Script, error) {
	s := &Script{}
	for _, field := range strings.Fields(src) {
		step, times := field, 1
		if i := strings.LastIndex(field, "*"); i >= 0 {
			if _, err := fmt.Sscanf(field[i+1:], "%d", &times); err != nil || times < 1 {
				return nil, fmt.Errorf("bad repeat count in %q", field)
			}
			step = field[:i]
		}

		var keys cfg.KeyState
		if step != "-" {
			for _, name := range strings.Split(step, "+") {
				a, ok := cfg.ParseAction(name)
				if !ok {
					return nil, fmt.Errorf("unknown action %q in %q", name, field)
				}
				keys[a] = true
			}
		}
		for i := 0; i < times; i++ {
			s.steps = append(s.steps, keys)
		}
	}
	if len(s.steps) == 0 {
		return nil, fmt.Errorf("empty script")
	}
	return s, nil
}

func (s *Script) Next(systems.Snapshot) cfg.KeyState {
	k := s.steps[s.next]
	s.next = (s.next + 1) % len(s.steps)
	return k
}

func (s *Script) Len() int {
	return len(s.steps)
}
