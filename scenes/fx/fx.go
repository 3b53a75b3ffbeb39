// Package fx turns snapshot edges into short presentation tweens: the jump
// arc and the hit flash. It only affects drawing.
package fx

import (
	"time"

	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/systems"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fighter tracks one side between frames.
type Fighter struct {
	airborne bool
	hit      bool

	arc    *gween.Sequence
	lift   float32
	flash  *gween.Tween
	bright float32
}

// Observe feeds the latest snapshot of the fighter and advances the tweens
// by dt of wall time.
func (f *Fighter) Observe(c systems.CombatantSnapshot, dt time.Duration) {
	step := float32(dt.Seconds())

	airborne := c.State.IsAirborne()
	switch {
	case airborne && !f.airborne:
		half := float32(cfg.Timing.Jump.Seconds()) / 2
		height := float32(cfg.UI.JumpHeight)
		f.arc = gween.NewSequence(
			gween.New(0, height, half, ease.OutQuad),
			gween.New(height, 0, half, ease.InQuad),
		)
		f.lift = 0
	case !airborne:
		f.arc = nil
		f.lift = 0
	}
	f.airborne = airborne
	if f.arc != nil {
		lift, _, done := f.arc.Update(step)
		f.lift = lift
		if done {
			f.arc = nil
		}
	}

	if c.IsHit && !f.hit {
		f.flash = gween.New(1, 0, float32(cfg.Combat.HitFlash.Seconds()), ease.Linear)
		f.bright = 1
	}
	f.hit = c.IsHit
	if f.flash != nil {
		bright, done := f.flash.Update(step)
		f.bright = bright
		if done {
			f.flash = nil
			f.bright = 0
		}
	}
}

// Lift is how far above the floor to draw the fighter.
func (f *Fighter) Lift() float64 {
	return float64(f.lift)
}

// Flash is the hit highlight strength in [0, 1].
func (f *Fighter) Flash() float64 {
	return float64(f.bright)
}

// Match holds the effects of both sides.
type Match struct {
	Player Fighter
	CPU    Fighter
}

func (m *Match) Observe(snap systems.Snapshot, dt time.Duration) {
	m.Player.Observe(snap.Player, dt)
	m.CPU.Observe(snap.CPU, dt)
}

// Reset drops running tweens, used when a new match starts.
func (m *Match) Reset() {
	*m = Match{}
}
