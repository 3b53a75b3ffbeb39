package systems

import (
	"math"

	"github.com/automoto/brawler/components"
	cfg "github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
)

// HitResult classifies an attack attempt.
type HitResult int

const (
	HitNone    HitResult = iota // a precondition failed, nothing happened
	HitBlocked                  // defender was in defence and took chip damage
	HitLanded                   // full damage, defender flashes
)

func (r HitResult) String() string {
	switch r {
	case HitBlocked:
		return "blocked"
	case HitLanded:
		return "landed"
	}
	return "none"
}

func (r HitResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

type HitOutcome struct {
	Result HitResult `json:"result"`
	Damage int       `json:"damage"`
}

// Reach is the largest centre distance, exclusive, an attack can land at.
func Reach(kind cfg.StateID) float64 {
	switch kind {
	case cfg.Punch:
		return cfg.Combat.PunchReach
	case cfg.Kick, cfg.JumpKick:
		return cfg.Combat.KickReach
	}
	return 0
}

// BaseDamage is the unscaled damage of an attack kind.
func BaseDamage(kind cfg.StateID) int {
	switch kind {
	case cfg.Punch:
		return cfg.Combat.PunchDamage
	case cfg.Kick:
		return cfg.Combat.KickDamage
	case cfg.JumpKick:
		return cfg.Combat.JumpKickDamage
	}
	return 0
}

// Evades reports whether a defender state is exempt from an attack kind.
// Airborne defenders dodge everything. A ducking defender dodges a grounded
// kick but not a jump kick.
func Evades(defender cfg.StateID, kind cfg.StateID) bool {
	if defender.IsAirborne() {
		return true
	}
	return kind == cfg.Kick && defender == cfg.Duck
}

// ResolveAttack checks, in order, the hit cooldown, reach, facing and the
// defender's evasion, then commits damage. CPU damage is scaled by the match
// difficulty; chip damage against defence never is.
func ResolveAttack(w donburi.World, attacker, defender *donburi.Entry, kind cfg.StateID) HitOutcome {
	if !kind.IsAttack() || !IsMatchPlaying(w) {
		return HitOutcome{}
	}
	if HitCooldownActive(w) {
		return HitOutcome{}
	}

	width := arenaWidth(w)
	a := components.Combatant.Get(attacker)
	d := components.Combatant.Get(defender)
	if distance(a, d, width) >= Reach(kind) {
		return HitOutcome{}
	}
	if !isFacing(a, d, width) {
		return HitOutcome{}
	}
	defenderState := components.State.Get(defender).CurrentState
	if Evades(defenderState, kind) {
		return HitOutcome{}
	}
	if !AcquireHitCooldown(w, attacker) {
		return HitOutcome{}
	}

	var outcome HitOutcome
	if defenderState == cfg.Defence {
		outcome = HitOutcome{Result: HitBlocked, Damage: cfg.Combat.ChipDamage}
	} else {
		outcome = HitOutcome{Result: HitLanded, Damage: scaledDamage(w, a.Side, kind)}
		flashHit(w, defender)
	}

	health := components.Health.Get(defender)
	health.Current -= outcome.Damage
	if health.Current < 0 {
		health.Current = 0
	}

	HitEvents.Publish(w, HitEvent{
		Attacker:       a.Side,
		Defender:       d.Side,
		Kind:           kind,
		Outcome:        outcome,
		DefenderHealth: health.Current,
		At:             getClock(w).Now(),
	})

	if health.Current <= 0 {
		EndMatch(w, a.Side)
	}
	return outcome
}

func scaledDamage(w donburi.World, attacker cfg.Side, kind cfg.StateID) int {
	damage := BaseDamage(kind)
	if attacker != cfg.SideCPU {
		return damage
	}
	difficulty := 1.0
	if match := GetMatch(w); match != nil {
		difficulty = match.Difficulty
	}
	return int(math.Round(float64(damage) * difficulty))
}

// isFacing fails when both centres coincide.
func isFacing(a, d *components.CombatantData, width float64) bool {
	ac, dc := a.CenterX(width), d.CenterX(width)
	switch {
	case ac < dc:
		return !a.FacingLeft
	case ac > dc:
		return a.FacingLeft
	}
	return false
}

func flashHit(w donburi.World, entry *donburi.Entry) {
	c := components.Combatant.Get(entry)
	c.IsHit = true
	c.HitToken++
	token := c.HitToken
	getClock(w).After(cfg.Combat.HitFlash, func() {
		c := components.Combatant.Get(entry)
		if c.HitToken == token {
			c.IsHit = false
		}
	})
}

// HitCooldownActive reports whether a hit landed within the cooldown window.
func HitCooldownActive(w donburi.World) bool {
	cd := getHitCooldown(w)
	return cd != nil && cd.Held
}

// AcquireHitCooldown takes the single hit token for holder. It fails while
// the token is held. The release is scheduled here and nowhere else.
func AcquireHitCooldown(w donburi.World, holder *donburi.Entry) bool {
	cd := getHitCooldown(w)
	if cd == nil || cd.Held {
		return false
	}

	cd.Held = true
	cd.Holder = components.Combatant.Get(holder).Side
	cd.Token++
	token := cd.Token

	getClock(w).After(cfg.Combat.HitCooldown, func() {
		cd := getHitCooldown(w)
		if cd.Token != token {
			return
		}
		cd.Held = false
		cd.Holder = cfg.SideNone
	})
	return true
}
