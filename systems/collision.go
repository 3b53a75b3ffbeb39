package systems

import (
	"math"

	"github.com/automoto/brawler/components"
	"github.com/automoto/brawler/systems/factory"
	"github.com/automoto/brawler/tags"
	"github.com/yohamta/donburi"
)

// TryMove moves a combatant by dx in arena coordinates (positive is right).
// The result is clamped to the arena bounds. A grounded mover may not end up
// overlapping or touching the opponent's box; airborne movers pass over.
// Returns the new home-edge offset and whether the combatant moved.
func TryMove(w donburi.World, entry *donburi.Entry, dx float64) (float64, bool) {
	combatant := components.Combatant.Get(entry)
	if dx == 0 || !IsMatchPlaying(w) {
		return combatant.Position, false
	}

	width := arenaWidth(w)
	next := factory.ClampPosition(combatant.Position+combatant.OffsetDelta(dx), width)
	if next == combatant.Position {
		return combatant.Position, false
	}

	opponent := Opponent(w, entry)
	airborne := components.State.Get(entry).CurrentState.IsAirborne()
	if !airborne && opponent != nil && wouldBlock(entry, combatant, next, components.Combatant.Get(opponent), width) {
		return combatant.Position, false
	}

	combatant.Position = next
	syncObject(entry, combatant, width)
	if opponent != nil {
		faceToward(combatant, components.Combatant.Get(opponent), width)
	}
	return next, true
}

// wouldBlock asks the space for anything near the destination box, then
// compares the exact extents. Touching counts as blocked. A pair that already
// overlaps may only move apart.
func wouldBlock(entry *donburi.Entry, mover *components.CombatantData, next float64, other *components.CombatantData, width float64) bool {
	oldLeft, oldRight := mover.Box(width)
	moved := *mover
	moved.Position = next
	newLeft, newRight := moved.Box(width)

	// Probe one unit further so boxes that would only touch are still found.
	probe := newLeft - oldLeft
	probe += math.Copysign(1, probe)
	obj := components.Object.Get(entry)
	if obj.Check(probe, 0, tags.ResolvFighter) == nil {
		return false
	}

	otherLeft, otherRight := other.Box(width)
	before := overlap(oldLeft, oldRight, otherLeft, otherRight)
	after := overlap(newLeft, newRight, otherLeft, otherRight)
	return after >= 0 && after >= before
}

// overlap is positive when two extents overlap, zero when they touch and
// negative when there is a gap between them.
func overlap(aLeft, aRight, bLeft, bRight float64) float64 {
	return math.Min(aRight, bRight) - math.Max(aLeft, bLeft)
}

// Overlapping reports whether the two combatants' boxes overlap or touch.
func Overlapping(w donburi.World) bool {
	player, ok := GetPlayer(w)
	if !ok {
		return false
	}
	cpu, ok := GetCPU(w)
	if !ok {
		return false
	}
	width := arenaWidth(w)
	pl, pr := components.Combatant.Get(player).Box(width)
	cl, cr := components.Combatant.Get(cpu).Box(width)
	return overlap(pl, pr, cl, cr) >= 0
}

func syncObject(entry *donburi.Entry, combatant *components.CombatantData, width float64) {
	obj := components.Object.Get(entry)
	left, _ := combatant.Box(width)
	obj.X = left
	obj.Update()
}

// FaceOpponent turns a combatant toward the other one.
func FaceOpponent(w donburi.World, entry *donburi.Entry) {
	opponent := Opponent(w, entry)
	if opponent == nil {
		return
	}
	faceToward(components.Combatant.Get(entry), components.Combatant.Get(opponent), arenaWidth(w))
}

// faceToward leaves facing alone when both centres coincide.
func faceToward(c, other *components.CombatantData, width float64) {
	mine, theirs := c.CenterX(width), other.CenterX(width)
	switch {
	case theirs < mine:
		c.FacingLeft = true
	case theirs > mine:
		c.FacingLeft = false
	}
}

// distance is the gap between the two centres.
func distance(a, b *components.CombatantData, width float64) float64 {
	return math.Abs(a.CenterX(width) - b.CenterX(width))
}
