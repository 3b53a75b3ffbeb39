package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// CPUData is the decision state of the computer-controlled fighter.
type CPUData struct {
	IdleTicks      int  // consecutive fast ticks with no action
	AttackCooldown bool // set by an attack, released after it reverts

	ReactionTime time.Duration
	LastReaction time.Duration // virtual time the reactive tick last acted
}

var CPU = donburi.NewComponentType[CPUData]()
