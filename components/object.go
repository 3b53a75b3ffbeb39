package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is a combatant's collision box in the arena space.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton broad-phase space both collision boxes live in.
var Space = donburi.NewComponentType[resolv.Space]()
