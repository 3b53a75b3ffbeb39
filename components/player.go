package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	// HoldArmed is false on the tick a direction is first pressed so the
	// hold task does not add its step on top of the tap step.
	HoldArmed bool
}

var Player = donburi.NewComponentType[PlayerData]()
