package components

import (
	cfg "github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this tick
	JustReleased bool // Released this tick
}

// InputData stores the current and previous key state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing the two.
type InputData struct {
	Current  cfg.KeyState
	Previous cfg.KeyState
}

var Input = donburi.NewComponentType[InputData]()
