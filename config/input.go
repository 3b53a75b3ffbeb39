package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionDuck
	ActionPunch
	ActionKick
	ActionDefence
	ActionPause
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:      "none",
	ActionMoveLeft:  "left",
	ActionMoveRight: "right",
	ActionJump:      "jump",
	ActionDuck:      "duck",
	ActionPunch:     "punch",
	ActionKick:      "kick",
	ActionDefence:   "defence",
	ActionPause:     "pause",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// KeyState is a live snapshot of which actions are held.
type KeyState [ActionCount]bool

// Keys builds a KeyState with the given actions held.
func Keys(actions ...ActionID) KeyState {
	var k KeyState
	for _, a := range actions {
		k[a] = true
	}
	return k
}

// Held lists the held actions in ActionID order.
func (k KeyState) Held() []ActionID {
	var out []ActionID
	for i, pressed := range k {
		if pressed {
			out = append(out, ActionID(i))
		}
	}
	return out
}

// ParseAction looks an action up by its String name.
func ParseAction(name string) (ActionID, bool) {
	for i, n := range actionNames {
		if n == name && ActionID(i) != ActionNone {
			return ActionID(i), true
		}
	}
	return ActionNone, false
}
