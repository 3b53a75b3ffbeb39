package config

// StateID identifies what a combatant is currently doing.
type StateID int

const (
	Idle StateID = iota
	Walk
	Jump
	Duck
	Punch
	Kick
	JumpKick
	Defence
)

var stateNames = map[StateID]string{
	Idle:     "idle",
	Walk:     "walk",
	Jump:     "jump",
	Duck:     "duck",
	Punch:    "punch",
	Kick:     "kick",
	JumpKick: "jumpKick",
	Defence:  "defence",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseState is the inverse of StateID.String.
func ParseState(name string) (StateID, bool) {
	for id, n := range stateNames {
		if n == name {
			return id, true
		}
	}
	return Idle, false
}

// IsAirborne reports whether the state is exempt from horizontal blocking.
func (s StateID) IsAirborne() bool {
	return s == Jump || s == JumpKick
}

// IsAttack reports whether the state can land a hit.
func (s StateID) IsAttack() bool {
	return s == Punch || s == Kick || s == JumpKick
}

func (s StateID) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Side identifies one of the two combatants.
type Side int

const (
	SideNone Side = iota
	SidePlayer
	SideCPU
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideCPU:
		return "cpu"
	}
	return "none"
}

func (s Side) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	switch s {
	case SidePlayer:
		return SideCPU
	case SideCPU:
		return SidePlayer
	}
	return SideNone
}

// JumpDirection is set only while a combatant is in Jump.
type JumpDirection int

const (
	JumpNone JumpDirection = iota
	JumpLeft
	JumpRight
)

func (d JumpDirection) String() string {
	switch d {
	case JumpLeft:
		return "left"
	case JumpRight:
		return "right"
	}
	return "none"
}

func (d JumpDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// MatchStateID represents the current state of a match.
type MatchStateID int

const (
	MatchStatePlaying  MatchStateID = iota // Active gameplay
	MatchStateFinished                     // A combatant reached 0 health
)

func (m MatchStateID) String() string {
	if m == MatchStateFinished {
		return "finished"
	}
	return "playing"
}

func (m MatchStateID) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
