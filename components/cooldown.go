package components

import (
	"github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
)

// HitCooldownData is the single token every attack must acquire before it
// commits damage. It is a singleton.
type HitCooldownData struct {
	Held   bool
	Holder config.Side
	Token  uint64
}

var HitCooldown = donburi.NewComponentType[HitCooldownData]()
