// Package assets embeds the fighter roster and the stage maps.
package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/brawler/roster"
	"github.com/automoto/brawler/stage"
)

var (
	//go:embed data stages
	FS embed.FS
)

const (
	RosterPath = "data/fighters.yaml"
	StagesDir  = "stages"
)

// LoadRoster parses the embedded fighter roster.
func LoadRoster() (*roster.Roster, error) {
	return roster.Load(FS, RosterPath)
}

// LoadStages parses every embedded stage map.
func LoadStages() (*stage.Set, error) {
	return stage.LoadAll(FS, StagesDir)
}

func MustLoadRoster() *roster.Roster {
	r, err := LoadRoster()
	if err != nil {
		panic(fmt.Sprintf("Failed to load roster: %v", err))
	}
	return r
}

func MustLoadStages() *stage.Set {
	s, err := LoadStages()
	if err != nil {
		panic(fmt.Sprintf("Failed to load stages: %v", err))
	}
	return s
}
