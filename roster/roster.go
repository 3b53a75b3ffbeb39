// Package roster holds the selectable fighters and picks CPU opponents.
package roster

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"slices"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownFighter is returned for an id that is not in the roster.
	ErrUnknownFighter = errors.New("unknown fighter")

	// ErrNoOpponent is returned when the roster has nobody but the player.
	ErrNoOpponent = errors.New("no opponent available")
)

// Fighter is one selectable character.
type Fighter struct {
	ID          string `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	SpecialMove string `yaml:"special_move" json:"specialMove"`
	Portrait    string `yaml:"portrait" json:"portrait"`

	// Sprite references keyed by pose: stand, punch, kick, duck, jump,
	// defence, walk, hit, lost, won.
	Sprites map[string]string `yaml:"sprites" json:"sprites"`
}

// Sprite returns the reference for pose, falling back to the standing pose.
func (f Fighter) Sprite(pose string) string {
	if s, ok := f.Sprites[pose]; ok {
		return s
	}
	return f.Sprites["stand"]
}

type rosterFile struct {
	Fighters []Fighter `yaml:"fighters"`
}

// Roster is an ordered, read-only list of fighters.
type Roster struct {
	fighters []Fighter
}

// New builds a roster from fighters, rejecting empty or duplicate ids.
func New(fighters []Fighter) (*Roster, error) {
	seen := make(map[string]bool, len(fighters))
	for _, f := range fighters {
		if f.ID == "" {
			return nil, fmt.Errorf("fighter %q has no id", f.Name)
		}
		if seen[f.ID] {
			return nil, fmt.Errorf("duplicate fighter id %s", f.ID)
		}
		seen[f.ID] = true
	}
	return &Roster{fighters: slices.Clone(fighters)}, nil
}

// Load parses a roster YAML file from fsys.
func Load(fsys fs.FS, path string) (*Roster, error) {
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", path, err)
	}

	var doc rosterFile
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", path, err)
	}
	return New(doc.Fighters)
}

// Fighters returns the roster in file order.
func (r *Roster) Fighters() []Fighter {
	return slices.Clone(r.fighters)
}

// IDs returns every fighter id in file order.
func (r *Roster) IDs() []string {
	ids := make([]string, len(r.fighters))
	for i, f := range r.fighters {
		ids[i] = f.ID
	}
	return ids
}

func (r *Roster) Len() int {
	return len(r.fighters)
}

// Lookup finds a fighter by id.
func (r *Roster) Lookup(id string) (Fighter, error) {
	for _, f := range r.fighters {
		if f.ID == id {
			return f, nil
		}
	}
	return Fighter{}, fmt.Errorf("%w: %s", ErrUnknownFighter, id)
}

// PickOpponent picks uniformly among fighters that are neither the player
// nor a previous opponent. Once everyone has been fought, any fighter other
// than the player is eligible again.
func (r *Roster) PickOpponent(rng *rand.Rand, playerID string, previous []string) (string, error) {
	var fresh, others []string
	for _, f := range r.fighters {
		if f.ID == playerID {
			continue
		}
		others = append(others, f.ID)
		if !slices.Contains(previous, f.ID) {
			fresh = append(fresh, f.ID)
		}
	}

	pool := fresh
	if len(pool) == 0 {
		pool = others
	}
	if len(pool) == 0 {
		return "", ErrNoOpponent
	}
	return pool[rng.Intn(len(pool))], nil
}
