package round

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/quasilyte/gdata"
)

const progressItem = "round"

// Store persists the round context between runs. Load reports false when
// nothing has been saved yet.
type Store interface {
	Load() (Context, bool, error)
	Save(Context) error
}

// GDataStore keeps the context as JSON in the per-user game data directory.
type GDataStore struct {
	m *gdata.Manager
}

// OpenGDataStore opens the game data directory for appName.
func OpenGDataStore(appName string) (*GDataStore, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open game data: %w", err)
	}
	return &GDataStore{m: m}, nil
}

func (s *GDataStore) Load() (Context, bool, error) {
	data, err := s.m.LoadItem(progressItem)
	if err != nil {
		return Context{}, false, fmt.Errorf("load round progress: %w", err)
	}
	if len(data) == 0 {
		return Context{}, false, nil
	}

	var c Context
	if err := json.Unmarshal(data, &c); err != nil {
		return Context{}, false, fmt.Errorf("parse round progress: %w", err)
	}
	return c.Normalize(), true, nil
}

func (s *GDataStore) Save(c Context) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("serialize round progress: %w", err)
	}
	if err := s.m.SaveItem(progressItem, data); err != nil {
		return fmt.Errorf("save round progress: %w", err)
	}
	return nil
}

// Clear forgets any saved progress.
func (s *GDataStore) Clear() error {
	if err := s.m.SaveItem(progressItem, nil); err != nil {
		log.Printf("Warning: Could not clear round progress: %v", err)
		return err
	}
	return nil
}

// MemoryStore keeps the context in memory. The zero value is ready to use.
type MemoryStore struct {
	mu    sync.Mutex
	saved *Context
	saves int
}

func (s *MemoryStore) Load() (Context, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saved == nil {
		return Context{}, false, nil
	}
	return s.saved.Normalize(), true, nil
}

func (s *MemoryStore) Save(c Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c = c.Normalize()
	s.saved = &c
	s.saves++
	return nil
}

// Saves counts successful Save calls.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}
