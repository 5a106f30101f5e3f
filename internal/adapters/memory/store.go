// Package memory implements ports.PresetStore with an in-process map.
// It backs tests and the zero-configuration CLI default.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/posykit/posy/pkg/domain"
)

// Store is a thread-safe in-memory preset store.
type Store struct {
	mu      sync.RWMutex
	presets map[string]domain.Preset
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		presets: make(map[string]domain.Preset),
	}
}

// Save stores a deep copy of the preset so later caller mutations cannot
// leak into the store.
func (s *Store) Save(ctx context.Context, preset domain.Preset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presets[preset.ID] = preset.Clone()
	return nil
}

// Get returns a deep copy of the stored preset.
func (s *Store) Get(ctx context.Context, id string) (domain.Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	preset, ok := s.presets[id]
	if !ok {
		return domain.Preset{}, domain.ErrPresetNotFound
	}
	return preset.Clone(), nil
}

// List returns all stored preset IDs, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.presets))
	for id := range s.presets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// Delete removes a preset. Missing IDs are ignored.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.presets, id)
	return nil
}
