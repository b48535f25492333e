// Package memory provides in-memory implementations of the driven storage
// ports, used primarily in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/portel-dev/profilectl/internal/core/domain"
	"github.com/portel-dev/profilectl/internal/core/ports/driven"
)

// Ensure ProfileStore implements the interface.
var _ driven.ProfileStore = (*ProfileStore)(nil)

// ProfileStore is an in-memory implementation of driven.ProfileStore.
type ProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]domain.Profile
}

// NewProfileStore creates a new in-memory profile store.
func NewProfileStore() *ProfileStore {
	return &ProfileStore{
		profiles: make(map[string]domain.Profile),
	}
}

// Load retrieves a profile by name.
func (s *ProfileStore) Load(_ context.Context, name string) (*domain.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[name]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &profile, nil
}

// Save stores a profile snapshot.
func (s *ProfileStore) Save(_ context.Context, profile *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.Name] = *profile
	return nil
}

// List returns the names of all stored profiles, sorted.
func (s *ProfileStore) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.profiles))
	for name := range s.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Path returns a synthetic path for display.
func (s *ProfileStore) Path(name string) string {
	return "memory://" + name
}
