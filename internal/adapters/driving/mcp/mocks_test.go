package mcp

import (
	"context"
	"fmt"

	"github.com/portel-dev/profilectl/internal/core/domain"
)

// mockProfileStore is a mock implementation of driven.ProfileStore.
type mockProfileStore struct {
	profiles map[string]*domain.Profile
	err      error
}

func (m *mockProfileStore) Load(_ context.Context, name string) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	profile, ok := m.profiles[name]
	if !ok {
		return nil, fmt.Errorf("loading profile %q: %w", name, domain.ErrNotFound)
	}
	return profile, nil
}

func (m *mockProfileStore) Save(_ context.Context, profile *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	if m.profiles == nil {
		m.profiles = make(map[string]*domain.Profile)
	}
	m.profiles[profile.Name] = profile
	return nil
}

func (m *mockProfileStore) List(_ context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	names := make([]string, 0, len(m.profiles))
	for name := range m.profiles {
		names = append(names, name)
	}
	return names, nil
}

func (m *mockProfileStore) Path(name string) string {
	return "/tmp/profiles/" + name + ".json"
}
