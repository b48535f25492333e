// Package file persists profile documents as JSON snapshot files, one
// file per profile, in a profiles directory.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/portel-dev/profilectl/internal/core/domain"
	"github.com/portel-dev/profilectl/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ProfileStore = (*Store)(nil)

// Store is a file-based implementation of driven.ProfileStore.
// Documents are written atomically: the snapshot goes to a temporary file
// first and is renamed into place.
type Store struct {
	dir string
}

// NewStore creates a profile store rooted at dir.
// If dir is empty, defaults to ~/.profilectl/profiles.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".profilectl", "profiles")
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	return &Store{dir: dir}, nil
}

// Load reads a profile snapshot by name.
func (s *Store) Load(_ context.Context, name string) (*domain.Profile, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reading profile %s: %w", name, err)
	}

	var profile domain.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", name, err)
	}
	if profile.Servers == nil {
		profile.Servers = make(map[string]domain.ServerSpec)
	}

	return &profile, nil
}

// Save writes the profile as a complete snapshot, replacing any previous one.
func (s *Store) Save(_ context.Context, profile *domain.Profile) error {
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling profile %s: %w", profile.Name, err)
	}
	data = append(data, '\n')

	path := s.Path(profile.Name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("writing profile %s: %w", profile.Name, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing profile %s: %w", profile.Name, err)
	}

	return nil
}

// List returns the names of all stored profiles, sorted.
func (s *Store) List(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("reading profiles directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)

	return names, nil
}

// Path returns the snapshot file path for a profile name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name+".json")
}
