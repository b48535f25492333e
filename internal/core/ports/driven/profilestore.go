package driven

import (
	"context"

	"github.com/portel-dev/profilectl/internal/core/domain"
)

// ProfileStore persists profile documents as complete snapshots.
// A profile is written exactly once per run, atomically; there is no
// partial or incremental persistence.
type ProfileStore interface {
	// Load reads a profile by name. Returns domain.ErrNotFound if no
	// snapshot exists.
	Load(ctx context.Context, name string) (*domain.Profile, error)

	// Save writes the profile as a complete snapshot, replacing any
	// previous one.
	Save(ctx context.Context, profile *domain.Profile) error

	// List returns the names of all stored profiles, sorted.
	List(ctx context.Context) ([]string, error)

	// Path returns the storage path for a profile name, for display.
	Path(name string) string
}
