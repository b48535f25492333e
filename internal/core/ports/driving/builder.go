package driving

import (
	"context"

	"github.com/portel-dev/profilectl/internal/core/domain"
)

// BuildRequest describes one profile build run.
type BuildRequest struct {
	// ProfileName names the profile document to build or extend.
	ProfileName string

	// Description seeds the profile description when the document is
	// created fresh.
	Description string

	// CatalogPaths are tabular catalog files, highest priority first.
	CatalogPaths []string

	// CuratedPaths are plain-text curated name lists, merged after the
	// catalogs.
	CuratedPaths []string

	// Statuses are the eligible status values. Records with any other
	// status never enter the profile.
	Statuses []string
}

// BuildSummary reports what one build run contributed.
type BuildSummary struct {
	// Production is the number of catalog entries added this run.
	Production int

	// Curated is the number of curated entries added this run.
	Curated int

	// Skipped lists connector names skipped because their launch command
	// requires special setup (docker, wrangler).
	Skipped []string

	// FailedSources lists source paths that could not be loaded.
	// A failed source contributes nothing; the run continues.
	FailedSources []string
}

// ProfileBuilder merges connector records from one or more sources into a
// named profile document and persists it as a single snapshot.
type ProfileBuilder interface {
	// Build loads the existing profile snapshot (or creates a fresh one),
	// merges every source in priority order, finalizes the metadata and
	// saves the document. Returns domain.ErrEmptyProfile if no usable
	// record was produced at all.
	Build(ctx context.Context, req BuildRequest) (*domain.Profile, *BuildSummary, error)
}
