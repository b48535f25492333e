package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/portel-dev/profilectl/internal/core/domain"
	"github.com/portel-dev/profilectl/internal/core/ports/driven"
	"github.com/portel-dev/profilectl/internal/core/ports/driving"
	"github.com/portel-dev/profilectl/internal/logger"
)

// Ensure BuilderService implements the interface.
var _ driving.ProfileBuilder = (*BuilderService)(nil)

// complexRunners are launch command prefixes that require special setup
// and are skipped during catalog merges.
var complexRunners = []string{"docker", "wrangler"}

// BuilderService builds profile documents from catalog and curated sources.
type BuilderService struct {
	catalogs driven.CatalogSource
	curated  driven.CuratedSource
	profiles driven.ProfileStore
	now      func() time.Time
}

// NewBuilderService creates a new profile builder service.
func NewBuilderService(
	catalogs driven.CatalogSource,
	curated driven.CuratedSource,
	profiles driven.ProfileStore,
) *BuilderService {
	return &BuilderService{
		catalogs: catalogs,
		curated:  curated,
		profiles: profiles,
		now:      time.Now,
	}
}

// SetClock overrides the time source. Useful for testing.
func (s *BuilderService) SetClock(now func() time.Time) {
	s.now = now
}

// Build loads or creates the named profile, merges every source in
// priority order, finalizes the metadata and saves the document once.
func (s *BuilderService) Build(
	ctx context.Context,
	req driving.BuildRequest,
) (*domain.Profile, *driving.BuildSummary, error) {
	if req.ProfileName == "" {
		return nil, nil, fmt.Errorf("profile name: %w", domain.ErrInvalidInput)
	}

	statuses := req.Statuses
	if len(statuses) == 0 {
		statuses = []string{domain.StatusProduction}
	}

	profile, err := s.loadOrCreate(ctx, req.ProfileName, req.Description)
	if err != nil {
		return nil, nil, err
	}

	summary := &driving.BuildSummary{}

	logger.Section("Loading catalogs")
	for _, path := range req.CatalogPaths {
		records, err := s.catalogs.Load(path, statuses...)
		if err != nil {
			// Source-unavailable: log and continue with the next source.
			logger.Warn("could not load catalog %s: %v", path, err)
			summary.FailedSources = append(summary.FailedSources, path)
			continue
		}
		s.mergeCatalog(profile, records, summary)
	}

	logger.Section("Merging curated names")
	for _, path := range req.CuratedPaths {
		names, err := s.curated.Load(path)
		if err != nil {
			logger.Warn("could not load curated names %s: %v", path, err)
			summary.FailedSources = append(summary.FailedSources, path)
			continue
		}
		s.mergeCurated(profile, names, summary)
	}

	if len(profile.Servers) == 0 {
		return nil, nil, domain.ErrEmptyProfile
	}

	profile.Finalize(s.now())

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, nil, fmt.Errorf("saving profile: %w", err)
	}

	return profile, summary, nil
}

// loadOrCreate returns the existing snapshot for name, or a fresh profile.
func (s *BuilderService) loadOrCreate(ctx context.Context, name, description string) (*domain.Profile, error) {
	profile, err := s.profiles.Load(ctx, name)
	if err == nil {
		logger.Info("extending existing profile %s (%d servers)", name, len(profile.Servers))
		return profile, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("loading profile %s: %w", name, err)
	}
	return domain.NewProfile(name, description, s.now()), nil
}

// mergeCatalog merges eligible connector records into the profile.
// Existing entries are never overwritten.
func (s *BuilderService) mergeCatalog(
	profile *domain.Profile,
	records []domain.ConnectorRecord,
	summary *driving.BuildSummary,
) {
	for _, rec := range records {
		if isComplexCommand(rec.Command) {
			logger.Info("skipping %s (requires special setup): %s", rec.Name, rec.Command)
			summary.Skipped = append(summary.Skipped, rec.Name)
			continue
		}

		launch, err := domain.ParseCommand(rec.Command)
		if err != nil {
			logger.Warn("skipping %s: %v", rec.Name, err)
			continue
		}

		spec := domain.ServerSpec{
			Command:       launch.Executable,
			Args:          launch.Args,
			Description:   rec.Description,
			Category:      rec.Category,
			Downloads:     rec.Downloads,
			RepositoryURL: rec.RepositoryURL,
			Metadata: &domain.ServerMetadata{
				Type:     domain.ServerTypeProduction,
				Source:   domain.SourceTopServers,
				Verified: true,
			},
		}

		if profile.Add(rec.Name, spec) {
			summary.Production++
			logger.Debug("added %s: %s", rec.Name, rec.Command)
		} else {
			logger.Debug("skipping %s: already present", rec.Name)
		}
	}
}

// mergeCurated resolves curated names through the static mapping table and
// merges the resolved entries. Unmapped names are silently skipped.
func (s *BuilderService) mergeCurated(
	profile *domain.Profile,
	names []string,
	summary *driving.BuildSummary,
) {
	for _, name := range names {
		if profile.Has(name) {
			continue
		}

		pkg, ok := CuratedPackage(name)
		if !ok {
			logger.Debug("no package mapping for %s", name)
			continue
		}

		command, args := curatedLaunch(pkg)

		spec := domain.ServerSpec{
			Command:     command,
			Args:        args,
			Description: fmt.Sprintf("Real production %s server with verified functionality", name),
			Category:    domain.ServerTypeCuratedReal,
			PackageName: pkg,
			Metadata: &domain.ServerMetadata{
				Type:         domain.ServerTypeCuratedReal,
				Source:       domain.SourceEcosystemMapping,
				Verified:     false,
				OriginalName: name,
			},
		}

		if profile.Add(name, spec) {
			summary.Curated++
			logger.Debug("mapped %s -> %s", name, pkg)
		}
	}
}

// curatedLaunch derives the launch command for a mapped package. The
// docker-based GitHub server is the only special case; everything else is
// run through the generic package runner.
func curatedLaunch(pkg string) (string, []string) {
	if pkg == githubServerPackage {
		return "docker", []string{"run", githubServerImage}
	}
	return packageRunner, []string{pkg}
}

// isComplexCommand reports whether a raw launch command needs special
// setup that the catalog merge does not handle.
func isComplexCommand(raw string) bool {
	for _, runner := range complexRunners {
		if strings.HasPrefix(raw, runner) {
			return true
		}
	}
	return false
}
