package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/portel-dev/profilectl/internal/core/domain"
	"github.com/portel-dev/profilectl/internal/core/ports/driven"
	"github.com/portel-dev/profilectl/internal/core/ports/driving"
	"github.com/portel-dev/profilectl/internal/logger"
)

// Ensure ProberService implements the interface.
var _ driving.Prober = (*ProberService)(nil)

// DefaultProbeTimeout is the fixed per-call deadline for registry queries.
const DefaultProbeTimeout = 10 * time.Second

// ProberService checks candidate packages against the package registry and
// builds a profile containing only the verified ones.
type ProberService struct {
	registry driven.RegistryClient
	probes   driven.ProbeStore
	profiles driven.ProfileStore
	timeout  time.Duration
	now      func() time.Time
	newID    func() string
}

// NewProberService creates a new prober service. A nil probe store
// disables outcome caching.
func NewProberService(
	registry driven.RegistryClient,
	probes driven.ProbeStore,
	profiles driven.ProfileStore,
) *ProberService {
	return &ProberService{
		registry: registry,
		probes:   probes,
		profiles: profiles,
		timeout:  DefaultProbeTimeout,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// SetTimeout overrides the per-call registry deadline.
func (s *ProberService) SetTimeout(d time.Duration) {
	s.timeout = d
}

// SetClock overrides the time source. Useful for testing.
func (s *ProberService) SetClock(now func() time.Time) {
	s.now = now
}

// Run probes each candidate sequentially. Every outcome, including
// failures, is recorded; a failed probe never aborts the run. Cancelling
// the context does: the run stops with the results gathered so far.
func (s *ProberService) Run(
	ctx context.Context,
	candidates []domain.ProbeCandidate,
) (*driving.ProbeRun, error) {
	run := &driving.ProbeRun{ID: s.newID()}

	logger.Section("Probing packages")
	for i, candidate := range candidates {
		logger.Progress(i+1, len(candidates), "probing %s (%s)", candidate.Name, candidate.Package)

		result := s.probe(ctx, candidate)
		if ctx.Err() != nil {
			// The in-flight probe was torn down by the cancellation,
			// not by the registry. Its outcome must not enter the cache.
			return run, ctx.Err()
		}
		run.Results = append(run.Results, result)

		if s.probes != nil {
			record := domain.ProbeRecord{
				RunID:    run.ID,
				Name:     result.Name,
				Package:  result.Package,
				Status:   result.Status,
				Version:  result.Version,
				Error:    result.Err,
				TestedAt: s.now(),
			}
			if err := s.probes.Record(ctx, record); err != nil {
				logger.Warn("caching probe result for %s: %v", result.Package, err)
			}
		}
	}

	return run, nil
}

// probe checks one candidate with the fixed per-call deadline.
func (s *ProberService) probe(ctx context.Context, candidate domain.ProbeCandidate) domain.ProbeResult {
	result := domain.ProbeResult{
		Name:     candidate.Name,
		Package:  candidate.Package,
		Args:     candidate.Args,
		Category: candidate.Category,
	}

	probeCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	version, err := s.registry.Probe(probeCtx, candidate.Package)
	switch {
	case err == nil:
		result.Status = domain.ProbeExists
		result.Version = version
	case errors.Is(err, domain.ErrPackageNotFound):
		result.Status = domain.ProbeNotFound
		result.Err = err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		result.Status = domain.ProbeTimeout
		result.Err = "registry query timed out"
	default:
		result.Status = domain.ProbeError
		result.Err = err.Error()
	}

	return result
}

// CreateWorkingProfile builds and saves a profile from the run's working
// packages. Returns domain.ErrEmptyProfile if nothing worked.
func (s *ProberService) CreateWorkingProfile(
	ctx context.Context,
	profileName string,
	run *driving.ProbeRun,
) (*domain.Profile, error) {
	working := run.Working()
	if len(working) == 0 {
		return nil, domain.ErrEmptyProfile
	}

	now := s.now()
	profile := domain.NewProfile(
		profileName,
		"Only verified working MCP servers that actually exist and can be installed",
		now,
	)

	for _, pkg := range working {
		version := pkg.Version
		if version == "" {
			version = "unknown"
		}

		spec := domain.ServerSpec{
			Command:     packageRunner,
			Args:        append([]string{pkg.Package}, pkg.Args...),
			Description: fmt.Sprintf("Verified working %s MCP server", pkg.Name),
			Category:    pkg.Category,
			PackageName: pkg.Package,
			Version:     version,
			Metadata: &domain.ServerMetadata{
				Type:       domain.ServerTypeVerifiedWorking,
				Source:     domain.SourceRegistryTest,
				Verified:   true,
				TestedDate: domain.Timestamp(now),
			},
		}
		profile.Add(pkg.Name, spec)
	}

	profile.Metadata.TestedPackages = len(run.Results)
	profile.Finalize(now)

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, fmt.Errorf("saving profile: %w", err)
	}

	return profile, nil
}
