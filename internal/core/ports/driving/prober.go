package driving

import (
	"context"

	"github.com/portel-dev/profilectl/internal/core/domain"
)

// ProbeRun is the result of probing a list of candidates against the
// package registry.
type ProbeRun struct {
	// ID uniquely identifies this run in the probe cache.
	ID string

	// Results holds one outcome per candidate, in probe order.
	Results []domain.ProbeResult
}

// Working returns the results whose package was confirmed to exist.
func (r *ProbeRun) Working() []domain.ProbeResult {
	var working []domain.ProbeResult
	for _, result := range r.Results {
		if result.OK() {
			working = append(working, result)
		}
	}
	return working
}

// Failed returns the results whose probe did not confirm the package.
func (r *ProbeRun) Failed() []domain.ProbeResult {
	var failed []domain.ProbeResult
	for _, result := range r.Results {
		if !result.OK() {
			failed = append(failed, result)
		}
	}
	return failed
}

// Prober checks candidate packages against the registry and builds a
// profile containing only the verified ones.
type Prober interface {
	// Run probes each candidate sequentially with a bounded per-call
	// deadline. Probe failures are recorded as failed results, never
	// escalated.
	Run(ctx context.Context, candidates []domain.ProbeCandidate) (*ProbeRun, error)

	// CreateWorkingProfile builds and saves a profile from the run's
	// working packages. Returns domain.ErrEmptyProfile if none worked.
	CreateWorkingProfile(ctx context.Context, profileName string, run *ProbeRun) (*domain.Profile, error)
}
