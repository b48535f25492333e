package driven

import (
	"context"

	"github.com/portel-dev/profilectl/internal/core/domain"
)

// ProbeStore caches registry probe outcomes across runs.
type ProbeStore interface {
	// Record stores one probe outcome.
	Record(ctx context.Context, record domain.ProbeRecord) error

	// ListRun returns all outcomes recorded under a run ID, in insertion
	// order.
	ListRun(ctx context.Context, runID string) ([]domain.ProbeRecord, error)
}
