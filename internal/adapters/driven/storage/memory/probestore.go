package memory

import (
	"context"
	"sync"

	"github.com/portel-dev/profilectl/internal/core/domain"
	"github.com/portel-dev/profilectl/internal/core/ports/driven"
)

// Ensure ProbeStore implements the interface.
var _ driven.ProbeStore = (*ProbeStore)(nil)

// ProbeStore is an in-memory implementation of driven.ProbeStore.
type ProbeStore struct {
	mu   sync.RWMutex
	runs map[string][]domain.ProbeRecord
}

// NewProbeStore creates a new in-memory probe store.
func NewProbeStore() *ProbeStore {
	return &ProbeStore{
		runs: make(map[string][]domain.ProbeRecord),
	}
}

// Record stores one probe outcome.
func (s *ProbeStore) Record(_ context.Context, record domain.ProbeRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[record.RunID] = append(s.runs[record.RunID], record)
	return nil
}

// ListRun returns all outcomes recorded under a run ID, in insertion order.
func (s *ProbeStore) ListRun(_ context.Context, runID string) ([]domain.ProbeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := s.runs[runID]
	result := make([]domain.ProbeRecord, len(records))
	copy(result, records)
	return result, nil
}
