package services

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/portel-dev/profilectl/internal/core/domain"
	"github.com/portel-dev/profilectl/internal/core/ports/driven"
	"github.com/portel-dev/profilectl/internal/core/ports/driving"
	"github.com/portel-dev/profilectl/internal/logger"
)

// Ensure RegistrarService implements the interface.
var _ driving.Registrar = (*RegistrarService)(nil)

// DefaultLauncherRate paces launcher CLI invocations at ten per second,
// with no burst beyond a single queued call.
var DefaultLauncherRate = rate.Limit(10)

// RegistrarService registers catalogued connectors through the external
// launcher CLI, one at a time.
type RegistrarService struct {
	catalogs driven.CatalogSource
	launcher driven.Launcher
	limiter  *rate.Limiter
}

// NewRegistrarService creates a new registrar. A nil limiter disables pacing.
func NewRegistrarService(
	catalogs driven.CatalogSource,
	launcher driven.Launcher,
	limiter *rate.Limiter,
) *RegistrarService {
	return &RegistrarService{
		catalogs: catalogs,
		launcher: launcher,
		limiter:  limiter,
	}
}

// Register loads the eligible records from the catalog and registers each
// one with the launcher. Individual failures are recorded in the summary;
// the pass continues with the next record.
func (s *RegistrarService) Register(
	ctx context.Context,
	req driving.RegisterRequest,
) (*driving.RegisterSummary, error) {
	if req.ProfileName == "" {
		return nil, fmt.Errorf("profile name: %w", domain.ErrInvalidInput)
	}

	statuses := req.Statuses
	if len(statuses) == 0 {
		statuses = []string{domain.StatusActive}
	}

	records, err := s.catalogs.Load(req.CatalogPath, statuses...)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	if len(records) == 0 {
		return nil, domain.ErrEmptyProfile
	}

	summary := &driving.RegisterSummary{
		Results: make([]driving.RegisterResult, 0, len(records)),
	}

	logger.Section("Registering connectors")
	for i, rec := range records {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx); err != nil {
				return summary, err
			}
		}

		logger.Info("[%d/%d] adding %s: %s", i+1, len(records), rec.Name, rec.Command)

		result := driving.RegisterResult{Name: rec.Name, Command: rec.Command}
		if err := s.launcher.Add(ctx, req.ProfileName, rec); err != nil {
			result.Err = err.Error()
			summary.Failures++
			logger.Warn("registering %s failed: %v", rec.Name, err)
		}

		summary.Results = append(summary.Results, result)
		summary.Attempted++
	}

	return summary, nil
}
