package cli

import (
	"context"
	"time"

	"github.com/portel-dev/profilectl/internal/adapters/driven/storage/memory"
	"github.com/portel-dev/profilectl/internal/core/domain"
	"github.com/portel-dev/profilectl/internal/core/ports/driving"
)

// mockBuilder is a mock implementation of driving.ProfileBuilder.
type mockBuilder struct {
	profile *domain.Profile
	summary *driving.BuildSummary
	err     error

	lastRequest driving.BuildRequest
}

func (m *mockBuilder) Build(
	_ context.Context,
	req driving.BuildRequest,
) (*domain.Profile, *driving.BuildSummary, error) {
	m.lastRequest = req
	if m.err != nil {
		return nil, nil, m.err
	}
	return m.profile, m.summary, nil
}

// mockRegistrar is a mock implementation of driving.Registrar.
type mockRegistrar struct {
	summary *driving.RegisterSummary
	err     error

	lastRequest driving.RegisterRequest
}

func (m *mockRegistrar) Register(
	_ context.Context,
	req driving.RegisterRequest,
) (*driving.RegisterSummary, error) {
	m.lastRequest = req
	if m.err != nil {
		return nil, m.err
	}
	return m.summary, nil
}

// mockProber is a mock implementation of driving.Prober.
type mockProber struct {
	run     *driving.ProbeRun
	profile *domain.Profile
	err     error
}

func (m *mockProber) Run(
	_ context.Context,
	_ []domain.ProbeCandidate,
) (*driving.ProbeRun, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.run, nil
}

func (m *mockProber) CreateWorkingProfile(
	_ context.Context,
	_ string,
	_ *driving.ProbeRun,
) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.profile, nil
}

// builtProfile returns a small finalized profile for command output tests.
func builtProfile(name string) *domain.Profile {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	profile := domain.NewProfile(name, "", now)
	profile.Add("github", domain.ServerSpec{
		Command:  "npx",
		Args:     []string{"-y", "@modelcontextprotocol/server-github"},
		Category: "development",
	})
	profile.Finalize(now)
	return profile
}

// setupTestServices swaps the package-level services for mocks and marks
// wiring as done so initServices becomes a no-op. The returned cleanup
// restores the previous state.
func setupTestServices() func() {
	oldBuilder := builderService
	oldRegistrar := registrarService
	oldProber := proberService
	oldStore := profileStore
	oldReady := servicesReady
	oldStatuses := defaultStatuses

	store := memory.NewProfileStore()
	profileStore = store
	builderService = &mockBuilder{
		profile: builtProfile("all-mcp"),
		summary: &driving.BuildSummary{Production: 1},
	}
	registrarService = &mockRegistrar{
		summary: &driving.RegisterSummary{
			Results:   []driving.RegisterResult{{Name: "github", Command: "npx"}},
			Attempted: 1,
		},
	}
	proberService = &mockProber{
		run: &driving.ProbeRun{
			ID: "run-1",
			Results: []domain.ProbeResult{
				{Name: "github", Package: "@modelcontextprotocol/server-github",
					Status: domain.ProbeExists, Version: "2025.1.1"},
			},
		},
		profile: builtProfile("working-ecosystem"),
	}
	servicesReady = true
	defaultStatuses = nil

	return func() {
		builderService = oldBuilder
		registrarService = oldRegistrar
		proberService = oldProber
		profileStore = oldStore
		servicesReady = oldReady
		defaultStatuses = oldStatuses
	}
}
