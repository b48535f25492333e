package mcp

import (
	"github.com/portel-dev/profilectl/internal/core/ports/driven"
)

// Ports aggregates the dependencies required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Profiles provides access to built profile documents.
	Profiles driven.ProfileStore
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Profiles == nil {
		return ErrMissingProfileStore
	}
	return nil
}
