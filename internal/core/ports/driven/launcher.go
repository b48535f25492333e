package driven

import (
	"context"

	"github.com/portel-dev/profilectl/internal/core/domain"
)

// Launcher is the external connector launcher CLI. This tool only shells
// out to it; the launcher's own behaviour is not specified here.
type Launcher interface {
	// Add registers one connector under the given profile name.
	// A single attempt, no retries.
	Add(ctx context.Context, profileName string, record domain.ConnectorRecord) error
}
