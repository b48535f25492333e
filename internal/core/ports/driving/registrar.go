package driving

import "context"

// RegisterRequest describes one registration pass over a catalog.
type RegisterRequest struct {
	// CatalogPath is the tabular catalog to read records from.
	CatalogPath string

	// ProfileName is the launcher profile to register connectors under.
	ProfileName string

	// Statuses are the eligible status values.
	Statuses []string
}

// RegisterResult is the outcome of registering one connector.
type RegisterResult struct {
	Name    string
	Command string
	Err     string
}

// Failed reports whether the registration attempt failed.
func (r RegisterResult) Failed() bool {
	return r.Err != ""
}

// RegisterSummary reports a completed registration pass.
type RegisterSummary struct {
	Results   []RegisterResult
	Attempted int
	Failures  int
}

// Registrar registers catalogued connectors through the external launcher
// CLI, one at a time, pacing the calls. Individual failures are recorded
// and the pass continues.
type Registrar interface {
	Register(ctx context.Context, req RegisterRequest) (*RegisterSummary, error)
}
