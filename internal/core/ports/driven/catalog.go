package driven

import "github.com/portel-dev/profilectl/internal/core/domain"

// CatalogSource loads connector records from a tabular catalog file.
type CatalogSource interface {
	// Load reads the catalog at path and returns the records whose status
	// matches one of the eligible values. Missing optional fields are
	// filled with their documented defaults. A missing or unreadable file
	// is an error; callers decide whether to skip or abort.
	Load(path string, eligible ...string) ([]domain.ConnectorRecord, error)
}

// CuratedSource loads curated connector names, one per line, with any
// ordinal markers stripped and blank lines dropped.
type CuratedSource interface {
	Load(path string) ([]string, error)
}
