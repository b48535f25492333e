package domain

import (
	"fmt"
	"strings"
)

// Connector record statuses used as inclusion filters when loading catalogs.
const (
	// StatusActive marks a connector confirmed to launch.
	StatusActive = "active"

	// StatusProduction marks a verified, production-ready connector.
	StatusProduction = "production"
)

// ConnectorRecord is a single catalogued MCP server.
// Records come from tabular catalog files; optional fields may be empty.
type ConnectorRecord struct {
	// Name is the unique connector name within a catalog.
	Name string

	// Command is the raw launch command, whitespace-delimited.
	Command string

	// Description is free text describing the connector.
	Description string

	// Category is an optional grouping label (e.g., "database").
	Category string

	// Downloads is the package download count as reported by the catalog.
	Downloads string

	// RepositoryURL points at the connector's source repository.
	RepositoryURL string

	// Status is the inclusion filter flag ("active", "production", ...).
	Status string
}

// DefaultDescription returns the generated description used when a
// catalog row has none.
func DefaultDescription(name string) string {
	return fmt.Sprintf("%s operations and integrations", name)
}

// LaunchCommand is a parsed launch command: an executable and its arguments.
type LaunchCommand struct {
	Executable string
	Args       []string
}

// ParseCommand splits a raw command string on whitespace into an executable
// and an ordered argument list.
//
// This is a naive split: no shell-quoting semantics are honoured, so
// arguments containing embedded spaces cannot be represented. Downstream
// consumers depend on this exact behaviour, so do not add quote parsing.
func ParseCommand(raw string) (LaunchCommand, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return LaunchCommand{}, fmt.Errorf("empty launch command: %w", ErrInvalidInput)
	}
	return LaunchCommand{
		Executable: fields[0],
		Args:       fields[1:],
	}, nil
}
