// Package csvfile loads connector records from CSV catalog files.
//
// Catalogs must carry at least the mcp_name, command and status columns;
// description, category, downloads and repository_url are optional and
// fall back to documented defaults.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/portel-dev/profilectl/internal/core/domain"
	"github.com/portel-dev/profilectl/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// Required catalog columns.
const (
	columnName    = "mcp_name"
	columnCommand = "command"
	columnStatus  = "status"
)

// Optional catalog columns.
const (
	columnDescription   = "description"
	columnCategory      = "category"
	columnDownloads     = "downloads"
	columnRepositoryURL = "repository_url"
)

// defaultCategory is used when a row carries no category label.
const defaultCategory = "production"

// defaultDownloads is used when a row carries no download count.
const defaultDownloads = "unknown"

// Source is a CSV-backed implementation of driven.CatalogSource.
type Source struct{}

// New creates a new CSV catalog source.
func New() *Source {
	return &Source{}
}

// Load reads the catalog at path and returns the records whose status
// matches one of the eligible values. With no eligible values, every row
// is returned.
func (s *Source) Load(path string, eligible ...string) ([]domain.ConnectorRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading catalog header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range []string{columnName, columnCommand, columnStatus} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("catalog %s: missing column %q: %w", path, required, domain.ErrInvalidInput)
		}
	}

	allowed := make(map[string]struct{}, len(eligible))
	for _, status := range eligible {
		allowed[status] = struct{}{}
	}

	var records []domain.ConnectorRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading catalog row: %w", err)
		}

		rec := domain.ConnectorRecord{
			Name:          field(row, columns, columnName),
			Command:       field(row, columns, columnCommand),
			Status:        field(row, columns, columnStatus),
			Description:   field(row, columns, columnDescription),
			Category:      field(row, columns, columnCategory),
			Downloads:     field(row, columns, columnDownloads),
			RepositoryURL: field(row, columns, columnRepositoryURL),
		}
		if rec.Name == "" {
			continue
		}
		if len(allowed) > 0 {
			if _, ok := allowed[rec.Status]; !ok {
				continue
			}
		}

		if rec.Description == "" {
			rec.Description = domain.DefaultDescription(rec.Name)
		}
		if rec.Category == "" {
			rec.Category = defaultCategory
		}
		if rec.Downloads == "" {
			rec.Downloads = defaultDownloads
		}

		records = append(records, rec)
	}

	return records, nil
}

// field returns the named column of a row, or empty when the column is
// absent or the row is short.
func field(row []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}
