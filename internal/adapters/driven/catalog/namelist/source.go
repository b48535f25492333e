// Package namelist loads curated connector names from plain-text files,
// one name per line. Lines may carry an arrow-delimited ordinal prefix
// ("12 → filesystem-mcp") which is stripped.
package namelist

import (
	"bufio"
	"fmt"
	"os"

	"github.com/portel-dev/profilectl/internal/core/domain"
	"github.com/portel-dev/profilectl/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CuratedSource = (*Source)(nil)

// Source is a plain-text implementation of driven.CuratedSource.
type Source struct{}

// New creates a new curated name list source.
func New() *Source {
	return &Source{}
}

// Load reads the name list at path. Blank lines are dropped.
func (s *Source) Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening name list: %w", err)
	}
	defer f.Close()

	var names []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		name := domain.ParseCuratedName(scanner.Text())
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading name list: %w", err)
	}

	return names, nil
}
