package domain

import (
	"fmt"
	"sort"
	"time"
)

// Server entry provenance types recorded in ServerMetadata.Type.
const (
	// ServerTypeProduction marks entries merged from a production catalog.
	ServerTypeProduction = "production"

	// ServerTypeCuratedReal marks entries resolved from curated names
	// through the static package mapping table.
	ServerTypeCuratedReal = "curated-real"

	// ServerTypeVerifiedWorking marks entries confirmed against the
	// package registry.
	ServerTypeVerifiedWorking = "verified-working"
)

// Server entry provenance sources recorded in ServerMetadata.Source.
const (
	SourceTopServers       = "top-mcp-servers"
	SourceEcosystemMapping = "ecosystem-mapping"
	SourceRegistryTest     = "npm-test"
)

// ServerMetadata is the provenance block nested inside a profile entry.
type ServerMetadata struct {
	Type         string `json:"type"`
	Source       string `json:"source"`
	Verified     bool   `json:"verified"`
	OriginalName string `json:"originalName,omitempty"`
	TestedDate   string `json:"tested_date,omitempty"`
}

// ServerSpec is a profile entry: how to launch one MCP server, plus
// descriptive metadata carried over from its source.
type ServerSpec struct {
	Command       string          `json:"command"`
	Args          []string        `json:"args"`
	Description   string          `json:"description,omitempty"`
	Category      string          `json:"category,omitempty"`
	Downloads     string          `json:"downloads,omitempty"`
	RepositoryURL string          `json:"repository_url,omitempty"`
	PackageName   string          `json:"package_name,omitempty"`
	Version       string          `json:"version,omitempty"`
	Metadata      *ServerMetadata `json:"metadata,omitempty"`
}

// ProfileMetadata is the bookkeeping block of a profile document.
type ProfileMetadata struct {
	Created         string   `json:"created"`
	Modified        string   `json:"modified"`
	TotalServers    int      `json:"totalServers"`
	ProductionReady int      `json:"productionReady,omitempty"`
	CuratedReal     int      `json:"curatedReal,omitempty"`
	TestedPackages  int      `json:"testedPackages,omitempty"`
	WorkingPackages int      `json:"workingPackages,omitempty"`
	Categories      []string `json:"categories"`
}

// Profile is a named aggregate document listing the MCP servers available
// under a particular usage scenario. Connector names are unique keys;
// insertion order is irrelevant.
type Profile struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Servers     map[string]ServerSpec `json:"mcpServers"`
	Metadata    ProfileMetadata       `json:"metadata"`
}

// NewProfile creates an empty profile stamped with the given creation time.
func NewProfile(name, description string, now time.Time) *Profile {
	if description == "" {
		description = fmt.Sprintf("Profile: %s", name)
	} else {
		description = fmt.Sprintf("Profile: %s - %s", name, description)
	}
	ts := Timestamp(now)
	return &Profile{
		Name:        name,
		Description: description,
		Servers:     make(map[string]ServerSpec),
		Metadata: ProfileMetadata{
			Created:    ts,
			Modified:   ts,
			Categories: []string{},
		},
	}
}

// Has reports whether a connector name is already present.
func (p *Profile) Has(name string) bool {
	_, ok := p.Servers[name]
	return ok
}

// Add inserts a server entry unless the name is already present.
// First writer wins: an existing entry from a higher-priority source is
// never overwritten. Returns true if the entry was inserted.
func (p *Profile) Add(name string, spec ServerSpec) bool {
	if p.Has(name) {
		return false
	}
	if spec.Args == nil {
		spec.Args = []string{}
	}
	p.Servers[name] = spec
	return true
}

// Finalize recomputes the metadata block after all merges: total count,
// per-provenance subtotals, the sorted de-duplicated category set, and the
// modified timestamp.
func (p *Profile) Finalize(now time.Time) {
	p.Metadata.TotalServers = len(p.Servers)
	p.Metadata.ProductionReady = p.countType(ServerTypeProduction)
	p.Metadata.CuratedReal = p.countType(ServerTypeCuratedReal)
	p.Metadata.WorkingPackages = p.countType(ServerTypeVerifiedWorking)
	p.Metadata.Categories = p.categories()
	p.Metadata.Modified = Timestamp(now)
}

// countType counts entries whose provenance type matches.
func (p *Profile) countType(serverType string) int {
	count := 0
	for _, spec := range p.Servers {
		if spec.Metadata != nil && spec.Metadata.Type == serverType {
			count++
		}
	}
	return count
}

// categories returns the sorted, de-duplicated category labels observed
// across all entries.
func (p *Profile) categories() []string {
	seen := make(map[string]struct{})
	for _, spec := range p.Servers {
		if spec.Category != "" {
			seen[spec.Category] = struct{}{}
		}
	}
	result := make([]string, 0, len(seen))
	for category := range seen {
		result = append(result, category)
	}
	sort.Strings(result)
	return result
}

// Names returns the connector names in sorted order, for stable display.
func (p *Profile) Names() []string {
	names := make([]string, 0, len(p.Servers))
	for name := range p.Servers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Timestamp formats a time as the UTC RFC 3339 string used in profile
// documents.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
