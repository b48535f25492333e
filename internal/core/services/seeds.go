package services

import "github.com/portel-dev/profilectl/internal/core/domain"

// DefaultCandidates is the seed list of packages checked by the prober.
// It mixes official ModelContextProtocol servers, community packages found
// via registry search, and entries from the production catalog.
var DefaultCandidates = []domain.ProbeCandidate{
	// Official ModelContextProtocol packages known to work
	{Name: "filesystem", Package: "@modelcontextprotocol/server-filesystem", Args: []string{"/tmp"}, Category: "file-operations"},
	{Name: "memory", Package: "@modelcontextprotocol/server-memory", Category: "ai-memory"},

	// Community packages found via registry search
	{Name: "figma", Package: "figma-mcp", Category: "design"},
	{Name: "ref-tools", Package: "ref-tools-mcp", Category: "development"},
	{Name: "browser", Package: "@agent-infra/mcp-server-browser", Category: "browser-automation"},
	{Name: "context7", Package: "@upstash/context7-mcp", Category: "ai-context"},

	// Packages from the production catalog
	{Name: "browserbase", Package: "@browserbase/mcp-server-browserbase", Category: "browser-automation"},
	{Name: "elevenlabs", Package: "@elevenlabs/elevenlabs-mcp", Category: "audio-ai"},
	{Name: "sanity", Package: "@sanity-io/sanity-mcp-server", Category: "content-management"},
	{Name: "dataforseo", Package: "@dataforseo/mcp-server-typescript", Category: "seo-analytics"},
	{Name: "chroma", Package: "@chroma-core/chroma-mcp", Category: "vector-database"},
	{Name: "azure", Package: "@azure/azure-mcp", Category: "cloud-infrastructure"},
	{Name: "playwright", Package: "@microsoft/mcp-playwright", Category: "browser-automation"},
	{Name: "supabase", Package: "@supabase/mcp-server-supabase", Category: "database"},
	{Name: "docker", Package: "@docker/mcp-server", Category: "containerization"},
}
