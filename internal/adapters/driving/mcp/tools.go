package mcp

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FindServerInput is the input schema for the find_server tool.
type FindServerInput struct {
	Profile string `json:"profile" jsonschema:"the profile to search in"`
	Query   string `json:"query" jsonschema:"text to match against server names, descriptions and categories"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum number of results to return (default 10)"`
}

// FindServerOutput is the output schema for the find_server tool.
type FindServerOutput struct {
	Servers []ServerInfoOutput `json:"servers"`
	Count   int                `json:"count"`
}

// ServerInfoOutput represents a single matched server entry.
type ServerInfoOutput struct {
	Name        string   `json:"name"`
	Command     string   `json:"command"`
	Args        []string `json:"args"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty"`
	PackageName string   `json:"package_name,omitempty"`
	Version     string   `json:"version,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "find_server",
		Description: "Find MCP servers in a built profile by name, description or category",
	}, s.handleFindServer)
}

// handleFindServer handles the find_server tool invocation.
func (s *Server) handleFindServer(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FindServerInput,
) (*mcp.CallToolResult, FindServerOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	profile, err := s.ports.Profiles.Load(ctx, input.Profile)
	if err != nil {
		return nil, FindServerOutput{}, err
	}

	query := strings.ToLower(input.Query)

	output := FindServerOutput{Servers: []ServerInfoOutput{}}
	for _, name := range profile.Names() {
		if len(output.Servers) >= limit {
			break
		}
		spec := profile.Servers[name]
		if query != "" && !matchesQuery(query, name, spec.Description, spec.Category) {
			continue
		}
		output.Servers = append(output.Servers, ServerInfoOutput{
			Name:        name,
			Command:     spec.Command,
			Args:        spec.Args,
			Description: spec.Description,
			Category:    spec.Category,
			PackageName: spec.PackageName,
			Version:     spec.Version,
		})
	}
	output.Count = len(output.Servers)

	return nil, output, nil
}

// matchesQuery reports whether any of the fields contains the lowercased query.
func matchesQuery(query string, fields ...string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
