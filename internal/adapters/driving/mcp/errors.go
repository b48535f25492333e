// Package mcp provides an MCP (Model Context Protocol) server adapter for
// profilectl. It lets AI assistants inspect built profiles and look up the
// servers registered in them.
package mcp

import "errors"

// ErrMissingProfileStore is returned when the profile store is not provided.
var ErrMissingProfileStore = errors.New("mcp: profile store is required")
