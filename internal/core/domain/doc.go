// Package domain contains the core business entities for profilectl.
//
// The central types are ConnectorRecord (a catalogued MCP server) and
// Profile (a named aggregate document mapping connector names to launch
// specifications). The domain layer has no dependencies on adapters or
// external libraries.
package domain
