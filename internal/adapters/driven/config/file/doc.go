// Package file provides a TOML file-backed configuration store.
//
// Configuration lives at ~/.profilectl/config.toml by default. Nested
// tables are flattened into dot-notation keys (profiles.dir,
// catalog.status, registry.timeout_seconds, launcher.rate, launcher.burst).
package file
