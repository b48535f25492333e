// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
//   - CatalogSource: loads connector records from tabular catalog files
//   - CuratedSource: loads curated name lists
//   - ProfileStore: profile document persistence (JSON snapshots)
//   - RegistryClient: package registry availability checks
//   - Launcher: the external connector launcher CLI
//   - ProbeStore: probe outcome cache
//   - ConfigStore: application configuration
//
// Import rules: this package may import domain only, never adapters.
package driven
