// Package driving defines the interfaces that the outside world calls IN
// through. CLI and MCP adapters depend on these interfaces; core services
// implement them.
//
//   - ProfileBuilder: builds profile documents from catalog sources
//   - Registrar: registers connectors through the launcher CLI
//   - Prober: checks package availability and builds verified profiles
//
// Import rules: this package may import domain only, never adapters.
package driving
