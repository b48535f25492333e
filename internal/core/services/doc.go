// Package services contains the core application services implementing the
// driving ports: profile building, connector registration and registry
// probing. Services depend only on domain types and driven-port interfaces.
package services
