package domain

import "time"

// ProbeStatus classifies the outcome of one registry availability check.
type ProbeStatus string

const (
	// ProbeExists means the registry reported a published version.
	ProbeExists ProbeStatus = "exists"

	// ProbeNotFound means the registry has no such package.
	ProbeNotFound ProbeStatus = "not_found"

	// ProbeTimeout means the registry query exceeded its deadline.
	ProbeTimeout ProbeStatus = "timeout"

	// ProbeError means the query failed for any other reason.
	ProbeError ProbeStatus = "error"
)

// ProbeCandidate is a package to check against the registry.
type ProbeCandidate struct {
	// Name is the connector name the package would be registered under.
	Name string

	// Package is the registry package identifier.
	Package string

	// Args are extra launch arguments appended after the package name.
	Args []string

	// Category is the grouping label for the resulting profile entry.
	Category string
}

// ProbeResult is the outcome of probing one candidate.
type ProbeResult struct {
	Name     string
	Package  string
	Args     []string
	Category string
	Status   ProbeStatus
	Version  string
	Err      string
}

// OK reports whether the probe confirmed the package exists.
func (r ProbeResult) OK() bool {
	return r.Status == ProbeExists
}

// ProbeRecord is a cached probe outcome, keyed by the run that produced it.
type ProbeRecord struct {
	RunID    string
	Name     string
	Package  string
	Status   ProbeStatus
	Version  string
	Error    string
	TestedAt time.Time
}
