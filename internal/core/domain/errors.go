package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyProfile indicates a build produced zero usable connector
	// records. This is the only partial failure that terminates a run.
	ErrEmptyProfile = errors.New("no usable connector records")

	// ErrUnmappedName indicates a curated name has no known package mapping.
	ErrUnmappedName = errors.New("no package mapping for curated name")

	// ErrPackageNotFound indicates the registry reports the package does not exist.
	ErrPackageNotFound = errors.New("package not found")
)
