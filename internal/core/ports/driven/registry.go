package driven

import "context"

// RegistryClient checks package availability against a package registry.
type RegistryClient interface {
	// Probe returns the published version of the package.
	// Returns domain.ErrPackageNotFound (wrapped) if the registry has no
	// such package. The context carries the per-call deadline; on expiry
	// the returned error wraps context.DeadlineExceeded.
	Probe(ctx context.Context, pkg string) (string, error)
}
