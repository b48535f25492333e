package services

import (
	"context"
	"errors"
	"sync"

	"github.com/portel-dev/profilectl/internal/core/domain"
)

// fakeCatalog serves canned records per path.
type fakeCatalog struct {
	records map[string][]domain.ConnectorRecord
	errs    map[string]error
}

func (f *fakeCatalog) Load(path string, eligible ...string) ([]domain.ConnectorRecord, error) {
	if err, ok := f.errs[path]; ok {
		return nil, err
	}
	records, ok := f.records[path]
	if !ok {
		return nil, errors.New("open " + path + ": no such file or directory")
	}
	allowed := make(map[string]struct{}, len(eligible))
	for _, status := range eligible {
		allowed[status] = struct{}{}
	}
	var result []domain.ConnectorRecord
	for _, rec := range records {
		if _, ok := allowed[rec.Status]; ok {
			result = append(result, rec)
		}
	}
	return result, nil
}

// fakeCurated serves canned name lists per path.
type fakeCurated struct {
	names map[string][]string
}

func (f *fakeCurated) Load(path string) ([]string, error) {
	names, ok := f.names[path]
	if !ok {
		return nil, errors.New("open " + path + ": no such file or directory")
	}
	return names, nil
}

// fakeLauncher records Add calls and fails for selected names.
type fakeLauncher struct {
	mu     sync.Mutex
	calls  []launcherCall
	failed map[string]error
}

type launcherCall struct {
	profile string
	record  domain.ConnectorRecord
}

func (f *fakeLauncher) Add(_ context.Context, profileName string, record domain.ConnectorRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, launcherCall{profile: profileName, record: record})
	if err, ok := f.failed[record.Name]; ok {
		return err
	}
	return nil
}

// fakeRegistry resolves probes from a canned version map. Packages absent
// from versions return the error in errs, or ErrPackageNotFound.
type fakeRegistry struct {
	versions map[string]string
	errs     map[string]error
}

func (f *fakeRegistry) Probe(_ context.Context, pkg string) (string, error) {
	if err, ok := f.errs[pkg]; ok {
		return "", err
	}
	version, ok := f.versions[pkg]
	if !ok {
		return "", domain.ErrPackageNotFound
	}
	return version, nil
}

// cancellingRegistry cancels the run's context when asked about the
// trigger package, simulating an interrupt arriving mid-probe.
type cancellingRegistry struct {
	inner   *fakeRegistry
	trigger string
	cancel  context.CancelFunc
}

func (c *cancellingRegistry) Probe(ctx context.Context, pkg string) (string, error) {
	if pkg == c.trigger {
		c.cancel()
		return "", ctx.Err()
	}
	return c.inner.Probe(ctx, pkg)
}
