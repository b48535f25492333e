// Package npm probes the npm registry for package availability by
// shelling out to the npm CLI. The registry is treated as a black box
// returning exists, not-found, timeout or error.
package npm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/portel-dev/profilectl/internal/core/domain"
	"github.com/portel-dev/profilectl/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.RegistryClient = (*Client)(nil)

// defaultBinary is the npm CLI executable.
const defaultBinary = "npm"

// runFunc executes an external command and returns its stdout and stderr.
// Factored out so tests can substitute a fake process runner.
type runFunc func(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)

// Client queries the npm registry through `npm view <pkg> version`.
type Client struct {
	binary string
	run    runFunc
}

// New creates a registry client using the npm CLI from PATH.
func New() *Client {
	return &Client{
		binary: defaultBinary,
		run:    execRun,
	}
}

// Probe returns the published version of pkg. The context carries the
// per-call deadline; on expiry the error wraps context.DeadlineExceeded.
func (c *Client) Probe(ctx context.Context, pkg string) (string, error) {
	stdout, stderr, err := c.run(ctx, c.binary, "view", pkg, "version")

	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", ctxErr
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// A non-zero exit means the registry has no such package.
			msg := strings.TrimSpace(stderr)
			if msg == "" {
				msg = "package not found"
			}
			return "", fmt.Errorf("%s: %w", msg, domain.ErrPackageNotFound)
		}
		return "", fmt.Errorf("running %s: %w", c.binary, err)
	}

	version := strings.TrimSpace(stdout)
	if version == "" {
		return "", domain.ErrPackageNotFound
	}

	return version, nil
}

// execRun runs the command and captures both output streams.
func execRun(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
