// Package ncp shells out to the ncp launcher CLI to register connectors
// under a profile. The launcher's behaviour is not specified here; this
// adapter only invokes it, one single attempt per connector.
package ncp

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/portel-dev/profilectl/internal/core/domain"
	"github.com/portel-dev/profilectl/internal/core/ports/driven"
)

// Ensure Launcher implements the interface.
var _ driven.Launcher = (*Launcher)(nil)

// The launcher is itself run through the package runner.
const (
	defaultRunner = "npx"
	launcherName  = "ncp"
)

// runFunc executes an external command and returns its combined output.
// Factored out so tests can substitute a fake process runner.
type runFunc func(ctx context.Context, name string, args ...string) (string, error)

// Launcher registers connectors via `npx ncp add`.
type Launcher struct {
	runner string
	run    runFunc
}

// New creates a launcher adapter using npx from PATH.
func New() *Launcher {
	return &Launcher{
		runner: defaultRunner,
		run:    execRun,
	}
}

// Add registers one connector under the given profile name.
// The launcher receives the executable and the arguments joined back into
// a single space-delimited string, matching its own argument convention.
func (l *Launcher) Add(ctx context.Context, profileName string, record domain.ConnectorRecord) error {
	launch, err := domain.ParseCommand(record.Command)
	if err != nil {
		return fmt.Errorf("connector %s: %w", record.Name, err)
	}

	args := []string{
		launcherName, "add",
		record.Name,
		launch.Executable,
		strings.Join(launch.Args, " "),
		"--profiles", profileName,
	}

	output, err := l.run(ctx, l.runner, args...)
	if err != nil {
		return fmt.Errorf("launcher add %s: %w: %s", record.Name, err, strings.TrimSpace(output))
	}

	return nil
}

// execRun runs the command and captures combined output for diagnostics.
func execRun(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output
	err := cmd.Run()
	return output.String(), err
}
