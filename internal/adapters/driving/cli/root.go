// Package cli implements the profilectl command line interface.
package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/portel-dev/profilectl/internal/adapters/driven/catalog/csvfile"
	"github.com/portel-dev/profilectl/internal/adapters/driven/catalog/namelist"
	configfile "github.com/portel-dev/profilectl/internal/adapters/driven/config/file"
	"github.com/portel-dev/profilectl/internal/adapters/driven/launcher/ncp"
	profilefile "github.com/portel-dev/profilectl/internal/adapters/driven/profile/file"
	"github.com/portel-dev/profilectl/internal/adapters/driven/registry/npm"
	"github.com/portel-dev/profilectl/internal/adapters/driven/storage/sqlite"
	"github.com/portel-dev/profilectl/internal/core/ports/driven"
	"github.com/portel-dev/profilectl/internal/core/ports/driving"
	"github.com/portel-dev/profilectl/internal/core/services"
	"github.com/portel-dev/profilectl/internal/logger"
)

// version is the CLI version, set at build time via ldflags.
var version = "0.1.0"

var (
	verboseFlag bool
	configDir   string
)

// Services wired by initServices. Tests inject their own implementations
// and set servicesReady to bypass wiring.
var (
	builderService   driving.ProfileBuilder
	registrarService driving.Registrar
	proberService    driving.Prober
	profileStore     driven.ProfileStore

	// defaultStatuses comes from the catalog.status config key. Empty
	// means each service applies its own default.
	defaultStatuses []string

	servicesReady bool
	closeServices func()
)

var rootCmd = &cobra.Command{
	Use:   "profilectl",
	Short: "Build and manage MCP server profiles",
	Long: `profilectl assembles named MCP server profiles from connector
catalogs and curated lists, registers connectors through the ncp
launcher, and verifies packages against the npm registry.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.profilectl)")
}

// Execute runs the root command. The context cancels long-running
// commands (watch mode, mcp serve) on interrupt.
func Execute(ctx context.Context) error {
	defer func() {
		if closeServices != nil {
			closeServices()
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

// initServices wires the real adapters into the services. It runs at most
// once per process; commands that need no services never call it.
func initServices() error {
	if servicesReady {
		return nil
	}

	config, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	profilesDir := config.GetString("profiles.dir")
	if profilesDir == "" && configDir != "" {
		profilesDir = filepath.Join(configDir, "profiles")
	}
	profiles, err := profilefile.NewStore(profilesDir)
	if err != nil {
		return fmt.Errorf("opening profile store: %w", err)
	}
	profileStore = profiles

	defaultStatuses = config.GetStringSlice("catalog.status")

	catalogs := csvfile.New()
	curated := namelist.New()
	builderService = services.NewBuilderService(catalogs, curated, profiles)

	launcherRate := services.DefaultLauncherRate
	if r := config.GetFloat("launcher.rate"); r > 0 {
		launcherRate = rate.Limit(r)
	}
	burst := config.GetInt("launcher.burst")
	if burst <= 0 {
		burst = 1
	}
	registrarService = services.NewRegistrarService(
		catalogs, ncp.New(), rate.NewLimiter(launcherRate, burst))

	probes, err := sqlite.NewStore(probeDataDir())
	if err != nil {
		return fmt.Errorf("opening probe cache: %w", err)
	}
	closeServices = func() {
		probes.Close() //nolint:errcheck
	}

	prober := services.NewProberService(npm.New(), probes, profiles)
	if secs := config.GetInt("registry.timeout_seconds"); secs > 0 {
		prober.SetTimeout(time.Duration(secs) * time.Second)
	}
	proberService = prober

	servicesReady = true
	return nil
}

// probeDataDir resolves the probe cache directory. Empty means the
// store's own default under the home directory.
func probeDataDir() string {
	if configDir == "" {
		return ""
	}
	return filepath.Join(configDir, "data")
}
