package cli

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/portel-dev/profilectl/internal/core/ports/driving"
	"github.com/portel-dev/profilectl/internal/logger"
)

var (
	buildProfile     string
	buildDescription string
	buildCatalogs    []string
	buildCurated     []string
	buildStatuses    []string
	buildWatch       bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a profile from catalogs and curated lists",
	Long: `Merges connector records into a named profile document.

Catalog files are merged first, in the order given; curated name lists
follow. A connector name already present in the profile is never
overwritten by a later source.

Examples:
  # Merge a catalog and a curated list into the all-mcp profile
  profilectl build --catalog top-servers.csv --curated ecosystem.txt

  # Rebuild automatically whenever a source file changes
  profilectl build --catalog top-servers.csv --watch`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildProfile, "profile", "p", "all-mcp", "profile to build or extend")
	buildCmd.Flags().StringVarP(&buildDescription, "description", "d", "", "profile description (used when created fresh)")
	buildCmd.Flags().StringArrayVar(&buildCatalogs, "catalog", nil, "catalog CSV file (repeatable, highest priority first)")
	buildCmd.Flags().StringArrayVar(&buildCurated, "curated", nil, "curated name list file (repeatable)")
	buildCmd.Flags().StringArrayVar(&buildStatuses, "status", nil, "eligible status values (default from config, else production)")
	buildCmd.Flags().BoolVarP(&buildWatch, "watch", "w", false, "rebuild whenever a source file changes")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	if err := initServices(); err != nil {
		return err
	}

	if len(buildCatalogs) == 0 && len(buildCurated) == 0 {
		return fmt.Errorf("at least one --catalog or --curated source is required")
	}

	req := driving.BuildRequest{
		ProfileName:  buildProfile,
		Description:  buildDescription,
		CatalogPaths: buildCatalogs,
		CuratedPaths: buildCurated,
		Statuses:     buildStatuses,
	}
	if len(req.Statuses) == 0 {
		req.Statuses = defaultStatuses
	}

	if err := buildOnce(cmd, req); err != nil {
		return err
	}

	if buildWatch {
		return watchAndRebuild(cmd, req)
	}
	return nil
}

// buildOnce runs one build pass and prints its summary.
func buildOnce(cmd *cobra.Command, req driving.BuildRequest) error {
	profile, summary, err := builderService.Build(cmd.Context(), req)
	if err != nil {
		return err
	}

	cmd.Printf("Profile %q: %d servers total\n", profile.Name, profile.Metadata.TotalServers)
	cmd.Printf("  production added: %d\n", summary.Production)
	cmd.Printf("  curated added:    %d\n", summary.Curated)
	if len(summary.Skipped) > 0 {
		cmd.Printf("  skipped (complex setup): %v\n", summary.Skipped)
	}
	for _, source := range summary.FailedSources {
		cmd.Printf("  warning: source not loaded: %s\n", source)
	}
	cmd.Printf("Saved to %s\n", profileStore.Path(profile.Name))
	return nil
}

// watchAndRebuild re-runs the build whenever one of the source files is
// written. It blocks until the command context is cancelled.
func watchAndRebuild(cmd *cobra.Command, req driving.BuildRequest) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	sources := append(append([]string{}, req.CatalogPaths...), req.CuratedPaths...)
	for _, source := range sources {
		if err := watcher.Add(source); err != nil {
			return fmt.Errorf("watching %s: %w", source, err)
		}
	}

	cmd.Printf("Watching %d source file(s), press Ctrl-C to stop\n", len(sources))

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("source changed: %s", event.Name)
			cmd.Printf("Change detected in %s, rebuilding\n", event.Name)
			if err := buildOnce(cmd, req); err != nil {
				// Keep watching; a transient parse error should not
				// tear the loop down.
				cmd.Printf("rebuild failed: %v\n", err)
			}
			// Editors replace files on save, which drops the watch.
			reAddWatch(watcher, event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}

// reAddWatch re-registers a path after a rename-style save.
func reAddWatch(watcher *fsnotify.Watcher, path string) {
	_ = watcher.Remove(path)
	if err := watcher.Add(path); err != nil {
		logger.Warn("re-watching %s: %v", path, err)
	}
}
