package cli

import (
	"github.com/spf13/cobra"

	"github.com/portel-dev/profilectl/internal/core/services"
)

var probeProfile string

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Probe the npm registry and build a verified profile",
	Long: `Checks each candidate package against the npm registry and builds
a profile containing only the packages that resolved. Every outcome is
recorded in the local probe cache.`,
	RunE: runProbe,
}

func init() {
	probeCmd.Flags().StringVarP(&probeProfile, "profile", "p", "working-ecosystem", "profile to create from working packages")
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, _ []string) error {
	if err := initServices(); err != nil {
		return err
	}

	run, err := proberService.Run(cmd.Context(), services.DefaultCandidates)
	if err != nil {
		return err
	}

	working := run.Working()
	for _, result := range run.Results {
		if result.OK() {
			cmd.Printf("  ok       %s (%s@%s)\n", result.Name, result.Package, result.Version)
		} else {
			cmd.Printf("  %-8s %s (%s)\n", result.Status, result.Name, result.Package)
		}
	}
	cmd.Printf("%d/%d packages working (run %s)\n", len(working), len(run.Results), run.ID)

	profile, err := proberService.CreateWorkingProfile(cmd.Context(), probeProfile, run)
	if err != nil {
		return err
	}

	cmd.Printf("Profile %q: %d verified servers\n", profile.Name, profile.Metadata.TotalServers)
	cmd.Printf("Saved to %s\n", profileStore.Path(profile.Name))
	return nil
}
