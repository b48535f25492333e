package cli

import (
	"github.com/spf13/cobra"

	"github.com/portel-dev/profilectl/internal/core/ports/driving"
)

var (
	registerProfile  string
	registerStatuses []string
)

var registerCmd = &cobra.Command{
	Use:   "register [catalog]",
	Short: "Register catalogued connectors through the ncp launcher",
	Long: `Reads the eligible records from a catalog CSV and registers each
one with the ncp launcher CLI, one at a time. Individual failures are
reported and the pass continues with the next record.`,
	Args: cobra.ExactArgs(1),
	RunE: runRegister,
}

func init() {
	registerCmd.Flags().StringVarP(&registerProfile, "profile", "p", "all-mcp", "launcher profile to register under")
	registerCmd.Flags().StringArrayVar(&registerStatuses, "status", nil, "eligible status values (default from config, else active)")
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	req := driving.RegisterRequest{
		CatalogPath: args[0],
		ProfileName: registerProfile,
		Statuses:    registerStatuses,
	}
	if len(req.Statuses) == 0 {
		req.Statuses = defaultStatuses
	}

	summary, err := registrarService.Register(cmd.Context(), req)
	if err != nil {
		return err
	}

	for _, result := range summary.Results {
		if result.Failed() {
			cmd.Printf("  FAIL %s: %s\n", result.Name, result.Err)
		} else {
			cmd.Printf("  ok   %s (%s)\n", result.Name, result.Command)
		}
	}
	cmd.Printf("Registered %d/%d connectors under profile %q\n",
		summary.Attempted-summary.Failures, summary.Attempted, registerProfile)
	return nil
}
