package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [profile]",
	Short: "Show a built profile",
	Long: `Prints the servers and metadata of a built profile. With no
argument, lists the names of all stored profiles.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output the full profile document as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if err := initServices(); err != nil {
		return err
	}

	if len(args) == 0 {
		return listProfiles(cmd)
	}

	profile, err := profileStore.Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if showJSON {
		data, err := json.MarshalIndent(profile, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling profile: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Printf("%s\n", profile.Description)
	cmd.Printf("  servers:    %d\n", profile.Metadata.TotalServers)
	if len(profile.Metadata.Categories) > 0 {
		cmd.Printf("  categories: %s\n", strings.Join(profile.Metadata.Categories, ", "))
	}
	cmd.Printf("  created:    %s\n", profile.Metadata.Created)
	cmd.Printf("  modified:   %s\n", profile.Metadata.Modified)
	cmd.Println()
	for _, name := range profile.Names() {
		spec := profile.Servers[name]
		cmd.Printf("  %s: %s %s\n", name, spec.Command, strings.Join(spec.Args, " "))
	}
	return nil
}

func listProfiles(cmd *cobra.Command) error {
	names, err := profileStore.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(names) == 0 {
		cmd.Println("No profiles built yet.")
		return nil
	}
	for _, name := range names {
		cmd.Println(name)
	}
	return nil
}
