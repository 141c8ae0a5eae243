package cli

import (
	"encoding/json"
	"fmt"

	"github.com/kculz/greycodejs-cli/internal/branding"
	"github.com/kculz/greycodejs-cli/internal/config"
	"github.com/kculz/greycodejs-cli/internal/updater"
	"github.com/spf13/cobra"
)

var (
	versionShort bool
	versionJSON  bool
	versionCheck bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Check GitHub for a newer release")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if versionShort {
			fmt.Fprintln(out, buildVersion)
			return nil
		}

		if versionJSON {
			info := map[string]string{
				"version": buildVersion,
				"commit":  buildCommit,
				"date":    buildDate,
			}
			data, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("marshaling version info: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		}

		fmt.Fprintf(out, "%s version %s (commit: %s, built: %s)\n", branding.CLIName(), buildVersion, buildCommit, buildDate)
		if versionCheck {
			return checkForUpdate(cmd)
		}
		return nil
	},
}

func checkForUpdate(cmd *cobra.Command) error {
	if !updater.IsRelease(buildVersion) {
		return fmt.Errorf("cannot check for updates from an unreleased build (%s)", buildVersion)
	}
	cache, err := newUpdater().Check(cmd.Context(), config.Dir())
	if cache == nil {
		return fmt.Errorf("checking for updates: %w", err)
	}
	if cache.UpdateAvailable {
		updater.PrintNotice(cmd.OutOrStdout(), cache.CurrentVersion, cache.LatestVersion)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date (latest release %s)\n", branding.CLIName(), cache.LatestVersion)
	return nil
}
