package cli

import (
	"fmt"
	"strings"

	"github.com/kculz/greycodejs-cli/internal/branding"
	"github.com/kculz/greycodejs-cli/internal/config"
	"github.com/kculz/greycodejs-cli/internal/fetch"
	"github.com/kculz/greycodejs-cli/internal/runtime"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write ` + branding.DisplayName() + ` installer settings stored at ~/` + branding.HomeDir() + `/config.yaml.

Keys: ` + strings.Join(config.Keys, ", ") + `
Environment variables (` + branding.EnvVar("TEMPLATE") + `, ...) take precedence over the file.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := validateConfigValue(key, value); err != nil {
			return err
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !config.IsKnownKey(args[0]) {
			return fmt.Errorf("unknown config key %q (known keys: %v)", args[0], config.Keys)
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

// validateConfigValue rejects values the new command could not use.
func validateConfigValue(key, value string) error {
	switch key {
	case config.KeyTemplate:
		if _, err := fetch.ParseSource(value); err != nil {
			return err
		}
	case config.KeyFetchMode:
		if _, err := fetch.New(value); err != nil {
			return err
		}
	case config.KeyPackageManager:
		if _, err := runtime.ForName(value); err != nil {
			return err
		}
	}
	return nil
}
