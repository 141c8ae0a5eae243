package cli

import (
	"fmt"
	"os"

	"github.com/kculz/greycodejs-cli/internal/branding"
	"github.com/kculz/greycodejs-cli/internal/config"
	"github.com/kculz/greycodejs-cli/internal/runtime"
	"github.com/kculz/greycodejs-cli/internal/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(installGlobalCmd)
}

var installGlobalCmd = &cobra.Command{
	Use:   "install-global",
	Short: "Install the project CLI globally on your system",
	Long: `Link the package in the current directory globally with the configured
package manager (npm link by default), so its CLI is available on PATH.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}

		fmt.Fprintln(out, style.Title.Render(fmt.Sprintf("Installing %s CLI globally...", branding.DisplayName())))

		pm, err := runtime.ForName(config.Get(config.KeyPackageManager))
		if err == nil {
			if m, ok := pm.(*runtime.Manager); ok {
				m.Stdout, m.Stderr = out, errOut
			}
			err = pm.Link(cmd.Context(), cwd)
		}
		if err != nil {
			fmt.Fprintln(errOut, style.Error.Render("Error installing globally: "+err.Error()))
			return nil
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, style.Success.Render(fmt.Sprintf("✅ %s CLI installed globally!", branding.DisplayName())))
		fmt.Fprintln(out, "You can now run commands like:")
		fmt.Fprintln(out, style.Command.Render("  "+branding.CLIName()+" new my-project"))
		return nil
	},
}
