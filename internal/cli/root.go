package cli

import (
	"fmt"
	"os"

	"github.com/kculz/greycodejs-cli/internal/branding"
	"github.com/kculz/greycodejs-cli/internal/config"
	"github.com/kculz/greycodejs-cli/internal/style"
	"github.com/kculz/greycodejs-cli/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` installer: scaffolds new projects from the ` + branding.TemplateSource() + `
template and links the project CLI globally.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		// The version command runs its own check.
		if cmd.Name() == "version" || os.Getenv(branding.EnvVar("NO_UPDATE_CHECK")) != "" {
			return
		}
		// Non-blocking notice from the cached version check.
		newUpdater().Notify(cmd.Context(), cmd.ErrOrStderr(), config.Dir())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print diagnostic logs to stderr")
}

// updaterOptions are appended when building the updater; tests point them
// at a local server.
var updaterOptions []updater.Option

func newUpdater() *updater.Updater {
	opts := append([]updater.Option{updater.WithToken(os.Getenv("GITHUB_TOKEN"))}, updaterOptions...)
	return updater.New(buildVersion, opts...)
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = version

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, style.Error.Render("Error: "+err.Error()))
	}
	return err
}
