package cli

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/kculz/greycodejs-cli/internal/branding"
	"github.com/kculz/greycodejs-cli/internal/config"
	"github.com/kculz/greycodejs-cli/internal/fetch"
	"github.com/kculz/greycodejs-cli/internal/logging"
	"github.com/kculz/greycodejs-cli/internal/prompt"
	"github.com/kculz/greycodejs-cli/internal/runtime"
	"github.com/kculz/greycodejs-cli/internal/scaffold"
	"github.com/kculz/greycodejs-cli/internal/style"
	"github.com/spf13/cobra"
)

var (
	newDirectory string
	newNoInstall bool
	newTemplate  string
	newMode      string
	newYes       bool

	// fetchOptions are appended to the fetcher options; tests point them at
	// a local server.
	fetchOptions []fetch.Option
)

func init() {
	newCmd.Flags().StringVarP(&newDirectory, "directory", "d", "", "Specify installation directory")
	newCmd.Flags().BoolVar(&newNoInstall, "no-install", false, "Skip installing dependencies")
	newCmd.Flags().StringVar(&newTemplate, "template", "", "Template source (owner/repo[/subdir][#ref])")
	newCmd.Flags().StringVar(&newMode, "mode", "", "Fetch mode: tarball or git")
	newCmd.Flags().BoolVarP(&newYes, "yes", "y", false, "Accept defaults and overwrite without asking")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <project-name>",
	Short: "Create a new " + branding.DisplayName() + " project",
	Long: `Create a new ` + branding.DisplayName() + ` project from the remote template.

The template is downloaded fresh into ./<project-name> (or --directory),
package.json is updated with your answers, .env is seeded from .env.example,
and dependencies are installed unless --no-install is given.

Examples:
  ` + branding.CLIName() + ` new my-app
  ` + branding.CLIName() + ` new my-app -d ./apps/api --no-install
  ` + branding.CLIName() + ` new my-app --template kculz/greycodejs#develop --mode git`,
	Args: cobra.ExactArgs(1),
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	log := logging.New(errOut, verbose)
	defer func() { _ = log.Sync() }()

	source := newTemplate
	if source == "" {
		source = config.Get(config.KeyTemplate)
	}
	mode := newMode
	if mode == "" {
		mode = config.Get(config.KeyFetchMode)
	}

	opts := append([]fetch.Option{
		fetch.WithToken(os.Getenv("GITHUB_TOKEN")),
		fetch.WithLogger(log),
	}, fetchOptions...)
	fetcher, err := fetch.New(mode, opts...)
	if err != nil {
		return err
	}
	packages, err := runtime.ForName(config.Get(config.KeyPackageManager))
	if err != nil {
		return err
	}

	var prompter prompt.Prompter = prompt.NewLine(cmd.InOrStdin(), out)
	if newYes {
		prompter = &prompt.Scripted{Overwrite: true}
	}

	identity := scaffold.DefaultIdentity()
	identity.TemplateSource = source

	s := &scaffold.Scaffolder{
		Identity: identity,
		Fetcher:  fetcher,
		Prompter: prompter,
		Packages: packages,
		Out:      out,
		Err:      errOut,
		Log:      log,
	}

	req := scaffold.Request{
		ProjectName: args[0],
		Directory:   newDirectory,
		SkipInstall: newNoInstall,
	}
	if _, err := s.Run(cmd.Context(), req); err != nil {
		fmt.Fprintln(errOut, style.Error.Render("Error: "+err.Error()))
		log.Debug("new project failed", zap.Error(err))
	}
	return nil
}
