package scaffold

import (
	"fmt"
	"io"

	"github.com/kculz/greycodejs-cli/internal/style"
)

// ReportOptions controls the completion summary.
type ReportOptions struct {
	Dir            string
	DisplayName    string
	PackageManager string
	InstallSkipped bool
}

// Report prints the next-step guidance for a finished scaffold. Bin guidance
// is derived from package.json as it is on disk at the time of the call. A
// manifest that cannot be re-read is returned as an error after the summary
// has been printed without bin guidance.
func Report(w io.Writer, opts ReportOptions) error {
	pm := opts.PackageManager
	if pm == "" {
		pm = "npm"
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, style.Success.Render("✅ Project created successfully!"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, style.Command.Render("  cd "+opts.Dir))
	if opts.InstallSkipped {
		fmt.Fprintln(w, style.Command.Render("  "+pm+" install"))
	}
	fmt.Fprintln(w, style.Command.Render("  "+pm+" run dev    # Start the development server"))

	command, readErr := registeredCommand(opts.Dir)
	if command != "" {
		fmt.Fprintln(w, style.Command.Render("  "+pm+" run cli -- create-model User  # Use CLI to create models"))
		fmt.Fprintln(w, style.Command.Render("  npx "+command+" create-model User"))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Happy coding with %s! 🚀\n\n", opts.DisplayName)
	return readErr
}

// registeredCommand re-reads <dir>/package.json and returns its first bin
// command. A missing manifest yields no command and no error.
func registeredCommand(dir string) (string, error) {
	m, err := readManifest(dir)
	if err != nil || m == nil {
		return "", err
	}
	command, _, ok := m.BinEntry()
	if !ok {
		return "", nil
	}
	return command, nil
}
