package runtime

import (
	"context"
	"fmt"
	"strings"
)

// PackageManager installs a project's dependencies and links a package globally.
type PackageManager interface {
	// Name returns the command name, for example "npm".
	Name() string
	// Install runs the dependency install in dir with its output suppressed.
	Install(ctx context.Context, dir string) error
	// Link registers the package in dir globally, passing output through.
	Link(ctx context.Context, dir string) error
}

// Supported package manager identifiers.
const (
	NPM  = "npm"
	Yarn = "yarn"
	PNPM = "pnpm"
)

// Names lists the supported package managers in display order.
var Names = []string{NPM, Yarn, PNPM}

// ForName returns the PackageManager for the given command name.
func ForName(name string) (PackageManager, error) {
	switch name {
	case NPM, "":
		return &Manager{Binary: NPM, InstallArgs: []string{"install"}, LinkArgs: []string{"link"}}, nil
	case Yarn:
		return &Manager{Binary: Yarn, InstallArgs: []string{"install"}, LinkArgs: []string{"link"}}, nil
	case PNPM:
		return &Manager{Binary: PNPM, InstallArgs: []string{"install"}, LinkArgs: []string{"link", "--global"}}, nil
	default:
		return nil, fmt.Errorf("unknown package manager %q (supported: %s)", name, strings.Join(Names, ", "))
	}
}
