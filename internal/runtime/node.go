package runtime

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/kculz/greycodejs-cli/internal/manifest"
)

// EngineCheck is the outcome of comparing engines.node with the installed node.
type EngineCheck struct {
	Constraint string
	Installed  string
	Satisfied  bool
}

// NodeVersion returns the version printed by `node --version`, without the
// leading "v".
func NodeVersion(ctx context.Context) (string, error) {
	nodeBin, err := exec.LookPath("node")
	if err != nil {
		return "", fmt.Errorf("node not found in PATH: %w", err)
	}
	out, err := exec.CommandContext(ctx, nodeBin, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("running node --version: %w", err)
	}
	return strings.TrimPrefix(strings.TrimSpace(string(out)), "v"), nil
}

// CheckEngines compares the manifest's engines.node constraint with the
// installed node. It returns nil when the manifest declares no constraint.
func CheckEngines(ctx context.Context, m *manifest.Manifest) (*EngineCheck, error) {
	constraint, ok := m.Object(manifest.KeyEngines).GetString("node")
	if !ok || strings.TrimSpace(constraint) == "" {
		return nil, nil
	}
	installed, err := NodeVersion(ctx)
	if err != nil {
		return nil, err
	}
	satisfied, err := SatisfiesNode(constraint, installed)
	if err != nil {
		return nil, err
	}
	return &EngineCheck{Constraint: constraint, Installed: installed, Satisfied: satisfied}, nil
}

// SatisfiesNode reports whether version meets an npm-style range such as
// ">=18" or "^20.0.0 || >=22".
func SatisfiesNode(constraint, version string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing engines.node %q: %w", constraint, err)
	}
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing node version %q: %w", version, err)
	}
	return c.Check(v), nil
}
