package runtime

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Manager is an exec-backed PackageManager.
type Manager struct {
	Binary      string
	InstallArgs []string
	LinkArgs    []string

	// Stdout and Stderr receive Link output; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Name returns the binary name.
func (m *Manager) Name() string { return m.Binary }

// Install runs `<binary> install` in dir. Output is discarded; on failure the
// tail of stderr is folded into the returned error.
func (m *Manager) Install(ctx context.Context, dir string) error {
	bin, err := exec.LookPath(m.Binary)
	if err != nil {
		return fmt.Errorf("%s not found in PATH: %w", m.Binary, err)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, m.InstallArgs...)
	cmd.Dir = dir
	cmd.Env = quietEnv(os.Environ())
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if tail := lastLine(stderr.String()); tail != "" {
			return fmt.Errorf("%s %s: %w: %s", m.Binary, strings.Join(m.InstallArgs, " "), err, tail)
		}
		return fmt.Errorf("%s %s: %w", m.Binary, strings.Join(m.InstallArgs, " "), err)
	}
	return nil
}

// Link runs the global link command in dir with output passed through.
func (m *Manager) Link(ctx context.Context, dir string) error {
	bin, err := exec.LookPath(m.Binary)
	if err != nil {
		return fmt.Errorf("%s not found in PATH: %w", m.Binary, err)
	}

	stdout := m.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := m.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	cmd := exec.CommandContext(ctx, bin, m.LinkArgs...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", m.Binary, strings.Join(m.LinkArgs, " "), err)
	}
	return nil
}

// quietEnv turns off the funding and audit notices npm prints after install.
func quietEnv(env []string) []string {
	env = setEnv(env, "npm_config_fund", "false")
	env = setEnv(env, "npm_config_audit", "false")
	return env
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}

func lastLine(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}
