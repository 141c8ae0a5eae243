package fetch

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kculz/greycodejs-cli/internal/platform"
	"go.uber.org/zap"
)

// excludedNames are never copied out of a clone.
var excludedNames = map[string]bool{
	".git": true,
}

// Git shallow-clones the template with the git binary into a scratch
// directory and copies the tree, minus .git, into the destination.
type Git struct {
	opts *options
}

// NewGit creates a Git fetcher.
func NewGit(opts ...Option) *Git {
	return &Git{opts: buildOptions(opts)}
}

// CloneURL returns the URL git clones src from.
func (g *Git) CloneURL(src Source) string {
	return fmt.Sprintf("%s/%s/%s.git", strings.TrimRight(g.opts.gitBase, "/"), src.Owner, src.Repo)
}

// Fetch implements Fetcher.
func (g *Git) Fetch(ctx context.Context, src Source, dest string) error {
	if err := ensureGit(); err != nil {
		return err
	}

	tmpDir, err := os.MkdirTemp("", "greycodejs-template-")
	if err != nil {
		return fmt.Errorf("creating scratch directory: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	cloneDir := filepath.Join(tmpDir, "repo")
	args := []string{"clone", "--depth=1", "--quiet"}
	if src.Ref != "" {
		args = append(args, "--branch", src.Ref)
	}
	args = append(args, g.CloneURL(src), cloneDir)

	g.opts.log.Debug("cloning template", zap.Strings("args", args))

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")
	if output, err := cmd.CombinedOutput(); err != nil {
		msg := strings.TrimSpace(string(output))
		if strings.Contains(msg, "not found") || strings.Contains(msg, "does not exist") {
			return fmt.Errorf("%w: %s\n%s", ErrNotFound, src, msg)
		}
		return fmt.Errorf("cloning %s: %w\n%s", src, err, msg)
	}

	from := cloneDir
	if src.Subdir != "" {
		from = filepath.Join(cloneDir, filepath.FromSlash(src.Subdir))
		if info, err := os.Stat(from); err != nil || !info.IsDir() {
			return fmt.Errorf("%w: subdirectory %q missing in %s", ErrNotFound, src.Subdir, src)
		}
	}

	if err := platform.CopyDir(from, dest, excludedNames); err != nil {
		return fmt.Errorf("copying template into %s: %w", dest, err)
	}
	return nil
}

// ensureGit checks that git is available on PATH.
func ensureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is required for the git fetch mode but was not found in PATH")
	}
	return nil
}
