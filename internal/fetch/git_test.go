package fetch

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// initBareTemplate creates <base>/kculz/greycodejs.git containing one commit.
func initBareTemplate(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available, skipping")
	}

	base := t.TempDir()
	work := t.TempDir()

	run := func(dir string, args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
		)
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}

	if err := os.MkdirAll(filepath.Join(work, "bin"), 0755); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(filepath.Join(work, "package.json"), []byte(`{"name":"greycodejs"}`), 0644)
	os.WriteFile(filepath.Join(work, "bin", "cli.js"), []byte("#!/usr/bin/env node\n"), 0755)

	run(work, "init", "--quiet")
	run(work, "add", ".")
	run(work, "commit", "--quiet", "-m", "template")

	bare := filepath.Join(base, "kculz", "greycodejs.git")
	if err := os.MkdirAll(filepath.Dir(bare), 0755); err != nil {
		t.Fatal(err)
	}
	run(base, "clone", "--quiet", "--bare", work, bare)

	return base
}

func TestGitFetch(t *testing.T) {
	base := initBareTemplate(t)
	dest := t.TempDir()

	g := NewGit(WithGitBase("file://" + base))
	if err := g.Fetch(context.Background(), Source{Owner: "kculz", Repo: "greycodejs"}, dest); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dest, "package.json")); err != nil {
		t.Errorf("package.json missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, "bin", "cli.js")); err != nil {
		t.Errorf("bin/cli.js missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dest, ".git")); !os.IsNotExist(err) {
		t.Error(".git must not be copied into the destination")
	}
}

func TestGitFetchMissingRepo(t *testing.T) {
	base := initBareTemplate(t)
	g := NewGit(WithGitBase("file://" + base))
	if err := g.Fetch(context.Background(), Source{Owner: "kculz", Repo: "nope"}, t.TempDir()); err == nil {
		t.Fatal("expected error for missing repository")
	}
}

func TestCloneURL(t *testing.T) {
	g := NewGit()
	if got := g.CloneURL(Source{Owner: "kculz", Repo: "greycodejs"}); got != "https://github.com/kculz/greycodejs.git" {
		t.Errorf("CloneURL() = %q", got)
	}
}
