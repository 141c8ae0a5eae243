package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/kculz/greycodejs-cli/internal/fetch"
	"github.com/kculz/greycodejs-cli/internal/prompt"
)

var testIdentity = Identity{
	ToolName:           "greycodejs",
	DisplayName:        "GreyCode.js",
	TemplateSource:     "kculz/greycodejs",
	DefaultDescription: "A new GreyCode.js project",
}

// fakeFetcher writes a fixed file tree into the destination.
type fakeFetcher struct {
	files map[string]string
	err   error
	calls []fetch.Source
}

func (f *fakeFetcher) Fetch(_ context.Context, src fetch.Source, dest string) error {
	f.calls = append(f.calls, src)
	if f.err != nil {
		return f.err
	}
	for name, body := range f.files {
		p := filepath.Join(dest, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(p, []byte(body), 0644); err != nil {
			return err
		}
	}
	return nil
}

// fakePackages records install calls and returns a fixed error.
type fakePackages struct {
	installErr error
	installs   []string
}

func (p *fakePackages) Name() string { return "npm" }

func (p *fakePackages) Install(_ context.Context, dir string) error {
	p.installs = append(p.installs, dir)
	return p.installErr
}

func (p *fakePackages) Link(context.Context, string) error { return nil }

// abortingPrompter fails every question the way a closed stdin does.
type abortingPrompter struct{}

func (abortingPrompter) Ask([]prompt.Question) (map[string]string, error) { return nil, prompt.ErrAborted }
func (abortingPrompter) Confirm(string, bool) (bool, error) { return false, prompt.ErrAborted }

var errInstall = errors.New("npm exited with status 1")

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, body := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(body), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
