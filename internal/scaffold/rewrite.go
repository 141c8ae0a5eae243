package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kculz/greycodejs-cli/internal/manifest"
	"github.com/kculz/greycodejs-cli/internal/platform"
)

// Fixed layout and script values of a GreyCode.js project.
const (
	BinDir         = "bin"
	PreferredEntry = "cli.js"
	StartScript    = "node app.js"
	DevScript      = "nodemon app.js"
)

// Answers holds the operator's interview answers.
type Answers struct {
	Description string
	Author      string
}

// Rewrite describes what RewriteManifest changed.
type Rewrite struct {
	// Skipped is true when the destination has no package.json.
	Skipped bool
	// BinPath is the entry point registered from bin/, e.g. "./bin/cli.js",
	// or empty when the bin directory had no candidate.
	BinPath string
	// Warnings lists schema problems found in the written manifest.
	Warnings []string
}

// FindEntryPoint returns the file name under <dest>/bin to register as the
// CLI. cli.js wins when present; otherwise the first regular file in
// directory listing order. An empty name means there is nothing to register.
func FindEntryPoint(dest string) (string, error) {
	entries, err := os.ReadDir(filepath.Join(dest, BinDir))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s directory: %w", BinDir, err)
	}

	first := ""
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if e.Name() == PreferredEntry {
			return e.Name(), nil
		}
		if first == "" {
			first = e.Name()
		}
	}
	return first, nil
}

// CLIScript builds the scripts.cli command for a bin path.
func CLIScript(binPath string) string {
	return "node ./" + strings.TrimPrefix(binPath, "./")
}

// RewriteManifest updates <dest>/package.json for the new project: identity
// fields, the bin entry, and the start/dev/cli scripts. A missing manifest is
// not an error; a malformed one is.
func RewriteManifest(dest, projectName string, answers Answers, toolName string) (*Rewrite, error) {
	path := filepath.Join(dest, manifest.FileName)
	m, err := manifest.ParseFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Rewrite{Skipped: true}, nil
	}
	if err != nil {
		return nil, err
	}

	m.SetString(manifest.KeyName, projectName)
	m.SetString(manifest.KeyDescription, answers.Description)
	m.SetString(manifest.KeyAuthor, answers.Author)

	rw := &Rewrite{}

	entry, err := FindEntryPoint(dest)
	if err != nil {
		return nil, err
	}
	if entry != "" {
		rw.BinPath = "./" + BinDir + "/" + entry
		bin := manifest.New()
		bin.SetString(toolName, rw.BinPath)
		m.SetObject(manifest.KeyBin, bin)

		if err := platform.MakeExecutable(filepath.Join(dest, BinDir, entry)); err != nil {
			return nil, fmt.Errorf("marking %s executable: %w", entry, err)
		}
	}

	scripts := m.Object(manifest.KeyScripts)
	scripts.SetString("start", StartScript)
	scripts.SetString("dev", DevScript)
	if _, binPath, ok := m.BinEntry(); ok {
		scripts.SetString("cli", CLIScript(binPath))
	}
	m.SetObject(manifest.KeyScripts, scripts)

	if err := manifest.WriteFile(path, m); err != nil {
		return nil, err
	}

	result, err := manifest.ValidateManifest(m)
	if err != nil {
		return nil, err
	}
	for _, issue := range result.Issues {
		rw.Warnings = append(rw.Warnings, issue.String())
	}
	return rw, nil
}

// readManifest parses <dir>/package.json, returning nil when it is absent.
func readManifest(dir string) (*manifest.Manifest, error) {
	m, err := manifest.ParseFile(filepath.Join(dir, manifest.FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return m, err
}
