//go:build integration

package integration_test

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // GREYCODEJS_HOME, holds config.yaml
	WorkDir string // current directory for the scaffold
	BinDir  string // only entry on PATH, holds fake package managers
}

// setupTestEnv creates isolated temp directories, points the config home and
// PATH at them, and changes into WorkDir. Everything is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
		BinDir:  t.TempDir(),
	}

	t.Setenv("GREYCODEJS_HOME", env.HomeDir)
	t.Setenv("GREYCODEJS_NO_UPDATE_CHECK", "1")
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Chdir(env.WorkDir)

	return env
}

// templateFiles is a trimmed copy of the GreyCode.js template layout.
func templateFiles() map[string]string {
	return map[string]string{
		"package.json": `{
  "name": "greycodejs",
  "version": "1.0.0",
  "main": "app.js",
  "scripts": {
    "test": "echo ok"
  },
  "dependencies": {
    "express": "^4.18.2"
  }
}
`,
		"app.js":             "require('dotenv').config();\n",
		"bin/server.js":      "#!/usr/bin/env node\nconsole.log('server');\n",
		".env.example":       "PORT=3000\nDB_DIALECT=sqlite\n",
		"models/.gitkeep":    "",
		"config/database.js": "module.exports = {};\n",
	}
}

// serveTemplate starts a server answering the GitHub tarball endpoint for
// kculz/greycodejs with files wrapped in a commit-named top directory.
func serveTemplate(t *testing.T, files map[string]string) *httptest.Server {
	t.Helper()
	archive := buildTarball(t, "kculz-greycodejs-0f1e2d3", files)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/repos/kculz/greycodejs/tarball") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/x-gzip")
		w.Write(archive)
	}))
	t.Cleanup(server.Close)
	return server
}

func buildTarball(t *testing.T, top string, files map[string]string) []byte {
	t.Helper()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	if err := tw.WriteHeader(&tar.Header{
		Typeflag:   tar.TypeXGlobalHeader,
		Name:       "pax_global_header",
		PAXRecords: map[string]string{"comment": "0f1e2d3"},
		Format:     tar.FormatPAX,
	}); err != nil {
		t.Fatal(err)
	}
	if err := tw.WriteHeader(&tar.Header{Name: top + "/", Typeflag: tar.TypeDir, Mode: 0755}); err != nil {
		t.Fatal(err)
	}
	for _, name := range names {
		body := files[name]
		hdr := &tar.Header{Name: top + "/" + name, Typeflag: tar.TypeReg, Mode: 0644, Size: int64(len(body))}
		if err := tw.WriteHeader(hdr); err != nil {
			t.Fatal(err)
		}
		if _, err := tw.Write([]byte(body)); err != nil {
			t.Fatal(err)
		}
	}
	tw.Close()
	gw.Close()
	return buf.Bytes()
}

// writeFakeTool writes a shell script named name into dir. Every call appends
// its working directory and arguments to <dir>/<name>.calls.
func writeFakeTool(t *testing.T, dir, name, body string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fakes are not supported on Windows")
	}
	script := "#!/bin/sh\n" +
		"echo \"$(pwd) $*\" >> \"" + filepath.Join(dir, name+".calls") + "\"\n" +
		body + "\n"
	writeFile(t, filepath.Join(dir, name), script)
	if err := os.Chmod(filepath.Join(dir, name), 0755); err != nil {
		t.Fatal(err)
	}
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
