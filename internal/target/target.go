// Package target resolves and prepares the destination directory of a new
// project. Preparation either creates the directory, accepts it when empty,
// or asks the operator before clearing a non-empty one.
package target

import (
	"fmt"
	"os"
	"path/filepath"
)

// Outcome describes what Prepare did to the destination.
type Outcome int

const (
	// Created means the directory did not exist and was created.
	Created Outcome = iota
	// Ready means the directory already existed and was empty.
	Ready
	// Cleared means the directory was non-empty and its contents were removed.
	Cleared
	// Declined means the operator refused to overwrite; nothing was touched.
	Declined
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Ready:
		return "ready"
	case Cleared:
		return "cleared"
	case Declined:
		return "declined"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Proceed reports whether the pipeline may continue after this outcome.
func (o Outcome) Proceed() bool { return o != Declined }

// Confirmer asks the operator a yes/no question.
type Confirmer interface {
	Confirm(message string, def bool) (bool, error)
}

// Resolve returns the destination for projectName. A non-empty override
// wins; otherwise the project name itself is used, relative to the current
// working directory.
func Resolve(projectName, override string) string {
	if override != "" {
		return override
	}
	return projectName
}

// OverwriteMessage is the question asked before clearing a non-empty directory.
func OverwriteMessage(dir string) string {
	return fmt.Sprintf("Directory %s already exists and is not empty. Overwrite?", dir)
}

// Prepare makes dir ready to receive a template. The overwrite question
// defaults to "no".
func Prepare(dir string, confirm Confirmer) (Outcome, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return Created, fmt.Errorf("creating directory %s: %w", dir, err)
		}
		return Created, nil
	}
	if err != nil {
		return Ready, fmt.Errorf("inspecting %s: %w", dir, err)
	}
	if !info.IsDir() {
		return Ready, fmt.Errorf("%s exists and is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return Ready, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	if len(entries) == 0 {
		return Ready, nil
	}

	overwrite, err := confirm.Confirm(OverwriteMessage(dir), false)
	if err != nil {
		return Declined, err
	}
	if !overwrite {
		return Declined, nil
	}

	if err := Empty(dir); err != nil {
		return Cleared, err
	}
	return Cleared, nil
}

// Empty removes everything inside dir but keeps dir itself.
func Empty(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		if err := os.RemoveAll(p); err != nil {
			return fmt.Errorf("removing %s: %w", p, err)
		}
	}
	return nil
}
