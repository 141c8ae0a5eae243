package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kculz/greycodejs-cli/internal/platform"
)

// Environment file names.
const (
	EnvExample = ".env.example"
	EnvFile    = ".env"
)

// SeedEnv copies .env.example to .env when the example exists and .env does
// not. It reports whether .env was created; an existing .env is never touched.
func SeedEnv(dest string) (bool, error) {
	example := filepath.Join(dest, EnvExample)
	active := filepath.Join(dest, EnvFile)

	if _, err := os.Stat(example); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, fmt.Errorf("inspecting %s: %w", EnvExample, err)
	}

	if _, err := os.Lstat(active); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("inspecting %s: %w", EnvFile, err)
	}

	if err := platform.CopyFile(example, active); err != nil {
		return false, fmt.Errorf("copying %s to %s: %w", EnvExample, EnvFile, err)
	}
	return true, nil
}
