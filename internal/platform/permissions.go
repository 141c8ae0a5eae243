package platform

import (
	"os"
	"runtime"
)

// ExecMode is the mode given to entry-point scripts.
const ExecMode os.FileMode = 0755

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// MakeExecutable marks path rwxr-xr-x.
func MakeExecutable(path string) error {
	return Chmod(path, ExecMode)
}
