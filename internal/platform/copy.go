package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// CopyDir recursively copies src into dst, overwriting files that already
// exist in dst. Entries named in exclude are skipped at every level.
// Symlinks are recreated; other special files are skipped.
func CopyDir(src, dst string, exclude map[string]bool) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}
	if !srcInfo.IsDir() {
		return fmt.Errorf("%s is not a directory", src)
	}

	if err := os.MkdirAll(dst, srcInfo.Mode().Perm()|0700); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if exclude[entry.Name()] {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		switch {
		case entry.IsDir():
			if err := CopyDir(srcPath, dstPath, exclude); err != nil {
				return err
			}
		case entry.Type()&os.ModeSymlink != 0:
			target, err := os.Readlink(srcPath)
			if err != nil {
				return err
			}
			if err := PrepareOverwrite(dstPath); err != nil {
				return err
			}
			if err := CreateSymlink(target, dstPath); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			if err := CopyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// CopyFile copies a single file from src to dst with src's permissions,
// replacing whatever is at dst.
func CopyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := PrepareOverwrite(dst); err != nil {
		return err
	}
	return os.WriteFile(dst, data, srcInfo.Mode().Perm())
}

// PrepareOverwrite clears dst when it is a directory or symlink so a regular
// file or fresh link can take its place. Regular files are left for the
// caller to truncate.
func PrepareOverwrite(dst string) error {
	info, err := os.Lstat(dst)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.IsDir() || info.Mode()&os.ModeSymlink != 0 {
		return os.RemoveAll(dst)
	}
	return nil
}
