package fetch

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/kculz/greycodejs-cli/internal/platform"
)

// Extract unpacks a gzipped tarball into dest. The archive's top-level
// directory (GitHub's "<owner>-<repo>-<sha>/") is stripped. When subdir is
// set only entries below it are written, relative to it. Existing files are
// overwritten. It returns the number of files and links written.
func Extract(r io.Reader, dest, subdir string) (int, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return 0, fmt.Errorf("creating gzip reader: %w", err)
	}
	defer gz.Close()

	subdir = strings.Trim(subdir, "/")
	written := 0

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return written, fmt.Errorf("reading tar entry: %w", err)
		}

		if hdr.Typeflag == tar.TypeXGlobalHeader || hdr.Typeflag == tar.TypeXHeader {
			continue
		}

		rel, ok := stripEntryName(hdr.Name, subdir)
		if !ok {
			continue
		}

		target, err := safeJoin(dest, rel)
		if err != nil {
			return written, err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0755); err != nil {
				return written, fmt.Errorf("creating directory %s: %w", target, err)
			}

		case tar.TypeReg:
			if err := writeEntry(tr, target, hdr.FileInfo().Mode().Perm()); err != nil {
				return written, err
			}
			written++

		case tar.TypeSymlink:
			if err := checkLink(dest, target, hdr.Linkname); err != nil {
				return written, err
			}
			if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
				return written, fmt.Errorf("creating directory for %s: %w", target, err)
			}
			if err := platform.PrepareOverwrite(target); err != nil {
				return written, fmt.Errorf("replacing %s: %w", target, err)
			}
			if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
				return written, fmt.Errorf("replacing %s: %w", target, err)
			}
			if err := platform.CreateSymlink(hdr.Linkname, target); err != nil {
				return written, fmt.Errorf("creating link %s: %w", target, err)
			}
			written++
		}
	}

	return written, nil
}

// stripEntryName removes the archive's top-level directory and, when set,
// the subdir prefix. It reports false for entries that should be skipped.
func stripEntryName(name, subdir string) (string, bool) {
	name = path.Clean(strings.TrimPrefix(name, "./"))
	i := strings.Index(name, "/")
	if i < 0 {
		return "", false
	}
	rel := name[i+1:]

	if subdir == "" {
		return rel, true
	}
	if rel == subdir {
		return "", false
	}
	if !strings.HasPrefix(rel, subdir+"/") {
		return "", false
	}
	return strings.TrimPrefix(rel, subdir+"/"), true
}

// safeJoin joins rel onto dest and rejects results outside dest.
func safeJoin(dest, rel string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(rel))
	r, err := filepath.Rel(dest, target)
	if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("archive entry %q escapes the destination", rel)
	}
	return target, nil
}

// checkLink rejects symlinks that are absolute or point outside dest.
func checkLink(dest, target, linkname string) error {
	if filepath.IsAbs(linkname) {
		return fmt.Errorf("archive link %s has absolute target %q", target, linkname)
	}
	resolved := filepath.Join(filepath.Dir(target), filepath.FromSlash(linkname))
	r, err := filepath.Rel(dest, resolved)
	if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return fmt.Errorf("archive link %s points outside the destination", target)
	}
	return nil
}

func writeEntry(r io.Reader, target string, mode os.FileMode) error {
	if mode == 0 {
		mode = 0644
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", target, err)
	}
	if err := platform.PrepareOverwrite(target); err != nil {
		return fmt.Errorf("replacing %s: %w", target, err)
	}

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("creating %s: %w", target, err)
	}
	if _, err := io.Copy(out, r); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", target, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", target, err)
	}

	// OpenFile keeps the mode of a file that already existed.
	return platform.Chmod(target, mode)
}
