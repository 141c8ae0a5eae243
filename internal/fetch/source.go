package fetch

import (
	"fmt"
	"strings"
)

// Source identifies a template: a GitHub repository, an optional
// subdirectory within it, and an optional ref (branch, tag, or commit).
type Source struct {
	Owner  string
	Repo   string
	Subdir string
	Ref    string
}

// ParseSource accepts the identifiers degit understands for GitHub:
//
//	owner/repo
//	owner/repo#ref
//	owner/repo/sub/dir#ref
//	github:owner/repo
//	https://github.com/owner/repo(.git)
//	git@github.com:owner/repo.git
func ParseSource(s string) (Source, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Source{}, fmt.Errorf("empty template source")
	}

	var src Source
	if i := strings.LastIndex(raw, "#"); i >= 0 {
		src.Ref = raw[i+1:]
		raw = raw[:i]
		if src.Ref == "" {
			return Source{}, fmt.Errorf("invalid template source %q: empty ref after '#'", s)
		}
	}

	for _, prefix := range []string{"github:", "https://github.com/", "http://github.com/", "git@github.com:", "github.com/"} {
		if strings.HasPrefix(raw, prefix) {
			raw = strings.TrimPrefix(raw, prefix)
			break
		}
	}
	if strings.Contains(raw, "://") || strings.HasPrefix(raw, "git@") {
		return Source{}, fmt.Errorf("unsupported template host in %q: only GitHub sources are supported", s)
	}

	parts := strings.Split(strings.Trim(raw, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Source{}, fmt.Errorf("invalid template source %q: expected owner/repo", s)
	}

	src.Owner = parts[0]
	src.Repo = strings.TrimSuffix(parts[1], ".git")
	if len(parts) > 2 {
		src.Subdir = strings.Join(parts[2:], "/")
	}
	for _, p := range parts[2:] {
		if p == ".." || p == "." || p == "" {
			return Source{}, fmt.Errorf("invalid subdirectory in template source %q", s)
		}
	}

	return src, nil
}

// String renders the source in its short owner/repo[/subdir][#ref] form.
func (s Source) String() string {
	out := s.Owner + "/" + s.Repo
	if s.Subdir != "" {
		out += "/" + s.Subdir
	}
	if s.Ref != "" {
		out += "#" + s.Ref
	}
	return out
}
