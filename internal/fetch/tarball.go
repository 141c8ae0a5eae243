package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"go.uber.org/zap"
)

const (
	githubAPIBase = "https://api.github.com"
	githubGitBase = "https://github.com"
	userAgent     = "greycodejs-cli"
)

// Tarball downloads a repository snapshot from the GitHub API and extracts
// it into the destination.
type Tarball struct {
	opts *options
}

// NewTarball creates a Tarball fetcher.
func NewTarball(opts ...Option) *Tarball {
	return &Tarball{opts: buildOptions(opts)}
}

// URL returns the tarball endpoint for src. An empty ref resolves to the
// repository's default branch.
func (t *Tarball) URL(src Source) string {
	u := fmt.Sprintf("%s/repos/%s/%s/tarball", t.opts.apiBase, url.PathEscape(src.Owner), url.PathEscape(src.Repo))
	if src.Ref != "" {
		u += "/" + url.PathEscape(src.Ref)
	}
	return u
}

// Fetch implements Fetcher.
func (t *Tarball) Fetch(ctx context.Context, src Source, dest string) error {
	u := t.URL(src)
	t.opts.log.Debug("downloading template tarball", zap.String("url", u), zap.String("dest", dest))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Cache-Control", "no-cache")
	if t.opts.token != "" {
		req.Header.Set("Authorization", "token "+t.opts.token)
	}

	resp, err := t.opts.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("downloading %s: %w", src, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, src)
	case resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("GitHub API rate limit exceeded. Set GITHUB_TOKEN for higher limits")
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("download of %s returned status %d", src, resp.StatusCode)
	}

	if err := os.MkdirAll(dest, 0755); err != nil {
		return fmt.Errorf("creating destination %s: %w", dest, err)
	}

	n, err := Extract(resp.Body, dest, src.Subdir)
	if err != nil {
		return fmt.Errorf("extracting %s: %w", src, err)
	}
	if n == 0 && src.Subdir != "" {
		return fmt.Errorf("%w: subdirectory %q is empty or missing in %s", ErrNotFound, src.Subdir, src)
	}

	t.opts.log.Debug("template extracted", zap.Int("entries", n))
	return nil
}
