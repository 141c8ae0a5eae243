package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const githubAPIBase = "https://api.github.com"

// LatestRelease fetches the newest published release of the CLI.
func (u *Updater) LatestRelease(ctx context.Context) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", u.apiBase, u.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "greycodejs-cli")
	if u.token != "" {
		req.Header.Set("Authorization", "token "+u.token)
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching latest release: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("no releases published for %s", u.repo)
	case resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("GitHub API rate limit exceeded. Set GITHUB_TOKEN for higher limits")
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("parsing release JSON: %w", err)
	}
	if release.TagName == "" {
		return nil, fmt.Errorf("release for %s has no tag", u.repo)
	}
	return &release, nil
}
