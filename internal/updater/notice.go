package updater

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/kculz/greycodejs-cli/internal/branding"
	"github.com/kculz/greycodejs-cli/internal/style"
)

// Check fetches the latest release, records the result in configDir, and
// returns it.
func (u *Updater) Check(ctx context.Context, configDir string) (*VersionCache, error) {
	release, err := u.LatestRelease(ctx)
	if err != nil {
		return nil, err
	}
	available, err := IsUpdateAvailable(u.currentVersion, release.TagName)
	if err != nil {
		return nil, err
	}
	cache := &VersionCache{
		LatestVersion:   release.TagName,
		CurrentVersion:  u.currentVersion,
		CheckedAt:       time.Now(),
		UpdateAvailable: available,
	}
	if err := SaveCache(configDir, cache); err != nil {
		return cache, err
	}
	return cache, nil
}

// Notify prints the cached update notice, if any, and returns a channel that
// closes once a stale cache has been refreshed in the background. Unreleased
// builds never check.
func (u *Updater) Notify(ctx context.Context, w io.Writer, configDir string) <-chan struct{} {
	done := make(chan struct{})
	if !IsRelease(u.currentVersion) {
		close(done)
		return done
	}

	cache, err := LoadCache(configDir)
	if err == nil && cache != nil && cache.CurrentVersion == u.currentVersion && cache.UpdateAvailable {
		PrintNotice(w, cache.CurrentVersion, cache.LatestVersion)
	}

	if !IsCacheStale(cache, u.currentVersion, DefaultCacheMaxAge) {
		close(done)
		return done
	}
	go func() {
		defer close(done)
		_, _ = u.Check(ctx, configDir)
	}()
	return done
}

// PrintNotice writes the update notice to w.
func PrintNotice(w io.Writer, current, latest string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, style.Warning.Render(fmt.Sprintf("Update available: %s -> %s", current, latest)))
	fmt.Fprintln(w, style.Dim.Render(fmt.Sprintf("    Download it from https://github.com/%s/releases/latest", branding.GitHubRepo())))
	fmt.Fprintln(w)
}
