package updater

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const (
	cacheFileName = "version-check.json"
	// DefaultCacheMaxAge is how long a version check result is trusted.
	DefaultCacheMaxAge = 24 * time.Hour
)

// VersionCache is the last version check result.
type VersionCache struct {
	LatestVersion   string    `json:"latest_version"`
	CurrentVersion  string    `json:"current_version"`
	CheckedAt       time.Time `json:"checked_at"`
	UpdateAvailable bool      `json:"update_available"`
}

// LoadCache reads the cache from configDir. A missing file yields nil, nil.
func LoadCache(configDir string) (*VersionCache, error) {
	data, err := os.ReadFile(filepath.Join(configDir, cacheFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading version cache: %w", err)
	}

	var cache VersionCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("parsing version cache: %w", err)
	}
	return &cache, nil
}

// SaveCache writes cache to configDir, creating the directory if needed.
func SaveCache(configDir string, cache *VersionCache) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling version cache: %w", err)
	}

	// Readers see either the old cache or the new one, never a partial file.
	tmp, err := os.CreateTemp(configDir, cacheFileName+".*")
	if err != nil {
		return fmt.Errorf("writing version cache: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing version cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing version cache: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("writing version cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(configDir, cacheFileName)); err != nil {
		return fmt.Errorf("replacing version cache: %w", err)
	}
	return nil
}

// IsCacheStale reports whether cache is nil, older than maxAge, or was
// recorded by a different CLI version.
func IsCacheStale(cache *VersionCache, current string, maxAge time.Duration) bool {
	if cache == nil || cache.CurrentVersion != current {
		return true
	}
	return time.Since(cache.CheckedAt) > maxAge
}
