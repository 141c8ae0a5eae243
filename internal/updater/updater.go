package updater

import (
	"net/http"
	"time"

	"github.com/kculz/greycodejs-cli/internal/branding"
)

// Release is the subset of a GitHub release the version check needs.
type Release struct {
	TagName   string    `json:"tag_name"`
	HTMLURL   string    `json:"html_url"`
	Published time.Time `json:"published_at"`
}

// Updater checks GitHub Releases for a version newer than the running one.
type Updater struct {
	currentVersion string
	httpClient     *http.Client
	apiBase        string
	repo           string
	token          string
}

// Option configures an Updater.
type Option func(*Updater)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(u *Updater) {
		u.httpClient = c
	}
}

// WithAPIBase overrides the GitHub API base URL.
func WithAPIBase(base string) Option {
	return func(u *Updater) {
		u.apiBase = base
	}
}

// WithToken sets a GitHub token for higher rate limits.
func WithToken(token string) Option {
	return func(u *Updater) {
		u.token = token
	}
}

// New creates an Updater for currentVersion.
func New(currentVersion string, opts ...Option) *Updater {
	u := &Updater{
		currentVersion: currentVersion,
		httpClient:     &http.Client{Timeout: 5 * time.Second},
		apiBase:        githubAPIBase,
		repo:           branding.GitHubRepo(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CurrentVersion returns the version this updater was created with.
func (u *Updater) CurrentVersion() string {
	return u.currentVersion
}
