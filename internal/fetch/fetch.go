package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// ErrNotFound is returned when the template repository or ref does not exist.
var ErrNotFound = errors.New("template not found")

// Fetch modes.
const (
	ModeTarball = "tarball"
	ModeGit     = "git"
)

// Fetcher copies a template into a destination directory.
type Fetcher interface {
	Fetch(ctx context.Context, src Source, dest string) error
}

type options struct {
	httpClient *http.Client
	apiBase    string
	gitBase    string
	token      string
	log        *zap.Logger
}

// Option configures a Fetcher.
type Option func(*options)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

// WithAPIBase overrides the GitHub API base URL used by the tarball fetcher.
func WithAPIBase(base string) Option {
	return func(o *options) {
		o.apiBase = base
	}
}

// WithGitBase overrides the host prefix used to build clone URLs
// ("https://github.com" by default).
func WithGitBase(base string) Option {
	return func(o *options) {
		o.gitBase = base
	}
}

// WithToken sets a GitHub token for authenticated downloads.
func WithToken(token string) Option {
	return func(o *options) {
		o.token = token
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

func buildOptions(opts []Option) *options {
	o := &options{
		httpClient: http.DefaultClient,
		apiBase:    githubAPIBase,
		gitBase:    githubGitBase,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// New returns the Fetcher for mode.
func New(mode string, opts ...Option) (Fetcher, error) {
	switch mode {
	case ModeTarball, "":
		return NewTarball(opts...), nil
	case ModeGit:
		return NewGit(opts...), nil
	default:
		return nil, fmt.Errorf("unknown fetch mode %q: supported modes are %q and %q", mode, ModeTarball, ModeGit)
	}
}
