// Package branding provides compile-time identity values for the CLI.
//
// The product name, the command registered in generated manifests, and the
// template repository all live in branding.yaml, which Go's //go:embed bakes
// into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName            string `yaml:"cli_name"`
	DisplayName        string `yaml:"display_name"`
	Description        string `yaml:"description"`
	HomeDir            string `yaml:"home_dir"`
	EnvPrefix          string `yaml:"env_prefix"`
	GitHubRepo         string `yaml:"github_repo"`
	TemplateSource     string `yaml:"template_source"`
	DefaultDescription string `yaml:"default_description"`
	PackageManager     string `yaml:"package_manager"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:            "greycodejs",
			DisplayName:        "GreyCode.js",
			Description:        "GreyCode.js Framework installer",
			HomeDir:            ".greycodejs",
			EnvPrefix:          "GREYCODEJS",
			GitHubRepo:         "kculz/greycodejs-cli",
			TemplateSource:     "kculz/greycodejs",
			DefaultDescription: "A new GreyCode.js project",
			PackageManager:     "npm",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name, which is also the command name
// registered under "bin" in generated manifests (e.g., "greycodejs").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "GreyCode.js").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".greycodejs").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "GREYCODEJS").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" whose releases publish this CLI.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// TemplateSource returns the default template repository ("owner/repo").
func TemplateSource() string { load(); return defaults.TemplateSource }

// DefaultDescription returns the description used when the operator leaves
// the interview answer blank.
func DefaultDescription() string { load(); return defaults.DefaultDescription }

// PackageManager returns the default package manager binary name.
func PackageManager() string { load(); return defaults.PackageManager }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("template") → "GREYCODEJS_TEMPLATE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
