package scaffold

import "github.com/kculz/greycodejs-cli/internal/branding"

// Identity names the product a scaffold is created for.
type Identity struct {
	// ToolName is the command registered under "bin", e.g. "greycodejs".
	ToolName string
	// DisplayName is used in operator-facing messages, e.g. "GreyCode.js".
	DisplayName string
	// TemplateSource is the template identifier handed to fetch.ParseSource.
	TemplateSource string
	// DefaultDescription answers the description question on blank input.
	DefaultDescription string
}

// DefaultIdentity returns the identity embedded in the branding package.
func DefaultIdentity() Identity {
	return Identity{
		ToolName:           branding.CLIName(),
		DisplayName:        branding.DisplayName(),
		TemplateSource:     branding.TemplateSource(),
		DefaultDescription: branding.DefaultDescription(),
	}
}
