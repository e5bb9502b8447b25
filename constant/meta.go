// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Mugiwara is the canonical application identifier used for filesystem paths and CLI branding.
	Mugiwara = "mugiwara"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is the default HTTP User-Agent string used for network requests to hosting sites.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	// SiteExtension is the file extension of custom site definitions.
	SiteExtension = ".toml"
)

// Build metadata, injected with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
