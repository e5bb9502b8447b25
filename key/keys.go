// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Site Selection - these keys manage which hosting site definitions are used.
const (
	SitesDefault = "sites.default"
)

// Search Interaction - these keys define how catalogue lookups are issued.
const (
	SearchDub                  = "search.dub"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Provider Diagnostics - per-component logging of the resolution pipeline.
const (
	ProviderVerbose = "provider.verbose"
)

// Network Transport - these keys tune the HTTP fetchers used by every pipeline stage.
const (
	NetworkTimeout        = "network.timeout"
	NetworkProxy          = "network.proxy"
	NetworkTLSFingerprint = "network.tls_fingerprint"
	NetworkUserAgent      = "network.user_agent"
)

// Playback - the external player resolved streams are handed to.
const (
	PlayerBinary = "player.binary"
)

// Terminal User Interface - the default interactive picker of "watch".
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUISearchPromptString = "tui.search_prompt"
	TUIShowURLs           = "tui.show_urls"
	TUIMini               = "tui.mini"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-interactive behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
	IconsVariant    = "icons.variant"
)
