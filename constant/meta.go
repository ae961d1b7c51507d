// Package constant defines immutable application-level identifiers and configuration defaults.
package constant

const (
	// Dashbridge is the canonical application identifier used for filesystem paths and CLI branding.
	Dashbridge = "dashbridge"

	// Version is the current application semantic version string.
	Version = "0.1.0"

	// UserAgent is the default HTTP User-Agent string used when probing remote sources.
	UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// Lua Hook Entry Points - these identifiers name the global functions a hook script must define.
const (
	// UpdateSourceFn is the Lua function invoked to rewrite a source descriptor before attachment.
	UpdateSourceFn = "updatesource"
)
