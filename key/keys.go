// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Engine Forwarding - these keys govern which options are forwarded to the playback engine at attach time.
const (
	EngineLimitBitrateByPortal = "engine.limit_bitrate_by_portal"
	EngineStreaming            = "engine.streaming"
	EngineFastSwitch           = "engine.fast_switch_enabled"
	EngineInitialBitrate       = "engine.initial_bitrate"
	EngineBufferTime           = "engine.stable_buffer_time"
)

// Track Selection - these keys configure how mirrored track selections are derived and remembered.
const (
	PrefsRememberLanguage = "prefs.remember_language"
	PrefsAudioLanguage    = "prefs.audio_language"
	PrefsTextLanguage     = "prefs.text_language"
)

// Hook Scripts - these keys configure the loading of external Lua hook scripts.
const (
	HooksLoadScripts = "hooks.load_scripts"
)

// Icons - these keys select the visual variant used for UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the command-line application behavior.
const (
	CliColored      = "cli.colored"
	CliUILanguage   = "cli.ui_language"
	CliVersionCheck = "cli.version_check"
)
