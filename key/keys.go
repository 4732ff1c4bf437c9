// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Parental Controls - these keys hold the limits imposed on playback.
const (
	ParentalMaxQuality = "parental.max_quality"
)

// Playback Preferences - these keys shape stream selection and the external player.
const (
	PlaybackLanguages = "playback.languages"
	Player            = "player.default"
)

// Catalogue Sources - these keys locate the catalogues produced by the extraction tooling.
const (
	SourcesLocalPath = "sources.local.path"
)

// History Tracking - these keys configure the persistence of past selections.
const (
	HistorySaveOnSelect = "history.save_on_select"
)

// Iconography
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
