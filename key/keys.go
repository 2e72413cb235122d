// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Catalog Data - these keys locate the per-category datasets and control their optional memoization.
const (
	DataBase          = "data.base"
	DataCacheEnable   = "data.cache.enable"
	DataCacheLifetime = "data.cache.lifetime"
)

// Search Interaction - these keys define the behavior of free-text search.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
	SearchRememberQueries      = "search.remember_queries"
)

// Browsing - these keys configure the default view over a category.
const (
	BrowseDefaultSort = "browse.default_sort"
	BrowseLatestCount = "browse.latest_count"
)

// HTTP Front-end - these keys configure the `serve` command.
const (
	ServeAddr        = "serve.addr"
	ServeCORSOrigins = "serve.cors_origins"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the interactive browser's styling.
const (
	TUIItemSpacing        = "tui.item_spacing"
	TUISearchPromptString = "tui.search_prompt"
	TUIShowURLs           = "tui.show_urls"
)

// Media Playback - these keys select the external handler for direct media files.
const (
	Player      = "player.default"
	HistorySave = "history.save"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
