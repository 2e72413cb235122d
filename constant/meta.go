// Package constant defines immutable application-level identifiers and catalog defaults.
package constant

const (
	// App is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	App = "boomerplus"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is sent with every dataset request.
	UserAgent = App + "/" + Version
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
