// Package version provides build-time version information for bibstr.
package version

// These variables are set at build time via ldflags, e.g.
// -X github.com/open-cli-collective/bibstr/internal/version.Version=v1.2.0
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
