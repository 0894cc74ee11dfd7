package tui

import "fmt"

// BuildInfo holds build-time metadata for display in the TUI.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// Short returns the version with an abbreviated commit, e.g. "v1.2.0 (abc1234)".
func (b BuildInfo) Short() string {
	if b.Version == "" {
		return ""
	}
	if len(b.Commit) >= 7 {
		return fmt.Sprintf("%s (%s)", b.Version, b.Commit[:7])
	}
	return b.Version
}
