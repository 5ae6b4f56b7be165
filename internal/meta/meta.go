package meta

import (
	"fmt"
)

var (
	// Version is the semantic version of nlconv.
	// This value is injected at build time via ldflags.
	Version = "HEAD"

	// Commit is the git commit hash.
	// This value is injected at build time via ldflags.
	Commit = "UNKNOWN"
)

// VersionString returns version line for `nlconv --version`.
func VersionString() string {
	return fmt.Sprintf("nlconv version %s (%s)", Version, Commit)
}
