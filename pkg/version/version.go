package version

import "fmt"

// Set at build time via -ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// String returns a human readable version summary.
func String() string {
	return fmt.Sprintf("dartpad %s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
