// Package version holds build metadata injected via -ldflags.
package version

import "fmt"

var (
	// Version is the current application version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
	// BuildTime is the build timestamp
	BuildTime = "unknown"
)

// String returns a single-line summary of the build metadata.
func String() string {
	return fmt.Sprintf("magcavity %s (%s, built %s)", Version, GitSHA, BuildTime)
}
