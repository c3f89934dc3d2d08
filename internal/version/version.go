// Package version holds build metadata for rovera11y, injected at build
// time through ldflags:
//
//	-ldflags "-X github.com/wtyler2505/RoverMissionControl-sub002/internal/version.Version=x.y.z"
//
// and likewise for Commit and Date.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version of the application.
	Version = "dev"

	// Commit is the git commit hash of the build.
	Commit = "unknown"

	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

// String returns the full human-readable version line. Build details are
// included only when they were injected.
func String() string {
	platform := fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	if Commit != "unknown" && Date != "unknown" {
		return fmt.Sprintf("rovera11y version %s (commit: %s, built: %s, %s, %s)",
			Version, Commit[:8], Date, runtime.Version(), platform)
	}
	return fmt.Sprintf("rovera11y version %s (%s, %s)", Version, runtime.Version(), platform)
}

// Short returns the bare version string suitable for cobra's --version.
func Short() string {
	return Version
}
