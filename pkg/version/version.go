// Package version identifies SDK builds.
package version

import (
	"fmt"
	"runtime"
)

// Semantic version of the IQ agent analytics SDK.
const (
	Major = 0
	Minor = 3
	Patch = 0
)

// GitCommit is injected at build time via -ldflags.
var GitCommit = ""

// Version returns the semantic version string.
func Version() string {
	return fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
}

// UserAgent returns the string the SDK reports to the platform and in logs.
func UserAgent() string {
	v := Version()
	if GitCommit != "" && len(GitCommit) >= 7 {
		v += "+" + GitCommit[:7]
	}
	return fmt.Sprintf("iq-agent-analytics/%s (%s; %s/%s)", v, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
