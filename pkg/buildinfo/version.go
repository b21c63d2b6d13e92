// Package buildinfo exposes the version stamped into the binary.
//
// Release builds override the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/vizier/pkg/buildinfo.Version=v1.2.3 \
//	    -X github.com/matzehuels/vizier/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/vizier/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Unstamped builds fall back to the VCS revision recorded by the Go
// toolchain when one is available.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version is the semantic version, "dev" for unstamped builds.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp in RFC 3339 form.
	Date = "unknown"
)

func init() {
	if Commit != "none" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			Commit = s.Value
			return
		}
	}
}

// Template returns the cobra version template, one line per field.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
