// Package build provides build-time information for the CLI application.
// Version is set via ldflags, taken from the module build info, or read from
// the embedded VERSION file, in that order.
package build

import (
	_ "embed"
	"strings"
	"time"

	"github.com/carlmjohnson/versioninfo"
)

//go:embed VERSION
var embeddedVersion string

// version and commit can be overridden via ldflags:
// -X github.com/tacogips/scmver/internal/build.version=x.y.z
var (
	version string
	commit  string
)

// Version returns the application version.
// Priority: ldflags > module version > embedded VERSION file
func Version() string {
	if version != "" {
		return version
	}
	if v := versioninfo.Version; v != "" && v != "unknown" && v != "(devel)" {
		if versioninfo.DirtyBuild {
			v += "-dirty"
		}
		return v
	}
	return strings.TrimSpace(embeddedVersion)
}

// Commit returns the VCS revision the binary was built from, or "unknown".
func Commit() string {
	if commit != "" {
		return commit
	}
	if r := versioninfo.Revision; r != "" {
		return r
	}
	return "unknown"
}

// Dirty reports whether the binary was built from a modified tree.
func Dirty() bool {
	return versioninfo.DirtyBuild
}

// Date returns the time of the last commit in RFC 3339 form, or "unknown".
func Date() string {
	if versioninfo.LastCommit.IsZero() {
		return "unknown"
	}
	return versioninfo.LastCommit.UTC().Format(time.RFC3339)
}
