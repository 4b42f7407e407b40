// Package version exposes the poolheat build version.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Build metadata, set with -ldflags "-X github.com/rshade/poolheat/pkg/version.version=1.2.3".
//
//nolint:gochecknoglobals // Populated by the linker at build time.
var (
	version   = "0.1.0-dev"
	gitCommit = ""
	buildDate = ""
)

// GetVersion returns the semantic version without a leading "v".
func GetVersion() string {
	return strings.TrimPrefix(version, "v")
}

// GetGitCommit returns the commit the binary was built from, if known.
func GetGitCommit() string {
	return gitCommit
}

// GetBuildDate returns the build timestamp, if known.
func GetBuildDate() string {
	return buildDate
}

// Info returns a one-line description for --version style output.
// Pre-release and unparseable versions are marked as development builds.
func Info() string {
	s := "poolheat v" + GetVersion()
	if IsDevelopment() {
		s += " (development build)"
	}
	if gitCommit != "" {
		s += " (" + gitCommit + ")"
	}
	if buildDate != "" {
		s += " built " + buildDate
	}
	return s
}

// Parse validates v as a semantic version.
func Parse(v string) (*semver.Version, error) {
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("invalid version %q: %w", v, err)
	}
	return parsed, nil
}

// IsDevelopment reports whether this is a pre-release build.
func IsDevelopment() bool {
	v, err := Parse(GetVersion())
	if err != nil {
		return true
	}
	return v.Prerelease() != ""
}
