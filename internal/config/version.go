package config

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// CurrentVersion is written to new config files.
const CurrentVersion = "1.0.0"

// SupportedVersions is the range of config file versions this build reads.
const SupportedVersions = ">= 1.0.0, < 2.0.0"

// CheckVersion reports whether a config file version can be read. An empty
// version is treated as CurrentVersion.
func CheckVersion(v string) error {
	if v == "" {
		return nil
	}

	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}

	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing version constraint: %w", err)
	}

	if !constraint.Check(ver) {
		return fmt.Errorf("%w: %s (supported: %s)", ErrUnsupportedVersion, v, SupportedVersions)
	}
	return nil
}
