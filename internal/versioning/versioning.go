// Package versioning orders release version strings.
package versioning

import (
	"appcenter-go/internal/cstmerr"
	"strings"

	"github.com/blang/semver"
)

// Parse accepts "1", "1.2", "1.2.3", "v1.2.3" and full semver with
// prerelease/build parts. Missing components are zero.
func Parse(version string) (semver.Version, error) {
	v, err := semver.ParseTolerant(strings.TrimSpace(version))
	if err != nil {
		return semver.Version{}, cstmerr.NewVersionParseError(version, err)
	}
	return v, nil
}

// Compare returns -1, 0 or 1 following semver precedence.
func Compare(a, b string) (int, error) {
	va, err := Parse(a)
	if err != nil {
		return 0, err
	}
	vb, err := Parse(b)
	if err != nil {
		return 0, err
	}
	return va.Compare(vb), nil
}

// IsNewer reports whether candidate is strictly greater than current.
// Equal versions are not newer.
func IsNewer(candidate, current string) (bool, error) {
	c, err := Compare(candidate, current)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}
