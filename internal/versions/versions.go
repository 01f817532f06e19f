// Package versions offers semantic version checks used as schema formats.
package versions

import (
	"github.com/Masterminds/semver/v3"
)

// IsSemver reports whether v is a strict semantic version such as 1.2.3 or
// 2.0.0-rc.1+build.5. Partial versions and a "v" prefix are rejected.
func IsSemver(v string) bool {
	_, err := semver.StrictNewVersion(v)
	return err == nil
}
