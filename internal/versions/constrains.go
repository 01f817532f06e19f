package versions

import "github.com/Masterminds/semver/v3"

// IsConstraint reports whether c parses as a version constraint such as
// ">=1.2 <2", "^18.12.1" or "~20 || >=22".
func IsConstraint(c string) bool {
	_, err := semver.NewConstraint(c)
	return err == nil
}
