package schema

import (
	"github.com/xeipuuv/gojsonschema"

	"github.com/0xa1bed0/dli/internal/versions"
)

// Extra "format" values a schema may use for label values.
const (
	FormatSemver           = "semver"
	FormatSemverConstraint = "semver-constraint"
)

func init() {
	gojsonschema.FormatCheckers.Add(FormatSemver, semverFormatChecker{})
	gojsonschema.FormatCheckers.Add(FormatSemverConstraint, semverConstraintFormatChecker{})
}

// Formats only constrain strings; other types pass.
type semverFormatChecker struct{}

func (semverFormatChecker) IsFormat(input any) bool {
	s, ok := input.(string)
	if !ok {
		return true
	}
	return versions.IsSemver(s)
}

type semverConstraintFormatChecker struct{}

func (semverConstraintFormatChecker) IsFormat(input any) bool {
	s, ok := input.(string)
	if !ok {
		return true
	}
	return versions.IsConstraint(s)
}
