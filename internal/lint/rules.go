package lint

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/0xa1bed0/dli/internal/findings"
)

// ReservedNamespaces are prefixes Docker keeps for its own labels.
var ReservedNamespaces = []string{"com.docker", "io.docker", "org.dockerproject"}

var (
	validKeyPattern     = regexp.MustCompile(`^[a-z0-9-.]+$`)
	alphanumericPattern = regexp.MustCompile(`^[a-z0-9]$`)
)

// NamespacedLabels warns about keys without a reverse DNS prefix such as
// com.example.some-label.
func NamespacedLabels() Rule {
	return KeyRule("namespaced-labels", "Check all labels have namespaces", findings.SeverityWarning,
		func(key string) (string, bool) {
			if strings.Count(key, ".") < 2 {
				return fmt.Sprintf("Label '%s' should use a namespace based on reverse DNS notation", key), true
			}
			return "", false
		})
}

// ReservedNamespacesRule rejects keys in the com.docker.*, io.docker.* and
// org.dockerproject.* namespaces. The message names the reservation that
// matched, not the key.
func ReservedNamespacesRule() Rule {
	return KeyRule("reserved-namespaces", "Check labels don't use reserved namespaces", findings.SeverityError,
		func(key string) (string, bool) {
			for _, reservation := range ReservedNamespaces {
				if strings.HasPrefix(key, reservation) {
					return fmt.Sprintf("Label '%s' is reserved for internal use", reservation), true
				}
			}
			return "", false
		})
}

// ValidCharacters requires keys made only of [a-z0-9-.].
func ValidCharacters() Rule {
	return KeyRule("valid-characters", "Check labels only use valid characters", findings.SeverityError,
		func(key string) (string, bool) {
			if !validKeyPattern.MatchString(key) {
				return fmt.Sprintf("Label '%s' must consist of lower-cased alphanumeric characters, dots and dashes", key), true
			}
			return "", false
		})
}

// ValidStartAndEnd requires keys to start and end with [a-z0-9]. An empty
// key fails.
func ValidStartAndEnd() Rule {
	return KeyRule("valid-start-and-end", "Check labels start and end with alphanumeric characters", findings.SeverityError,
		func(key string) (string, bool) {
			if key == "" || !isAlphanumeric(firstRune(key)) || !isAlphanumeric(lastRune(key)) {
				return fmt.Sprintf("Label '%s' must start and end with lower-cased alphanumeric characters", key), true
			}
			return "", false
		})
}

// ConsecutiveDividers rejects keys containing ".." or "--".
func ConsecutiveDividers() Rule {
	return KeyRule("consecutive-dividers", "Check labels for double dots and dashes", findings.SeverityError,
		func(key string) (string, bool) {
			if strings.Contains(key, "..") || strings.Contains(key, "--") {
				return fmt.Sprintf("Label '%s' must not contain consecutive dots or dashes", key), true
			}
			return "", false
		})
}

func isAlphanumeric(s string) bool {
	return alphanumericPattern.MatchString(s)
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}

func lastRune(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return ""
	}
	return string(r[len(r)-1])
}
