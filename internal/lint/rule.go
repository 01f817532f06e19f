// Package lint checks label keys against Docker's naming conventions.
package lint

import (
	"github.com/0xa1bed0/dli/internal/findings"
	"github.com/0xa1bed0/dli/internal/labels"
)

// Rule is a single naming convention check.
type Rule interface {
	// Name returns a kebab-case identifier such as "valid-characters".
	Name() string

	// Description is printed before the rule runs.
	Description() string

	// Check returns every violation found in set, in key order.
	Check(set *labels.Set) []findings.Violation
}

// KeyCheckFunc inspects one key. It returns the message to report and true
// when the key violates the rule.
type KeyCheckFunc func(key string) (message string, failed bool)

// KeyRule creates a rule that applies check to every key of the set and
// reports failures with the given severity.
//
//nolint:ireturn // builders return the interface
func KeyRule(name, description string, severity findings.Severity, check KeyCheckFunc) Rule {
	return &keyRule{
		name:        name,
		description: description,
		severity:    severity,
		check:       check,
	}
}

type keyRule struct {
	name        string
	description string
	severity    findings.Severity
	check       KeyCheckFunc
}

func (r *keyRule) Name() string        { return r.name }
func (r *keyRule) Description() string { return r.description }

func (r *keyRule) Check(set *labels.Set) []findings.Violation {
	var out []findings.Violation
	for _, key := range set.Keys() {
		msg, failed := r.check(key)
		if !failed {
			continue
		}
		out = append(out, findings.Violation{
			Rule:     r.name,
			Key:      key,
			Message:  msg,
			Severity: r.severity,
		})
	}
	return out
}
