// Package findings collects the violations reported by lint rules and schema
// validation during a single run.
package findings

import "fmt"

// Severity represents the severity level of a violation.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Violation is a single problem found in a label set.
type Violation struct {
	// Rule identifies the check that produced the violation.
	Rule string
	// Key is the offending label key, empty for set-wide problems.
	Key      string
	Message  string
	Severity Severity
}

func (v Violation) String() string {
	return fmt.Sprintf("[%s] %s", v.Rule, v.Message)
}

func Warning(rule, key, message string) Violation {
	return Violation{Rule: rule, Key: key, Message: message, Severity: SeverityWarning}
}

func Error(rule, key, message string) Violation {
	return Violation{Rule: rule, Key: key, Message: message, Severity: SeverityError}
}

// Sink receives the console lines a Collector produces.
type Sink interface {
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Collector accumulates violations for one invocation. It is not safe for
// concurrent use.
type Collector struct {
	sink       Sink
	violations []Violation
	errors     int
	warnings   int
}

// NewCollector returns a Collector printing to sink. A nil sink discards
// output.
func NewCollector(sink Sink) *Collector {
	return &Collector{sink: sink}
}

// Begin announces the check about to run.
func (c *Collector) Begin(description string) {
	if c.sink != nil {
		c.sink.Info("%s", description)
	}
}

// Add records v and prints it.
func (c *Collector) Add(v Violation) {
	c.violations = append(c.violations, v)

	switch v.Severity {
	case SeverityError:
		c.errors++
		if c.sink != nil {
			c.sink.Error("%s", v.Message)
		}
	default:
		c.warnings++
		if c.sink != nil {
			c.sink.Warn("%s", v.Message)
		}
	}
}

// Violations returns the recorded violations in report order.
func (c *Collector) Violations() []Violation {
	out := make([]Violation, len(c.violations))
	copy(out, c.violations)
	return out
}

// HasErrors reports whether any Error severity violation was recorded.
func (c *Collector) HasErrors() bool {
	return c.errors > 0
}

func (c *Collector) Counts() (errors, warnings int) {
	return c.errors, c.warnings
}

// Summary renders the totals, e.g. "1 error(s), 2 warning(s)".
func (c *Collector) Summary() string {
	return fmt.Sprintf("%d error(s), %d warning(s)", c.errors, c.warnings)
}
