package lint

import (
	"github.com/0xa1bed0/dli/internal/findings"
	"github.com/0xa1bed0/dli/internal/labels"
)

// DefaultRules returns the naming convention rules in the order they run.
func DefaultRules() []Rule {
	return []Rule{
		NamespacedLabels(),
		ReservedNamespacesRule(),
		ValidCharacters(),
		ValidStartAndEnd(),
		ConsecutiveDividers(),
	}
}

// Run applies the default rules to set.
func Run(set *labels.Set, c *findings.Collector) {
	RunRules(DefaultRules(), set, c)
}

// RunRules applies every rule to the whole set. A rule never stops the ones
// after it.
func RunRules(rules []Rule, set *labels.Set, c *findings.Collector) {
	for _, rule := range rules {
		c.Begin(rule.Description())
		for _, v := range rule.Check(set) {
			c.Add(v)
		}
	}
}
