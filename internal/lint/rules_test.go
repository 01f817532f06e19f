// Tests in this file cover each naming convention rule in isolation.
package lint

import (
	"testing"

	"github.com/0xa1bed0/dli/internal/findings"
	"github.com/0xa1bed0/dli/internal/labels"
)

func setOf(keys ...string) *labels.Set {
	s := labels.NewSet()
	for _, k := range keys {
		s.Set(k, "value")
	}
	return s
}

type ruleCase struct {
	key     string
	want    int
	message string
}

func runRuleCases(t *testing.T, rule Rule, severity findings.Severity, cases []ruleCase) {
	t.Helper()

	for _, tc := range cases {
		got := rule.Check(setOf(tc.key))
		if len(got) != tc.want {
			t.Fatalf("%s(%q): got %d violations, want %d: %+v", rule.Name(), tc.key, len(got), tc.want, got)
		}
		if tc.want == 0 {
			continue
		}
		v := got[0]
		if v.Severity != severity {
			t.Fatalf("%s(%q): severity %v, want %v", rule.Name(), tc.key, v.Severity, severity)
		}
		if v.Key != tc.key {
			t.Fatalf("%s(%q): key %q", rule.Name(), tc.key, v.Key)
		}
		if v.Rule != rule.Name() {
			t.Fatalf("%s(%q): rule %q", rule.Name(), tc.key, v.Rule)
		}
		if tc.message != "" && v.Message != tc.message {
			t.Fatalf("%s(%q): message %q, want %q", rule.Name(), tc.key, v.Message, tc.message)
		}
	}
}

func TestNamespacedLabels(t *testing.T) {
	t.Parallel()

	runRuleCases(t, NamespacedLabels(), findings.SeverityWarning, []ruleCase{
		{key: "badkey", want: 1, message: "Label 'badkey' should use a namespace based on reverse DNS notation"},
		{key: "com.example", want: 1},
		{key: "", want: 1},
		{key: "com.example.version", want: 0},
		{key: "a.b.c.d", want: 0},
	})
}

func TestReservedNamespaces(t *testing.T) {
	t.Parallel()

	runRuleCases(t, ReservedNamespacesRule(), findings.SeverityError, []ruleCase{
		{key: "com.docker.foo", want: 1, message: "Label 'com.docker' is reserved for internal use"},
		{key: "io.docker.bar", want: 1, message: "Label 'io.docker' is reserved for internal use"},
		{key: "org.dockerproject.baz", want: 1, message: "Label 'org.dockerproject' is reserved for internal use"},
		{key: "com.dockerhub.thing", want: 1},
		{key: "com.example.docker", want: 0},
		{key: "docker.com.foo", want: 0},
	})
}

func TestValidCharacters(t *testing.T) {
	t.Parallel()

	runRuleCases(t, ValidCharacters(), findings.SeverityError, []ruleCase{
		{key: "com.Example.foo", want: 1, message: "Label 'com.Example.foo' must consist of lower-cased alphanumeric characters, dots and dashes"},
		{key: "com.example.foo_bar", want: 1},
		{key: "com.example.foo bar", want: 1},
		{key: "com.example.héllo", want: 1},
		{key: "", want: 1},
		{key: "com.example.foo-bar", want: 0},
		{key: "-.-", want: 0},
		{key: "0.1.2", want: 0},
	})
}

func TestValidStartAndEnd(t *testing.T) {
	t.Parallel()

	runRuleCases(t, ValidStartAndEnd(), findings.SeverityError, []ruleCase{
		{key: ".com.example.foo", want: 1, message: "Label '.com.example.foo' must start and end with lower-cased alphanumeric characters"},
		{key: "com.example.foo-", want: 1},
		{key: "-com.example.foo.", want: 1},
		{key: "Com.example.foo", want: 1},
		{key: "com.example.fooé", want: 1},
		{key: "", want: 1},
		{key: "a", want: 0},
		{key: "com.example.foo", want: 0},
		{key: "1.Weird_Middle.2", want: 0},
	})
}

func TestConsecutiveDividers(t *testing.T) {
	t.Parallel()

	runRuleCases(t, ConsecutiveDividers(), findings.SeverityError, []ruleCase{
		{key: "com..example.foo", want: 1, message: "Label 'com..example.foo' must not contain consecutive dots or dashes"},
		{key: "com.example.foo--bar", want: 1},
		{key: "com..example--foo", want: 1},
		{key: "com.example.foo-bar", want: 0},
		{key: "com.-example", want: 0},
	})
}
