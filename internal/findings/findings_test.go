// Tests in this file cover violation accumulation and console output.
package findings

import (
	"fmt"
	"reflect"
	"testing"
)

type recordingSink struct {
	lines []string
}

func (r *recordingSink) Info(format string, args ...any) {
	r.lines = append(r.lines, "INFO "+fmt.Sprintf(format, args...))
}

func (r *recordingSink) Warn(format string, args ...any) {
	r.lines = append(r.lines, "WARN "+fmt.Sprintf(format, args...))
}

func (r *recordingSink) Error(format string, args ...any) {
	r.lines = append(r.lines, "ERROR "+fmt.Sprintf(format, args...))
}

func TestCollectorAccumulates(t *testing.T) {
	t.Parallel()

	sink := &recordingSink{}
	c := NewCollector(sink)

	c.Begin("Check things")
	c.Add(Warning("w", "k1", "first"))
	if c.HasErrors() {
		t.Fatal("warnings alone must not fail the run")
	}
	c.Add(Error("e", "k2", "second"))
	c.Add(Warning("w", "k3", "third"))

	if !c.HasErrors() {
		t.Fatal("expected HasErrors after an error violation")
	}
	if errs, warns := c.Counts(); errs != 1 || warns != 2 {
		t.Fatalf("Counts() = (%d, %d), want (1, 2)", errs, warns)
	}
	if got := c.Summary(); got != "1 error(s), 2 warning(s)" {
		t.Fatalf("Summary() = %q", got)
	}

	wantLines := []string{"INFO Check things", "WARN first", "ERROR second", "WARN third"}
	if !reflect.DeepEqual(sink.lines, wantLines) {
		t.Fatalf("lines = %v, want %v", sink.lines, wantLines)
	}

	vs := c.Violations()
	if len(vs) != 3 || vs[1].Key != "k2" || vs[1].Severity != SeverityError {
		t.Fatalf("unexpected violations: %+v", vs)
	}
}

func TestCollectorNilSink(t *testing.T) {
	t.Parallel()

	c := NewCollector(nil)
	c.Begin("silent")
	c.Add(Error("e", "", "boom"))
	if !c.HasErrors() {
		t.Fatal("expected HasErrors")
	}
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	if SeverityWarning.String() != "warning" || SeverityError.String() != "error" {
		t.Fatal("unexpected severity names")
	}
	if Severity(42).String() != "unknown" {
		t.Fatal("expected unknown for out of range severity")
	}
}
