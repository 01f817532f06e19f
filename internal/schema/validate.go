// Package schema validates label sets against a JSON Schema document.
package schema

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/xeipuuv/gojsonschema"

	"github.com/0xa1bed0/dli/internal/findings"
	"github.com/0xa1bed0/dli/internal/fsops"
	"github.com/0xa1bed0/dli/internal/labels"
	"github.com/0xa1bed0/dli/internal/logs"
)

// RuleName identifies schema violations in a collector.
const RuleName = "schema"

// ErrSchemaNotFound is returned when the schema path does not name an
// existing file.
var ErrSchemaNotFound = errors.New("schema not found")

// Validator checks label sets against schema files.
type Validator struct {
	ops fsops.OSOps
}

func NewValidator(ops fsops.OSOps) *Validator {
	if ops == nil {
		ops = fsops.DefaultOps()
	}
	return &Validator{ops: ops}
}

// Validate checks set against the schema at schemaPath with the default
// filesystem.
func Validate(set *labels.Set, schemaPath string, c *findings.Collector) error {
	return NewValidator(nil).Validate(set, schemaPath, c)
}

// Validate coerces set and validates it against the schema at schemaPath.
//
// A structural failure is recorded as one Error violation carrying the first
// error gojsonschema reports, ordered by field then message; the rest only reach the debug log. A schema
// that cannot be parsed is recorded the same way. The returned error is
// reserved for a missing or unreadable schema file.
func (v *Validator) Validate(set *labels.Set, schemaPath string, c *findings.Collector) error {
	c.Begin(fmt.Sprintf("Check labels based on schema in '%s'", schemaPath))

	exists, err := fsops.FileExists(v.ops, schemaPath)
	if err != nil {
		return fmt.Errorf("stat schema %s: %w", schemaPath, err)
	}
	if !exists {
		return fmt.Errorf("%w: schema file '%s' not found", ErrSchemaNotFound, schemaPath)
	}

	raw, err := fsops.ReadAll(v.ops, schemaPath)
	if err != nil {
		return fmt.Errorf("read schema %s: %w", schemaPath, err)
	}

	ValidateDocument(set, raw, c)
	return nil
}

// ValidateDocument validates set against an in-memory schema document.
func ValidateDocument(set *labels.Set, schemaDoc []byte, c *findings.Collector) {
	data := Coerce(set)

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaDoc),
		gojsonschema.NewGoLoader(data),
	)
	if err != nil {
		c.Add(findings.Error(RuleName, "", err.Error()))
		return
	}
	if result.Valid() {
		return
	}

	// gojsonschema's error order follows map iteration
	errs := slices.Clone(result.Errors())
	slices.SortStableFunc(errs, func(a, b gojsonschema.ResultError) int {
		return cmp.Or(cmp.Compare(a.Field(), b.Field()), cmp.Compare(a.String(), b.String()))
	})
	first := errs[0]
	c.Add(findings.Error(RuleName, fieldKey(first), first.String()))

	for _, rest := range errs[1:] {
		logs.Debugf("additional schema error: %s", rest.String())
	}
}

func fieldKey(e gojsonschema.ResultError) string {
	if f := e.Field(); f != "(root)" {
		return f
	}
	return ""
}
