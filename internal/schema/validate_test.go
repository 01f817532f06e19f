// Tests in this file cover schema validation of coerced label sets.
//
// gojsonschema reports every failure it finds; the validator records only the
// first one, ordered by field, as a single Error violation.
package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/0xa1bed0/dli/internal/findings"
	"github.com/0xa1bed0/dli/internal/fsops/mocks"
	"github.com/0xa1bed0/dli/internal/labels"
)

type lineSink struct {
	lines []string
}

func (s *lineSink) Info(format string, args ...any) {
	s.lines = append(s.lines, "INFO "+fmt.Sprintf(format, args...))
}

func (s *lineSink) Warn(format string, args ...any) {
	s.lines = append(s.lines, "WARN "+fmt.Sprintf(format, args...))
}

func (s *lineSink) Error(format string, args ...any) {
	s.lines = append(s.lines, "ERROR "+fmt.Sprintf(format, args...))
}

func setFrom(kv ...string) *labels.Set {
	s := labels.NewSet()
	for i := 0; i+1 < len(kv); i += 2 {
		s.Set(kv[i], kv[i+1])
	}
	return s
}

func TestValidate_IntegerCoercionPasses(t *testing.T) {
	t.Parallel()

	sink := &lineSink{}
	c := findings.NewCollector(sink)
	path := filepath.Join("testdata", "version_schema.json")

	err := Validate(setFrom("com.example.version", "1"), path, c)
	require.NoError(t, err)
	assert.False(t, c.HasErrors())
	assert.Empty(t, c.Violations())
	assert.Equal(t, []string{"INFO Check labels based on schema in '" + path + "'"}, sink.lines)
}

func TestValidate_TypeMismatch(t *testing.T) {
	t.Parallel()

	c := findings.NewCollector(nil)
	err := Validate(setFrom("com.example.version", "abc"), filepath.Join("testdata", "version_schema.json"), c)
	require.NoError(t, err)

	vs := c.Violations()
	require.Len(t, vs, 1)
	assert.Equal(t, findings.SeverityError, vs[0].Severity)
	assert.Equal(t, RuleName, vs[0].Rule)
	assert.Equal(t, "com.example.version", vs[0].Key)
	assert.Contains(t, vs[0].Message, "Expected: integer")
	assert.True(t, c.HasErrors())
}

func TestValidate_MissingRequired(t *testing.T) {
	t.Parallel()

	c := findings.NewCollector(nil)
	err := Validate(setFrom("com.example.other", "1"), filepath.Join("testdata", "version_schema.json"), c)
	require.NoError(t, err)

	vs := c.Violations()
	require.Len(t, vs, 1)
	assert.Contains(t, vs[0].Message, "com.example.version is required")
	assert.Empty(t, vs[0].Key)
}

func TestValidate_ReportsOnlyFirstOfManyErrors(t *testing.T) {
	t.Parallel()

	c := findings.NewCollector(nil)
	set := setFrom(
		"com.example.tier", "database",
		"com.example.owner", "Bob",
		"com.example.replicas", "0",
		"com.example.unexpected", "x",
	)
	err := Validate(set, filepath.Join("testdata", "rich_schema.json"), c)
	require.NoError(t, err)

	assert.Len(t, c.Violations(), 1)
}

func TestValidateDocument_SameErrorOnEveryRun(t *testing.T) {
	t.Parallel()

	doc := []byte(`{
  "type": "object",
  "properties": {
    "com.example.d": {"type": "integer"},
    "com.example.b": {"type": "integer"},
    "com.example.c": {"type": "integer"},
    "com.example.a": {"type": "integer"}
  }
}`)
	set := setFrom(
		"com.example.d", "x",
		"com.example.c", "x",
		"com.example.b", "x",
		"com.example.a", "x",
	)

	for i := 0; i < 50; i++ {
		c := findings.NewCollector(nil)
		ValidateDocument(set, doc, c)

		vs := c.Violations()
		require.Len(t, vs, 1)
		assert.Equal(t, "com.example.a", vs[0].Key, "run %d", i)
		assert.Equal(t, "com.example.a: Invalid type. Expected: integer, given: string", vs[0].Message, "run %d", i)
	}
}

func TestValidate_RichSchemaPasses(t *testing.T) {
	t.Parallel()

	c := findings.NewCollector(nil)
	set := setFrom(
		"com.example.tier", "backend",
		"com.example.owner", "ops@example.com",
		"com.example.replicas", "3",
		"org.opencontainers.image.version", "1.4.0-rc.1",
		"com.example.supports", ">=1.2 <2",
	)
	err := Validate(set, filepath.Join("testdata", "rich_schema.json"), c)
	require.NoError(t, err)
	assert.Empty(t, c.Violations())
}

func TestValidate_Constraints(t *testing.T) {
	t.Parallel()

	base := []string{"com.example.tier", "backend", "org.opencontainers.image.version", "1.0.0"}

	tests := []struct {
		name  string
		extra []string
	}{
		{name: "enum", extra: []string{"com.example.tier", "database"}},
		{name: "pattern", extra: []string{"com.example.owner", "Bob"}},
		{name: "minimum", extra: []string{"com.example.replicas", "0"}},
		{name: "semver format", extra: []string{"org.opencontainers.image.version", "latest"}},
		{name: "semver-constraint format", extra: []string{"com.example.supports", "whenever"}},
		{name: "additional property", extra: []string{"com.example.unexpected", "x"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := findings.NewCollector(nil)
			set := setFrom(append(append([]string{}, base...), tt.extra...)...)
			require.NoError(t, Validate(set, filepath.Join("testdata", "rich_schema.json"), c))
			assert.Len(t, c.Violations(), 1)
		})
	}
}

func TestValidate_BigIntegerIsAnInteger(t *testing.T) {
	t.Parallel()

	c := findings.NewCollector(nil)
	set := setFrom("com.example.version", "123456789012345678901234567890")
	require.NoError(t, Validate(set, filepath.Join("testdata", "version_schema.json"), c))
	assert.Empty(t, c.Violations())
}

func TestValidate_SchemaNotFound(t *testing.T) {
	t.Parallel()

	c := findings.NewCollector(nil)
	err := Validate(setFrom("com.example.version", "1"), filepath.Join(t.TempDir(), "schema.json"), c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemaNotFound))
	assert.Contains(t, err.Error(), "not found")
	assert.Empty(t, c.Violations())
}

func TestValidate_MalformedSchemaDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		schema string
	}{
		{name: "invalid json", schema: "{ invalid json }"},
		{name: "invalid schema keyword", schema: `{"type": 5}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "schema.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.schema), 0o644))

			c := findings.NewCollector(nil)
			require.NoError(t, Validate(setFrom("com.example.version", "1"), path, c))

			vs := c.Violations()
			require.Len(t, vs, 1)
			assert.Equal(t, findings.SeverityError, vs[0].Severity)
			assert.NotEmpty(t, vs[0].Message)
		})
	}
}

type trackingReader struct {
	io.Reader
	closed bool
}

func (r *trackingReader) Close() error {
	r.closed = true
	return nil
}

func TestValidator_ClosesSchemaFile(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	osOps := mocks.NewMockOSOps(ctrl)

	self, err := os.Stat("validate.go")
	require.NoError(t, err)

	rc := &trackingReader{Reader: strings.NewReader(`{"type": "object"}`)}
	gomock.InOrder(
		osOps.EXPECT().Stat("schema.json").Return(self, nil),
		osOps.EXPECT().Open("schema.json").Return(rc, nil),
	)

	c := findings.NewCollector(nil)
	require.NoError(t, NewValidator(osOps).Validate(setFrom("a.b.c", "1"), "schema.json", c))
	assert.True(t, rc.closed)
	assert.Empty(t, c.Violations())
}

func TestValidator_DoesNotReadMissingSchema(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	osOps := mocks.NewMockOSOps(ctrl)
	osOps.EXPECT().Stat("schema.json").Return(nil, fs.ErrNotExist)

	err := NewValidator(osOps).Validate(setFrom("a.b.c", "1"), "schema.json", findings.NewCollector(nil))
	assert.ErrorIs(t, err, ErrSchemaNotFound)
}

func TestScaffoldValidatesItsSource(t *testing.T) {
	t.Parallel()

	set := setFrom("com.example.version", "12", "com.example.name", "app")

	doc := Scaffold(set)
	assert.Equal(t, []string{"com.example.version", "com.example.name"}, doc["required"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"type": "integer"}, props["com.example.version"])
	assert.Equal(t, map[string]any{"type": "string"}, props["com.example.name"])

	raw, err := MarshalScaffold(set)
	require.NoError(t, err)
	require.True(t, json.Valid(raw))

	c := findings.NewCollector(nil)
	ValidateDocument(set, raw, c)
	assert.Empty(t, c.Violations())

	c = findings.NewCollector(nil)
	ValidateDocument(setFrom("com.example.version", "twelve", "com.example.name", "app"), raw, c)
	assert.Len(t, c.Violations(), 1)
}

func TestScaffoldEmptySet(t *testing.T) {
	t.Parallel()

	doc := Scaffold(labels.NewSet())
	_, hasRequired := doc["required"]
	assert.False(t, hasRequired)

	raw, err := MarshalScaffold(labels.NewSet())
	require.NoError(t, err)

	c := findings.NewCollector(nil)
	ValidateDocument(labels.NewSet(), raw, c)
	assert.Empty(t, c.Violations())
}
