package schema

import (
	"encoding/json"

	"github.com/0xa1bed0/dli/internal/labels"
)

const draft07 = "http://json-schema.org/draft-07/schema#"

// Scaffold derives a starting schema from set: an object requiring every
// label, typed integer where the value coerces to one and string otherwise.
func Scaffold(set *labels.Set) map[string]any {
	properties := make(map[string]any, set.Len())

	for key, value := range Coerce(set) {
		typ := "string"
		if _, ok := value.(string); !ok {
			typ = "integer"
		}
		properties[key] = map[string]any{"type": typ}
	}

	doc := map[string]any{
		"$schema":    draft07,
		"type":       "object",
		"properties": properties,
	}
	if set.Len() > 0 {
		doc["required"] = set.Keys()
	}
	return doc
}

// MarshalScaffold renders Scaffold(set) as indented JSON.
func MarshalScaffold(set *labels.Set) ([]byte, error) {
	out, err := json.MarshalIndent(Scaffold(set), "", "  ")
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
