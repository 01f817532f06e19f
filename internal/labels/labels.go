// Package labels holds the key/value metadata extracted from a Dockerfile or
// an image, in a stable order.
package labels

import (
	"maps"
	"slices"
)

// Set is an ordered label mapping. Keys are unique; assigning an existing key
// replaces its value but keeps its original position.
type Set struct {
	keys   []string
	values map[string]string
}

func NewSet() *Set {
	return &Set{values: make(map[string]string)}
}

// FromMap builds a Set from an unordered map. Keys are sorted so that
// diagnostics stay reproducible.
func FromMap(m map[string]string) *Set {
	s := NewSet()
	for _, k := range slices.Sorted(maps.Keys(m)) {
		s.Set(k, m[k])
	}
	return s
}

func (s *Set) Set(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

func (s *Set) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (s *Set) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

func (s *Set) Len() int { return len(s.keys) }

// Map returns a copy of the labels as a plain map.
func (s *Set) Map() map[string]string {
	out := make(map[string]string, len(s.values))
	maps.Copy(out, s.values)
	return out
}
