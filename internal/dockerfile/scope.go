package dockerfile

import (
	"maps"
	"slices"
	"strings"

	"github.com/0xa1bed0/dli/internal/labels"
)

// scope tracks the variables visible to the instruction being resolved.
// ARGs declared before the first FROM are global defaults; a stage only sees
// them once it redeclares them.
type scope struct {
	inStage    bool
	globalArgs map[string]string
	args       map[string]string
	env        map[string]string
	labels     *labels.Set
}

func newScope() *scope {
	return &scope{
		globalArgs: make(map[string]string),
		args:       make(map[string]string),
		env:        make(map[string]string),
		labels:     labels.NewSet(),
	}
}

func (s *scope) enterStage() {
	s.inStage = true
	s.args = make(map[string]string)
	s.env = make(map[string]string)
	s.labels = labels.NewSet()
}

// declareArg records an ARG. Without a value of its own and without a global
// default the variable stays unset, so ${NAME-default} falls back.
func (s *scope) declareArg(name, value string, hasValue bool) {
	if !s.inStage {
		if hasValue {
			s.globalArgs[name] = value
		} else {
			delete(s.globalArgs, name)
		}
		return
	}
	if !hasValue {
		global, ok := s.globalArgs[name]
		if !ok {
			delete(s.args, name)
			return
		}
		value = global
	}
	s.args[name] = value
}

func (s *scope) setEnv(key, value string) {
	s.env[key] = value
}

// Get implements shell.EnvGetter. ENV shadows ARG.
func (s *scope) Get(key string) (string, bool) {
	if v, ok := s.env[key]; ok {
		return v, true
	}
	if !s.inStage {
		v, ok := s.globalArgs[key]
		return v, ok
	}
	v, ok := s.args[key]
	return v, ok
}

// Keys implements shell.EnvGetter.
func (s *scope) Keys() []string {
	vars := maps.Clone(s.env)
	args := s.args
	if !s.inStage {
		args = s.globalArgs
	}
	for k, v := range args {
		if _, ok := vars[k]; !ok {
			vars[k] = v
		}
	}
	return slices.Sorted(maps.Keys(vars))
}

func splitArg(word string) (name, value string, hasValue bool) {
	return strings.Cut(word, "=")
}
