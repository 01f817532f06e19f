// Package dockerfile reads Dockerfiles and resolves the labels the final
// image would carry.
package dockerfile

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/moby/buildkit/frontend/dockerfile/command"
	"github.com/moby/buildkit/frontend/dockerfile/parser"
	"github.com/moby/buildkit/frontend/dockerfile/shell"

	"github.com/0xa1bed0/dli/internal/fsops"
	"github.com/0xa1bed0/dli/internal/labels"
	"github.com/0xa1bed0/dli/internal/logs"
)

// ErrDescriptorNotFound is returned when the Dockerfile path does not name an
// existing file.
var ErrDescriptorNotFound = errors.New("dockerfile not found")

// ExtractLabels reads the Dockerfile at path and returns the labels of its
// final stage.
func ExtractLabels(path string) (*labels.Set, error) {
	return ExtractLabelsWithOps(path, fsops.DefaultOps())
}

// ExtractLabelsWithOps is ExtractLabels with the file system access supplied
// by ops.
func ExtractLabelsWithOps(path string, ops fsops.OSOps) (*labels.Set, error) {
	exists, err := fsops.FileExists(ops, path)
	if err != nil {
		return nil, fmt.Errorf("stat dockerfile %s: %w", path, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: can't open Dockerfile at '%s'", ErrDescriptorNotFound, path)
	}

	f, err := ops.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dockerfile %s: %w", path, err)
	}
	defer f.Close()

	set, err := ParseLabels(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logs.Debugf("extracted %d labels from %s", set.Len(), path)
	return set, nil
}

// ParseLabels parses Dockerfile content and resolves its labels.
//
// LABEL instructions accumulate with later assignments replacing earlier
// ones. FROM starts a new stage and discards everything collected so far.
// Keys and values are unquoted and variable references are expanded from the
// ARG and ENV values in scope, the same way a build would.
func ParseLabels(r io.Reader) (*labels.Set, error) {
	res, err := parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse dockerfile: %w", err)
	}

	lex := shell.NewLex(res.EscapeToken)
	sc := newScope()

	for _, node := range res.AST.Children {
		// the parser keeps the keyword as written
		switch strings.ToLower(node.Value) {
		case command.From:
			sc.enterStage()

		case command.Arg:
			for n := node.Next; n != nil; n = n.Next {
				name, value, hasValue := splitArg(n.Value)
				if hasValue {
					expanded, err := expand(lex, value, sc)
					if err != nil {
						return nil, lineError(node, err)
					}
					value = expanded
				}
				sc.declareArg(name, value, hasValue)
			}

		case command.Env:
			// every pair sees the values from before the instruction
			pairs := keyValuePairs(node)
			resolved := make([][2]string, 0, len(pairs))
			for _, kv := range pairs {
				key, value, err := expandPair(lex, kv, sc)
				if err != nil {
					return nil, lineError(node, err)
				}
				resolved = append(resolved, [2]string{key, value})
			}
			for _, kv := range resolved {
				sc.setEnv(kv[0], kv[1])
			}

		case command.Label:
			for _, kv := range keyValuePairs(node) {
				key, value, err := expandPair(lex, kv, sc)
				if err != nil {
					return nil, lineError(node, err)
				}
				sc.labels.Set(key, value)
			}
		}
	}

	return sc.labels, nil
}

// keyValuePairs walks the key, value, separator node triplets the parser
// produces for LABEL and ENV.
func keyValuePairs(node *parser.Node) [][2]string {
	var out [][2]string
	n := node.Next
	for n != nil && n.Next != nil {
		out = append(out, [2]string{n.Value, n.Next.Value})
		sep := n.Next.Next
		if sep == nil {
			break
		}
		n = sep.Next
	}
	return out
}

func expandPair(lex *shell.Lex, kv [2]string, env shell.EnvGetter) (string, string, error) {
	key, err := expand(lex, kv[0], env)
	if err != nil {
		return "", "", err
	}
	value, err := expand(lex, kv[1], env)
	if err != nil {
		return "", "", err
	}
	return key, value, nil
}

func expand(lex *shell.Lex, word string, env shell.EnvGetter) (string, error) {
	out, _, err := lex.ProcessWord(word, env)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", word, err)
	}
	return out, nil
}

func lineError(node *parser.Node, err error) error {
	return fmt.Errorf("line %d: %w", node.StartLine, err)
}
