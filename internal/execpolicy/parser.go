package execpolicy

import (
	"fmt"

	"go.starlark.net/starlark"
)

// Policy sources are Starlark files. A source calls define_program once per
// program; plain strings inside args are literal matchers, flag("-x") builds
// a flag matcher, and the ARG_* constants name the file/untyped matchers.

// ParseError reports a failure to parse a policy source.
type ParseError struct {
	File    string
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// matcherValue wraps an ArgMatcher as an immutable Starlark value so policy
// sources can place matchers directly in args lists.
type matcherValue struct {
	m ArgMatcher
}

func (v matcherValue) String() string        { return v.m.String() }
func (v matcherValue) Type() string          { return "arg_matcher" }
func (v matcherValue) Freeze()               {}
func (v matcherValue) Truth() starlark.Bool  { return starlark.True }
func (v matcherValue) Hash() (uint32, error) { return starlark.String(v.m.String()).Hash() }

// ParsePolicy executes a Starlark policy source and returns the resulting
// table. All spec validation (single vararg, absolute paths, duplicates)
// happens here, at construction time, never per check.
func ParsePolicy(filename, source string) (*Policy, error) {
	policy := NewPolicy()

	defineProgram := starlark.NewBuiltin("define_program", func(
		_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		var (
			program  string
			argsVal  *starlark.List
			pathsVal *starlark.List
		)
		if err := starlark.UnpackArgs(fn.Name(), args, kwargs,
			"program", &program,
			"args", &argsVal,
			"system_path", &pathsVal,
		); err != nil {
			return nil, err
		}

		patterns, err := patternsFromStarlark(argsVal)
		if err != nil {
			return nil, fmt.Errorf("program %q: %w", program, err)
		}
		paths, err := stringsFromStarlark(pathsVal)
		if err != nil {
			return nil, fmt.Errorf("program %q: %w", program, err)
		}

		spec, err := NewProgramSpec(program, patterns, paths)
		if err != nil {
			return nil, err
		}
		if err := policy.AddSpec(spec); err != nil {
			return nil, err
		}
		return starlark.None, nil
	})

	flagMatcher := starlark.NewBuiltin("flag", func(
		_ *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple,
	) (starlark.Value, error) {
		var name string
		if err := starlark.UnpackArgs(fn.Name(), args, kwargs, "name", &name); err != nil {
			return nil, err
		}
		if len(name) < 2 || name[0] != '-' {
			return nil, fmt.Errorf("flag name %q must start with '-'", name)
		}
		return matcherValue{Flag(name)}, nil
	})

	predeclared := starlark.StringDict{
		"define_program": defineProgram,
		"flag":           flagMatcher,
		"ARG_RFILE":      matcherValue{ReadableFile},
		"ARG_RFILES":     matcherValue{ReadableFiles},
		"ARG_WFILE":      matcherValue{WriteableFile},
		"ARG_WFILES":     matcherValue{WriteableFiles},
		"ARG_ANY":        matcherValue{UntypedArg},
		"ARG_ANYS":       matcherValue{UntypedArgs},
	}

	thread := &starlark.Thread{Name: filename}
	if _, err := starlark.ExecFile(thread, filename, source, predeclared); err != nil {
		return nil, &ParseError{
			File:    filename,
			Message: fmt.Sprintf("policy parse error: %v", err),
			Cause:   err,
		}
	}

	return policy, nil
}

// patternsFromStarlark converts an args list into an ordered matcher
// pattern. Strings become literal matchers; everything else must be a
// matcher value.
func patternsFromStarlark(list *starlark.List) ([]ArgMatcher, error) {
	pattern := make([]ArgMatcher, 0, list.Len())

	iter := list.Iterate()
	defer iter.Done()
	var val starlark.Value
	for iter.Next(&val) {
		switch v := val.(type) {
		case starlark.String:
			s := string(v)
			if s == "" {
				return nil, fmt.Errorf("literal pattern token must not be empty")
			}
			pattern = append(pattern, Literal(s))
		case matcherValue:
			pattern = append(pattern, v.m)
		default:
			return nil, fmt.Errorf("pattern element must be a string or matcher, got %s", val.Type())
		}
	}

	return pattern, nil
}

func stringsFromStarlark(list *starlark.List) ([]string, error) {
	result := make([]string, 0, list.Len())
	iter := list.Iterate()
	defer iter.Done()
	var val starlark.Value
	for iter.Next(&val) {
		s, ok := val.(starlark.String)
		if !ok {
			return nil, fmt.Errorf("expected string, got %s", val.Type())
		}
		result = append(result, string(s))
	}
	return result, nil
}
