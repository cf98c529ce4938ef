package execpolicy

import (
	"fmt"
	"path/filepath"
)

// ProgramSpec is the policy for a single program: an ordered argument
// pattern plus the candidate absolute install paths for its binary (first
// entry canonical). A spec is validated when it is built and immutable
// afterwards.
type ProgramSpec struct {
	Program         string
	ArgPatterns     []ArgMatcher
	ExecutablePaths []string

	// varargIndex is the position of the single vararg matcher within
	// ArgPatterns, or -1 when the pattern is entirely fixed. Validated at
	// construction so Check never has to re-derive it.
	varargIndex int
}

// SpecError reports an invalid program definition.
type SpecError struct {
	Program string
	Message string
}

func (e *SpecError) Error() string {
	if e.Program != "" {
		return fmt.Sprintf("program %q: %s", e.Program, e.Message)
	}
	return e.Message
}

// NewProgramSpec validates and builds a ProgramSpec. The pattern may contain
// at most one vararg matcher, and at least one absolute executable path must
// be declared.
func NewProgramSpec(program string, patterns []ArgMatcher, executablePaths []string) (*ProgramSpec, error) {
	if program == "" {
		return nil, &SpecError{Message: "program name must not be empty"}
	}

	varargIndex := -1
	for i, m := range patterns {
		if m.Cardinality() != CardinalityVararg {
			continue
		}
		if varargIndex >= 0 {
			return nil, &SpecError{
				Program: program,
				Message: fmt.Sprintf("pattern declares more than one vararg matcher (%s and %s)",
					patterns[varargIndex], m),
			}
		}
		varargIndex = i
	}

	if len(executablePaths) == 0 {
		return nil, &SpecError{Program: program, Message: "at least one executable path is required"}
	}
	for _, p := range executablePaths {
		if !filepath.IsAbs(p) {
			return nil, &SpecError{
				Program: program,
				Message: fmt.Sprintf("executable path %q is not absolute", p),
			}
		}
	}

	return &ProgramSpec{
		Program:         program,
		ArgPatterns:     patterns,
		ExecutablePaths: executablePaths,
		varargIndex:     varargIndex,
	}, nil
}

// split returns the fixed prefix, the optional vararg matcher, and the fixed
// suffix of the pattern. With no vararg the prefix is the whole pattern.
func (s *ProgramSpec) split() (prefix []ArgMatcher, vararg *ArgMatcher, suffix []ArgMatcher) {
	if s.varargIndex < 0 {
		return s.ArgPatterns, nil, nil
	}
	return s.ArgPatterns[:s.varargIndex], &s.ArgPatterns[s.varargIndex], s.ArgPatterns[s.varargIndex+1:]
}

// check runs the matching algorithm for one call against this spec.
//
// The pattern splits into prefix / optional vararg / suffix. Prefix matchers
// bind the leading arguments positionally and suffix matchers bind the
// trailing ones, so the vararg receives exactly the middle N-P-S elements:
// greedy, but unambiguous, because only one vararg is permitted per pattern.
func (s *ProgramSpec) check(call ExecCall) (*ValidExec, error) {
	prefix, vararg, suffix := s.split()
	pre, n, suf := len(prefix), len(call.Args), len(suffix)

	switch {
	case n < pre+suf:
		return nil, &NotEnoughArgsError{Program: call.Program, Args: call.Args, ArgPatterns: s.ArgPatterns}
	case vararg == nil && n > pre+suf:
		return nil, &TooManyArgsError{Program: call.Program, Args: call.Args, ArgPatterns: s.ArgPatterns}
	case vararg != nil && n == pre+suf:
		// The fixed matchers claim every argument; the vararg needs at
		// least one.
		return nil, &VarargMatcherDidNotMatchAnythingError{Program: call.Program, Matcher: *vararg}
	}

	matched := make([]MatchedArg, 0, n)
	for i, m := range prefix {
		arg, err := m.match(call.Program, i, call.Args[i])
		if err != nil {
			return nil, err
		}
		matched = append(matched, arg)
	}
	if vararg != nil {
		for i := pre; i < n-suf; i++ {
			arg, err := vararg.match(call.Program, i, call.Args[i])
			if err != nil {
				return nil, err
			}
			matched = append(matched, arg)
		}
	}
	for j, m := range suffix {
		i := n - suf + j
		arg, err := m.match(call.Program, i, call.Args[i])
		if err != nil {
			return nil, err
		}
		matched = append(matched, arg)
	}

	return &ValidExec{
		Program:         call.Program,
		MatchedArgs:     matched,
		ExecutablePaths: s.ExecutablePaths,
	}, nil
}
