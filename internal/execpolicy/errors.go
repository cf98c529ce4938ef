package execpolicy

import (
	"fmt"
	"strings"
)

// Every rejection is a typed, recoverable value carrying enough of the
// original request to reproduce the failure in a test or a log line.

// UnknownProgramError reports a program with no entry in the policy table.
type UnknownProgramError struct {
	Program string
}

func (e *UnknownProgramError) Error() string {
	return fmt.Sprintf("no policy for program %q", e.Program)
}

// NotEnoughArgsError reports an invocation with fewer arguments than the
// pattern requires. ArgPatterns is the full declared pattern, with any
// vararg matcher included as a single entry.
type NotEnoughArgsError struct {
	Program     string
	Args        []string
	ArgPatterns []ArgMatcher
}

func (e *NotEnoughArgsError) Error() string {
	return fmt.Sprintf("%s: %d argument(s) supplied, fewer than pattern [%s] requires",
		e.Program, len(e.Args), patternString(e.ArgPatterns))
}

// TooManyArgsError reports an invocation with more arguments than a pattern
// without a vararg matcher can consume.
type TooManyArgsError struct {
	Program     string
	Args        []string
	ArgPatterns []ArgMatcher
}

func (e *TooManyArgsError) Error() string {
	return fmt.Sprintf("%s: %d argument(s) supplied, more than pattern [%s] accepts",
		e.Program, len(e.Args), patternString(e.ArgPatterns))
}

// VarargMatcherDidNotMatchAnythingError reports that the fixed matchers
// claimed every supplied argument, leaving the vararg matcher nothing to
// consume. A vararg matcher must match at least one argument.
type VarargMatcherDidNotMatchAnythingError struct {
	Program string
	Matcher ArgMatcher
}

func (e *VarargMatcherDidNotMatchAnythingError) Error() string {
	return fmt.Sprintf("%s: vararg matcher %s matched no arguments", e.Program, e.Matcher)
}

// LiteralMismatchError reports an argument that failed exact-equality
// against a literal matcher.
type LiteralMismatchError struct {
	Program  string
	Index    int
	Expected string
	Actual   string
}

func (e *LiteralMismatchError) Error() string {
	return fmt.Sprintf("%s: argument %d must be %q, got %q", e.Program, e.Index, e.Expected, e.Actual)
}

// FlagMismatchError reports an argument that did not equal the required
// flag token.
type FlagMismatchError struct {
	Program  string
	Index    int
	Expected string
	Actual   string
}

func (e *FlagMismatchError) Error() string {
	return fmt.Sprintf("%s: expected flag %q at argument %d, got %q", e.Program, e.Expected, e.Index, e.Actual)
}

func patternString(patterns []ArgMatcher) string {
	parts := make([]string, len(patterns))
	for i, m := range patterns {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
