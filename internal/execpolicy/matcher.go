package execpolicy

import "fmt"

// MatcherKind identifies one variant of the closed ArgMatcher set. Adding a
// kind requires updating every switch in this file, which keeps the matching
// algorithm and the variant set in lockstep.
type MatcherKind int

const (
	// MatcherLiteral requires exact string equality with the declared text.
	MatcherLiteral MatcherKind = iota
	// MatcherFlag requires the argument to equal the declared flag token.
	MatcherFlag
	// MatcherReadableFile accepts any single argument as a file to read.
	MatcherReadableFile
	// MatcherReadableFiles accepts one or more arguments as files to read.
	MatcherReadableFiles
	// MatcherWriteableFile accepts any single argument as a file to write.
	MatcherWriteableFile
	// MatcherWriteableFiles accepts one or more arguments as files to write.
	MatcherWriteableFiles
	// MatcherUntypedArg accepts any single argument with no file semantics.
	MatcherUntypedArg
	// MatcherUntypedArgs accepts one or more arguments with no file semantics.
	MatcherUntypedArgs
)

// Cardinality distinguishes matchers that consume exactly one argv element
// from vararg matchers that consume one or more contiguous elements.
type Cardinality int

const (
	// CardinalitySingle consumes exactly one argument.
	CardinalitySingle Cardinality = iota
	// CardinalityVararg consumes one or more contiguous arguments.
	CardinalityVararg
)

// ArgMatcher is one element of a program's argument pattern. Text is only
// meaningful for literal and flag matchers. The zero value is a literal
// matcher for the empty string; build matchers with the constructors and
// package-level values below.
type ArgMatcher struct {
	Kind MatcherKind
	Text string
}

// Literal returns a matcher requiring the argument to equal text exactly.
func Literal(text string) ArgMatcher {
	return ArgMatcher{Kind: MatcherLiteral, Text: text}
}

// Flag returns a matcher requiring the argument to equal the flag token.
func Flag(name string) ArgMatcher {
	return ArgMatcher{Kind: MatcherFlag, Text: name}
}

// Matchers without per-instance state.
var (
	ReadableFile   = ArgMatcher{Kind: MatcherReadableFile}
	ReadableFiles  = ArgMatcher{Kind: MatcherReadableFiles}
	WriteableFile  = ArgMatcher{Kind: MatcherWriteableFile}
	WriteableFiles = ArgMatcher{Kind: MatcherWriteableFiles}
	UntypedArg     = ArgMatcher{Kind: MatcherUntypedArg}
	UntypedArgs    = ArgMatcher{Kind: MatcherUntypedArgs}
)

// Cardinality reports whether the matcher is singular or vararg.
func (m ArgMatcher) Cardinality() Cardinality {
	switch m.Kind {
	case MatcherReadableFiles, MatcherWriteableFiles, MatcherUntypedArgs:
		return CardinalityVararg
	default:
		return CardinalitySingle
	}
}

// ArgType returns the classification the matcher assigns on a match.
func (m ArgMatcher) ArgType() ArgType {
	switch m.Kind {
	case MatcherLiteral:
		return ArgTypeLiteral
	case MatcherFlag:
		return ArgTypeFlag
	case MatcherReadableFile, MatcherReadableFiles:
		return ArgTypeReadableFile
	case MatcherWriteableFile, MatcherWriteableFiles:
		return ArgTypeWriteableFile
	case MatcherUntypedArg, MatcherUntypedArgs:
		return ArgTypeUntyped
	default:
		return ArgTypeUntyped
	}
}

// match classifies a single argv element at its global index. Literal and
// flag mismatches are hard failures that fail the whole check.
func (m ArgMatcher) match(program string, index int, value string) (MatchedArg, error) {
	switch m.Kind {
	case MatcherLiteral:
		if value != m.Text {
			return MatchedArg{}, &LiteralMismatchError{
				Program:  program,
				Index:    index,
				Expected: m.Text,
				Actual:   value,
			}
		}
	case MatcherFlag:
		if value != m.Text {
			return MatchedArg{}, &FlagMismatchError{
				Program:  program,
				Index:    index,
				Expected: m.Text,
				Actual:   value,
			}
		}
	}
	return MatchedArg{Index: index, Type: m.ArgType(), Value: value}, nil
}

// String returns a compact description used in error messages.
func (m ArgMatcher) String() string {
	switch m.Kind {
	case MatcherLiteral:
		return fmt.Sprintf("literal(%q)", m.Text)
	case MatcherFlag:
		return fmt.Sprintf("flag(%q)", m.Text)
	case MatcherReadableFile:
		return "readable-file"
	case MatcherReadableFiles:
		return "readable-files..."
	case MatcherWriteableFile:
		return "writeable-file"
	case MatcherWriteableFiles:
		return "writeable-files..."
	case MatcherUntypedArg:
		return "untyped"
	case MatcherUntypedArgs:
		return "untyped..."
	default:
		return fmt.Sprintf("ArgMatcher(%d)", int(m.Kind))
	}
}
