// Package execpolicy decides whether a requested command invocation is
// well-formed under a declared per-program policy before anything is spawned.
//
// The policy table maps program names to ordered argument patterns. Checking
// a call against the table is a pure function of the argument strings and the
// table itself: no filesystem access, no caching, no mutation. The engine
// never executes anything; it returns a typed verdict that callers act on.
// Anything it cannot positively classify as matching is rejected.
package execpolicy

import "fmt"

// ArgType is the semantic classification assigned to a matched argument
// value. It is purely descriptive and carries no filesystem state: an
// argument classified as a readable file may not exist at all.
type ArgType int

const (
	// ArgTypeReadableFile marks an argument the program will read.
	ArgTypeReadableFile ArgType = iota
	// ArgTypeWriteableFile marks an argument the program will write or create.
	ArgTypeWriteableFile
	// ArgTypeUntyped marks an argument with no file semantics, such as a
	// count, a pattern, or a variable name.
	ArgTypeUntyped
	// ArgTypeFlag marks an option token such as "-n".
	ArgTypeFlag
	// ArgTypeLiteral marks an argument the policy pins to an exact string.
	ArgTypeLiteral
)

// MarshalJSON encodes the type as its string form so serialized results stay
// readable and stable if the constant order ever changes.
func (t ArgType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// String returns the string representation of an ArgType.
func (t ArgType) String() string {
	switch t {
	case ArgTypeReadableFile:
		return "readable-file"
	case ArgTypeWriteableFile:
		return "writeable-file"
	case ArgTypeUntyped:
		return "untyped"
	case ArgTypeFlag:
		return "flag"
	case ArgTypeLiteral:
		return "literal"
	default:
		return fmt.Sprintf("ArgType(%d)", int(t))
	}
}
