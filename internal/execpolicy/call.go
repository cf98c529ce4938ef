package execpolicy

// ExecCall is a requested program invocation awaiting validation. It is a
// plain value with no identity beyond its fields; construct one per check.
type ExecCall struct {
	Program string
	Args    []string
}

// NewExecCall builds an ExecCall from a program name and its argv.
func NewExecCall(program string, args ...string) ExecCall {
	return ExecCall{Program: program, Args: args}
}

// MatchedArg is one argument resolved against the pattern. Index is the
// argument's 0-based position in the original argv, so a result's matched
// arguments are ordered by argv position, not by pattern declaration.
type MatchedArg struct {
	Index int     `json:"index"`
	Type  ArgType `json:"type"`
	Value string  `json:"value"`
}

// ValidExec is an accepted invocation: every argument classified, plus the
// policy's candidate install paths for the program. Deciding which candidate
// actually exists on disk is the spawn layer's job, not the engine's.
type ValidExec struct {
	Program         string       `json:"program"`
	MatchedArgs     []MatchedArg `json:"matched_args"`
	ExecutablePaths []string     `json:"executable_paths,omitempty"`
}

// MatchedExec wraps a successful match. Rejections travel only on the error
// channel, never as an envelope variant, so a caller cannot mistake a
// rejection for a "maybe" match.
type MatchedExec struct {
	Exec ValidExec
}
