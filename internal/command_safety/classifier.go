// Package command_safety turns execution policy verdicts into approval
// decisions for proposed shell commands.
//
// The policy engine says whether an invocation is well-formed; this package
// decides what that means for unattended execution: auto-approve, ask the
// user, or reject outright. The whole pipeline is fail-closed: anything
// that cannot be positively classified falls through to manual approval.
package command_safety

import (
	"fmt"

	"github.com/tunacode/tunacode-go/internal/execpolicy"
)

// Assessment is the approval decision for a proposed command.
type Assessment int

const (
	// AssessmentAutoApprove means the command is safe to run unattended.
	AssessmentAutoApprove Assessment = iota
	// AssessmentAskUser means a human must approve before execution.
	AssessmentAskUser
	// AssessmentReject means the command must not be executed as proposed.
	AssessmentReject
)

// String returns the string representation of an Assessment.
func (a Assessment) String() string {
	switch a {
	case AssessmentAutoApprove:
		return "auto-approve"
	case AssessmentAskUser:
		return "ask-user"
	case AssessmentReject:
		return "reject"
	default:
		return fmt.Sprintf("Assessment(%d)", int(a))
	}
}

// Verdict pairs an assessment with a human-readable reason so front ends
// can explain why a command was not auto-approved.
type Verdict struct {
	Assessment Assessment
	Reason     string
}

// DefaultAutoApproveTypes is the ArgType allow-list for unattended
// execution. Writeable files are deliberately absent: a matched write
// still goes through the user or a writable sandbox root.
func DefaultAutoApproveTypes() map[execpolicy.ArgType]bool {
	return map[execpolicy.ArgType]bool{
		execpolicy.ArgTypeReadableFile: true,
		execpolicy.ArgTypeUntyped:      true,
		execpolicy.ArgTypeFlag:         true,
		execpolicy.ArgTypeLiteral:      true,
	}
}

// Assessor evaluates proposed commands against a policy table plus the
// heuristic classifiers in this package. The policy table is read-only, so
// a single Assessor may be shared across goroutines.
type Assessor struct {
	policy      *execpolicy.Policy
	autoApprove map[execpolicy.ArgType]bool
}

// NewAssessor builds an assessor with the default ArgType allow-list.
func NewAssessor(policy *execpolicy.Policy) *Assessor {
	return &Assessor{
		policy:      policy,
		autoApprove: DefaultAutoApproveTypes(),
	}
}

// NewAssessorWithAllowList builds an assessor with a caller-supplied
// ArgType allow-list.
func NewAssessorWithAllowList(policy *execpolicy.Policy, allow map[execpolicy.ArgType]bool) *Assessor {
	return &Assessor{policy: policy, autoApprove: allow}
}

// Assess classifies one proposed command, given as program + argv.
//
// `bash -lc "..."` scripts are decomposed into their plain sub-commands
// and every sub-command must independently qualify; a script that cannot
// be decomposed is treated as a single opaque command.
func (a *Assessor) Assess(command []string) Verdict {
	if len(command) == 0 {
		return Verdict{Assessment: AssessmentReject, Reason: "empty command"}
	}

	if CommandMightBeDangerous(command) {
		return Verdict{Assessment: AssessmentAskUser, Reason: "command is potentially destructive"}
	}

	subCommands := ParseShellLcPlainCommands(command)
	if subCommands == nil {
		subCommands = [][]string{command}
	}

	for _, cmd := range subCommands {
		if ok, reason := a.approves(cmd); !ok {
			return Verdict{Assessment: AssessmentAskUser, Reason: reason}
		}
	}
	return Verdict{Assessment: AssessmentAutoApprove}
}

// approves reports whether a single decomposed command qualifies for
// unattended execution, with a reason when it does not.
func (a *Assessor) approves(cmd []string) (bool, string) {
	if len(cmd) == 0 {
		return false, "empty command"
	}

	matched, err := a.policy.Check(execpolicy.NewExecCall(cmd[0], cmd[1:]...))
	if err != nil {
		// No policy match. The heuristic list of read-only commands is
		// the last chance at auto-approval.
		if IsKnownSafeCommand(cmd) {
			return true, ""
		}
		return false, err.Error()
	}

	for _, arg := range matched.Exec.MatchedArgs {
		if !a.autoApprove[arg.Type] {
			return false, fmt.Sprintf("%s: argument %q is classified %s, which requires approval",
				cmd[0], arg.Value, arg.Type)
		}
	}
	return true, ""
}
