// Package sandbox wraps approved commands with OS-level isolation before
// they are spawned. The policy engine only validates invocations; whatever
// it approves still runs under the restrictions configured here.
package sandbox

import "fmt"

// Mode controls the level of filesystem restriction.
type Mode string

const (
	// ModeFullAccess disables sandboxing.
	ModeFullAccess Mode = "full-access"
	// ModeReadOnly allows reading the filesystem only.
	ModeReadOnly Mode = "read-only"
	// ModeWorkspaceWrite allows writing only inside the declared roots.
	ModeWorkspaceWrite Mode = "workspace-write"
)

// ParseMode parses a string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "full-access", "full_access":
		return ModeFullAccess, nil
	case "read-only", "read_only":
		return ModeReadOnly, nil
	case "workspace-write", "workspace_write":
		return ModeWorkspaceWrite, nil
	default:
		return "", fmt.Errorf("invalid sandbox mode %q: must be full-access, read-only, or workspace-write", s)
	}
}

// Policy configures the sandbox for one command execution.
type Policy struct {
	Mode          Mode     `json:"mode"`
	WritableRoots []string `json:"writable_roots,omitempty"`
	NetworkAccess bool     `json:"network_access"`
}

// IsRestricted reports whether the policy restricts execution at all.
func (p *Policy) IsRestricted() bool {
	return p != nil && p.Mode != ModeFullAccess && p.Mode != ""
}

// CommandSpec describes a command about to be executed.
type CommandSpec struct {
	Program string
	Args    []string
	Cwd     string
}

// ExecEnv is the transformed invocation after sandbox wrapping: the final
// argv (possibly prefixed with a sandbox wrapper), the working directory,
// and any extra environment variables the wrapper needs.
type ExecEnv struct {
	Command []string
	Cwd     string
	Env     map[string]string
}

// Manager is implemented per platform.
type Manager interface {
	// Transform wraps the command with sandbox restrictions. An
	// unrestricted policy returns the command unchanged.
	Transform(spec CommandSpec, policy *Policy) (*ExecEnv, error)

	// Available reports whether this sandbox can run on the current system.
	Available() bool
}
