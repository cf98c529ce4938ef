//go:build darwin

package sandbox

import (
	"fmt"
	"os/exec"
	"strings"
)

// SeatbeltSandbox isolates commands with macOS Seatbelt (sandbox-exec).
type SeatbeltSandbox struct{}

// Available reports whether sandbox-exec is installed.
func (s *SeatbeltSandbox) Available() bool {
	_, err := exec.LookPath("/usr/bin/sandbox-exec")
	return err == nil
}

// Transform wraps the command with sandbox-exec and a generated SBPL profile.
func (s *SeatbeltSandbox) Transform(spec CommandSpec, policy *Policy) (*ExecEnv, error) {
	if !policy.IsRestricted() {
		return &ExecEnv{
			Command: append([]string{spec.Program}, spec.Args...),
			Cwd:     spec.Cwd,
		}, nil
	}

	profile, err := generateSBPL(policy)
	if err != nil {
		return nil, err
	}

	cmd := []string{"/usr/bin/sandbox-exec", "-p", profile, "--", spec.Program}
	cmd = append(cmd, spec.Args...)

	env := make(map[string]string)
	if !policy.NetworkAccess {
		env["TUNACODE_SANDBOX_NETWORK_DISABLED"] = "1"
	}
	return &ExecEnv{Command: cmd, Cwd: spec.Cwd, Env: env}, nil
}

// generateSBPL builds a Seatbelt Profile Language policy: deny by default,
// allow reads and process management, then widen writes per mode.
func generateSBPL(policy *Policy) (string, error) {
	var sb strings.Builder
	sb.WriteString("(version 1)\n")
	sb.WriteString("(deny default)\n")
	sb.WriteString("(allow process-exec)\n")
	sb.WriteString("(allow process-fork)\n")
	sb.WriteString("(allow sysctl-read)\n")
	sb.WriteString("(allow mach-lookup)\n")
	sb.WriteString("(allow file-read*)\n")
	sb.WriteString("(allow file-write* (subpath \"/private/tmp\"))\n")
	sb.WriteString("(allow file-write* (subpath \"/tmp\"))\n")
	sb.WriteString("(allow file-write* (subpath \"/dev\"))\n")

	switch policy.Mode {
	case ModeReadOnly:
	case ModeWorkspaceWrite:
		for _, root := range policy.WritableRoots {
			sb.WriteString(fmt.Sprintf("(allow file-write* (subpath %q))\n", root))
		}
	default:
		return "", fmt.Errorf("unsupported sandbox mode: %s", policy.Mode)
	}

	if policy.NetworkAccess {
		sb.WriteString("(allow network*)\n")
	}
	return sb.String(), nil
}
