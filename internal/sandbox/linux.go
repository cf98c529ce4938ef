//go:build linux

package sandbox

import (
	"fmt"
	"os/exec"
)

// LinuxSandbox isolates the filesystem with bubblewrap (bwrap).
type LinuxSandbox struct{}

// Available reports whether bwrap is installed.
func (l *LinuxSandbox) Available() bool {
	_, err := exec.LookPath("bwrap")
	return err == nil
}

// Transform wraps the command with bwrap according to the policy.
func (l *LinuxSandbox) Transform(spec CommandSpec, policy *Policy) (*ExecEnv, error) {
	if !policy.IsRestricted() {
		return &ExecEnv{
			Command: append([]string{spec.Program}, spec.Args...),
			Cwd:     spec.Cwd,
		}, nil
	}

	cmd, env, err := buildBwrapCommand(spec, policy)
	if err != nil {
		return nil, err
	}
	return &ExecEnv{Command: cmd, Cwd: spec.Cwd, Env: env}, nil
}

func buildBwrapCommand(spec CommandSpec, policy *Policy) ([]string, map[string]string, error) {
	cmd := []string{
		"bwrap",
		"--ro-bind", "/", "/",
		"--tmpfs", "/tmp",
		"--dev", "/dev",
		"--proc", "/proc",
	}

	switch policy.Mode {
	case ModeReadOnly:
	case ModeWorkspaceWrite:
		// Writable binds come last so they override the read-only root.
		for _, root := range policy.WritableRoots {
			cmd = append(cmd, "--bind", root, root)
		}
	default:
		return nil, nil, fmt.Errorf("unsupported sandbox mode: %s", policy.Mode)
	}

	cmd = append(cmd, "--unshare-pid")
	if spec.Cwd != "" {
		cmd = append(cmd, "--chdir", spec.Cwd)
	}
	cmd = append(cmd, "--")
	cmd = append(cmd, spec.Program)
	cmd = append(cmd, spec.Args...)

	env := make(map[string]string)
	if !policy.NetworkAccess {
		env["TUNACODE_SANDBOX_NETWORK_DISABLED"] = "1"
	}
	return cmd, env, nil
}

// BuildBwrapCommand is exported for testing.
func BuildBwrapCommand(spec CommandSpec, policy *Policy) ([]string, map[string]string, error) {
	return buildBwrapCommand(spec, policy)
}
