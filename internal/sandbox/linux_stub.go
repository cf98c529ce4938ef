//go:build !linux

package sandbox

// LinuxSandbox is only functional on Linux.
type LinuxSandbox struct{}

// Available returns false on non-Linux platforms.
func (l *LinuxSandbox) Available() bool {
	return false
}

// Transform passes commands through unchanged on non-Linux platforms.
func (l *LinuxSandbox) Transform(spec CommandSpec, _ *Policy) (*ExecEnv, error) {
	return &ExecEnv{
		Command: append([]string{spec.Program}, spec.Args...),
		Cwd:     spec.Cwd,
	}, nil
}
