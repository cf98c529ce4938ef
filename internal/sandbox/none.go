package sandbox

// NoopSandbox passes commands through unchanged.
type NoopSandbox struct{}

// Transform returns the command as-is.
func (n *NoopSandbox) Transform(spec CommandSpec, _ *Policy) (*ExecEnv, error) {
	return &ExecEnv{
		Command: append([]string{spec.Program}, spec.Args...),
		Cwd:     spec.Cwd,
	}, nil
}

// Available always returns true.
func (n *NoopSandbox) Available() bool {
	return true
}
