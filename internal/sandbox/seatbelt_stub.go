//go:build !darwin

package sandbox

// SeatbeltSandbox is only functional on macOS.
type SeatbeltSandbox struct{}

// Available returns false on non-darwin platforms.
func (s *SeatbeltSandbox) Available() bool {
	return false
}

// Transform passes commands through unchanged on non-darwin platforms.
func (s *SeatbeltSandbox) Transform(spec CommandSpec, _ *Policy) (*ExecEnv, error) {
	return &ExecEnv{
		Command: append([]string{spec.Program}, spec.Args...),
		Cwd:     spec.Cwd,
	}, nil
}
