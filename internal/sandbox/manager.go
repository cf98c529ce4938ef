package sandbox

import "runtime"

// NewManager picks the sandbox implementation for the current platform,
// falling back to the pass-through when nothing better is available.
func NewManager() Manager {
	switch runtime.GOOS {
	case "darwin":
		s := &SeatbeltSandbox{}
		if s.Available() {
			return s
		}
	case "linux":
		s := &LinuxSandbox{}
		if s.Available() {
			return s
		}
	}
	return &NoopSandbox{}
}

// NewNoopManager always returns the pass-through sandbox, for tests and for
// full-access mode.
func NewNoopManager() Manager {
	return &NoopSandbox{}
}
