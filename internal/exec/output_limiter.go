// Package exec spawns policy-approved commands and caps what they can
// send back.
package exec

// OutputMaxBytes is the hard cap on bytes retained from a command's
// stdout/stderr. A runaway command cannot OOM the process by flooding
// its output pipes.
const OutputMaxBytes = 1024 * 1024 // 1 MiB

// LimitOutput truncates output to OutputMaxBytes and reports whether
// truncation occurred.
func LimitOutput(output []byte) (result []byte, truncated bool) {
	if len(output) <= OutputMaxBytes {
		return output, false
	}
	return output[:OutputMaxBytes], true
}

// AggregateOutput combines stdout and stderr under the cap. When both
// streams together exceed it, stderr gets priority (it usually explains
// the failure): stdout is held to a third of the budget and any capacity
// stderr leaves unused is handed back to stdout.
func AggregateOutput(stdout, stderr []byte) []byte {
	if len(stdout)+len(stderr) <= OutputMaxBytes {
		result := make([]byte, 0, len(stdout)+len(stderr))
		result = append(result, stdout...)
		return append(result, stderr...)
	}

	stdoutTake := min(len(stdout), OutputMaxBytes/3)
	stderrTake := min(len(stderr), OutputMaxBytes-stdoutTake)

	// Hand unused stderr budget back to stdout.
	if spare := OutputMaxBytes - stdoutTake - stderrTake; spare > 0 {
		stdoutTake += min(spare, len(stdout)-stdoutTake)
	}

	result := make([]byte, 0, stdoutTake+stderrTake)
	result = append(result, stdout[:stdoutTake]...)
	return append(result, stderr[:stderrTake]...)
}
