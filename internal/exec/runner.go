package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"github.com/google/uuid"

	"github.com/tunacode/tunacode-go/internal/execenv"
	"github.com/tunacode/tunacode-go/internal/execpolicy"
	"github.com/tunacode/tunacode-go/internal/sandbox"
)

// Runner spawns validated invocations. It is the consumer of the policy
// engine's output: it receives a ValidExec, resolves which candidate binary
// actually exists, derives the child environment, and wraps the command
// with the configured sandbox.
type Runner struct {
	Sandbox       sandbox.Manager
	SandboxPolicy *sandbox.Policy
	EnvPolicy     *execenv.Policy
	Cwd           string
}

// NewRunner builds a runner with the platform sandbox and default policies.
func NewRunner() *Runner {
	return &Runner{Sandbox: sandbox.NewManager()}
}

// Result is the outcome of one completed execution.
type Result struct {
	ID        string        `json:"id"`
	Path      string        `json:"path"`
	ExitCode  int           `json:"exit_code"`
	Stdout    []byte        `json:"stdout"`
	Stderr    []byte        `json:"stderr"`
	Truncated bool          `json:"truncated"`
	Duration  time.Duration `json:"duration"`
}

// CombinedOutput returns both streams as one capped blob for reporting,
// with stderr given priority when the two together exceed the cap.
func (r *Result) CombinedOutput() []byte {
	return AggregateOutput(r.Stdout, r.Stderr)
}

// Run executes a validated invocation and captures its capped output.
// Cancelling the context kills the child. A non-zero exit status is not an
// error; it is reported through Result.ExitCode.
func (r *Runner) Run(ctx context.Context, valid execpolicy.ValidExec) (*Result, error) {
	path, err := sandbox.ResolveExecutable(valid.ExecutablePaths)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", valid.Program, err)
	}

	args := make([]string, 0, len(valid.MatchedArgs))
	for _, a := range valid.MatchedArgs {
		args = append(args, a.Value)
	}

	mgr := r.Sandbox
	if mgr == nil {
		mgr = sandbox.NewNoopManager()
	}
	execEnv, err := mgr.Transform(sandbox.CommandSpec{
		Program: path,
		Args:    args,
		Cwd:     r.Cwd,
	}, r.SandboxPolicy)
	if err != nil {
		return nil, fmt.Errorf("sandboxing %s: %w", valid.Program, err)
	}

	env := execenv.Derive(r.EnvPolicy)
	for k, v := range execEnv.Env {
		env[k] = v
	}

	cmd := exec.CommandContext(ctx, execEnv.Command[0], execEnv.Command[1:]...)
	cmd.Dir = execEnv.Cwd
	cmd.Env = execenv.ToSlice(env)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()
	duration := time.Since(start)

	exitCode := 0
	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			return nil, fmt.Errorf("running %s: %w", valid.Program, runErr)
		}
	}

	outBytes, outTrunc := LimitOutput(stdout.Bytes())
	errBytes, errTrunc := LimitOutput(stderr.Bytes())

	return &Result{
		ID:        uuid.NewString(),
		Path:      path,
		ExitCode:  exitCode,
		Stdout:    outBytes,
		Stderr:    errBytes,
		Truncated: outTrunc || errTrunc,
		Duration:  duration,
	}, nil
}
