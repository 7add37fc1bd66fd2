package adapter

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// UpdateEnv is the environment variable selecting the snapshot update mode.
const UpdateEnv = "SNAPR_UPDATE"

// TestRunnerAdapter abstracts running the Go test suite of a project.
type TestRunnerAdapter interface {
	// RunGoTest runs 'go test' for packages inside workDir with the given
	// update mode exported as SNAPR_UPDATE. Output is streamed to out.
	RunGoTest(ctx context.Context, req TestRunRequest, out io.Writer) error
}

// TestRunRequest configures one 'go test' invocation.
type TestRunRequest struct {
	WorkDir  string
	Packages []string
	Mode     string
	Args     []string
}

// LocalTestRunnerAdapter provides a concrete implementation using os/exec.
type LocalTestRunnerAdapter struct {
	goBinary string
}

// NewLocalTestRunnerAdapter constructs a LocalTestRunnerAdapter using the go
// binary found on PATH.
func NewLocalTestRunnerAdapter() *LocalTestRunnerAdapter {
	return &LocalTestRunnerAdapter{goBinary: "go"}
}

// RunGoTest runs 'go test' and returns its exit error, if any. Cancelling ctx
// kills the child process.
func (a *LocalTestRunnerAdapter) RunGoTest(ctx context.Context, req TestRunRequest, out io.Writer) error {
	packages := req.Packages
	if len(packages) == 0 {
		packages = []string{"./..."}
	}

	args := append([]string{"test"}, req.Args...)
	args = append(args, packages...)

	// #nosec G204 - arguments come from the CLI invocation, not untrusted input
	cmd := exec.CommandContext(ctx, a.goBinary, args...)
	cmd.Dir = req.WorkDir
	cmd.Stdout = out
	cmd.Stderr = out
	cmd.Env = append(os.Environ(), UpdateEnv+"="+req.Mode)

	return cmd.Run()
}
