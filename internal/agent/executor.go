package agent

import (
	"context"
	"fmt"
	"io"

	"droidsdk/internal/sdk"
)

// ExecError indicates the execution environment failed while running a tool:
// the process could not be started, or it was interrupted before a normal
// exit. A tool's own non-zero exit status is never an ExecError.
type ExecError struct {
	Tool  string
	Cause error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("run %s: %v", e.Tool, e.Cause)
}

func (e *ExecError) Unwrap() error {
	return e.Cause
}

// Run executes an SDK tool on the target machine, streaming its output to
// the supplied sinks, and blocks until the process exits. workDir pins the
// working directory when non-empty. The tool's exit code is returned as
// data; err is non-nil only for environment failures.
func Run(ctx context.Context, ec ExecutionContext, stdout, stderr io.Writer, d sdk.Descriptor, tool sdk.Tool, extraArgs, workDir string) (int, error) {
	cmd := sdk.ToolCommand(d, ec.IsUnix(), tool, extraArgs)

	code, err := ec.Launch(ctx, LaunchRequest{Argv: cmd, Dir: workDir}, stdout, stderr)
	if err != nil {
		return code, &ExecError{Tool: tool.Name, Cause: err}
	}
	return code, nil
}
