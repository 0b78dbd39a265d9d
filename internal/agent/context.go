// Package agent defines the boundary between the orchestrator and the
// machine where SDK discovery, validation, and tool execution actually
// happen. Every operation is an explicit request handled in its entirety on
// the target machine, because filesystem state is only observable there —
// reading the environment on one machine and validating paths on another
// would be wrong.
package agent

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"runtime"

	"droidsdk/internal/buildenv"
	"droidsdk/internal/sdk"
)

// ValidateRequest asks the target to classify a candidate SDK directory.
type ValidateRequest struct {
	Dir     string `json:"dir"`
	Lenient bool   `json:"lenient"`
}

// LocateRequest asks the target to run the SDK home fallback chain.
type LocateRequest struct {
	ConfiguredHome string            `json:"configured_home"`
	Env            buildenv.Snapshot `json:"env"`
}

// DescribeRequest asks the target to build an SDK descriptor.
type DescribeRequest struct {
	ConfiguredHome string `json:"configured_home"`
}

// LaunchRequest asks the target to run a command to completion.
type LaunchRequest struct {
	Argv sdk.Command `json:"argv"`
	Dir  string      `json:"dir,omitempty"`
}

// ExecutionContext executes requests on a target machine, which may be the
// local one or a remote build agent. Launch blocks until the process exits
// and returns its exit code; a non-zero code is not an error. Errors from any
// method mean the execution environment itself failed.
type ExecutionContext interface {
	IsUnix() bool
	Validate(ctx context.Context, req ValidateRequest) (sdk.Result, error)
	Locate(ctx context.Context, req LocateRequest) (string, error)
	Describe(ctx context.Context, req DescribeRequest) (*sdk.Descriptor, error)
	Launch(ctx context.Context, req LaunchRequest, stdout, stderr io.Writer) (int, error)
}

// Local handles requests on the machine the process runs on.
type Local struct {
	// Perms gates lenient-mode validation; nil means allow all.
	Perms sdk.Permissions
}

func (Local) IsUnix() bool {
	return runtime.GOOS != "windows"
}

func (l Local) Validate(_ context.Context, req ValidateRequest) (sdk.Result, error) {
	return sdk.Validate(req.Dir, req.Lenient, l.Perms), nil
}

func (Local) Locate(_ context.Context, req LocateRequest) (string, error) {
	return sdk.LocateHome(req.Env, req.ConfiguredHome), nil
}

func (l Local) Describe(_ context.Context, req DescribeRequest) (*sdk.Descriptor, error) {
	return sdk.BuildDescriptor(req.ConfiguredHome, l.IsUnix()), nil
}

func (Local) Launch(ctx context.Context, req LaunchRequest, stdout, stderr io.Writer) (int, error) {
	if len(req.Argv) == 0 {
		return -1, errors.New("empty command")
	}

	cmd := exec.CommandContext(ctx, req.Argv[0], req.Argv[1:]...)
	cmd.Dir = req.Dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Exited() {
			// Normal termination with a non-zero status: exit-code
			// interpretation belongs to the caller.
			return exitErr.ExitCode(), nil
		}
		// Killed by a signal, typically context cancellation or a
		// severed channel.
		return -1, err
	}

	return -1, err
}

var _ ExecutionContext = Local{}
