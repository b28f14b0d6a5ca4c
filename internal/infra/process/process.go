package process

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"wlanprofiles/internal/infra/envutil"
)

var ErrNonZeroExit = errors.New("command exited with non-zero status")
var ErrStart = errors.New("command could not be started")

// Result is the captured standard output of a finished command.
type Result struct {
	Output   []byte
	ExitCode int
}

// Runner runs a command to completion and returns its standard output.
// A command that ran but failed yields an error wrapping ErrNonZeroExit
// together with the partial Result; a command that never ran yields an
// error wrapping ErrStart.
type Runner func(ctx context.Context, name string, args ...string) (Result, error)

// Exec is the Runner backed by os/exec.
func Exec(ctx context.Context, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, envutil.ResolveExecutable(name, os.Environ()), args...)
	configure(cmd)
	output, err := cmd.Output()
	if err == nil {
		return Result{Output: output}, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result{Output: output, ExitCode: -1}, ctxErr
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		result := Result{Output: output, ExitCode: exitErr.ExitCode()}
		return result, &CommandError{Name: name, Args: args, ExitCode: result.ExitCode, Stderr: string(exitErr.Stderr), kind: ErrNonZeroExit}
	}
	return Result{ExitCode: -1}, &CommandError{Name: name, Args: args, ExitCode: -1, cause: err, kind: ErrStart}
}

// CommandError describes a failed invocation.
type CommandError struct {
	Name     string
	Args     []string
	ExitCode int
	Stderr   string
	cause    error
	kind     error
}

func (e *CommandError) Error() string {
	command := strings.TrimSpace(e.Name + " " + strings.Join(e.Args, " "))
	switch {
	case e.cause != nil:
		return fmt.Sprintf("%s failed: %v", command, e.cause)
	case strings.TrimSpace(e.Stderr) != "":
		return fmt.Sprintf("%s failed (exit=%d): %s", command, e.ExitCode, strings.TrimSpace(e.Stderr))
	default:
		return fmt.Sprintf("%s failed (exit=%d)", command, e.ExitCode)
	}
}

func (e *CommandError) Unwrap() []error {
	if e.cause == nil {
		return []error{e.kind}
	}
	return []error{e.kind, e.cause}
}
