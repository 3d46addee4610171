// Package runner executes external commands on behalf of dotboot.
//
// Only the exit status of a command is inspected. A non-zero exit is
// returned as an ErrCommandFailed error and callers abort on it.
package runner

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/arthur-debert/dotboot/pkg/errors"
	"github.com/arthur-debert/dotboot/pkg/logging"
)

// Command is a single external command invocation
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current directory
	Dir string
}

// String renders the command line for messages and logs
func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Runner runs external commands
type Runner interface {
	// Run executes the command and reports failure for a non-zero exit
	Run(ctx context.Context, cmd Command) error
	// Output executes the command and returns its trimmed stdout
	Output(ctx context.Context, cmd Command) (string, error)
}

// ExecRunner implements Runner with os/exec
type ExecRunner struct {
	// Stdout and Stderr receive the command's output when set. When both
	// are nil the combined output is captured and attached to the error.
	Stdout io.Writer
	Stderr io.Writer

	// Observe, when set, is called before each command starts
	Observe func(cmd Command)
}

// NewExecRunner creates a runner that streams command output to w, or
// captures it when w is nil.
func NewExecRunner(w io.Writer) *ExecRunner {
	return &ExecRunner{Stdout: w, Stderr: w}
}

// Run executes cmd and waits for it to finish
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	logging.LogCommand(cmd.Name, cmd.Args, cmd.Dir)
	if r.Observe != nil {
		r.Observe(cmd)
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir

	if r.Stdout == nil && r.Stderr == nil {
		output, err := c.CombinedOutput()
		if err != nil {
			return commandError(cmd, err, output)
		}
		return nil
	}

	c.Stdout = r.Stdout
	c.Stderr = r.Stderr
	if err := c.Run(); err != nil {
		return commandError(cmd, err, nil)
	}
	return nil
}

// Output executes cmd and returns its standard output with surrounding
// whitespace removed
func (r *ExecRunner) Output(ctx context.Context, cmd Command) (string, error) {
	logging.LogCommand(cmd.Name, cmd.Args, cmd.Dir)

	var stderr bytes.Buffer
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stderr = &stderr

	out, err := c.Output()
	if err != nil {
		return "", commandError(cmd, err, stderr.Bytes())
	}
	return strings.TrimSpace(string(out)), nil
}

func commandError(cmd Command, err error, output []byte) error {
	msg := fmt.Sprintf("command failed: %s", cmd)
	if trimmed := strings.TrimSpace(string(output)); trimmed != "" {
		msg = fmt.Sprintf("%s: %s", msg, trimmed)
	}

	bootErr := errors.Wrap(err, errors.ErrCommandFailed, msg).
		WithDetail("command", cmd.String()).
		WithDetail("dir", cmd.Dir)

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		bootErr.WithDetail("exitCode", exitErr.ExitCode())
	}
	return bootErr
}
