package task

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// CmdAction runs a shell command and captures its output.
type CmdAction struct {
	Command string

	out string
	err string
}

// NewCmdAction creates an action for the given shell command.
func NewCmdAction(command string) *CmdAction {
	return &CmdAction{Command: command}
}

// Out returns the stdout captured by the last Execute.
func (a *CmdAction) Out() string { return a.out }

// Err returns the stderr captured by the last Execute.
func (a *CmdAction) Err() string { return a.err }

// Execute runs the command with sh -c in dir, capturing stdout and stderr
// separately. A non-zero exit is reported as "exit code N".
func (a *CmdAction) Execute(ctx context.Context, dir string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", a.Command)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	a.out = stdout.String()
	a.err = stderr.String()

	if runErr == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) && exitErr.ExitCode() >= 0 {
		return fmt.Errorf("exit code %d", exitErr.ExitCode())
	}
	return fmt.Errorf("run %q: %w", a.Command, runErr)
}
