package collector

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ErrCommandNotFound is returned when an external command cannot be located.
var ErrCommandNotFound = errors.New("command not found")

// Runner starts an external command and returns its combined stdout and
// stderr once it has exited.
type Runner interface {
	CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) CombinedOutput(ctx context.Context, name string, args ...string) ([]byte, error) {
	if _, err := exec.LookPath(name); err != nil {
		return nil, fmt.Errorf("%s: %w", name, ErrCommandNotFound)
	}
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	if err != nil {
		return out, &CommandError{Name: name, Args: args, Output: string(out), Err: err}
	}
	return out, nil
}

// CommandError reports a command that started but could not finish cleanly.
type CommandError struct {
	Name   string
	Args   []string
	Output string
	Err    error
}

func (e *CommandError) Error() string {
	cmdline := strings.TrimSpace(e.Name + " " + strings.Join(e.Args, " "))
	if out := strings.TrimSpace(e.Output); out != "" {
		return fmt.Sprintf("%s: %v: %s", cmdline, e.Err, firstLine(out))
	}
	return fmt.Sprintf("%s: %v", cmdline, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// ParseError reports command output that lacks an expected token.
type ParseError struct {
	Command string
	Output  string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s output: %s (got %q)", e.Command, e.Reason, firstLine(e.Output))
}

func run(ctx context.Context, r Runner, command []string) (string, error) {
	if len(command) == 0 {
		return "", fmt.Errorf("empty command: %w", ErrCommandNotFound)
	}
	out, err := r.CombinedOutput(ctx, command[0], command[1:]...)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
