// Package executor provides external command execution.
package executor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/okigami/repoctl/internal/domain"
)

// Client implements domain.CommandExecutor.
//
// The working directory of an invocation comes from the CommandSpec
// and is applied via exec.Cmd.Dir; the process-wide working directory
// is never touched, so it cannot be left corrupted on any exit path.
type Client struct{}

// NewClient creates a new command executor client.
func NewClient() *Client {
	return &Client{}
}

// Ensure Client implements domain.CommandExecutor.
var _ domain.CommandExecutor = (*Client)(nil)

// Execute runs the command and returns its captured combined output.
// Failure classes:
//   - binary missing on PATH: error wrapping domain.ErrToolNotFound
//   - non-zero exit: *domain.CommandError carrying the captured output
//
// Nothing is retried; the caller decides.
func (c *Client) Execute(spec *domain.CommandSpec) (*domain.CommandResult, error) {
	// #nosec G204 - spec.Program and spec.Args are built from typed templates
	execCmd := exec.Command(spec.Program, spec.Args...)
	if spec.Dir != "" {
		execCmd.Dir = spec.Dir
	}
	out, err := execCmd.CombinedOutput()
	if err != nil {
		return nil, classify(spec, out, err)
	}
	return domain.NewCommandResult(out, 0), nil
}

// ExecuteInteractive runs a command with stdin/stdout/stderr connected
// to the terminal. Used for flows the external tool drives itself,
// such as auth login.
func (c *Client) ExecuteInteractive(spec *domain.CommandSpec) error {
	// #nosec G204 - spec.Program and spec.Args are built from typed templates
	execCmd := exec.Command(spec.Program, spec.Args...)
	if spec.Dir != "" {
		execCmd.Dir = spec.Dir
	}
	execCmd.Stdin = os.Stdin
	execCmd.Stdout = os.Stdout
	execCmd.Stderr = os.Stderr
	if err := execCmd.Run(); err != nil {
		return classify(spec, nil, err)
	}
	return nil
}

// classify maps an exec error to the domain error taxonomy.
func classify(spec *domain.CommandSpec, out []byte, err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &domain.CommandError{
			Spec:   spec,
			Result: domain.NewCommandResult(out, exitErr.ExitCode()),
		}
	}
	if errors.Is(err, exec.ErrNotFound) {
		return fmt.Errorf("%w: %s", domain.ErrToolNotFound, spec.Program)
	}
	return fmt.Errorf("run %s: %w", spec.Program, err)
}
