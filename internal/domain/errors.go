package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
//
// The error taxonomy is:
//   - configuration errors: contradictory or invalid parameters, or a
//     target directory that is not a usable repository
//   - environment errors: a required external tool is missing
//   - not-found errors: a referenced file, commit, or release is absent
//   - operational errors (*CommandError): an external command ran and
//     exited non-zero; the captured output is carried for diagnosis
//
// None of these are retried automatically; callers decide.
var (
	ErrNotGitRepository  = errors.New("not a git repository (or any of the parent directories)")
	ErrToolNotFound      = errors.New("external tool not found on PATH")
	ErrKeepJustExclusive = errors.New("--keep and --just are mutually exclusive")
	ErrFileNotFound      = errors.New("file not found in working tree")
	ErrCommitNotFound    = errors.New("commit not found")
	ErrReleaseNotFound   = errors.New("release not found")
	ErrRunNotFound       = errors.New("workflow run not found")
	ErrNotLoggedIn       = errors.New("not logged in to the hosting service (run 'repoctl auth login' first)")
	ErrEmptyTag          = errors.New("tag cannot be empty")
	ErrEmptySecretName   = errors.New("secret name cannot be empty")
)

// CommandError reports an external command that ran but exited non-zero.
// The captured output is preserved verbatim so the user can diagnose the
// failure against the external tool's own documentation.
type CommandError struct {
	Spec   *CommandSpec
	Result *CommandResult
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	if e.Result == nil || len(e.Result.Lines) == 0 {
		return fmt.Sprintf("%s: exit status %d", e.Spec, e.exitCode())
	}
	return fmt.Sprintf("%s: exit status %d\n%s", e.Spec, e.exitCode(), e.Result.Text())
}

func (e *CommandError) exitCode() int {
	if e.Result == nil {
		return -1
	}
	return e.Result.ExitCode
}

// AsCommandError unwraps err to a *CommandError if one is in the chain.
func AsCommandError(err error) (*CommandError, bool) {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr, true
	}
	return nil, false
}
