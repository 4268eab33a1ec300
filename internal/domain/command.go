// Package domain defines the core types and ports for repoctl.
package domain

import "strings"

// CommandSpec describes a single external command invocation.
// Args form an argv vector and are never passed through a shell,
// so user-supplied values cannot be reinterpreted as shell syntax.
// Dir is the working directory for the invocation; the process-wide
// working directory is never changed.
type CommandSpec struct {
	Program string
	Dir     string
	Args    []string
}

// NewGitCommand builds a CommandSpec for the git client.
func NewGitCommand(dir string, args ...string) *CommandSpec {
	return &CommandSpec{Program: "git", Dir: dir, Args: args}
}

// NewGHCommand builds a CommandSpec for the gh CLI.
func NewGHCommand(dir string, args ...string) *CommandSpec {
	return &CommandSpec{Program: "gh", Dir: dir, Args: args}
}

// String returns the command line for display in errors and logs.
func (s *CommandSpec) String() string {
	return s.Program + " " + strings.Join(s.Args, " ")
}

// CommandResult holds the captured output of a finished command.
type CommandResult struct {
	Lines    []string // combined stdout/stderr, in output order
	ExitCode int
}

// NewCommandResult splits raw combined output into lines.
func NewCommandResult(output []byte, exitCode int) *CommandResult {
	text := strings.TrimRight(string(output), "\n")
	var lines []string
	if text != "" {
		lines = strings.Split(text, "\n")
	}
	return &CommandResult{Lines: lines, ExitCode: exitCode}
}

// Text returns the captured output as a single string.
func (r *CommandResult) Text() string {
	return strings.Join(r.Lines, "\n")
}

// Contains reports whether any captured line contains the substring.
func (r *CommandResult) Contains(substr string) bool {
	for _, line := range r.Lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
