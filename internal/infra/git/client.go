// Package git provides git operations.
package git

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/okigami/repoctl/internal/domain"
)

// Client provides git operations against a single repository.
// Mutating operations go through the command executor so that
// failures surface as *domain.CommandError with captured output;
// read-only queries parse git's stdout directly.
type Client struct {
	executor   domain.CommandExecutor
	repoRoot   string // repository root (parent of .git)
	gitDir     string // common .git directory
	workingDir string // toplevel of the current worktree
}

// NewClient creates a git client by detecting the repository root from
// the given directory. It fails fast with domain.ErrNotGitRepository
// when dir does not carry the repository marker, before any operation
// can start an external process against it.
func NewClient(dir string, executor domain.CommandExecutor) (*Client, error) {
	repoRoot, gitDir, workingDir, err := findGitRoot(dir)
	if err != nil {
		return nil, err
	}
	return &Client{
		executor:   executor,
		repoRoot:   repoRoot,
		gitDir:     gitDir,
		workingDir: workingDir,
	}, nil
}

// Ensure Client implements domain.Git.
var _ domain.Git = (*Client)(nil)

// RepoRoot returns the repository root directory.
func (c *Client) RepoRoot() string {
	return c.repoRoot
}

// GitDir returns the .git directory path.
func (c *Client) GitDir() string {
	return c.gitDir
}

// CurrentBranch returns the name of the current branch.
func (c *Client) CurrentBranch() (string, error) {
	cmd := exec.Command("git", "rev-parse", "--abbrev-ref", "HEAD")
	cmd.Dir = c.workingDir
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// ResolveCommit resolves a commitish (hash, tag, branch) to a full
// commit hash using go-git, without spawning a process.
func (c *Client) ResolveCommit(ref string) (string, error) {
	repo, err := gogit.PlainOpen(c.repoRoot)
	if err != nil {
		return "", fmt.Errorf("open repository: %w", err)
	}
	hash, err := repo.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return "", fmt.Errorf("%w: %s", domain.ErrCommitNotFound, ref)
	}
	return hash.String(), nil
}

// HasUncommittedChanges checks for staged or unstaged changes.
func (c *Client) HasUncommittedChanges() (bool, error) {
	cmd := exec.Command("git", "status", "--porcelain")
	cmd.Dir = c.workingDir
	out, err := cmd.Output()
	if err != nil {
		return false, fmt.Errorf("failed to check uncommitted changes: %w", err)
	}
	return len(out) > 0, nil
}

// CheckoutFiles restores the listed files' content from a commit into
// the working tree, leaving all other tracked files untouched.
func (c *Client) CheckoutFiles(commit string, paths []string) error {
	args := append([]string{"checkout", commit, "--"}, paths...)
	return c.run(args...)
}

// ResetHard discards all working-tree and index changes and moves the
// branch pointer to the given commit. Destructive and not recoverable
// locally; callers gate this behind their own validation.
func (c *Client) ResetHard(commit string) error {
	return c.run("reset", "--hard", commit)
}

// AddAll stages all working-tree changes.
func (c *Client) AddAll() error {
	return c.run("add", "-A")
}

// Commit records the staged changes with the given message.
func (c *Client) Commit(message string) error {
	return c.run("commit", "-m", message)
}

// Push pushes a branch to a remote.
func (c *Client) Push(remote, branch string, force, setUpstream bool) error {
	args := []string{"push"}
	if force {
		args = append(args, "--force")
	}
	if setUpstream {
		args = append(args, "--set-upstream")
	}
	args = append(args, remote, branch)
	return c.run(args...)
}

// CreateBranch creates a branch at the given start point (HEAD when
// start is empty).
func (c *Client) CreateBranch(name, start string) error {
	args := []string{"branch", name}
	if start != "" {
		args = append(args, start)
	}
	return c.run(args...)
}

// DeleteBranch deletes a branch.
// If force is true, it uses -D (force delete), otherwise -d.
func (c *Client) DeleteBranch(name string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	return c.run("branch", flag, name)
}

// RenameBranch renames a branch.
func (c *Client) RenameBranch(oldName, newName string) error {
	return c.run("branch", "-m", oldName, newName)
}

// run executes a mutating git command through the executor.
func (c *Client) run(args ...string) error {
	_, err := c.executor.Execute(domain.NewGitCommand(c.workingDir, args...))
	return err
}

// findGitRoot finds the git repository root and .git directory from the
// given directory. Works both in the main repository and in worktrees.
func findGitRoot(dir string) (repoRoot, gitDir, workingDir string, err error) {
	cmd := exec.Command("git", "rev-parse", "--git-common-dir")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", "", "", domain.ErrNotGitRepository
	}
	gitDir = strings.TrimSpace(string(out))

	cmd = exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	toplevel, err := cmd.Output()
	if err != nil {
		return "", "", "", fmt.Errorf("failed to find toplevel: %w", err)
	}
	workingDir = strings.TrimSpace(string(toplevel))

	if !filepath.IsAbs(gitDir) {
		gitDir = filepath.Join(dir, gitDir)
	}
	gitDir = filepath.Clean(gitDir)
	repoRoot = filepath.Dir(gitDir)

	return repoRoot, gitDir, workingDir, nil
}
