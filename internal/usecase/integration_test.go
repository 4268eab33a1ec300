package usecase

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/okigami/repoctl/internal/domain"
	"github.com/okigami/repoctl/internal/infra/executor"
	"github.com/okigami/repoctl/internal/infra/git"
	"github.com/okigami/repoctl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupRepo creates a git repository with two commits:
// commit 1: a.txt = "one", b.txt = "keep me"
// commit 2: a.txt = "two", b.txt = "changed"
func setupRepo(t *testing.T) (dir string, firstCommit string) {
	t.Helper()

	dir = t.TempDir()
	runGit(t, dir, "init")
	runGit(t, dir, "config", "user.email", "test@example.com")
	runGit(t, dir, "config", "user.name", "Test User")

	writeFile(t, dir, "a.txt", "one")
	writeFile(t, dir, "b.txt", "keep me")
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "first")

	cmd := exec.Command("git", "rev-parse", "HEAD")
	cmd.Dir = dir
	out, err := cmd.Output()
	require.NoError(t, err)
	firstCommit = string(out[:40])

	writeFile(t, dir, "a.txt", "two")
	writeFile(t, dir, "b.txt", "changed")
	runGit(t, dir, "add", ".")
	runGit(t, dir, "commit", "-m", "second")

	return dir, firstCommit
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, out)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

func commitCount(t *testing.T, dir string) string {
	t.Helper()
	cmd := exec.Command("git", "rev-list", "--count", "HEAD")
	cmd.Dir = dir
	out, err := cmd.Output()
	require.NoError(t, err)
	return string(out)
}

func newGitClient(t *testing.T, dir string) *git.Client {
	t.Helper()
	client, err := git.NewClient(dir, executor.NewClient())
	require.NoError(t, err)
	return client
}

func TestRevertCommit_Integration_JustMode(t *testing.T) {
	dir, first := setupRepo(t)
	uc := NewRevertCommit(newGitClient(t, dir), testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), RevertCommitInput{
		Request: domain.RevertRequest{Commit: first, Just: []string{"a.txt"}},
	})
	require.NoError(t, err)
	assert.True(t, out.Committed)
	assert.Equal(t, first, out.Commit)

	// a.txt matches the first commit, b.txt stays at HEAD's content.
	assert.Equal(t, "one", readFile(t, dir, "a.txt"))
	assert.Equal(t, "changed", readFile(t, dir, "b.txt"))
	assert.Equal(t, "3\n", commitCount(t, dir), "one new commit recorded")
}

func TestRevertCommit_Integration_JustModeIdempotent(t *testing.T) {
	dir, first := setupRepo(t)
	uc := NewRevertCommit(newGitClient(t, dir), testutil.NopLogger{})

	req := RevertCommitInput{
		Request: domain.RevertRequest{Commit: first, Just: []string{"a.txt"}},
	}

	first1, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, first1.Committed)

	// Second run finds the file already restored and records nothing.
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, second.Committed)
	assert.Equal(t, "one", readFile(t, dir, "a.txt"))
	assert.Equal(t, "3\n", commitCount(t, dir))
}

func TestRevertCommit_Integration_KeepMode(t *testing.T) {
	dir, first := setupRepo(t)
	uc := NewRevertCommit(newGitClient(t, dir), testutil.NopLogger{})

	out, err := uc.Execute(context.Background(), RevertCommitInput{
		Request: domain.RevertRequest{Commit: first, Keep: []string{"b.txt"}},
	})
	require.NoError(t, err)
	assert.True(t, out.Committed)

	// Tree matches the first commit except the preserved file.
	assert.Equal(t, "one", readFile(t, dir, "a.txt"))
	assert.Equal(t, "changed", readFile(t, dir, "b.txt"))
}

func TestRevertCommit_Integration_KeepModeMissingFile(t *testing.T) {
	dir, first := setupRepo(t)
	uc := NewRevertCommit(newGitClient(t, dir), testutil.NopLogger{})

	headBefore := commitCount(t, dir)

	_, err := uc.Execute(context.Background(), RevertCommitInput{
		Request: domain.RevertRequest{Commit: first, Keep: []string{"secrets.env"}},
	})
	assert.ErrorIs(t, err, domain.ErrFileNotFound)

	// Repository untouched: HEAD unchanged, working tree unchanged.
	assert.Equal(t, headBefore, commitCount(t, dir))
	assert.Equal(t, "two", readFile(t, dir, "a.txt"))
}
