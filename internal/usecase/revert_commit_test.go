package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/okigami/repoctl/internal/domain"
	"github.com/okigami/repoctl/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevertCommit_Execute_KeepAndJustExclusive(t *testing.T) {
	git := testutil.NewMockGit()
	uc := NewRevertCommit(git, testutil.NopLogger{})

	_, err := uc.Execute(context.Background(), RevertCommitInput{
		Request: domain.RevertRequest{
			Commit: "abc123",
			Keep:   []string{"secrets.env"},
			Just:   []string{"a.txt"},
		},
	})

	assert.ErrorIs(t, err, domain.ErrKeepJustExclusive)
	assert.Empty(t, git.Calls, "no repository mutation on configuration error")
}

func TestRevertCommit_Execute_UnknownCommit(t *testing.T) {
	git := testutil.NewMockGit()
	git.ResolvedCommits = map[string]string{} // resolves nothing
	uc := NewRevertCommit(git, testutil.NopLogger{})

	_, err := uc.Execute(context.Background(), RevertCommitInput{
		Request: domain.RevertRequest{Commit: "deadbeef", Just: []string{"a.txt"}},
	})

	assert.ErrorIs(t, err, domain.ErrCommitNotFound)
	assert.Empty(t, git.Calls)
}

func TestRevertCommit_Execute_JustMode(t *testing.T) {
	t.Run("restores, stages, and commits when dirty", func(t *testing.T) {
		git := testutil.NewMockGit()
		git.Dirty = true
		uc := NewRevertCommit(git, testutil.NopLogger{})

		out, err := uc.Execute(context.Background(), RevertCommitInput{
			Request: domain.RevertRequest{Commit: "abc123", Just: []string{"a.txt"}},
		})
		require.NoError(t, err)
		assert.True(t, out.Committed)
		assert.Equal(t, []string{
			"checkout abc123",
			"add-all",
			"commit Restore 1 file(s) from abc123",
		}, git.Calls)
	})

	t.Run("clean tree skips the commit", func(t *testing.T) {
		git := testutil.NewMockGit()
		git.Dirty = false
		uc := NewRevertCommit(git, testutil.NopLogger{})

		out, err := uc.Execute(context.Background(), RevertCommitInput{
			Request: domain.RevertRequest{Commit: "abc123", Just: []string{"a.txt"}},
		})
		require.NoError(t, err)
		assert.False(t, out.Committed)
		assert.Equal(t, []string{"checkout abc123"}, git.Calls)
	})
}

func TestRevertCommit_Execute_KeepMode(t *testing.T) {
	t.Run("missing preserve file aborts before the reset", func(t *testing.T) {
		git := testutil.NewMockGit()
		git.Root = t.TempDir() // secrets.env does not exist there
		uc := NewRevertCommit(git, testutil.NopLogger{})

		_, err := uc.Execute(context.Background(), RevertCommitInput{
			Request: domain.RevertRequest{Commit: "abc123", Keep: []string{"secrets.env"}},
		})

		assert.ErrorIs(t, err, domain.ErrFileNotFound)
		assert.Empty(t, git.Calls, "no destructive step may run on an invalid file list")
	})

	t.Run("preserved file survives the reset", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, "secrets.env"), []byte("KEY=1\n"), 0o644))

		git := testutil.NewMockGit()
		git.Root = root
		git.Dirty = true
		uc := NewRevertCommit(git, testutil.NopLogger{})

		out, err := uc.Execute(context.Background(), RevertCommitInput{
			Request: domain.RevertRequest{
				Commit:  "abc123",
				Keep:    []string{"secrets.env"},
				Message: "Revert deploy",
			},
		})
		require.NoError(t, err)
		assert.True(t, out.Committed)
		assert.Equal(t, []string{"secrets.env"}, out.Preserved)
		assert.Equal(t, []string{
			"reset-hard abc123",
			"add-all",
			"commit Revert deploy",
		}, git.Calls)

		content, err := os.ReadFile(filepath.Join(root, "secrets.env"))
		require.NoError(t, err)
		assert.Equal(t, "KEY=1\n", string(content))
	})

	t.Run("no preserve list is a plain reset", func(t *testing.T) {
		git := testutil.NewMockGit()
		git.Dirty = false
		uc := NewRevertCommit(git, testutil.NopLogger{})

		out, err := uc.Execute(context.Background(), RevertCommitInput{
			Request: domain.RevertRequest{Commit: "abc123"},
		})
		require.NoError(t, err)
		assert.False(t, out.Committed)
		assert.Equal(t, []string{"reset-hard abc123"}, git.Calls)
	})
}
