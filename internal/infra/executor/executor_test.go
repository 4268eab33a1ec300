package executor

import (
	"runtime"
	"strings"
	"testing"

	"github.com/okigami/repoctl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Execute(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}

	client := NewClient()

	t.Run("captures command output as lines", func(t *testing.T) {
		spec := &domain.CommandSpec{Program: "echo", Args: []string{"hello"}}
		res, err := client.Execute(spec)
		require.NoError(t, err)
		assert.Equal(t, []string{"hello"}, res.Lines)
		assert.Equal(t, 0, res.ExitCode)
	})

	t.Run("executes in the spec's directory", func(t *testing.T) {
		dir := t.TempDir()
		spec := &domain.CommandSpec{Program: "pwd", Dir: dir}
		res, err := client.Execute(spec)
		require.NoError(t, err)
		assert.Contains(t, strings.Join(res.Lines, "\n"), dir)
	})

	t.Run("missing binary is an environment error", func(t *testing.T) {
		spec := &domain.CommandSpec{Program: "repoctl-no-such-tool-xyz"}
		_, err := client.Execute(spec)
		assert.ErrorIs(t, err, domain.ErrToolNotFound)
	})

	t.Run("non-zero exit carries captured output", func(t *testing.T) {
		spec := &domain.CommandSpec{
			Program: "sh",
			Args:    []string{"-c", "echo broken >&2; exit 3"},
		}
		_, err := client.Execute(spec)
		require.Error(t, err)

		cmdErr, ok := domain.AsCommandError(err)
		require.True(t, ok)
		assert.Equal(t, 3, cmdErr.Result.ExitCode)
		assert.True(t, cmdErr.Result.Contains("broken"))
	})

	t.Run("captures stderr interleaved with stdout", func(t *testing.T) {
		spec := &domain.CommandSpec{
			Program: "sh",
			Args:    []string{"-c", "echo out; echo err >&2"},
		}
		res, err := client.Execute(spec)
		require.NoError(t, err)
		assert.Len(t, res.Lines, 2)
	})
}

func TestClient_ExecuteInteractive_MissingBinary(t *testing.T) {
	client := NewClient()
	spec := &domain.CommandSpec{Program: "repoctl-no-such-tool-xyz"}
	err := client.ExecuteInteractive(spec)
	assert.ErrorIs(t, err, domain.ErrToolNotFound)
}
