package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCommandResult(t *testing.T) {
	t.Run("splits output into lines", func(t *testing.T) {
		res := NewCommandResult([]byte("one\ntwo\n"), 0)
		assert.Equal(t, []string{"one", "two"}, res.Lines)
		assert.Equal(t, 0, res.ExitCode)
	})

	t.Run("empty output yields no lines", func(t *testing.T) {
		res := NewCommandResult(nil, 1)
		assert.Empty(t, res.Lines)
		assert.Equal(t, 1, res.ExitCode)
	})
}

func TestCommandResult_Contains(t *testing.T) {
	res := NewCommandResult([]byte("release not found\ncleaning up\n"), 1)
	assert.True(t, res.Contains("not found"))
	assert.False(t, res.Contains("success"))
}

func TestCommandError_Error(t *testing.T) {
	spec := NewGHCommand("", "release", "delete", "v1.0.0")
	err := &CommandError{
		Spec:   spec,
		Result: NewCommandResult([]byte("release not found\n"), 1),
	}
	assert.Contains(t, err.Error(), "gh release delete v1.0.0")
	assert.Contains(t, err.Error(), "exit status 1")
	assert.Contains(t, err.Error(), "release not found")
}

func TestAsCommandError(t *testing.T) {
	inner := &CommandError{Spec: NewGitCommand("", "push")}
	wrapped := assert.AnError

	got, ok := AsCommandError(inner)
	assert.True(t, ok)
	assert.Same(t, inner, got)

	_, ok = AsCommandError(wrapped)
	assert.False(t, ok)
}

func TestRedact(t *testing.T) {
	t.Run("masks the secret everywhere", func(t *testing.T) {
		out := Redact("set TOKEN to hunter22 (was hunter22)", "hunter22")
		assert.NotContains(t, out, "hunter22")
		assert.Contains(t, out, RedactionMask)
	})

	t.Run("leaves short secrets alone", func(t *testing.T) {
		out, secret := "value is ab", "ab"
		assert.Equal(t, out, Redact(out, secret))
	})
}
