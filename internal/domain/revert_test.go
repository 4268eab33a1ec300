package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRevertRequest_Validate(t *testing.T) {
	t.Run("keep and just together is a configuration error", func(t *testing.T) {
		req := RevertRequest{
			Commit: "abc123",
			Keep:   []string{"secrets.env"},
			Just:   []string{"a.txt"},
		}
		assert.ErrorIs(t, req.Validate(), ErrKeepJustExclusive)
	})

	t.Run("empty commitish is rejected", func(t *testing.T) {
		req := RevertRequest{Keep: []string{"a.txt"}}
		assert.ErrorIs(t, req.Validate(), ErrCommitNotFound)
	})

	t.Run("keep alone is valid", func(t *testing.T) {
		req := RevertRequest{Commit: "abc123", Keep: []string{"a.txt"}}
		assert.NoError(t, req.Validate())
	})

	t.Run("just alone is valid", func(t *testing.T) {
		req := RevertRequest{Commit: "abc123", Just: []string{"a.txt"}}
		assert.NoError(t, req.Validate())
	})

	t.Run("neither list is valid", func(t *testing.T) {
		req := RevertRequest{Commit: "abc123"}
		assert.NoError(t, req.Validate())
	})
}

func TestRevertRequest_CommitMessage(t *testing.T) {
	t.Run("explicit message wins", func(t *testing.T) {
		req := RevertRequest{Commit: "abc123", Message: "custom"}
		assert.Equal(t, "custom", req.CommitMessage())
	})

	t.Run("just mode generates a restore message", func(t *testing.T) {
		req := RevertRequest{Commit: "abc123", Just: []string{"a.txt", "b.txt"}}
		assert.Equal(t, "Restore 2 file(s) from abc123", req.CommitMessage())
	})

	t.Run("keep mode generates a revert message", func(t *testing.T) {
		req := RevertRequest{Commit: "abc123", Keep: []string{"a.txt"}}
		assert.Equal(t, "Revert to abc123", req.CommitMessage())
	})
}
