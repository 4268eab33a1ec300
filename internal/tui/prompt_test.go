package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmModel_Update(t *testing.T) {
	t.Run("y answers yes and quits", func(t *testing.T) {
		model, cmd := NewConfirm("Delete 3 runs?").Update(keyMsg("y"))
		confirm, ok := model.(ConfirmModel)
		require.True(t, ok)
		assert.True(t, confirm.Answer)
		assert.True(t, confirm.Done)
		assert.NotNil(t, cmd)
	})

	t.Run("n answers no", func(t *testing.T) {
		model, _ := NewConfirm("Delete 3 runs?").Update(keyMsg("n"))
		confirm := model.(ConfirmModel)
		assert.False(t, confirm.Answer)
		assert.True(t, confirm.Done)
	})

	t.Run("enter defaults to no", func(t *testing.T) {
		model, _ := NewConfirm("Delete 3 runs?").Update(tea.KeyMsg{Type: tea.KeyEnter})
		confirm := model.(ConfirmModel)
		assert.False(t, confirm.Answer)
		assert.True(t, confirm.Done)
	})

	t.Run("other keys keep the prompt open", func(t *testing.T) {
		model, cmd := NewConfirm("Delete 3 runs?").Update(keyMsg("x"))
		confirm := model.(ConfirmModel)
		assert.False(t, confirm.Done)
		assert.Nil(t, cmd)
		assert.Contains(t, confirm.View(), "Delete 3 runs?")
	})
}

func TestSecretModel_Update(t *testing.T) {
	t.Run("typed value stays masked in the view", func(t *testing.T) {
		var model tea.Model = NewSecretPrompt("Secret value for DEPLOY_KEY")
		for _, r := range "hunter2" {
			model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}
		secret := model.(SecretModel)
		assert.Equal(t, "hunter2", secret.Value())
		assert.NotContains(t, secret.View(), "hunter2")
	})

	t.Run("enter completes the prompt", func(t *testing.T) {
		model, cmd := NewSecretPrompt("Secret").Update(tea.KeyMsg{Type: tea.KeyEnter})
		secret := model.(SecretModel)
		assert.True(t, secret.Done)
		assert.False(t, secret.Canceled)
		assert.NotNil(t, cmd)
	})

	t.Run("escape cancels", func(t *testing.T) {
		model, _ := NewSecretPrompt("Secret").Update(tea.KeyMsg{Type: tea.KeyEsc})
		secret := model.(SecretModel)
		assert.True(t, secret.Canceled)
	})
}
