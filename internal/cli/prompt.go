package cli

import "github.com/okigami/repoctl/internal/tui"

// defaultConfirm shows the interactive confirmation prompt.
func defaultConfirm(question string) (bool, error) {
	return tui.Confirm(question)
}

// askSecretFunc is a function variable for the masked secret prompt,
// allowing it to be mocked in tests.
var askSecretFunc = tui.AskSecret
