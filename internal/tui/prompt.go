// Package tui provides the interactive prompts for repoctl.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#636E72"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#D63031")).Bold(true)
)

// ConfirmModel is a y/N confirmation prompt for destructive operations.
// Fields are ordered to minimize memory padding.
type ConfirmModel struct {
	Question string
	Answer   bool
	Done     bool
}

// NewConfirm creates a confirmation prompt.
func NewConfirm(question string) ConfirmModel {
	return ConfirmModel{Question: question}
}

// Init implements tea.Model.
func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Anything other than an explicit yes
// answers no.
func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		m.Answer = true
		m.Done = true
		return m, tea.Quit
	case "n", "N", "enter", "esc", "ctrl+c":
		m.Answer = false
		m.Done = true
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m ConfirmModel) View() string {
	if m.Done {
		return ""
	}
	return fmt.Sprintf("%s %s %s\n",
		warnStyle.Render("!"),
		questionStyle.Render(m.Question),
		hintStyle.Render("[y/N]"),
	)
}

// Confirm runs the prompt and returns the user's answer.
func Confirm(question string) (bool, error) {
	model, err := tea.NewProgram(NewConfirm(question)).Run()
	if err != nil {
		return false, err
	}
	confirm, ok := model.(ConfirmModel)
	if !ok {
		return false, fmt.Errorf("unexpected prompt model type")
	}
	return confirm.Answer, nil
}

// SecretModel is a masked input prompt for secret values, so the
// plaintext never appears on screen.
// Fields are ordered to minimize memory padding.
type SecretModel struct {
	input    textinput.Model
	Label    string
	Canceled bool
	Done     bool
}

// NewSecretPrompt creates a masked secret input prompt.
func NewSecretPrompt(label string) SecretModel {
	input := textinput.New()
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Prompt = ""
	input.Focus()
	return SecretModel{input: input, Label: label}
}

// Init implements tea.Model.
func (m SecretModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m SecretModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.Done = true
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.Canceled = true
			m.Done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m SecretModel) View() string {
	if m.Done {
		return ""
	}
	return fmt.Sprintf("%s %s\n%s\n",
		questionStyle.Render(m.Label),
		hintStyle.Render("(input is hidden)"),
		m.input.View(),
	)
}

// Value returns the entered secret.
func (m SecretModel) Value() string {
	return m.input.Value()
}

// AskSecret runs the masked prompt and returns the entered value.
// A canceled prompt returns an empty string and no error.
func AskSecret(label string) (string, error) {
	model, err := tea.NewProgram(NewSecretPrompt(label)).Run()
	if err != nil {
		return "", err
	}
	secret, ok := model.(SecretModel)
	if !ok {
		return "", fmt.Errorf("unexpected prompt model type")
	}
	if secret.Canceled {
		return "", nil
	}
	return secret.Value(), nil
}
