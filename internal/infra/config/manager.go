package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/okigami/repoctl/internal/domain"
)

// defaultConfigTemplate is written by `repoctl config init`.
const defaultConfigTemplate = `# repoctl configuration

# Default remote for push operations.
remote = "origin"

[release]
# Create releases as drafts by default.
draft = false
# Ask the hosting service to generate release notes by default.
generate_notes = false

[runs]
# Default number of workflow runs to list.
limit = 20

[log]
# Log level: debug, info, warn, error
level = "info"
`

// Manager creates and inspects configuration files.
type Manager struct {
	ctlDir string
}

// NewManager creates a new Manager.
func NewManager(ctlDir string) *Manager {
	return &Manager{ctlDir: ctlDir}
}

// Init writes the default config file into the repo's ctl directory.
// Returns the written path, or an error if the file already exists.
func (m *Manager) Init() (string, error) {
	path := filepath.Join(m.ctlDir, domain.ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config file already exists: %s", path)
	}
	if err := os.MkdirAll(m.ctlDir, 0o750); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0o600); err != nil {
		return "", fmt.Errorf("write config file: %w", err)
	}
	return path, nil
}

// Path returns the repo config file path, whether or not it exists.
func (m *Manager) Path() string {
	return filepath.Join(m.ctlDir, domain.ConfigFileName)
}
