package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/okigami/repoctl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, "origin", cfg.Remote)
	assert.Equal(t, 20, cfg.Runs.Limit)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Release.Draft)
}

func TestLoader_Load_RepoOverridesGlobal(t *testing.T) {
	ctlDir := t.TempDir()
	globalDir := t.TempDir()

	writeConfig(t, globalDir, `
remote = "upstream"

[log]
level = "debug"
`)
	writeConfig(t, ctlDir, `
remote = "fork"

[release]
draft = true
`)

	loader := NewLoaderWithGlobalDir(ctlDir, globalDir)
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "fork", cfg.Remote, "repo config wins")
	assert.Equal(t, "debug", cfg.Log.Level, "global fills unset repo keys")
	assert.True(t, cfg.Release.Draft)
	assert.Equal(t, 20, cfg.Runs.Limit, "defaults fill the rest")
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	ctlDir := t.TempDir()
	writeConfig(t, ctlDir, "not [valid toml")

	loader := NewLoaderWithGlobalDir(ctlDir, t.TempDir())
	_, err := loader.Load()
	assert.Error(t, err)
}

func TestLoader_LoadGlobal_Missing(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), t.TempDir())
	_, err := loader.LoadGlobal()
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestManager_Init(t *testing.T) {
	t.Run("writes a parseable default config", func(t *testing.T) {
		ctlDir := filepath.Join(t.TempDir(), "repoctl")
		manager := NewManager(ctlDir)

		path, err := manager.Init()
		require.NoError(t, err)
		assert.Equal(t, manager.Path(), path)

		loader := NewLoaderWithGlobalDir(ctlDir, t.TempDir())
		cfg, err := loader.Load()
		require.NoError(t, err)
		assert.Equal(t, "origin", cfg.Remote)
	})

	t.Run("refuses to overwrite an existing config", func(t *testing.T) {
		ctlDir := t.TempDir()
		writeConfig(t, ctlDir, `remote = "origin"`)

		_, err := NewManager(ctlDir).Init()
		assert.Error(t, err)
	})
}
