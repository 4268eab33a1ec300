package logging

import (
	"log/slog"
	"os"
	"testing"

	"github.com/okigami/repoctl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readLog(t *testing.T, ctlDir string) string {
	t.Helper()
	data, err := os.ReadFile(domain.LogPath(ctlDir))
	require.NoError(t, err)
	return string(data)
}

func TestLogger_WritesFormattedEntries(t *testing.T) {
	ctlDir := t.TempDir()
	logger := New(ctlDir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("release", "created v1.0.0")

	content := readLog(t, ctlDir)
	assert.Contains(t, content, "[INFO] [release] created v1.0.0")
}

func TestLogger_LevelFilter(t *testing.T) {
	ctlDir := t.TempDir()
	logger := New(ctlDir, slog.LevelWarn)
	defer func() { _ = logger.Close() }()

	logger.Info("release", "below threshold")
	logger.Error("release", "above threshold")

	content := readLog(t, ctlDir)
	assert.NotContains(t, content, "below threshold")
	assert.Contains(t, content, "above threshold")
}

func TestLogger_MaskSecret(t *testing.T) {
	ctlDir := t.TempDir()
	logger := New(ctlDir, slog.LevelDebug)
	defer func() { _ = logger.Close() }()

	logger.MaskSecret("hunter2222")
	logger.Info("secret", "set DEPLOY_KEY to hunter2222")

	content := readLog(t, ctlDir)
	assert.NotContains(t, content, "hunter2222")
	assert.Contains(t, content, domain.RedactionMask)
}

func TestLogger_DisabledWhenNoDir(t *testing.T) {
	logger := New("", slog.LevelInfo)
	// Must not panic or create files.
	logger.Info("release", "ignored")
	assert.NoError(t, logger.Close())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
