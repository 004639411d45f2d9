package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/notesift/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	defer l.Close()

	assert.Empty(t, l.FilePath())
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "notesift.log")

	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg.LogFile, l.FilePath())

	l.Info("to file")
	l.Warn("a warning")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(b), "[INFO] to file")
	assert.Contains(t, string(b), "[WARN] a warning")
}

func TestNewLogger_CreatesLogDir(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "logs", "run.log")

	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	l.Info("hello")
	require.NoError(t, l.Close())

	_, err = os.Stat(cfg.LogFile)
	assert.NoError(t, err)
}

func TestDebug_GatedByVerbose(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "run.log")

	l, err := NewLogger(&cfg)
	require.NoError(t, err)
	l.Debug(false, "hidden")
	l.Debug(true, "shown")
	require.NoError(t, l.Close())

	b, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hidden")
	assert.Contains(t, string(b), "shown")
}
