package config_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gtkbridge/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	m := config.NewManagerIn(t.TempDir())

	require.NoError(t, m.Load())

	assert.Equal(t, config.DefaultConfig(), m.Get())
	assert.Empty(t, m.GetConfigFile())
	assert.ErrorIs(t, m.Watch(), config.ErrNoConfigFile)
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	writeFile(t, dir, "config.toml", `
[window]
title = "From file"
width = 640

[logging]
level = "DEBUG"
`)
	t.Setenv("GTKBRIDGE_WIDGETS_BUTTON_LABEL", "From env")
	m := config.NewManagerIn(dir)

	// Act
	require.NoError(t, m.Load())
	cfg := m.Get()

	// Assert
	assert.Equal(t, "From file", cfg.Window.Title)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 70, cfg.Window.Height, "defaults fill missing keys")
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "From env", cfg.Widgets.ButtonLabel)
	assert.Equal(t, filepath.Join(dir, "config.toml"), m.GetConfigFile())
}

func TestLoad_InvalidValuesAreJoined(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.toml", `
[window]
width = 0

[widgets]
shortcut_folders = ["relative"]

[logging]
format = "xml"
`)
	m := config.NewManagerIn(dir)

	err := m.Load()

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "window size must be positive")
	assert.Contains(t, err.Error(), `"relative" must be an absolute path`)
	assert.Contains(t, err.Error(), "logging.format")
}

func TestGet_ReturnsCopy(t *testing.T) {
	m := config.NewManagerIn(t.TempDir())
	require.NoError(t, m.Load())

	cfg := m.Get()
	cfg.Window.Title = "mutated"
	cfg.Widgets.ShortcutFolders[0] = "/mutated"

	assert.Equal(t, "First GTK+ Program", m.Get().Window.Title)
	assert.Equal(t, []string{"/tmp"}, m.Get().Widgets.ShortcutFolders)
}

func TestWriteDefault_RoundTripsThroughLoad(t *testing.T) {
	dir := t.TempDir()

	path, err := config.WriteDefault(dir, false)
	require.NoError(t, err)
	_, err = config.WriteDefault(dir, false)
	assert.True(t, errors.Is(err, config.ErrConfigExists))

	m := config.NewManagerIn(dir)
	require.NoError(t, m.Load())
	assert.Equal(t, path, m.GetConfigFile())
	assert.Equal(t, config.DefaultConfig(), m.Get())
}

func TestSchema(t *testing.T) {
	data, err := config.Schema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "gtkbridge demo configuration", doc["title"])
	assert.Contains(t, string(data), "shortcut_folders")
	assert.Contains(t, string(data), "thread_checks")
}

func TestWatch_ReloadsAndNotifies(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", "[window]\ntitle = \"before\"\n")
	m := config.NewManagerIn(dir)
	require.NoError(t, m.Load())
	var title atomic.Value
	m.OnConfigChange(func(c *config.Config) { title.Store(c.Window.Title) })
	require.NoError(t, m.Watch())
	require.NoError(t, m.Watch(), "second Watch is a no-op")

	// Act
	require.NoError(t, os.WriteFile(path, []byte("[window]\ntitle = \"after\"\n"), 0o644))

	// Assert
	assert.Eventually(t, func() bool { return title.Load() == "after" }, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, "after", m.Get().Window.Title)
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatch_LogsReloadFailureAndKeepsConfig(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", "[window]\ntitle = \"before\"\n")
	m := config.NewManagerIn(dir)
	require.NoError(t, m.Load())
	var out syncBuffer
	m.SetLogger(zerolog.New(&out))
	notified := atomic.Bool{}
	m.OnConfigChange(func(*config.Config) { notified.Store(true) })
	require.NoError(t, m.Watch())

	// Act
	require.NoError(t, os.WriteFile(path, []byte("[window\ntitle = "), 0o644))

	// Assert
	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "failed to reload config")
	}, 5*time.Second, 20*time.Millisecond)
	assert.Contains(t, out.String(), `"level":"warn"`)
	assert.False(t, notified.Load())
	assert.Equal(t, "before", m.Get().Window.Title)
}
