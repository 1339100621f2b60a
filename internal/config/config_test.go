package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SPORTLOG_DATA", "SPORTLOG_DATA_PATH", "SPORTLOG_DATA_FORMAT", "SPORTLOG_LOG_LEVEL", "SPORTLOG_LOG_FILE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	settings, err := load([]string{t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, DefaultDataPath, settings.Data.Path)
	assert.Equal(t, FormatSQLite, settings.Data.Format)
	assert.Equal(t, "info", settings.Log.Level)
	assert.NotEmpty(t, settings.Log.File)
}

func TestLoadConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	content := "data:\n  path: /tmp/training.xml\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	settings, err := load([]string{dir})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/training.xml", settings.Data.Path)
	assert.Equal(t, FormatXML, settings.Data.Format)
	assert.Equal(t, "debug", settings.Log.Level)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SPORTLOG_DATA", "/data/log.db")
	t.Setenv("SPORTLOG_LOG_LEVEL", "warn")

	settings, err := load([]string{t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, "/data/log.db", settings.Data.Path)
	assert.Equal(t, "warn", settings.Log.Level)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	clearEnv(t)
	t.Setenv("SPORTLOG_DATA_FORMAT", "csv")

	_, err := load([]string{t.TempDir()})
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatXML, FormatFromPath("log.XML"))
	assert.Equal(t, FormatSQLite, FormatFromPath("log.db"))
	assert.Equal(t, FormatSQLite, FormatFromPath(""))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := ExpandHome("~/sportlog.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "sportlog.db"), got)

	got, err = ExpandHome("/abs/path")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path", got)
}
