// Package config loads sportlog settings from config.yaml and SPORTLOG_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultDataPath = "~/.local/share/sportlog/sportlog.db"
	FormatSQLite    = "sqlite"
	FormatXML       = "xml"
)

// Settings holds the resolved configuration
type Settings struct {
	Data DataSettings `mapstructure:"data"`
	Log  LogSettings  `mapstructure:"log"`
}

// DataSettings selects the logbook file and its storage format
type DataSettings struct {
	Path   string `mapstructure:"path"`
	Format string `mapstructure:"format"`
}

// LogSettings configures logging
type LogSettings struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load reads config.yaml from the config directories (a missing file is fine),
// applies SPORTLOG_* overrides and validates the result.
func Load() (*Settings, error) {
	return load(defaultConfigPaths())
}

func load(paths []string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	settings := &Settings{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if settings.Data.Format == "" {
		settings.Data.Format = FormatFromPath(settings.Data.Path)
	}
	settings.Data.Format = strings.ToLower(settings.Data.Format)
	if settings.Data.Format != FormatSQLite && settings.Data.Format != FormatXML {
		return nil, fmt.Errorf("unsupported data format %q (want %s or %s)", settings.Data.Format, FormatSQLite, FormatXML)
	}

	return settings, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.path", DefaultDataPath)
	v.SetDefault("data.format", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", filepath.Join(stateDir(), "sportlog.log"))
}

// bindEnv maps every key to SPORTLOG_<SECTION>_<KEY>. SPORTLOG_DATA is
// accepted as the short form of SPORTLOG_DATA_PATH.
func bindEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"data.path":   {"SPORTLOG_DATA_PATH", "SPORTLOG_DATA"},
		"data.format": {"SPORTLOG_DATA_FORMAT"},
		"log.level":   {"SPORTLOG_LOG_LEVEL"},
		"log.file":    {"SPORTLOG_LOG_FILE"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}
	return nil
}

// FormatFromPath guesses the storage format from a file extension
func FormatFromPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".xml") {
		return FormatXML
	}
	return FormatSQLite
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

func defaultConfigPaths() []string {
	var paths []string
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		paths = append(paths, filepath.Join(dir, "sportlog"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "sportlog"))
	}
	return append(paths, ".")
}

func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "sportlog")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "state", "sportlog")
}
