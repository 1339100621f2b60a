// Package storage selects the storage backend for the configured data format.
package storage

import (
	"fmt"
	"log/slog"

	"sportlog/internal/adapters/sqlite"
	"sportlog/internal/adapters/xmlfile"
	"sportlog/internal/config"
	"sportlog/internal/ports"
)

// Open returns the backend for settings.Format, defaulting to SQLite
func Open(settings config.DataSettings, logger *slog.Logger) (ports.Storage, error) {
	switch settings.Format {
	case config.FormatXML:
		store, err := xmlfile.Open(settings.Path, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.FormatSQLite, "":
		store, err := sqlite.Open(settings.Path, logger)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported data format %q", settings.Format)
	}
}
