// Package xmlfile stores the logbook as a single XML document.
package xmlfile

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"sportlog/internal/config"
	"sportlog/internal/domain"
	"sportlog/internal/ports"
)

// Store implements ports.Storage on an XML file
type Store struct {
	path   string
	logger *slog.Logger
}

// Ensure Store implements Storage
var _ ports.Storage = (*Store)(nil)

// Open returns a store for the file at path. The file is created on first Save.
func Open(path string, logger *slog.Logger) (*Store, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, logger: logger}, nil
}

// Load reads the logbook. A missing file yields an empty logbook.
func (s *Store) Load(ctx context.Context) (*domain.Logbook, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info("logbook file not found, starting empty", "path", s.path)
		return domain.NewLogbook(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var doc document
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal logbook: %w", err)
	}
	if doc.Version != formatVersion {
		return nil, fmt.Errorf("unsupported logbook version %q", doc.Version)
	}
	return doc.logbook()
}

// Save writes the logbook to a temporary file and renames it over the target
func (s *Store) Save(ctx context.Context, book *domain.Logbook) error {
	data, err := xml.MarshalIndent(newDocument(book), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal logbook: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".sportlog-*.xml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append([]byte(xml.Header), data...)); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.path, err)
	}

	s.logger.Debug("xml save finished", "path", s.path, "bytes", len(data))
	return nil
}

// Close is a no-op; the file is only open during Load and Save
func (s *Store) Close() error {
	return nil
}
