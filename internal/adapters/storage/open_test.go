package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportlog/internal/adapters/sqlite"
	"sportlog/internal/adapters/xmlfile"
	"sportlog/internal/config"
	"sportlog/internal/domain/domaintest"
	"sportlog/internal/logging"
)

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name     string
		settings config.DataSettings
		wantType any
		wantErr  bool
	}{
		{
			name:     "sqlite",
			settings: config.DataSettings{Path: filepath.Join(dir, "log.db"), Format: config.FormatSQLite},
			wantType: &sqlite.Store{},
		},
		{
			name:     "default is sqlite",
			settings: config.DataSettings{Path: filepath.Join(dir, "other.db")},
			wantType: &sqlite.Store{},
		},
		{
			name:     "xml",
			settings: config.DataSettings{Path: filepath.Join(dir, "log.xml"), Format: config.FormatXML},
			wantType: &xmlfile.Store{},
		},
		{
			name:     "unknown format",
			settings: config.DataSettings{Path: filepath.Join(dir, "log.csv"), Format: "csv"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := Open(tt.settings, logging.Discard())
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, store)
				return
			}
			require.NoError(t, err)
			t.Cleanup(func() { store.Close() })
			assert.IsType(t, tt.wantType, store)
		})
	}
}

func TestOpen_RoundTripBothFormats(t *testing.T) {
	dir := t.TempDir()
	for _, format := range []string{config.FormatSQLite, config.FormatXML} {
		t.Run(format, func(t *testing.T) {
			ctx := context.Background()
			settings := config.DataSettings{Path: filepath.Join(dir, "book."+format), Format: format}

			store, err := Open(settings, logging.Discard())
			require.NoError(t, err)
			defer store.Close()

			require.NoError(t, store.Save(ctx, domaintest.NewLogbook()))
			book, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, 2, book.SportTypes.Len())
			assert.Equal(t, 3, book.Exercises.Len())
			assert.Equal(t, 3, book.Notes.Len())
			assert.Equal(t, 2, book.Weights.Len())
		})
	}
}
