package sqlite

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"sportlog/internal/config"
	"sportlog/internal/domain"
	"sportlog/internal/ports"
)

const schemaVersion = "1"

// Store implements ports.Storage on a SQLite database
type Store struct {
	db     *sqlx.DB
	path   string
	logger *slog.Logger
}

// Ensure Store implements Storage
var _ ports.Storage = (*Store)(nil)

// Open opens or creates the database at path
func Open(path string, logger *slog.Logger) (*Store, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// WAL mode for better concurrency
	db, err := sqlx.Connect("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db, path: path, logger: logger}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	logger.Debug("sqlite store opened", "path", path)
	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS sport_types (
			id INTEGER PRIMARY KEY,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			icon TEXT NOT NULL DEFAULT '',
			color TEXT NOT NULL DEFAULT '',
			record_distance INTEGER NOT NULL DEFAULT 1
		);
		CREATE TABLE IF NOT EXISTS sport_subtypes (
			sport_type_id INTEGER NOT NULL REFERENCES sport_types(id) ON DELETE CASCADE,
			id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			PRIMARY KEY (sport_type_id, id)
		);
		CREATE TABLE IF NOT EXISTS equipment (
			sport_type_id INTEGER NOT NULL REFERENCES sport_types(id) ON DELETE CASCADE,
			id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			not_in_use INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (sport_type_id, id)
		);
		CREATE TABLE IF NOT EXISTS exercises (
			id INTEGER PRIMARY KEY,
			date_time TEXT NOT NULL,
			sport_type_id INTEGER NOT NULL,
			sport_subtype_id INTEGER NOT NULL,
			equipment_id INTEGER,
			intensity TEXT NOT NULL,
			duration INTEGER NOT NULL DEFAULT 0,
			distance REAL NOT NULL DEFAULT 0,
			avg_speed REAL NOT NULL DEFAULT 0,
			avg_heart_rate INTEGER NOT NULL DEFAULT 0,
			ascent INTEGER NOT NULL DEFAULT 0,
			calories INTEGER NOT NULL DEFAULT 0,
			hrm_file TEXT NOT NULL DEFAULT '',
			comment TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS notes (
			id INTEGER PRIMARY KEY,
			date_time TEXT NOT NULL,
			text TEXT NOT NULL,
			sport_type_id INTEGER,
			equipment_id INTEGER
		);
		CREATE TABLE IF NOT EXISTS weights (
			id INTEGER PRIMARY KEY,
			date_time TEXT NOT NULL,
			value REAL NOT NULL,
			comment TEXT NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_exercises_date ON exercises(date_time);
	`)
	if err != nil {
		return err
	}

	var version string
	err = s.db.Get(&version, `SELECT value FROM meta WHERE key = 'schema_version'`)
	if err == nil && version != schemaVersion {
		return fmt.Errorf("unsupported schema version %s (want %s)", version, schemaVersion)
	}

	_, err = s.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion)
	return err
}

// Load reads the whole logbook. Entries point at placeholder graph objects
// carrying only IDs; run domain.UpdateReferences to bind them.
func (s *Store) Load(ctx context.Context) (*domain.Logbook, error) {
	start := time.Now()
	book := domain.NewLogbook()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	l := &loadTx{ctx: ctx, tx: tx}
	if err := l.sportTypes(book.SportTypes); err != nil {
		return nil, fmt.Errorf("failed to load sport types: %w", err)
	}
	if err := l.exercises(book.Exercises); err != nil {
		return nil, fmt.Errorf("failed to load exercises: %w", err)
	}
	if err := l.notes(book.Notes); err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}
	if err := l.weights(book.Weights); err != nil {
		return nil, fmt.Errorf("failed to load weights: %w", err)
	}

	s.logger.Debug("sqlite load finished", "path", s.path, "duration", time.Since(start))
	return book, nil
}

// Save replaces the stored logbook in a single transaction
func (s *Store) Save(ctx context.Context, book *domain.Logbook) error {
	start := time.Now()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	w := &saveTx{ctx: ctx, tx: tx}
	if err := w.clear(); err != nil {
		return fmt.Errorf("failed to clear tables: %w", err)
	}
	if err := w.sportTypes(book.SportTypes.All()); err != nil {
		return fmt.Errorf("failed to save sport types: %w", err)
	}
	if err := w.exercises(book.Exercises.All()); err != nil {
		return fmt.Errorf("failed to save exercises: %w", err)
	}
	if err := w.notes(book.Notes.All()); err != nil {
		return fmt.Errorf("failed to save notes: %w", err)
	}
	if err := w.weights(book.Weights.All()); err != nil {
		return fmt.Errorf("failed to save weights: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	s.logger.Debug("sqlite save finished", "path", s.path, "duration", time.Since(start))
	return nil
}
