package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sportlog/internal/domain"
	"sportlog/internal/ports"
)

// LoadCommand reads the logbook from storage and checks its references
type LoadCommand struct {
	store  ports.Storage
	logger *slog.Logger
}

// NewLoadCommand creates a new LoadCommand
func NewLoadCommand(store ports.Storage, logger *slog.Logger) *LoadCommand {
	return &LoadCommand{store: store, logger: logger}
}

// Execute loads the logbook. Exercises pointing outside the loaded sport-type
// graph make the load fail with domain.ErrDanglingReference.
func (c *LoadCommand) Execute(ctx context.Context) (*domain.Logbook, error) {
	start := time.Now()

	book, err := c.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load logbook: %w", err)
	}
	if _, err := domain.UpdateReferences(book); err != nil {
		return nil, fmt.Errorf("inconsistent logbook: %w", err)
	}

	c.logger.Info("logbook loaded",
		"sport_types", book.SportTypes.Len(),
		"exercises", book.Exercises.Len(),
		"notes", book.Notes.Len(),
		"weights", book.Weights.Len(),
		"duration", time.Since(start))
	return book, nil
}

// SaveCommand writes the logbook to storage
type SaveCommand struct {
	store  ports.Storage
	logger *slog.Logger
	book   *domain.Logbook
}

// NewSaveCommand creates a new SaveCommand
func NewSaveCommand(store ports.Storage, logger *slog.Logger, book *domain.Logbook) *SaveCommand {
	return &SaveCommand{store: store, logger: logger, book: book}
}

// Execute saves the logbook
func (c *SaveCommand) Execute(ctx context.Context) error {
	start := time.Now()
	if err := c.store.Save(ctx, c.book); err != nil {
		return fmt.Errorf("failed to save logbook: %w", err)
	}
	c.logger.Info("logbook saved",
		"exercises", c.book.Exercises.Len(),
		"duration", time.Since(start))
	return nil
}
