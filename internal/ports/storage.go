package ports

import (
	"context"

	"sportlog/internal/domain"
)

// Storage loads and saves the complete logbook.
// Loaded collections are internally consistent: exercise and note references
// point into the loaded sport-type graph.
type Storage interface {
	Load(ctx context.Context) (*domain.Logbook, error)
	Save(ctx context.Context, book *domain.Logbook) error
	Close() error
}
