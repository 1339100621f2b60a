package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"sportlog/internal/application"
	"sportlog/internal/domain"
)

// SportTypeResult contains the result of a sport type change
type SportTypeResult struct {
	SportType *domain.SportType
	Stats     *domain.UpdateStats
	Message   string
}

// SaveSportTypeCommand stores a new or edited sport type and rebinds every
// reference to the sport-type graph. SportType must be a fresh object or a
// Clone of the stored one, never the stored instance itself.
type SaveSportTypeCommand struct {
	book      *domain.Logbook
	logger    *slog.Logger
	SportType *domain.SportType
	Filters   []*domain.FilterCriteria
}

// NewSaveSportTypeCommand creates a new SaveSportTypeCommand
func NewSaveSportTypeCommand(book *domain.Logbook, logger *slog.Logger, sportType *domain.SportType, filters ...*domain.FilterCriteria) *SaveSportTypeCommand {
	return &SaveSportTypeCommand{
		book:      book,
		logger:    logger,
		SportType: sportType,
		Filters:   filters,
	}
}

// Validate checks the sport type on its own and against the other sport types
func (c *SaveSportTypeCommand) Validate() error {
	if c.SportType == nil {
		return &application.ValidationError{Field: "sportType", Message: "sport type is required"}
	}
	if err := application.ValidateRequired("name", c.SportType.Name); err != nil {
		return err
	}
	if c.SportType.SubTypes == nil || c.SportType.SubTypes.Len() == 0 {
		return &application.ValidationError{
			Field:   "subTypes",
			Message: "a sport type needs at least one subtype",
		}
	}

	if err := validateUniqueNames("subtype", c.SportType.SubTypes.All(), func(s *domain.SportSubType) string { return s.Name }); err != nil {
		return err
	}
	if c.SportType.Equipment != nil {
		if err := validateUniqueNames("equipment", c.SportType.Equipment.All(), func(e *domain.Equipment) string { return e.Name }); err != nil {
			return err
		}
	}

	for _, other := range c.book.SportTypes.All() {
		if other.ID != c.SportType.ID && strings.EqualFold(other.Name, strings.TrimSpace(c.SportType.Name)) {
			return &application.ValidationError{
				Field:   "name",
				Message: fmt.Sprintf("a sport type named %q already exists", other.Name),
			}
		}
	}
	return nil
}

// Execute stores the sport type and reconciles exercises, notes and filters
func (c *SaveSportTypeCommand) Execute(ctx context.Context) (*SportTypeResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	previous, existed := c.book.SportTypes.ByID(c.SportType.ID)
	if existed {
		if previous == c.SportType {
			return nil, fmt.Errorf("%w: sport type %d must be edited on a clone", application.ErrInvalidOperation, c.SportType.ID)
		}
		if err := c.checkRemovedChildren(previous); err != nil {
			return nil, err
		}
	}
	if c.SportType.ID == 0 {
		c.SportType.ID = c.book.SportTypes.NextID()
	}

	c.book.SportTypes.Set(c.SportType)

	stats, err := domain.UpdateReferences(c.book, c.Filters...)
	if err != nil {
		// restore the graph the exercises still point into
		if existed {
			c.book.SportTypes.Set(previous)
		} else {
			c.book.SportTypes.RemoveByID(c.SportType.ID)
		}
		return nil, fmt.Errorf("failed to update references: %w", err)
	}

	c.logger.Info("sport type saved",
		"id", c.SportType.ID,
		"name", c.SportType.Name,
		"exercises_rebound", stats.ExercisesRebound,
		"filter_fields_cleared", stats.FilterFieldsCleared)

	return &SportTypeResult{
		SportType: c.SportType,
		Stats:     stats,
		Message:   fmt.Sprintf("Saved sport type: %d %s", c.SportType.ID, c.SportType.Name),
	}, nil
}

// checkRemovedChildren refuses to drop subtypes or equipment still used by exercises
func (c *SaveSportTypeCommand) checkRemovedChildren(previous *domain.SportType) error {
	for _, sub := range previous.SubTypes.All() {
		if _, kept := c.SportType.SubTypeByID(sub.ID); !kept && c.book.Exercises.UsesSportSubType(previous.ID, sub.ID) {
			return &application.InUseError{Kind: "sport subtype", Name: sub.Name}
		}
	}
	for _, eq := range previous.Equipment.All() {
		if _, kept := c.SportType.EquipmentByID(eq.ID); !kept && c.book.Exercises.UsesEquipment(previous.ID, eq.ID) {
			return &application.InUseError{Kind: "equipment", Name: eq.Name}
		}
	}
	return nil
}

func validateUniqueNames[T any](kind string, items []T, name func(T) string) error {
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		n := strings.ToLower(strings.TrimSpace(name(item)))
		if n == "" {
			return &application.ValidationError{Field: kind, Message: fmt.Sprintf("%s name is required", kind)}
		}
		if seen[n] {
			return &application.ValidationError{Field: kind, Message: fmt.Sprintf("duplicate %s name %q", kind, name(item))}
		}
		seen[n] = true
	}
	return nil
}

// DeleteSportTypeCommand removes a sport type that no exercise uses
type DeleteSportTypeCommand struct {
	book    *domain.Logbook
	logger  *slog.Logger
	ID      int
	Filters []*domain.FilterCriteria
}

// NewDeleteSportTypeCommand creates a new DeleteSportTypeCommand
func NewDeleteSportTypeCommand(book *domain.Logbook, logger *slog.Logger, id int, filters ...*domain.FilterCriteria) *DeleteSportTypeCommand {
	return &DeleteSportTypeCommand{
		book:    book,
		logger:  logger,
		ID:      id,
		Filters: filters,
	}
}

// Execute removes the sport type; notes and filters referencing it are cleared
func (c *DeleteSportTypeCommand) Execute(ctx context.Context) (*SportTypeResult, error) {
	sportType, ok := c.book.SportTypes.ByID(c.ID)
	if !ok {
		return nil, &application.NotFoundError{Kind: "sport type", ID: c.ID}
	}
	if c.book.Exercises.UsesSportType(c.ID) {
		return nil, &application.InUseError{Kind: "sport type", Name: sportType.Name}
	}

	c.book.SportTypes.RemoveByID(c.ID)

	stats, err := domain.UpdateReferences(c.book, c.Filters...)
	if err != nil {
		c.book.SportTypes.Set(sportType)
		return nil, fmt.Errorf("failed to update references: %w", err)
	}

	c.logger.Info("sport type deleted",
		"id", sportType.ID,
		"name", sportType.Name,
		"note_refs_cleared", stats.NoteRefsCleared,
		"filter_fields_cleared", stats.FilterFieldsCleared)

	return &SportTypeResult{
		SportType: sportType,
		Stats:     stats,
		Message:   fmt.Sprintf("Deleted sport type: %d %s", sportType.ID, sportType.Name),
	}, nil
}

// EditSportType clones the stored sport type, applies edit to the clone and
// saves it through SaveSportTypeCommand.
func EditSportType(ctx context.Context, book *domain.Logbook, logger *slog.Logger, id int, edit func(st *domain.SportType) error, filters ...*domain.FilterCriteria) (*SportTypeResult, error) {
	stored, ok := book.SportTypes.ByID(id)
	if !ok {
		return nil, &application.NotFoundError{Kind: "sport type", ID: id}
	}

	clone := stored.Clone()
	if err := edit(clone); err != nil {
		return nil, err
	}
	return NewSaveSportTypeCommand(book, logger, clone, filters...).Execute(ctx)
}
