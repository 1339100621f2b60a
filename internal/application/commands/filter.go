package commands

import (
	"context"
	"fmt"

	"sportlog/internal/application"
	"sportlog/internal/domain"
)

// FilterEntriesResult holds the entries of one kind that passed the filter,
// newest first. Only the slice matching Kind is set.
type FilterEntriesResult struct {
	Kind      domain.EntryKind
	Exercises []*domain.Exercise
	Notes     []*domain.Note
	Weights   []*domain.Weight
}

// Entries returns the selected entries regardless of their kind
func (r *FilterEntriesResult) Entries() []domain.Entry {
	var out []domain.Entry
	switch r.Kind {
	case domain.EntryKindExercise:
		out = make([]domain.Entry, 0, len(r.Exercises))
		for _, e := range r.Exercises {
			out = append(out, e)
		}
	case domain.EntryKindNote:
		out = make([]domain.Entry, 0, len(r.Notes))
		for _, n := range r.Notes {
			out = append(out, n)
		}
	case domain.EntryKindWeight:
		out = make([]domain.Entry, 0, len(r.Weights))
		for _, w := range r.Weights {
			out = append(out, w)
		}
	}
	return out
}

// Len returns the number of selected entries
func (r *FilterEntriesResult) Len() int {
	return len(r.Exercises) + len(r.Notes) + len(r.Weights)
}

// FilterEntriesCommand selects the entries of the criteria's kind
type FilterEntriesCommand struct {
	book     *domain.Logbook
	Criteria *domain.FilterCriteria
}

// NewFilterEntriesCommand creates a new FilterEntriesCommand
func NewFilterEntriesCommand(book *domain.Logbook, criteria *domain.FilterCriteria) *FilterEntriesCommand {
	return &FilterEntriesCommand{
		book:     book,
		Criteria: criteria,
	}
}

// Validate checks if the filter can be applied
func (c *FilterEntriesCommand) Validate() error {
	if c.Criteria == nil {
		return &application.ValidationError{
			Field:   "criteria",
			Message: "filter criteria are required",
		}
	}
	return application.ValidateDateRange(c.Criteria.DateStart, c.Criteria.DateEnd)
}

// Execute runs the filter. An invalid comment pattern is returned as
// domain.ErrInvalidFilterPattern.
func (c *FilterEntriesCommand) Execute(ctx context.Context) (*FilterEntriesResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	result := &FilterEntriesResult{Kind: c.Criteria.Kind}
	switch c.Criteria.Kind {
	case domain.EntryKindExercise:
		selected, err := c.book.Exercises.SelectByFilter(c.Criteria)
		if err != nil {
			return nil, fmt.Errorf("failed to filter exercises: %w", err)
		}
		result.Exercises = selected.SortedByDate()
	case domain.EntryKindNote:
		selected, err := c.book.Notes.SelectByFilter(c.Criteria)
		if err != nil {
			return nil, fmt.Errorf("failed to filter notes: %w", err)
		}
		result.Notes = selected.SortedByDate()
	case domain.EntryKindWeight:
		selected, err := c.book.Weights.SelectByFilter(c.Criteria)
		if err != nil {
			return nil, fmt.Errorf("failed to filter weights: %w", err)
		}
		result.Weights = selected.SortedByDate()
	default:
		return nil, &application.ValidationError{
			Field:   "kind",
			Message: fmt.Sprintf("unknown entry kind: %d", c.Criteria.Kind),
		}
	}
	return result, nil
}
