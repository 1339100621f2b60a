package commands

import (
	"context"
	"fmt"

	"sportlog/internal/application"
	"sportlog/internal/domain"
)

// EntryResult contains the result of an entry change
type EntryResult struct {
	Kind    domain.EntryKind
	ID      int
	Message string
}

// SaveExerciseCommand adds or replaces an exercise
type SaveExerciseCommand struct {
	book     *domain.Logbook
	Exercise *domain.Exercise
}

// NewSaveExerciseCommand creates a new SaveExerciseCommand
func NewSaveExerciseCommand(book *domain.Logbook, exercise *domain.Exercise) *SaveExerciseCommand {
	return &SaveExerciseCommand{
		book:     book,
		Exercise: exercise,
	}
}

// Validate checks the exercise values and its sport-type graph references
func (c *SaveExerciseCommand) Validate() error {
	e := c.Exercise
	if e == nil {
		return &application.ValidationError{Field: "exercise", Message: "exercise is required"}
	}
	if e.SportType == nil {
		return &application.ValidationError{Field: "sportTypeID", Message: "sport type ID is required"}
	}
	if e.SportSubType == nil {
		return &application.ValidationError{Field: "sportSubTypeID", Message: "sport subtype ID is required"}
	}
	if err := application.ValidateNotNegative("duration", e.Duration); err != nil {
		return err
	}
	if err := application.ValidateNotNegative("distance", e.Distance); err != nil {
		return err
	}
	if err := application.ValidateNotNegative("avgSpeed", e.AvgSpeed); err != nil {
		return err
	}

	sportType, ok := c.book.SportTypes.ByID(e.SportType.ID)
	if !ok {
		return &application.ValidationError{
			Field:   "sportTypeID",
			Message: fmt.Sprintf("unknown sport type: %d", e.SportType.ID),
		}
	}
	if _, ok := sportType.SubTypeByID(e.SportSubType.ID); !ok {
		return &application.ValidationError{
			Field:   "sportSubTypeID",
			Message: fmt.Sprintf("sport type %q has no subtype %d", sportType.Name, e.SportSubType.ID),
		}
	}
	if e.Equipment != nil {
		if _, ok := sportType.EquipmentByID(e.Equipment.ID); !ok {
			return &application.ValidationError{
				Field:   "equipmentID",
				Message: fmt.Sprintf("sport type %q has no equipment %d", sportType.Name, e.Equipment.ID),
			}
		}
	}
	return nil
}

// Execute binds the exercise to the live sport-type graph and stores it
func (c *SaveExerciseCommand) Execute(ctx context.Context) (*EntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	e := c.Exercise
	e.SportType, _ = c.book.SportTypes.ByID(e.SportType.ID)
	e.SportSubType, _ = e.SportType.SubTypeByID(e.SportSubType.ID)
	if e.Equipment != nil {
		e.Equipment, _ = e.SportType.EquipmentByID(e.Equipment.ID)
	}
	if e.ID == 0 {
		e.ID = c.book.Exercises.NextID()
	}
	if e.SportType.RecordDistance && e.AvgSpeed == 0 && e.Duration > 0 {
		e.AvgSpeed = e.Distance / (float64(e.Duration) / 3600)
	}

	c.book.Exercises.Set(e)
	return &EntryResult{
		Kind:    domain.EntryKindExercise,
		ID:      e.ID,
		Message: fmt.Sprintf("Saved exercise %d", e.ID),
	}, nil
}

// SaveNoteCommand adds or replaces a note
type SaveNoteCommand struct {
	book *domain.Logbook
	Note *domain.Note
}

// NewSaveNoteCommand creates a new SaveNoteCommand
func NewSaveNoteCommand(book *domain.Logbook, note *domain.Note) *SaveNoteCommand {
	return &SaveNoteCommand{
		book: book,
		Note: note,
	}
}

// Validate checks the note text and its optional references
func (c *SaveNoteCommand) Validate() error {
	n := c.Note
	if n == nil {
		return &application.ValidationError{Field: "note", Message: "note is required"}
	}
	if err := application.ValidateRequired("text", n.Text); err != nil {
		return err
	}
	if n.SportType == nil {
		if n.Equipment != nil {
			return &application.ValidationError{Field: "equipmentID", Message: "equipment requires a sport type"}
		}
		return nil
	}

	sportType, ok := c.book.SportTypes.ByID(n.SportType.ID)
	if !ok {
		return &application.ValidationError{
			Field:   "sportTypeID",
			Message: fmt.Sprintf("unknown sport type: %d", n.SportType.ID),
		}
	}
	if n.Equipment != nil {
		if _, ok := sportType.EquipmentByID(n.Equipment.ID); !ok {
			return &application.ValidationError{
				Field:   "equipmentID",
				Message: fmt.Sprintf("sport type %q has no equipment %d", sportType.Name, n.Equipment.ID),
			}
		}
	}
	return nil
}

// Execute stores the note
func (c *SaveNoteCommand) Execute(ctx context.Context) (*EntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	n := c.Note
	if n.SportType != nil {
		n.SportType, _ = c.book.SportTypes.ByID(n.SportType.ID)
		if n.Equipment != nil {
			n.Equipment, _ = n.SportType.EquipmentByID(n.Equipment.ID)
		}
	}
	if n.ID == 0 {
		n.ID = c.book.Notes.NextID()
	}

	c.book.Notes.Set(n)
	return &EntryResult{
		Kind:    domain.EntryKindNote,
		ID:      n.ID,
		Message: fmt.Sprintf("Saved note %d", n.ID),
	}, nil
}

// SaveWeightCommand adds or replaces a weight entry
type SaveWeightCommand struct {
	book   *domain.Logbook
	Weight *domain.Weight
}

// NewSaveWeightCommand creates a new SaveWeightCommand
func NewSaveWeightCommand(book *domain.Logbook, weight *domain.Weight) *SaveWeightCommand {
	return &SaveWeightCommand{
		book:   book,
		Weight: weight,
	}
}

// Validate checks the weight value
func (c *SaveWeightCommand) Validate() error {
	if c.Weight == nil {
		return &application.ValidationError{Field: "weight", Message: "weight is required"}
	}
	if c.Weight.Value <= 0 {
		return &application.ValidationError{Field: "value", Message: "value must be positive"}
	}
	return nil
}

// Execute stores the weight entry
func (c *SaveWeightCommand) Execute(ctx context.Context) (*EntryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	w := c.Weight
	if w.ID == 0 {
		w.ID = c.book.Weights.NextID()
	}

	c.book.Weights.Set(w)
	return &EntryResult{
		Kind:    domain.EntryKindWeight,
		ID:      w.ID,
		Message: fmt.Sprintf("Saved weight %d", w.ID),
	}, nil
}

// DeleteEntryCommand deletes an entry by kind and ID
type DeleteEntryCommand struct {
	book *domain.Logbook
	Kind domain.EntryKind
	ID   int
}

// NewDeleteEntryCommand creates a new DeleteEntryCommand
func NewDeleteEntryCommand(book *domain.Logbook, kind domain.EntryKind, id int) *DeleteEntryCommand {
	return &DeleteEntryCommand{
		book: book,
		Kind: kind,
		ID:   id,
	}
}

// Execute removes the entry; unknown IDs are reported as ErrNotFound
func (c *DeleteEntryCommand) Execute(ctx context.Context) (*EntryResult, error) {
	var found bool
	switch c.Kind {
	case domain.EntryKindExercise:
		found = c.book.Exercises.Contains(c.ID)
		c.book.Exercises.RemoveByID(c.ID)
	case domain.EntryKindNote:
		found = c.book.Notes.Contains(c.ID)
		c.book.Notes.RemoveByID(c.ID)
	case domain.EntryKindWeight:
		found = c.book.Weights.Contains(c.ID)
		c.book.Weights.RemoveByID(c.ID)
	default:
		return nil, &application.ValidationError{Field: "kind", Message: fmt.Sprintf("unknown entry kind: %d", c.Kind)}
	}
	if !found {
		return nil, &application.NotFoundError{Kind: c.Kind.String(), ID: c.ID}
	}

	return &EntryResult{
		Kind:    c.Kind,
		ID:      c.ID,
		Message: fmt.Sprintf("Deleted %s %d", c.Kind, c.ID),
	}, nil
}

// SetCommentCommand replaces the comment of an entry with an edited copy
type SetCommentCommand struct {
	book    *domain.Logbook
	Kind    domain.EntryKind
	ID      int
	Comment string
}

// NewSetCommentCommand creates a new SetCommentCommand
func NewSetCommentCommand(book *domain.Logbook, kind domain.EntryKind, id int, comment string) *SetCommentCommand {
	return &SetCommentCommand{
		book:    book,
		Kind:    kind,
		ID:      id,
		Comment: comment,
	}
}

// Execute clones the entry, changes the comment and replaces the entry by ID
func (c *SetCommentCommand) Execute(ctx context.Context) (*EntryResult, error) {
	notFound := &application.NotFoundError{Kind: c.Kind.String(), ID: c.ID}

	switch c.Kind {
	case domain.EntryKindExercise:
		e, ok := c.book.Exercises.ByID(c.ID)
		if !ok {
			return nil, notFound
		}
		edited := e.Clone()
		edited.Comment = c.Comment
		c.book.Exercises.Set(edited)
	case domain.EntryKindNote:
		n, ok := c.book.Notes.ByID(c.ID)
		if !ok {
			return nil, notFound
		}
		if err := application.ValidateRequired("text", c.Comment); err != nil {
			return nil, err
		}
		edited := n.Clone()
		edited.Text = c.Comment
		c.book.Notes.Set(edited)
	case domain.EntryKindWeight:
		w, ok := c.book.Weights.ByID(c.ID)
		if !ok {
			return nil, notFound
		}
		edited := w.Clone()
		edited.Comment = c.Comment
		c.book.Weights.Set(edited)
	default:
		return nil, &application.ValidationError{Field: "kind", Message: fmt.Sprintf("unknown entry kind: %d", c.Kind)}
	}

	return &EntryResult{
		Kind:    c.Kind,
		ID:      c.ID,
		Message: fmt.Sprintf("Updated comment of %s %d", c.Kind, c.ID),
	}, nil
}
