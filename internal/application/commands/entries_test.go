package commands

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sportlog/internal/application"
	"sportlog/internal/domain"
	"sportlog/internal/domain/domaintest"
)

func TestSaveExerciseCommand_Validate(t *testing.T) {
	tests := []struct {
		name      string
		exercise  *domain.Exercise
		wantField string
	}{
		{
			name: "valid",
			exercise: &domain.Exercise{
				SportType:    &domain.SportType{ID: 1},
				SportSubType: &domain.SportSubType{ID: 2},
				Equipment:    &domain.Equipment{ID: 1},
			},
		},
		{
			name:      "missing sport type",
			exercise:  &domain.Exercise{SportSubType: &domain.SportSubType{ID: 1}},
			wantField: "sportTypeID",
		},
		{
			name:      "unknown sport type",
			exercise:  &domain.Exercise{SportType: &domain.SportType{ID: 7}, SportSubType: &domain.SportSubType{ID: 1}},
			wantField: "sportTypeID",
		},
		{
			name:      "subtype of another sport type",
			exercise:  &domain.Exercise{SportType: &domain.SportType{ID: 1}, SportSubType: &domain.SportSubType{ID: 5}},
			wantField: "sportSubTypeID",
		},
		{
			name: "unknown equipment",
			exercise: &domain.Exercise{
				SportType:    &domain.SportType{ID: 1},
				SportSubType: &domain.SportSubType{ID: 1},
				Equipment:    &domain.Equipment{ID: 9},
			},
			wantField: "equipmentID",
		},
		{
			name: "negative distance",
			exercise: &domain.Exercise{
				SportType:    &domain.SportType{ID: 1},
				SportSubType: &domain.SportSubType{ID: 1},
				Distance:     -1,
			},
			wantField: "distance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := domaintest.NewLogbook()
			err := NewSaveExerciseCommand(book, tt.exercise).Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var validationErr *application.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
		})
	}
}

func TestSaveExerciseCommand_Execute(t *testing.T) {
	book := domaintest.NewLogbook()
	exercise := &domain.Exercise{
		DateTime:     domaintest.Date(2003, time.April, 2, 17),
		SportType:    &domain.SportType{ID: 1},
		SportSubType: &domain.SportSubType{ID: 2},
		Intensity:    domain.IntensityLow,
		Duration:     5400,
		Distance:     45,
	}

	result, err := NewSaveExerciseCommand(book, exercise).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, result.ID)
	stored, ok := book.Exercises.ByID(4)
	require.True(t, ok)

	cycling, _ := book.SportTypes.ByID(1)
	assert.Same(t, cycling, stored.SportType)
	assert.Equal(t, "Road", stored.SportSubType.Name)
	assert.InDelta(t, 30.0, stored.AvgSpeed, 0.001)
}

func TestSaveExerciseCommand_IDsAreNotReused(t *testing.T) {
	book := domaintest.NewLogbook()
	book.Exercises.RemoveByID(3)

	result, err := NewSaveExerciseCommand(book, &domain.Exercise{
		SportType:    &domain.SportType{ID: 2},
		SportSubType: &domain.SportSubType{ID: 1},
	}).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, result.ID)
}

func TestSaveNoteCommand(t *testing.T) {
	t.Run("note without sport type", func(t *testing.T) {
		book := domaintest.NewLogbook()

		result, err := NewSaveNoteCommand(book, &domain.Note{
			DateTime: domaintest.Date(2003, time.June, 1, 9),
			Text:     "Rest week",
		}).Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 4, result.ID)
	})

	t.Run("note bound to equipment", func(t *testing.T) {
		book := domaintest.NewLogbook()

		result, err := NewSaveNoteCommand(book, &domain.Note{
			Text:      "New tyres",
			SportType: &domain.SportType{ID: 1},
			Equipment: &domain.Equipment{ID: 2},
		}).Execute(context.Background())
		require.NoError(t, err)

		stored, _ := book.Notes.ByID(result.ID)
		cycling, _ := book.SportTypes.ByID(1)
		assert.Same(t, cycling, stored.SportType)
		assert.Equal(t, "Cannondale", stored.Equipment.Name)
	})

	t.Run("empty text", func(t *testing.T) {
		book := domaintest.NewLogbook()

		_, err := NewSaveNoteCommand(book, &domain.Note{Text: " "}).Execute(context.Background())
		var validationErr *application.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})

	t.Run("equipment without sport type", func(t *testing.T) {
		book := domaintest.NewLogbook()

		_, err := NewSaveNoteCommand(book, &domain.Note{
			Text:      "Orphan",
			Equipment: &domain.Equipment{ID: 1},
		}).Execute(context.Background())
		var validationErr *application.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "equipmentID", validationErr.Field)
	})
}

func TestSaveWeightCommand(t *testing.T) {
	book := domaintest.NewLogbook()

	_, err := NewSaveWeightCommand(book, &domain.Weight{Value: 0}).Execute(context.Background())
	var validationErr *application.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	result, err := NewSaveWeightCommand(book, &domain.Weight{
		DateTime: domaintest.Date(2003, time.March, 1, 8),
		Value:    70.8,
	}).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, result.ID)
	assert.Equal(t, 3, book.Weights.Len())
}

func TestDeleteEntryCommand(t *testing.T) {
	tests := []struct {
		name    string
		kind    domain.EntryKind
		id      int
		wantErr error
	}{
		{name: "exercise", kind: domain.EntryKindExercise, id: 2},
		{name: "note", kind: domain.EntryKindNote, id: 1},
		{name: "weight", kind: domain.EntryKindWeight, id: 2},
		{name: "missing exercise", kind: domain.EntryKindExercise, id: 99, wantErr: application.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := domaintest.NewLogbook()

			result, err := NewDeleteEntryCommand(book, tt.kind, tt.id).Execute(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, result.ID)
			assert.Contains(t, result.Message, tt.kind.String())
		})
	}
}

func TestSetCommentCommand(t *testing.T) {
	book := domaintest.NewLogbook()
	before, _ := book.Exercises.ByID(1)

	var notified []*domain.Exercise
	book.Exercises.AddListener(func(e *domain.Exercise) {
		notified = append(notified, e)
	})

	_, err := NewSetCommentCommand(book, domain.EntryKindExercise, 1, "Hill repeats").Execute(context.Background())
	require.NoError(t, err)

	after, _ := book.Exercises.ByID(1)
	assert.NotSame(t, before, after)
	assert.Equal(t, "DummyExercise 1", before.Comment)
	assert.Equal(t, "Hill repeats", after.Comment)
	require.Len(t, notified, 1)
	assert.Same(t, after, notified[0])

	_, err = NewSetCommentCommand(book, domain.EntryKindNote, 2, "").Execute(context.Background())
	var validationErr *application.ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = NewSetCommentCommand(book, domain.EntryKindWeight, 12, "x").Execute(context.Background())
	assert.ErrorIs(t, err, application.ErrNotFound)
}
