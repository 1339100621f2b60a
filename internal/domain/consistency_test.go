package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// editSportType applies a copy-on-write edit to the sport type with the given ID
func editSportType(t *testing.T, book *Logbook, id int, edit func(st *SportType)) {
	t.Helper()
	st, ok := book.SportTypes.ByID(id)
	require.True(t, ok)
	clone := st.Clone()
	edit(clone)
	book.SportTypes.Set(clone)
}

func TestUpdateReferences_RenamedSubTypeIsRebound(t *testing.T) {
	book := newTestLogbook()
	ex1, _ := book.Exercises.ByID(1)
	oldSubType := ex1.SportSubType
	oldSportType := ex1.SportType

	editSportType(t, book, 1, func(st *SportType) {
		mtb, _ := st.SubTypeByID(1)
		renamed := mtb.Clone()
		renamed.Name = "Mountainbike"
		st.SubTypes.Set(renamed)
	})

	// stale until reconciled
	assert.Equal(t, "MTB", ex1.SportSubType.Name)

	stats, err := UpdateReferences(book)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.ExercisesRebound)

	assert.Equal(t, "Mountainbike", ex1.SportSubType.Name)
	assert.NotSame(t, oldSubType, ex1.SportSubType)
	assert.NotSame(t, oldSportType, ex1.SportType)

	live, _ := book.SportTypes.ByID(1)
	assert.Same(t, live, ex1.SportType)
	liveCube, _ := live.EquipmentByID(1)
	assert.Same(t, liveCube, ex1.Equipment)
}

func TestUpdateReferences_MissingSportTypeFailsWithoutMutation(t *testing.T) {
	book := newTestLogbook()
	ex1, _ := book.Exercises.ByID(1)
	ex3, _ := book.Exercises.ByID(3)
	oldCycling := ex1.SportType

	// rename cycling, then drop running which ex3 still uses
	editSportType(t, book, 1, func(st *SportType) { st.Name = "Biking" })
	book.SportTypes.RemoveByID(2)

	notified := 0
	book.Exercises.AddListener(func(*Exercise) { notified++ })

	stats, err := UpdateReferences(book)
	require.Error(t, err)
	assert.Nil(t, stats)
	assert.True(t, errors.Is(err, ErrDanglingReference))

	var dangling *DanglingReferenceError
	require.ErrorAs(t, err, &dangling)
	assert.Equal(t, 3, dangling.ExerciseID)
	assert.Equal(t, "sport type", dangling.Field)
	assert.Equal(t, 2, dangling.RefID)

	assert.Same(t, oldCycling, ex1.SportType, "no exercise may be rebound on failure")
	assert.Equal(t, 2, ex3.SportType.ID)
	assert.Equal(t, 0, notified)
}

func TestUpdateReferences_MissingSubTypeFails(t *testing.T) {
	book := newTestLogbook()
	editSportType(t, book, 1, func(st *SportType) { st.SubTypes.RemoveByID(2) })

	_, err := UpdateReferences(book)

	var dangling *DanglingReferenceError
	require.ErrorAs(t, err, &dangling)
	assert.Equal(t, 2, dangling.ExerciseID)
	assert.Equal(t, "sport subtype", dangling.Field)
}

func TestUpdateReferences_MissingEquipmentIsCleared(t *testing.T) {
	book := newTestLogbook()
	editSportType(t, book, 1, func(st *SportType) { st.Equipment.RemoveByID(1) })

	stats, err := UpdateReferences(book)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.EquipmentCleared)

	ex1, _ := book.Exercises.ByID(1)
	assert.Nil(t, ex1.Equipment)
	ex3, _ := book.Exercises.ByID(3)
	assert.NotNil(t, ex3.Equipment, "equipment of other sport types is untouched")
}

func TestUpdateReferences_NotifiesListenersOnce(t *testing.T) {
	book := newTestLogbook()
	exerciseCalls, noteCalls := 0, 0
	book.Exercises.AddListener(func(changed *Exercise) {
		exerciseCalls++
		assert.Nil(t, changed)
	})
	book.Notes.AddListener(func(*Note) { noteCalls++ })

	_, err := UpdateReferences(book)
	require.NoError(t, err)
	assert.Equal(t, 1, exerciseCalls)
	assert.Equal(t, 0, noteCalls, "unchanged notes are not reported")

	editSportType(t, book, 2, func(st *SportType) { st.Name = "Jogging" })
	stats, err := UpdateReferences(book)
	require.NoError(t, err)
	assert.Equal(t, 2, exerciseCalls)
	assert.Equal(t, 1, noteCalls)
	assert.Equal(t, 1, stats.NotesRebound)
}

func TestUpdateReferences_NoteEquipmentWithoutSportTypeIsCleared(t *testing.T) {
	book := newTestLogbook()
	note2, _ := book.Notes.ByID(2)
	note2.Equipment = &Equipment{ID: 99}

	stats, err := UpdateReferences(book)
	require.NoError(t, err)

	assert.Nil(t, note2.Equipment)
	assert.Nil(t, note2.SportType)
	assert.Equal(t, 1, stats.NotesRebound)
	assert.Equal(t, 1, stats.NoteRefsCleared)
}

func TestUpdateReferences_Notes(t *testing.T) {
	book := newTestLogbook()
	editSportType(t, book, 1, func(st *SportType) {
		st.Name = "Biking"
		st.Equipment.RemoveByID(1)
	})
	// drop running; first reassign the exercise using it
	ex3, _ := book.Exercises.ByID(3)
	cycling, _ := book.SportTypes.ByID(1)
	ex3.SportType = cycling
	ex3.SportSubType, _ = cycling.SubTypeByID(1)
	ex3.Equipment = nil
	book.SportTypes.RemoveByID(2)

	stats, err := UpdateReferences(book)
	require.NoError(t, err)

	note1, _ := book.Notes.ByID(1)
	assert.Equal(t, "Biking", note1.SportType.Name)
	assert.Nil(t, note1.Equipment)

	note3, _ := book.Notes.ByID(3)
	assert.Nil(t, note3.SportType)
	assert.Nil(t, note3.Equipment)

	assert.Equal(t, 2, stats.NotesRebound)
	assert.Equal(t, 2, stats.NoteRefsCleared)
}

func TestUpdateFilterReferences(t *testing.T) {
	high := IntensityHigh

	tests := []struct {
		name        string
		edit        func(t *testing.T, book *Logbook)
		filter      func(book *Logbook) *FilterCriteria
		wantCleared int
		check       func(t *testing.T, book *Logbook, f *FilterCriteria)
	}{
		{
			name: "unset sport type is left alone",
			edit: func(t *testing.T, book *Logbook) { book.SportTypes.RemoveByID(1) },
			filter: func(book *Logbook) *FilterCriteria {
				f := newTestFilter(EntryKindExercise)
				f.Intensity = &high
				return f
			},
			check: func(t *testing.T, _ *Logbook, f *FilterCriteria) {
				assert.Nil(t, f.SportType)
				require.NotNil(t, f.Intensity)
				assert.Equal(t, IntensityHigh, *f.Intensity)
			},
		},
		{
			name: "renamed sport type is rebound",
			edit: func(t *testing.T, book *Logbook) {
				editSportType(t, book, 1, func(st *SportType) { st.Name = "Biking" })
			},
			filter: func(book *Logbook) *FilterCriteria {
				cycling, _ := book.SportTypes.ByID(1)
				f := newTestFilter(EntryKindExercise)
				f.SportType = cycling
				f.SportSubType, _ = cycling.SubTypeByID(2)
				f.Equipment, _ = cycling.EquipmentByID(1)
				return f
			},
			check: func(t *testing.T, book *Logbook, f *FilterCriteria) {
				live, _ := book.SportTypes.ByID(1)
				assert.Same(t, live, f.SportType)
				assert.Equal(t, "Biking", f.SportType.Name)
				liveRoad, _ := live.SubTypeByID(2)
				assert.Same(t, liveRoad, f.SportSubType)
				liveCube, _ := live.EquipmentByID(1)
				assert.Same(t, liveCube, f.Equipment)
			},
		},
		{
			name: "removed subtype is cleared, sport type kept",
			edit: func(t *testing.T, book *Logbook) {
				editSportType(t, book, 1, func(st *SportType) { st.SubTypes.RemoveByID(2) })
			},
			filter: func(book *Logbook) *FilterCriteria {
				cycling, _ := book.SportTypes.ByID(1)
				f := newTestFilter(EntryKindExercise)
				f.SportType = cycling
				f.SportSubType, _ = cycling.SubTypeByID(2)
				return f
			},
			wantCleared: 1,
			check: func(t *testing.T, _ *Logbook, f *FilterCriteria) {
				require.NotNil(t, f.SportType)
				assert.Equal(t, 1, f.SportType.ID)
				assert.Nil(t, f.SportSubType)
			},
		},
		{
			name: "removed equipment is cleared",
			edit: func(t *testing.T, book *Logbook) {
				editSportType(t, book, 1, func(st *SportType) { st.Equipment.RemoveByID(2) })
			},
			filter: func(book *Logbook) *FilterCriteria {
				cycling, _ := book.SportTypes.ByID(1)
				f := newTestFilter(EntryKindExercise)
				f.SportType = cycling
				f.SportSubType, _ = cycling.SubTypeByID(1)
				f.Equipment, _ = cycling.EquipmentByID(2)
				return f
			},
			wantCleared: 1,
			check: func(t *testing.T, _ *Logbook, f *FilterCriteria) {
				assert.NotNil(t, f.SportType)
				assert.NotNil(t, f.SportSubType)
				assert.Nil(t, f.Equipment)
			},
		},
		{
			name: "removed sport type cascades",
			edit: func(t *testing.T, book *Logbook) { book.SportTypes.RemoveByID(1) },
			filter: func(book *Logbook) *FilterCriteria {
				cycling, _ := book.SportTypes.ByID(1)
				f := newTestFilter(EntryKindExercise)
				f.SportType = cycling
				f.SportSubType, _ = cycling.SubTypeByID(1)
				f.Equipment, _ = cycling.EquipmentByID(1)
				f.Intensity = &high
				return f
			},
			wantCleared: 3,
			check: func(t *testing.T, _ *Logbook, f *FilterCriteria) {
				assert.Nil(t, f.SportType)
				assert.Nil(t, f.SportSubType)
				assert.Nil(t, f.Equipment)
				assert.NotNil(t, f.Intensity, "intensity does not depend on the sport type")
			},
		},
		{
			name: "equipment without sport type is rebound",
			edit: func(t *testing.T, book *Logbook) {
				editSportType(t, book, 1, func(st *SportType) {
					cube, _ := st.EquipmentByID(1)
					renamed := cube.Clone()
					renamed.Name = "Cube Stereo"
					st.Equipment.Set(renamed)
				})
			},
			filter: func(book *Logbook) *FilterCriteria {
				cycling, _ := book.SportTypes.ByID(1)
				f := newTestFilter(EntryKindExercise)
				f.Equipment, _ = cycling.EquipmentByID(1)
				return f
			},
			check: func(t *testing.T, book *Logbook, f *FilterCriteria) {
				assert.Nil(t, f.SportType)
				require.NotNil(t, f.Equipment)
				assert.Equal(t, "Cube Stereo", f.Equipment.Name)
			},
		},
		{
			name: "equipment without sport type is cleared when gone everywhere",
			edit: func(t *testing.T, book *Logbook) {
				editSportType(t, book, 1, func(st *SportType) { st.Equipment.RemoveByID(2) })
				editSportType(t, book, 2, func(st *SportType) { st.Equipment.RemoveByID(2) })
			},
			filter: func(book *Logbook) *FilterCriteria {
				f := newTestFilter(EntryKindExercise)
				f.Equipment = &Equipment{ID: 2}
				return f
			},
			wantCleared: 1,
			check: func(t *testing.T, _ *Logbook, f *FilterCriteria) {
				assert.Nil(t, f.Equipment)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := newTestLogbook()
			f := tt.filter(book)
			tt.edit(t, book)

			cleared := UpdateFilterReferences(book.SportTypes, f)

			assert.Equal(t, tt.wantCleared, cleared)
			tt.check(t, book, f)
		})
	}
}

func TestUpdateReferences_ReconcilesStoredFilters(t *testing.T) {
	book := newTestLogbook()
	running, _ := book.SportTypes.ByID(2)
	filter := newTestFilter(EntryKindNote)
	filter.SportType = running

	// move the only running exercise to cycling so running can go
	ex3, _ := book.Exercises.ByID(3)
	cycling, _ := book.SportTypes.ByID(1)
	ex3.SportType = cycling
	ex3.SportSubType, _ = cycling.SubTypeByID(1)
	ex3.Equipment = nil
	book.SportTypes.RemoveByID(2)

	stats, err := UpdateReferences(book, filter, nil)
	require.NoError(t, err)
	assert.Nil(t, filter.SportType)
	assert.Equal(t, 1, stats.FiltersRebound)
	assert.Equal(t, 1, stats.FilterFieldsCleared)
}
