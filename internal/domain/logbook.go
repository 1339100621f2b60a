package domain

// Logbook bundles the collections exchanged with storage
type Logbook struct {
	SportTypes *SportTypeList
	Exercises  *ExerciseList
	Notes      *NoteList
	Weights    *WeightList
}

// NewLogbook creates an empty logbook
func NewLogbook() *Logbook {
	return &Logbook{
		SportTypes: NewSportTypeList(),
		Exercises:  NewExerciseList(),
		Notes:      NewNoteList(),
		Weights:    NewWeightList(),
	}
}
