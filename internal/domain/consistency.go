package domain

// UpdateStats summarizes the work done by UpdateReferences
type UpdateStats struct {
	ExercisesRebound    int
	EquipmentCleared    int
	NotesRebound        int
	NoteRefsCleared     int
	FiltersRebound      int
	FilterFieldsCleared int
}

type exerciseBinding struct {
	exercise  *Exercise
	sportType *SportType
	subType   *SportSubType
	equipment *Equipment
}

// UpdateReferences rebinds the sport type, subtype and equipment references
// of all exercises, notes and the given filters to the objects currently in
// the sport-type graph. Call it after any sport type was replaced via Set.
//
// An exercise whose sport type or subtype is missing from the graph yields a
// *DanglingReferenceError and nothing is modified. Missing equipment of an
// exercise, and any missing reference of a note or filter, is cleared.
func UpdateReferences(book *Logbook, filters ...*FilterCriteria) (*UpdateStats, error) {
	stats := &UpdateStats{}

	bindings, err := resolveExercises(book.SportTypes, book.Exercises)
	if err != nil {
		return nil, err
	}

	for _, b := range bindings {
		e := b.exercise
		if e.Equipment != nil && b.equipment == nil {
			stats.EquipmentCleared++
		}
		e.SportType = b.sportType
		e.SportSubType = b.subType
		e.Equipment = b.equipment
		stats.ExercisesRebound++
	}
	if len(bindings) > 0 {
		book.Exercises.NotifyBulkChange()
	}

	notesChanged := false
	book.Notes.Each(func(n *Note) {
		sportType, equipment, cleared := resolveNote(book.SportTypes, n)
		if sportType == n.SportType && equipment == n.Equipment {
			return
		}
		n.SportType = sportType
		n.Equipment = equipment
		notesChanged = true
		stats.NotesRebound++
		stats.NoteRefsCleared += cleared
	})
	if notesChanged {
		book.Notes.NotifyBulkChange()
	}

	for _, c := range filters {
		if c != nil && (c.SportType != nil || c.Equipment != nil) {
			stats.FiltersRebound++
			stats.FilterFieldsCleared += UpdateFilterReferences(book.SportTypes, c)
		}
	}

	return stats, nil
}

// UpdateFilterReferences rebinds the sport-type graph references of c.
// References that no longer exist are cleared; clearing the sport type also
// clears subtype and equipment. Equipment set without a sport type is looked
// up in every sport type. It returns the number of cleared fields.
func UpdateFilterReferences(sportTypes *SportTypeList, c *FilterCriteria) int {
	if c.SportType == nil {
		if c.Equipment == nil {
			return 0
		}
		equipment, ok := FindEquipment(sportTypes, c.Equipment.ID)
		c.Equipment = equipment
		if !ok {
			return 1
		}
		return 0
	}

	sportType, ok := sportTypes.ByID(c.SportType.ID)
	if !ok {
		cleared := 1
		if c.SportSubType != nil {
			cleared++
		}
		if c.Equipment != nil {
			cleared++
		}
		c.ClearSportType()
		return cleared
	}

	cleared := 0
	c.SportType = sportType
	if c.SportSubType != nil {
		subType, ok := sportType.SubTypeByID(c.SportSubType.ID)
		if !ok {
			cleared++
		}
		c.SportSubType = subType
	}
	if c.Equipment != nil {
		equipment, ok := sportType.EquipmentByID(c.Equipment.ID)
		if !ok {
			cleared++
		}
		c.Equipment = equipment
	}
	return cleared
}

// resolveNote returns the live sport type and equipment of n and how many of
// its references no longer exist. Equipment without a sport type is cleared.
func resolveNote(sportTypes *SportTypeList, n *Note) (*SportType, *Equipment, int) {
	cleared := 0
	var sportType *SportType
	if n.SportType != nil {
		st, ok := sportTypes.ByID(n.SportType.ID)
		if ok {
			sportType = st
		} else {
			cleared++
		}
	}

	var equipment *Equipment
	if n.Equipment != nil {
		if sportType != nil {
			equipment, _ = sportType.EquipmentByID(n.Equipment.ID)
		}
		if equipment == nil {
			cleared++
		}
	}
	return sportType, equipment, cleared
}

// resolveExercises looks up the live graph objects for every exercise
// without modifying anything.
func resolveExercises(sportTypes *SportTypeList, exercises *ExerciseList) ([]exerciseBinding, error) {
	bindings := make([]exerciseBinding, 0, exercises.Len())
	for _, e := range exercises.items {
		if e.SportType == nil {
			return nil, &DanglingReferenceError{ExerciseID: e.ID, Field: "sport type"}
		}
		sportType, ok := sportTypes.ByID(e.SportType.ID)
		if !ok {
			return nil, &DanglingReferenceError{ExerciseID: e.ID, Field: "sport type", RefID: e.SportType.ID}
		}
		if e.SportSubType == nil {
			return nil, &DanglingReferenceError{ExerciseID: e.ID, Field: "sport subtype"}
		}
		subType, ok := sportType.SubTypeByID(e.SportSubType.ID)
		if !ok {
			return nil, &DanglingReferenceError{ExerciseID: e.ID, Field: "sport subtype", RefID: e.SportSubType.ID}
		}

		b := exerciseBinding{exercise: e, sportType: sportType, subType: subType}
		if e.Equipment != nil {
			// a missing equipment resolves to nil and is cleared
			b.equipment, _ = sportType.EquipmentByID(e.Equipment.ID)
		}
		bindings = append(bindings, b)
	}
	return bindings, nil
}
