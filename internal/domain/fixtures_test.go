package domain

import "time"

func date(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.Local)
}

func newTestSportTypes() *SportTypeList {
	cycling := NewSportType(1, "Cycling")
	cycling.Color = "#1E88E5"
	cycling.SubTypes.Set(&SportSubType{ID: 1, Name: "MTB"})
	cycling.SubTypes.Set(&SportSubType{ID: 2, Name: "Road"})
	cycling.Equipment.Set(&Equipment{ID: 1, Name: "Cube"})
	cycling.Equipment.Set(&Equipment{ID: 2, Name: "Cannondale"})

	running := NewSportType(2, "Running")
	running.SubTypes.Set(&SportSubType{ID: 1, Name: "Road running"})
	running.SubTypes.Set(&SportSubType{ID: 2, Name: "Trail running"})
	running.Equipment.Set(&Equipment{ID: 1, Name: "Asics"})
	running.Equipment.Set(&Equipment{ID: 2, Name: "Nike", NotInUse: true})

	list := NewSportTypeList()
	list.Set(cycling)
	list.Set(running)
	return list
}

// newTestLogbook returns three exercises in January/February/March 2003,
// commented "DummyExercise 1" to "DummyExercise 3".
func newTestLogbook() *Logbook {
	book := NewLogbook()
	book.SportTypes = newTestSportTypes()

	cycling, _ := book.SportTypes.ByID(1)
	running, _ := book.SportTypes.ByID(2)
	mtb, _ := cycling.SubTypeByID(1)
	road, _ := cycling.SubTypeByID(2)
	trail, _ := running.SubTypeByID(2)
	cube, _ := cycling.EquipmentByID(1)
	asics, _ := running.EquipmentByID(1)

	book.Exercises.Set(&Exercise{
		ID: 1, DateTime: date(2003, time.January, 10, 18),
		SportType: cycling, SportSubType: mtb, Equipment: cube,
		Intensity: IntensityNormal, Duration: 3600, Distance: 30, AvgSpeed: 30,
		Comment: "DummyExercise 1",
	})
	book.Exercises.Set(&Exercise{
		ID: 2, DateTime: date(2003, time.February, 14, 7),
		SportType: cycling, SportSubType: road,
		Intensity: IntensityHigh, Duration: 7200, Distance: 60, AvgSpeed: 30,
		AvgHeartRate: 150, Comment: "DummyExercise 2",
	})
	book.Exercises.Set(&Exercise{
		ID: 3, DateTime: date(2003, time.March, 30, 23),
		SportType: running, SportSubType: trail, Equipment: asics,
		Intensity: IntensityHigh, Duration: 3000, Distance: 10, AvgSpeed: 12,
		Comment: "DummyExercise 3",
	})

	book.Notes.Set(&Note{ID: 1, DateTime: date(2002, time.December, 1, 12), Text: "Bought new bike", SportType: cycling, Equipment: cube})
	book.Notes.Set(&Note{ID: 2, DateTime: date(2002, time.November, 2, 12), Text: "Knee hurts"})
	book.Notes.Set(&Note{ID: 3, DateTime: date(2003, time.May, 3, 12), Text: "Race planning", SportType: running})

	book.Weights.Set(&Weight{ID: 1, DateTime: date(2003, time.January, 1, 8), Value: 72.5})
	book.Weights.Set(&Weight{ID: 2, DateTime: date(2003, time.February, 1, 8), Value: 71.9, Comment: "after holidays"})

	return book
}

func newTestFilter(kind EntryKind) *FilterCriteria {
	return &FilterCriteria{
		DateStart: date(2003, time.January, 1, 0),
		DateEnd:   date(2003, time.April, 30, 0),
		Kind:      kind,
	}
}

func ids[T Identifiable](items []T) []int {
	out := make([]int, 0, len(items))
	for _, item := range items {
		out = append(out, item.GetID())
	}
	return out
}
