// Package domaintest provides a small sample logbook for tests.
package domaintest

import (
	"time"

	"sportlog/internal/domain"
)

// Date returns a local time at the given hour
func Date(y int, m time.Month, d, hour int) time.Time {
	return time.Date(y, m, d, hour, 0, 0, 0, time.Local)
}

// NewLogbook returns a logbook with two sport types, three exercises
// (January to March 2003, commented "DummyExercise 1" to "DummyExercise 3"),
// three notes and two weights.
//
//	Cycling (1): subtypes MTB (1), Road (2); equipment Cube (1), Cannondale (2)
//	Running (2): subtypes Road running (1), Trail running (2); equipment Asics (1), Nike (2, not in use)
func NewLogbook() *domain.Logbook {
	book := domain.NewLogbook()

	cycling := domain.NewSportType(1, "Cycling")
	cycling.Color = "#1E88E5"
	cycling.SubTypes.Set(&domain.SportSubType{ID: 1, Name: "MTB"})
	cycling.SubTypes.Set(&domain.SportSubType{ID: 2, Name: "Road"})
	cycling.Equipment.Set(&domain.Equipment{ID: 1, Name: "Cube"})
	cycling.Equipment.Set(&domain.Equipment{ID: 2, Name: "Cannondale"})

	running := domain.NewSportType(2, "Running")
	running.Icon = "running.png"
	running.SubTypes.Set(&domain.SportSubType{ID: 1, Name: "Road running"})
	running.SubTypes.Set(&domain.SportSubType{ID: 2, Name: "Trail running"})
	running.Equipment.Set(&domain.Equipment{ID: 1, Name: "Asics"})
	running.Equipment.Set(&domain.Equipment{ID: 2, Name: "Nike", NotInUse: true})

	book.SportTypes.Set(cycling)
	book.SportTypes.Set(running)

	mtb, _ := cycling.SubTypeByID(1)
	road, _ := cycling.SubTypeByID(2)
	trail, _ := running.SubTypeByID(2)
	cube, _ := cycling.EquipmentByID(1)
	asics, _ := running.EquipmentByID(1)

	book.Exercises.Set(&domain.Exercise{
		ID: 1, DateTime: Date(2003, time.January, 10, 18),
		SportType: cycling, SportSubType: mtb, Equipment: cube,
		Intensity: domain.IntensityNormal, Duration: 3600, Distance: 30, AvgSpeed: 30,
		Ascent: 450, Calories: 800, Comment: "DummyExercise 1",
	})
	book.Exercises.Set(&domain.Exercise{
		ID: 2, DateTime: Date(2003, time.February, 14, 7),
		SportType: cycling, SportSubType: road,
		Intensity: domain.IntensityHigh, Duration: 7200, Distance: 60, AvgSpeed: 30,
		AvgHeartRate: 150, Ascent: 300, Calories: 1500, Comment: "DummyExercise 2",
	})
	book.Exercises.Set(&domain.Exercise{
		ID: 3, DateTime: Date(2003, time.March, 30, 23),
		SportType: running, SportSubType: trail, Equipment: asics,
		Intensity: domain.IntensityHigh, Duration: 3000, Distance: 10, AvgSpeed: 12,
		AvgHeartRate: 160, HRMFile: "/hrm/03033001.hrm", Comment: "DummyExercise 3",
	})

	book.Notes.Set(&domain.Note{ID: 1, DateTime: Date(2002, time.December, 1, 12), Text: "Bought new bike", SportType: cycling, Equipment: cube})
	book.Notes.Set(&domain.Note{ID: 2, DateTime: Date(2002, time.November, 2, 12), Text: "Knee hurts"})
	book.Notes.Set(&domain.Note{ID: 3, DateTime: Date(2003, time.May, 3, 12), Text: "Race planning", SportType: running})

	book.Weights.Set(&domain.Weight{ID: 1, DateTime: Date(2003, time.January, 1, 8), Value: 72.5})
	book.Weights.Set(&domain.Weight{ID: 2, DateTime: Date(2003, time.February, 1, 8), Value: 71.9, Comment: "after holidays"})

	return book
}

// NewFilter returns a filter of the given kind covering January to April 2003
func NewFilter(kind domain.EntryKind) *domain.FilterCriteria {
	return &domain.FilterCriteria{
		DateStart: Date(2003, time.January, 1, 0),
		DateEnd:   Date(2003, time.April, 30, 0),
		Kind:      kind,
	}
}
