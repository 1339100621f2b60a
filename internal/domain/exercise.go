package domain

import (
	"fmt"
	"strings"
	"time"
)

// Intensity is the perceived intensity of an exercise
type Intensity int

const (
	IntensityMinimum Intensity = iota
	IntensityLow
	IntensityNormal
	IntensityHigh
	IntensityMaximum
	IntensityIntervals
)

var intensityNames = [...]string{"minimum", "low", "normal", "high", "maximum", "intervals"}

// Intensities lists all intensity values in ascending order
func Intensities() []Intensity {
	return []Intensity{
		IntensityMinimum, IntensityLow, IntensityNormal,
		IntensityHigh, IntensityMaximum, IntensityIntervals,
	}
}

func (i Intensity) String() string {
	if i < 0 || int(i) >= len(intensityNames) {
		return "unknown"
	}
	return intensityNames[i]
}

// ParseIntensity parses an intensity name, case-insensitively
func ParseIntensity(s string) (Intensity, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range intensityNames {
		if name == s {
			return Intensity(i), nil
		}
	}
	return 0, fmt.Errorf("unknown intensity: %q", s)
}

// Exercise is a single workout
type Exercise struct {
	ID           int
	DateTime     time.Time
	SportType    *SportType
	SportSubType *SportSubType
	Equipment    *Equipment // optional
	Intensity    Intensity
	Duration     int     // seconds
	Distance     float64 // km
	AvgSpeed     float64 // km/h
	AvgHeartRate int     // bpm, 0 if not recorded
	Ascent       int     // m, 0 if not recorded
	Calories     int     // kcal, 0 if not recorded
	HRMFile      string  // optional heart-rate-monitor file path
	Comment      string
}

func (e *Exercise) GetID() int {
	return e.ID
}

func (e *Exercise) GetDateTime() time.Time {
	return e.DateTime
}

func (e *Exercise) GetComment() string {
	return e.Comment
}

// Clone copies the exercise. Sport-type graph references are shared.
func (e *Exercise) Clone() *Exercise {
	c := *e
	return &c
}

// ExerciseList is the collection of all exercises
type ExerciseList struct {
	*EntryList[*Exercise]
}

// NewExerciseList creates an empty exercise list
func NewExerciseList() *ExerciseList {
	return &ExerciseList{newEntryList[*Exercise](EntryKindExercise, matchExercise)}
}

// SelectByFilter returns the exercises matching c, see EntryList.SelectByFilter
func (l *ExerciseList) SelectByFilter(c *FilterCriteria) (*ExerciseList, error) {
	selected, err := l.EntryList.SelectByFilter(c)
	if err != nil {
		return nil, err
	}
	if selected == l.EntryList {
		return l, nil
	}
	return &ExerciseList{selected}, nil
}

// UsesSportType reports whether any exercise references the sport type
func (l *ExerciseList) UsesSportType(sportTypeID int) bool {
	for _, e := range l.items {
		if e.SportType != nil && e.SportType.ID == sportTypeID {
			return true
		}
	}
	return false
}

// UsesSportSubType reports whether any exercise references the subtype of the sport type
func (l *ExerciseList) UsesSportSubType(sportTypeID, subTypeID int) bool {
	for _, e := range l.items {
		if e.SportType != nil && e.SportType.ID == sportTypeID &&
			e.SportSubType != nil && e.SportSubType.ID == subTypeID {
			return true
		}
	}
	return false
}

// UsesEquipment reports whether any exercise references the equipment of the sport type
func (l *ExerciseList) UsesEquipment(sportTypeID, equipmentID int) bool {
	for _, e := range l.items {
		if e.SportType != nil && e.SportType.ID == sportTypeID &&
			e.Equipment != nil && e.Equipment.ID == equipmentID {
			return true
		}
	}
	return false
}

func matchExercise(e *Exercise, f *compiledFilter) bool {
	if !matchEntry(e, f) {
		return false
	}
	if f.Intensity != nil && e.Intensity != *f.Intensity {
		return false
	}
	return refMatches(e.SportType, f.SportType) &&
		refMatches(e.SportSubType, f.SportSubType) &&
		refMatches(e.Equipment, f.Equipment)
}
