package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidFilterPattern = errors.New("invalid filter pattern")
	ErrDanglingReference    = errors.New("dangling reference")
)

// FilterPatternError is returned when a regex comment filter does not compile
type FilterPatternError struct {
	Pattern string
	Err     error
}

func (e *FilterPatternError) Error() string {
	return fmt.Sprintf("invalid comment pattern %q: %v", e.Pattern, e.Err)
}

func (e *FilterPatternError) Unwrap() error {
	return e.Err
}

func (e *FilterPatternError) Is(target error) bool {
	return target == ErrInvalidFilterPattern
}

// DanglingReferenceError reports an exercise whose sport type or subtype no
// longer exists in the sport-type graph.
type DanglingReferenceError struct {
	ExerciseID int
	Field      string // "sport type" or "sport subtype"
	RefID      int
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("exercise %d references missing %s %d", e.ExerciseID, e.Field, e.RefID)
}

func (e *DanglingReferenceError) Is(target error) bool {
	return target == ErrDanglingReference
}
