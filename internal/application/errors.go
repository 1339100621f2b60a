package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidID        = errors.New("invalid ID")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrInUse            = errors.New("in use")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError reports an unknown entity ID
type NotFoundError struct {
	Kind string // "exercise", "sport type", ...
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// InUseError reports a sport-type graph object that exercises still reference
type InUseError struct {
	Kind string
	Name string
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("cannot delete %s %q: it is used by exercises", e.Kind, e.Name)
}

func (e *InUseError) Is(target error) bool {
	return target == ErrInUse
}
