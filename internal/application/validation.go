package application

import (
	"fmt"
	"strings"
	"time"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// ValidateNotNegative checks that a numeric field is zero or positive
func ValidateNotNegative[N int | float64](fieldName string, value N) error {
	if value < 0 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must not be negative", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateDateRange checks that start is not after end, comparing calendar dates
func ValidateDateRange(start, end time.Time) error {
	sy, sm, sd := start.Date()
	ey, em, ed := end.Date()
	startDay := time.Date(sy, sm, sd, 0, 0, 0, 0, time.UTC)
	endDay := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	if startDay.After(endDay) {
		return &ValidationError{
			Field:   "dateStart",
			Message: fmt.Sprintf("start date %s is after end date %s", start.Format(time.DateOnly), end.Format(time.DateOnly)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "sportTypeID" -> "sport type ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"sportTypeID":    "sport type ID",
		"sportSubTypeID": "sport subtype ID",
		"equipmentID":    "equipment ID",
		"name":           "name",
		"duration":       "duration",
		"distance":       "distance",
		"avgSpeed":       "average speed",
		"value":          "value",
		"text":           "text",
		"dateStart":      "start date",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}
