package application

import (
	"fmt"
	"strings"
	"time"

	"sportlog/internal/domain"
)

// FilterSpec is the textual form of a filter as typed on the command line
// or passed as tool arguments. Zero values leave an axis unconstrained;
// empty dates default to the month containing now.
type FilterSpec struct {
	Kind        string
	From        string // YYYY-MM-DD
	To          string // YYYY-MM-DD
	SportTypeID int
	SubTypeID   int
	EquipmentID int
	Intensity   string
	Comment     string
	Regex       bool
}

// Criteria resolves the textual filter against the sport-type graph
func (s FilterSpec) Criteria(sportTypes *domain.SportTypeList, now time.Time) (*domain.FilterCriteria, error) {
	c := domain.NewDefaultFilter(now)

	if strings.TrimSpace(s.Kind) != "" {
		kind, err := domain.ParseEntryKind(s.Kind)
		if err != nil {
			return nil, &ValidationError{Field: "kind", Message: err.Error()}
		}
		c.Kind = kind
	}

	var err error
	if c.DateStart, err = parseDate("from", s.From, c.DateStart); err != nil {
		return nil, err
	}
	if c.DateEnd, err = parseDate("to", s.To, c.DateEnd); err != nil {
		return nil, err
	}
	if err := ValidateDateRange(c.DateStart, c.DateEnd); err != nil {
		return nil, err
	}

	if s.Intensity != "" {
		intensity, err := domain.ParseIntensity(s.Intensity)
		if err != nil {
			return nil, &ValidationError{Field: "intensity", Message: err.Error()}
		}
		c.Intensity = &intensity
	}

	if s.SportTypeID != 0 {
		sportType, ok := sportTypes.ByID(s.SportTypeID)
		if !ok {
			return nil, &NotFoundError{Kind: "sport type", ID: s.SportTypeID}
		}
		c.SportType = sportType

		if s.SubTypeID != 0 {
			sub, ok := sportType.SubTypeByID(s.SubTypeID)
			if !ok {
				return nil, &NotFoundError{Kind: "sport subtype", ID: s.SubTypeID}
			}
			c.SportSubType = sub
		}
		if s.EquipmentID != 0 {
			eq, ok := sportType.EquipmentByID(s.EquipmentID)
			if !ok {
				return nil, &NotFoundError{Kind: "equipment", ID: s.EquipmentID}
			}
			c.Equipment = eq
		}
	} else if s.SubTypeID != 0 {
		return nil, &ValidationError{Field: "sportTypeID", Message: "subtype requires a sport type"}
	} else if s.EquipmentID != 0 {
		// matched by ID across all sport types
		eq, ok := domain.FindEquipment(sportTypes, s.EquipmentID)
		if !ok {
			return nil, &NotFoundError{Kind: "equipment", ID: s.EquipmentID}
		}
		c.Equipment = eq
	}

	c.CommentSubString = s.Comment
	c.RegexMode = s.Regex
	return c, nil
}

func parseDate(field, value string, fallback time.Time) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return fallback, nil
	}
	t, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("invalid date %q (want YYYY-MM-DD)", value),
		}
	}
	return t, nil
}
