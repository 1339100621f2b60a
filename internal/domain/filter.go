package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// EntryKind discriminates the entry kinds a filter can target
type EntryKind int

const (
	EntryKindExercise EntryKind = iota
	EntryKindNote
	EntryKindWeight
)

func (k EntryKind) String() string {
	switch k {
	case EntryKindExercise:
		return "exercise"
	case EntryKindNote:
		return "note"
	case EntryKindWeight:
		return "weight"
	default:
		return "unknown"
	}
}

// ParseEntryKind parses "exercise", "note" or "weight" (plural accepted)
func ParseEntryKind(s string) (EntryKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exercise", "exercises":
		return EntryKindExercise, nil
	case "note", "notes":
		return EntryKindNote, nil
	case "weight", "weights":
		return EntryKindWeight, nil
	default:
		return 0, fmt.Errorf("unknown entry kind: %q", s)
	}
}

// FilterCriteria describes which entries to select.
// Nil reference fields leave that axis unconstrained.
type FilterCriteria struct {
	DateStart time.Time
	DateEnd   time.Time
	Kind      EntryKind

	SportType    *SportType
	SportSubType *SportSubType
	Intensity    *Intensity
	Equipment    *Equipment

	CommentSubString string
	RegexMode        bool
}

// NewDefaultFilter returns a filter for exercises of the month containing now
func NewDefaultFilter(now time.Time) *FilterCriteria {
	y, m, _ := now.Date()
	start := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, -1)
	return &FilterCriteria{
		DateStart: start,
		DateEnd:   end,
		Kind:      EntryKindExercise,
	}
}

// Clone returns a copy of the criteria. Referenced graph objects are shared.
func (c *FilterCriteria) Clone() *FilterCriteria {
	out := *c
	if c.Intensity != nil {
		i := *c.Intensity
		out.Intensity = &i
	}
	return &out
}

// ClearSportType clears the sport type together with its dependent fields
func (c *FilterCriteria) ClearSportType() {
	c.SportType = nil
	c.SportSubType = nil
	c.Equipment = nil
}

// compiledFilter is FilterCriteria prepared for evaluation
type compiledFilter struct {
	*FilterCriteria
	start   civilDate
	end     civilDate
	words   []string
	pattern *regexp.Regexp
}

func compileFilter(c *FilterCriteria) (*compiledFilter, error) {
	f := &compiledFilter{
		FilterCriteria: c,
		start:          dateOf(c.DateStart),
		end:            dateOf(c.DateEnd),
	}

	query := strings.TrimSpace(c.CommentSubString)
	if query == "" {
		return f, nil
	}

	if c.RegexMode {
		re, err := regexp.Compile(query)
		if err != nil {
			return nil, &FilterPatternError{Pattern: query, Err: err}
		}
		f.pattern = re
		return f, nil
	}

	f.words = strings.Fields(strings.ToLower(query))
	return f, nil
}

func (f *compiledFilter) matchesDate(t time.Time) bool {
	d := dateOf(t)
	return !d.before(f.start) && !f.end.before(d)
}

func (f *compiledFilter) matchesComment(comment string) bool {
	if f.pattern == nil && len(f.words) == 0 {
		return true
	}
	if comment == "" {
		return false
	}
	if f.pattern != nil {
		return f.pattern.MatchString(comment)
	}

	folded := strings.ToLower(comment)
	for _, w := range f.words {
		if !strings.Contains(folded, w) {
			return false
		}
	}
	return true
}

// civilDate is a calendar date without time of day
type civilDate struct {
	year  int
	month time.Month
	day   int
}

func dateOf(t time.Time) civilDate {
	y, m, d := t.Date()
	return civilDate{year: y, month: m, day: d}
}

func (d civilDate) before(o civilDate) bool {
	if d.year != o.year {
		return d.year < o.year
	}
	if d.month != o.month {
		return d.month < o.month
	}
	return d.day < o.day
}

// refMatches reports whether have satisfies the optional constraint want.
// References compare by ID, so stale copies of a graph object still match.
func refMatches[P interface {
	*E
	Identifiable
}, E any](have, want P) bool {
	if want == nil {
		return true
	}
	return have != nil && have.GetID() == want.GetID()
}
