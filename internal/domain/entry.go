package domain

import (
	"cmp"
	"slices"
	"time"
)

// Entry is a date-stamped, optionally commented record
type Entry interface {
	Identifiable
	GetDateTime() time.Time
	GetComment() string
}

// entryMatcher decides whether an entry passes a compiled filter
type entryMatcher[T Entry] func(item T, f *compiledFilter) bool

// EntryList is an IdentityList of entries of a single kind that can be
// filtered with FilterCriteria.
type EntryList[T Entry] struct {
	*IdentityList[T]
	kind    EntryKind
	matches entryMatcher[T]
}

func newEntryList[T Entry](kind EntryKind, matches entryMatcher[T]) *EntryList[T] {
	return &EntryList[T]{
		IdentityList: NewIdentityList[T](),
		kind:         kind,
		matches:      matches,
	}
}

// Kind returns the kind of entries held by the list
func (l *EntryList[T]) Kind() EntryKind {
	return l.kind
}

// SelectByFilter returns a new list with the entries matching the criteria.
// An empty list, or criteria built for another entry kind, yields the
// receiver unchanged. An invalid regular expression is returned as a
// *FilterPatternError.
func (l *EntryList[T]) SelectByFilter(c *FilterCriteria) (*EntryList[T], error) {
	if l.Len() == 0 || c.Kind != l.kind {
		return l, nil
	}

	f, err := compileFilter(c)
	if err != nil {
		return nil, err
	}

	out := newEntryList(l.kind, l.matches)
	for _, item := range l.items {
		if l.matches(item, f) {
			out.items = append(out.items, item)
		}
	}
	out.highestID = l.highestID
	return out, nil
}

// SortedByDate returns the entries newest first; equal dates are ordered by ID.
func (l *EntryList[T]) SortedByDate() []T {
	out := l.All()
	slices.SortStableFunc(out, func(a, b T) int {
		if c := b.GetDateTime().Compare(a.GetDateTime()); c != 0 {
			return c
		}
		return cmp.Compare(a.GetID(), b.GetID())
	})
	return out
}

// matchEntry applies the checks shared by every entry kind
func matchEntry(e Entry, f *compiledFilter) bool {
	return f.matchesDate(e.GetDateTime()) && f.matchesComment(e.GetComment())
}
