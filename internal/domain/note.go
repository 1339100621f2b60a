package domain

import "time"

// Note is a free text entry, optionally tied to a sport type and equipment
type Note struct {
	ID        int
	DateTime  time.Time
	Text      string
	SportType *SportType // optional
	Equipment *Equipment // optional
}

func (n *Note) GetID() int {
	return n.ID
}

func (n *Note) GetDateTime() time.Time {
	return n.DateTime
}

func (n *Note) GetComment() string {
	return n.Text
}

// Clone copies the note. Sport-type graph references are shared.
func (n *Note) Clone() *Note {
	c := *n
	return &c
}

// NoteList is the collection of all notes
type NoteList struct {
	*EntryList[*Note]
}

// NewNoteList creates an empty note list
func NewNoteList() *NoteList {
	return &NoteList{newEntryList[*Note](EntryKindNote, matchNote)}
}

// SelectByFilter returns the notes matching c, see EntryList.SelectByFilter
func (l *NoteList) SelectByFilter(c *FilterCriteria) (*NoteList, error) {
	selected, err := l.EntryList.SelectByFilter(c)
	if err != nil {
		return nil, err
	}
	if selected == l.EntryList {
		return l, nil
	}
	return &NoteList{selected}, nil
}

// UsesSportType reports whether any note references the sport type
func (l *NoteList) UsesSportType(sportTypeID int) bool {
	for _, n := range l.items {
		if n.SportType != nil && n.SportType.ID == sportTypeID {
			return true
		}
	}
	return false
}

func matchNote(n *Note, f *compiledFilter) bool {
	return matchEntry(n, f) &&
		refMatches(n.SportType, f.SportType) &&
		refMatches(n.Equipment, f.Equipment)
}
