package xmlfile

import (
	"encoding/xml"
	"fmt"
	"time"

	"sportlog/internal/domain"
)

const (
	formatVersion = "1"
	timeLayout    = "2006-01-02T15:04:05"
)

// document is the on-disk shape of a logbook
type document struct {
	XMLName    xml.Name      `xml:"sportlog"`
	Version    string        `xml:"version,attr"`
	SportTypes []sportTypeEl `xml:"sport-types>sport-type"`
	Exercises  []exerciseEl  `xml:"exercises>exercise"`
	Notes      []noteEl      `xml:"notes>note"`
	Weights    []weightEl    `xml:"weights>weight"`
}

type sportTypeEl struct {
	ID             int           `xml:"id,attr"`
	Name           string        `xml:"name"`
	Icon           string        `xml:"icon,omitempty"`
	Color          string        `xml:"color,omitempty"`
	RecordDistance bool          `xml:"record-distance"`
	SubTypes       []subTypeEl   `xml:"subtypes>subtype"`
	Equipment      []equipmentEl `xml:"equipment-list>equipment"`
}

type subTypeEl struct {
	ID   int    `xml:"id,attr"`
	Name string `xml:",chardata"`
}

type equipmentEl struct {
	ID       int    `xml:"id,attr"`
	NotInUse bool   `xml:"not-in-use,attr,omitempty"`
	Name     string `xml:",chardata"`
}

type exerciseEl struct {
	ID             int     `xml:"id,attr"`
	DateTime       string  `xml:"date-time"`
	SportTypeID    int     `xml:"sport-type-id"`
	SportSubTypeID int     `xml:"sport-subtype-id"`
	EquipmentID    *int    `xml:"equipment-id,omitempty"`
	Intensity      string  `xml:"intensity"`
	Duration       int     `xml:"duration"`
	Distance       float64 `xml:"distance"`
	AvgSpeed       float64 `xml:"avg-speed"`
	AvgHeartRate   int     `xml:"avg-heartrate,omitempty"`
	Ascent         int     `xml:"ascent,omitempty"`
	Calories       int     `xml:"calories,omitempty"`
	HRMFile        string  `xml:"hrm-file,omitempty"`
	Comment        string  `xml:"comment,omitempty"`
}

type noteEl struct {
	ID          int    `xml:"id,attr"`
	DateTime    string `xml:"date-time"`
	SportTypeID *int   `xml:"sport-type-id,omitempty"`
	EquipmentID *int   `xml:"equipment-id,omitempty"`
	Text        string `xml:"text"`
}

type weightEl struct {
	ID       int     `xml:"id,attr"`
	DateTime string  `xml:"date-time"`
	Value    float64 `xml:"value"`
	Comment  string  `xml:"comment,omitempty"`
}

func idPtr(id int) *int {
	return &id
}

// newDocument converts a logbook; entries store graph references by ID
func newDocument(book *domain.Logbook) *document {
	doc := &document{Version: formatVersion}

	for _, st := range book.SportTypes.All() {
		el := sportTypeEl{
			ID:             st.ID,
			Name:           st.Name,
			Icon:           st.Icon,
			Color:          st.Color,
			RecordDistance: st.RecordDistance,
		}
		for _, sub := range st.SubTypes.All() {
			el.SubTypes = append(el.SubTypes, subTypeEl{ID: sub.ID, Name: sub.Name})
		}
		for _, eq := range st.Equipment.All() {
			el.Equipment = append(el.Equipment, equipmentEl{ID: eq.ID, Name: eq.Name, NotInUse: eq.NotInUse})
		}
		doc.SportTypes = append(doc.SportTypes, el)
	}

	for _, e := range book.Exercises.All() {
		el := exerciseEl{
			ID:           e.ID,
			DateTime:     e.DateTime.Format(timeLayout),
			Intensity:    e.Intensity.String(),
			Duration:     e.Duration,
			Distance:     e.Distance,
			AvgSpeed:     e.AvgSpeed,
			AvgHeartRate: e.AvgHeartRate,
			Ascent:       e.Ascent,
			Calories:     e.Calories,
			HRMFile:      e.HRMFile,
			Comment:      e.Comment,
		}
		if e.SportType != nil {
			el.SportTypeID = e.SportType.ID
		}
		if e.SportSubType != nil {
			el.SportSubTypeID = e.SportSubType.ID
		}
		if e.Equipment != nil {
			el.EquipmentID = idPtr(e.Equipment.ID)
		}
		doc.Exercises = append(doc.Exercises, el)
	}

	for _, n := range book.Notes.All() {
		el := noteEl{ID: n.ID, DateTime: n.DateTime.Format(timeLayout), Text: n.Text}
		if n.SportType != nil {
			el.SportTypeID = idPtr(n.SportType.ID)
		}
		if n.Equipment != nil {
			el.EquipmentID = idPtr(n.Equipment.ID)
		}
		doc.Notes = append(doc.Notes, el)
	}

	for _, w := range book.Weights.All() {
		doc.Weights = append(doc.Weights, weightEl{
			ID:       w.ID,
			DateTime: w.DateTime.Format(timeLayout),
			Value:    w.Value,
			Comment:  w.Comment,
		})
	}
	return doc
}

// logbook converts the document back. Entries point at placeholder graph
// objects carrying only IDs.
func (doc *document) logbook() (*domain.Logbook, error) {
	book := domain.NewLogbook()

	for _, el := range doc.SportTypes {
		st := domain.NewSportType(el.ID, el.Name)
		st.Icon = el.Icon
		st.Color = el.Color
		st.RecordDistance = el.RecordDistance
		for _, sub := range el.SubTypes {
			st.SubTypes.Set(&domain.SportSubType{ID: sub.ID, Name: sub.Name})
		}
		for _, eq := range el.Equipment {
			st.Equipment.Set(&domain.Equipment{ID: eq.ID, Name: eq.Name, NotInUse: eq.NotInUse})
		}
		book.SportTypes.Set(st)
	}

	exercises := make([]*domain.Exercise, 0, len(doc.Exercises))
	for _, el := range doc.Exercises {
		dt, err := parseTime(el.DateTime)
		if err != nil {
			return nil, fmt.Errorf("exercise %d: %w", el.ID, err)
		}
		intensity, err := domain.ParseIntensity(el.Intensity)
		if err != nil {
			return nil, fmt.Errorf("exercise %d: %w", el.ID, err)
		}
		e := &domain.Exercise{
			ID:           el.ID,
			DateTime:     dt,
			SportType:    &domain.SportType{ID: el.SportTypeID},
			SportSubType: &domain.SportSubType{ID: el.SportSubTypeID},
			Intensity:    intensity,
			Duration:     el.Duration,
			Distance:     el.Distance,
			AvgSpeed:     el.AvgSpeed,
			AvgHeartRate: el.AvgHeartRate,
			Ascent:       el.Ascent,
			Calories:     el.Calories,
			HRMFile:      el.HRMFile,
			Comment:      el.Comment,
		}
		if el.EquipmentID != nil {
			e.Equipment = &domain.Equipment{ID: *el.EquipmentID}
		}
		exercises = append(exercises, e)
	}
	book.Exercises.ReplaceAll(exercises)

	notes := make([]*domain.Note, 0, len(doc.Notes))
	for _, el := range doc.Notes {
		dt, err := parseTime(el.DateTime)
		if err != nil {
			return nil, fmt.Errorf("note %d: %w", el.ID, err)
		}
		n := &domain.Note{ID: el.ID, DateTime: dt, Text: el.Text}
		if el.SportTypeID != nil {
			n.SportType = &domain.SportType{ID: *el.SportTypeID}
		}
		if el.EquipmentID != nil {
			n.Equipment = &domain.Equipment{ID: *el.EquipmentID}
		}
		notes = append(notes, n)
	}
	book.Notes.ReplaceAll(notes)

	weights := make([]*domain.Weight, 0, len(doc.Weights))
	for _, el := range doc.Weights {
		dt, err := parseTime(el.DateTime)
		if err != nil {
			return nil, fmt.Errorf("weight %d: %w", el.ID, err)
		}
		weights = append(weights, &domain.Weight{ID: el.ID, DateTime: dt, Value: el.Value, Comment: el.Comment})
	}
	book.Weights.ReplaceAll(weights)

	return book, nil
}

func parseTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(timeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date-time %q: %w", s, err)
	}
	return t, nil
}
