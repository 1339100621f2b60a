package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"sportlog/internal/domain"
)

// Timestamps are stored as local wall-clock time
const timeLayout = "2006-01-02T15:04:05"

type sportTypeRow struct {
	ID             int    `db:"id"`
	Position       int    `db:"position"`
	Name           string `db:"name"`
	Icon           string `db:"icon"`
	Color          string `db:"color"`
	RecordDistance bool   `db:"record_distance"`
}

type subTypeRow struct {
	SportTypeID int    `db:"sport_type_id"`
	ID          int    `db:"id"`
	Position    int    `db:"position"`
	Name        string `db:"name"`
}

type equipmentRow struct {
	SportTypeID int    `db:"sport_type_id"`
	ID          int    `db:"id"`
	Position    int    `db:"position"`
	Name        string `db:"name"`
	NotInUse    bool   `db:"not_in_use"`
}

type exerciseRow struct {
	ID             int           `db:"id"`
	DateTime       string        `db:"date_time"`
	SportTypeID    int           `db:"sport_type_id"`
	SportSubTypeID int           `db:"sport_subtype_id"`
	EquipmentID    sql.NullInt64 `db:"equipment_id"`
	Intensity      string        `db:"intensity"`
	Duration       int           `db:"duration"`
	Distance       float64       `db:"distance"`
	AvgSpeed       float64       `db:"avg_speed"`
	AvgHeartRate   int           `db:"avg_heart_rate"`
	Ascent         int           `db:"ascent"`
	Calories       int           `db:"calories"`
	HRMFile        string        `db:"hrm_file"`
	Comment        string        `db:"comment"`
}

type noteRow struct {
	ID          int           `db:"id"`
	DateTime    string        `db:"date_time"`
	Text        string        `db:"text"`
	SportTypeID sql.NullInt64 `db:"sport_type_id"`
	EquipmentID sql.NullInt64 `db:"equipment_id"`
}

type weightRow struct {
	ID       int     `db:"id"`
	DateTime string  `db:"date_time"`
	Value    float64 `db:"value"`
	Comment  string  `db:"comment"`
}

func formatTime(t time.Time) string {
	return t.Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.ParseInLocation(timeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return t, nil
}

func nullID(id int, ok bool) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(id), Valid: ok}
}

func (r *exerciseRow) toDomain() (*domain.Exercise, error) {
	dt, err := parseTime(r.DateTime)
	if err != nil {
		return nil, err
	}
	intensity, err := domain.ParseIntensity(r.Intensity)
	if err != nil {
		return nil, err
	}

	e := &domain.Exercise{
		ID:           r.ID,
		DateTime:     dt,
		SportType:    &domain.SportType{ID: r.SportTypeID},
		SportSubType: &domain.SportSubType{ID: r.SportSubTypeID},
		Intensity:    intensity,
		Duration:     r.Duration,
		Distance:     r.Distance,
		AvgSpeed:     r.AvgSpeed,
		AvgHeartRate: r.AvgHeartRate,
		Ascent:       r.Ascent,
		Calories:     r.Calories,
		HRMFile:      r.HRMFile,
		Comment:      r.Comment,
	}
	if r.EquipmentID.Valid {
		e.Equipment = &domain.Equipment{ID: int(r.EquipmentID.Int64)}
	}
	return e, nil
}

func exerciseToRow(e *domain.Exercise) exerciseRow {
	r := exerciseRow{
		ID:           e.ID,
		DateTime:     formatTime(e.DateTime),
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
		r.SportTypeID = e.SportType.ID
	}
	if e.SportSubType != nil {
		r.SportSubTypeID = e.SportSubType.ID
	}
	if e.Equipment != nil {
		r.EquipmentID = nullID(e.Equipment.ID, true)
	}
	return r
}

func (r *noteRow) toDomain() (*domain.Note, error) {
	dt, err := parseTime(r.DateTime)
	if err != nil {
		return nil, err
	}

	n := &domain.Note{ID: r.ID, DateTime: dt, Text: r.Text}
	if r.SportTypeID.Valid {
		n.SportType = &domain.SportType{ID: int(r.SportTypeID.Int64)}
	}
	if r.EquipmentID.Valid {
		n.Equipment = &domain.Equipment{ID: int(r.EquipmentID.Int64)}
	}
	return n, nil
}

func noteToRow(n *domain.Note) noteRow {
	r := noteRow{ID: n.ID, DateTime: formatTime(n.DateTime), Text: n.Text}
	if n.SportType != nil {
		r.SportTypeID = nullID(n.SportType.ID, true)
	}
	if n.Equipment != nil {
		r.EquipmentID = nullID(n.Equipment.ID, true)
	}
	return r
}

func (r *weightRow) toDomain() (*domain.Weight, error) {
	dt, err := parseTime(r.DateTime)
	if err != nil {
		return nil, err
	}
	return &domain.Weight{ID: r.ID, DateTime: dt, Value: r.Value, Comment: r.Comment}, nil
}
