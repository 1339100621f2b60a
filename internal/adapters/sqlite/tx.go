package sqlite

import (
	"context"

	"github.com/jmoiron/sqlx"

	"sportlog/internal/domain"
)

// loadTx reads the tables inside one read transaction
type loadTx struct {
	ctx context.Context
	tx  *sqlx.Tx
}

func (l *loadTx) sportTypes(list *domain.SportTypeList) error {
	var types []sportTypeRow
	if err := l.tx.SelectContext(l.ctx, &types, `SELECT id, position, name, icon, color, record_distance FROM sport_types ORDER BY position`); err != nil {
		return err
	}
	var subTypes []subTypeRow
	if err := l.tx.SelectContext(l.ctx, &subTypes, `SELECT sport_type_id, id, position, name FROM sport_subtypes ORDER BY sport_type_id, position`); err != nil {
		return err
	}
	var equipment []equipmentRow
	if err := l.tx.SelectContext(l.ctx, &equipment, `SELECT sport_type_id, id, position, name, not_in_use FROM equipment ORDER BY sport_type_id, position`); err != nil {
		return err
	}

	byID := make(map[int]*domain.SportType, len(types))
	for _, r := range types {
		st := domain.NewSportType(r.ID, r.Name)
		st.Icon = r.Icon
		st.Color = r.Color
		st.RecordDistance = r.RecordDistance
		byID[r.ID] = st
		list.Set(st)
	}
	for _, r := range subTypes {
		if st, ok := byID[r.SportTypeID]; ok {
			st.SubTypes.Set(&domain.SportSubType{ID: r.ID, Name: r.Name})
		}
	}
	for _, r := range equipment {
		if st, ok := byID[r.SportTypeID]; ok {
			st.Equipment.Set(&domain.Equipment{ID: r.ID, Name: r.Name, NotInUse: r.NotInUse})
		}
	}
	return nil
}

func (l *loadTx) exercises(list *domain.ExerciseList) error {
	var rows []exerciseRow
	err := l.tx.SelectContext(l.ctx, &rows, `
		SELECT id, date_time, sport_type_id, sport_subtype_id, equipment_id, intensity,
		       duration, distance, avg_speed, avg_heart_rate, ascent, calories, hrm_file, comment
		FROM exercises ORDER BY id`)
	if err != nil {
		return err
	}

	items := make([]*domain.Exercise, 0, len(rows))
	for i := range rows {
		e, err := rows[i].toDomain()
		if err != nil {
			return err
		}
		items = append(items, e)
	}
	list.ReplaceAll(items)
	return nil
}

func (l *loadTx) notes(list *domain.NoteList) error {
	var rows []noteRow
	if err := l.tx.SelectContext(l.ctx, &rows, `SELECT id, date_time, text, sport_type_id, equipment_id FROM notes ORDER BY id`); err != nil {
		return err
	}

	items := make([]*domain.Note, 0, len(rows))
	for i := range rows {
		n, err := rows[i].toDomain()
		if err != nil {
			return err
		}
		items = append(items, n)
	}
	list.ReplaceAll(items)
	return nil
}

func (l *loadTx) weights(list *domain.WeightList) error {
	var rows []weightRow
	if err := l.tx.SelectContext(l.ctx, &rows, `SELECT id, date_time, value, comment FROM weights ORDER BY id`); err != nil {
		return err
	}

	items := make([]*domain.Weight, 0, len(rows))
	for i := range rows {
		w, err := rows[i].toDomain()
		if err != nil {
			return err
		}
		items = append(items, w)
	}
	list.ReplaceAll(items)
	return nil
}

// saveTx rewrites the tables inside one write transaction
type saveTx struct {
	ctx context.Context
	tx  *sqlx.Tx
}

func (w *saveTx) clear() error {
	for _, table := range []string{"sport_subtypes", "equipment", "sport_types", "exercises", "notes", "weights"} {
		if _, err := w.tx.ExecContext(w.ctx, `DELETE FROM `+table); err != nil {
			return err
		}
	}
	return nil
}

func (w *saveTx) sportTypes(types []*domain.SportType) error {
	for pos, st := range types {
		_, err := w.tx.NamedExecContext(w.ctx, `
			INSERT INTO sport_types (id, position, name, icon, color, record_distance)
			VALUES (:id, :position, :name, :icon, :color, :record_distance)
		`, sportTypeRow{
			ID:             st.ID,
			Position:       pos,
			Name:           st.Name,
			Icon:           st.Icon,
			Color:          st.Color,
			RecordDistance: st.RecordDistance,
		})
		if err != nil {
			return err
		}

		for subPos, sub := range st.SubTypes.All() {
			_, err := w.tx.NamedExecContext(w.ctx, `
				INSERT INTO sport_subtypes (sport_type_id, id, position, name)
				VALUES (:sport_type_id, :id, :position, :name)
			`, subTypeRow{SportTypeID: st.ID, ID: sub.ID, Position: subPos, Name: sub.Name})
			if err != nil {
				return err
			}
		}
		for eqPos, eq := range st.Equipment.All() {
			_, err := w.tx.NamedExecContext(w.ctx, `
				INSERT INTO equipment (sport_type_id, id, position, name, not_in_use)
				VALUES (:sport_type_id, :id, :position, :name, :not_in_use)
			`, equipmentRow{SportTypeID: st.ID, ID: eq.ID, Position: eqPos, Name: eq.Name, NotInUse: eq.NotInUse})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *saveTx) exercises(exercises []*domain.Exercise) error {
	for _, e := range exercises {
		_, err := w.tx.NamedExecContext(w.ctx, `
			INSERT INTO exercises (id, date_time, sport_type_id, sport_subtype_id, equipment_id, intensity,
				duration, distance, avg_speed, avg_heart_rate, ascent, calories, hrm_file, comment)
			VALUES (:id, :date_time, :sport_type_id, :sport_subtype_id, :equipment_id, :intensity,
				:duration, :distance, :avg_speed, :avg_heart_rate, :ascent, :calories, :hrm_file, :comment)
		`, exerciseToRow(e))
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *saveTx) notes(notes []*domain.Note) error {
	for _, n := range notes {
		_, err := w.tx.NamedExecContext(w.ctx, `
			INSERT INTO notes (id, date_time, text, sport_type_id, equipment_id)
			VALUES (:id, :date_time, :text, :sport_type_id, :equipment_id)
		`, noteToRow(n))
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *saveTx) weights(weights []*domain.Weight) error {
	for _, wt := range weights {
		_, err := w.tx.NamedExecContext(w.ctx, `
			INSERT INTO weights (id, date_time, value, comment)
			VALUES (:id, :date_time, :value, :comment)
		`, weightRow{ID: wt.ID, DateTime: formatTime(wt.DateTime), Value: wt.Value, Comment: wt.Comment})
		if err != nil {
			return err
		}
	}
	return nil
}
