package store

import "fmt"

func scanRelation(scanner interface{ Scan(dest ...any) error }) (Relation, error) {
	var r Relation
	err := scanner.Scan(&r.ID, &r.PplIDA, &r.PplIDB, &r.Type, &r.DateEntered,
		&r.DateEnded, &r.Superseded, &r.DateIns, &r.DateUp)
	return r, err
}

// CreateRelation inserts a directed edge from person A to person B.
func (s *Store) CreateRelation(aID, bID int64, typ string, entered, ended *string) (Relation, error) {
	now := today()
	res, err := s.conn.Exec(`
		INSERT INTO relations (ppl_id_a, ppl_id_b, type, date_entered, date_ended, superseded, date_ins, date_up)
		VALUES (?, ?, ?, ?, ?, 0, ?, ?)
	`, aID, bID, typ, entered, ended, now, now)
	if err != nil {
		return Relation{}, fmt.Errorf("creating relation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Relation{}, fmt.Errorf("creating relation: %w", err)
	}
	return Relation{ID: id, PplIDA: aID, PplIDB: bID, Type: typ,
		DateEntered: entered, DateEnded: ended, DateIns: now, DateUp: now}, nil
}

// Relations returns every relation row.
func (s *Store) Relations() ([]Relation, error) {
	rows, err := s.conn.Query(`
		SELECT id, ppl_id_a, ppl_id_b, type, date_entered, date_ended, superseded, date_ins, date_up
		FROM relations ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var relations []Relation
	for rows.Next() {
		r, err := scanRelation(rows)
		if err != nil {
			return nil, err
		}
		relations = append(relations, r)
	}
	return relations, rows.Err()
}

// UpdateRelation replaces the type and entered/ended dates. Unknown ids are
// a silent no-op.
func (s *Store) UpdateRelation(id int64, typ string, entered, ended *string) error {
	_, err := s.conn.Exec(`
		UPDATE relations SET type = ?, date_entered = ?, date_ended = ?, date_up = ? WHERE id = ?
	`, typ, entered, ended, today(), id)
	if err != nil {
		return fmt.Errorf("updating relation %d: %w", id, err)
	}
	return nil
}
