package store

import "fmt"

func scanTrait(scanner interface{ Scan(dest ...any) error }) (Trait, error) {
	var t Trait
	err := scanner.Scan(&t.ID, &t.PplID, &t.Key, &t.Value, &t.Hidden, &t.DateIns, &t.DateUp)
	return t, err
}

// CreateTrait inserts a free-form key/value attribute for a person.
func (s *Store) CreateTrait(pplID int64, key, value string, hidden bool) (Trait, error) {
	now := today()
	res, err := s.conn.Exec(`
		INSERT INTO traits (ppl_id, key, value, hidden, date_ins, date_up)
		VALUES (?, ?, ?, ?, ?, ?)
	`, pplID, key, value, hidden, now, now)
	if err != nil {
		return Trait{}, fmt.Errorf("creating trait: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Trait{}, fmt.Errorf("creating trait: %w", err)
	}
	return Trait{ID: id, PplID: pplID, Key: key, Value: value, Hidden: hidden,
		DateIns: now, DateUp: now}, nil
}

// Traits returns every trait row.
func (s *Store) Traits() ([]Trait, error) {
	rows, err := s.conn.Query(`
		SELECT id, ppl_id, key, value, hidden, date_ins, date_up FROM traits ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var traits []Trait
	for rows.Next() {
		t, err := scanTrait(rows)
		if err != nil {
			return nil, err
		}
		traits = append(traits, t)
	}
	return traits, rows.Err()
}

// UpdateTrait replaces the trait's key, value and hidden flag. Unknown ids
// are a silent no-op.
func (s *Store) UpdateTrait(id int64, key, value string, hidden bool) error {
	_, err := s.conn.Exec(`
		UPDATE traits SET key = ?, value = ?, hidden = ?, date_up = ? WHERE id = ?
	`, key, value, hidden, today(), id)
	if err != nil {
		return fmt.Errorf("updating trait %d: %w", id, err)
	}
	return nil
}
