package store

import "fmt"

func scanContact(scanner interface{ Scan(dest ...any) error }) (Contact, error) {
	var c Contact
	err := scanner.Scan(&c.ID, &c.PplID, &c.Type, &c.Designator, &c.Value,
		&c.DateAcq, &c.DateIns, &c.DateUp)
	return c, err
}

// CreateContact inserts a contact method for a person. The acquisition date
// is stamped with today.
func (s *Store) CreateContact(pplID int64, typ string, designator *string, value string) (Contact, error) {
	now := today()
	res, err := s.conn.Exec(`
		INSERT INTO contacts (ppl_id, type, designator, value, date_acq, date_ins, date_up)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, pplID, typ, designator, value, now, now, now)
	if err != nil {
		return Contact{}, fmt.Errorf("creating contact: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Contact{}, fmt.Errorf("creating contact: %w", err)
	}
	return Contact{ID: id, PplID: pplID, Type: typ, Designator: designator, Value: value,
		DateAcq: &now, DateIns: now, DateUp: now}, nil
}

// Contacts returns every contact row.
func (s *Store) Contacts() ([]Contact, error) {
	rows, err := s.conn.Query(`
		SELECT id, ppl_id, type, designator, value, date_acq, date_ins, date_up
		FROM contacts ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// UpdateContact replaces the contact's type, designator and value. Unknown
// ids are a silent no-op.
func (s *Store) UpdateContact(id int64, typ string, designator *string, value string) error {
	_, err := s.conn.Exec(`
		UPDATE contacts SET type = ?, designator = ?, value = ?, date_up = ? WHERE id = ?
	`, typ, designator, value, today(), id)
	if err != nil {
		return fmt.Errorf("updating contact %d: %w", id, err)
	}
	return nil
}
