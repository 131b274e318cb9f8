package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

func scanPerson(scanner interface{ Scan(dest ...any) error }) (Person, error) {
	var p Person
	err := scanner.Scan(&p.ID, &p.Name, &p.Nick, &p.Me, &p.Meta, &p.DateIns, &p.DateUp)
	return p, err
}

// CreatePerson inserts a new person and returns the stored row.
func (s *Store) CreatePerson(name string, me bool) (Person, error) {
	now := today()
	res, err := s.conn.Exec(`
		INSERT INTO people (name, me, date_ins, date_up) VALUES (?, ?, ?, ?)
	`, name, me, now, now)
	if err != nil {
		return Person{}, fmt.Errorf("creating person: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Person{}, fmt.Errorf("creating person: %w", err)
	}
	return Person{ID: id, Name: name, Me: me, DateIns: now, DateUp: now}, nil
}

// People returns all people in insertion order.
func (s *Store) People() ([]Person, error) {
	rows, err := s.conn.Query(`
		SELECT id, name, nick, me, meta, date_ins, date_up FROM people ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var people []Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, rows.Err()
}

// GetPerson returns a single person by id, or nil if not found.
func (s *Store) GetPerson(id int64) (*Person, error) {
	row := s.conn.QueryRow(`
		SELECT id, name, nick, me, meta, date_ins, date_up FROM people WHERE id = ?
	`, id)
	p, err := scanPerson(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Self returns the person with me=true, or nil if the wizard has not run.
func (s *Store) Self() (*Person, error) {
	row := s.conn.QueryRow(`
		SELECT id, name, nick, me, meta, date_ins, date_up FROM people WHERE me = 1 LIMIT 1
	`)
	p, err := scanPerson(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePerson replaces the person's name and nickname. Unknown ids are a
// silent no-op.
func (s *Store) UpdatePerson(id int64, name string, nick *string) error {
	_, err := s.conn.Exec(`
		UPDATE people SET name = ?, nick = ?, date_up = ? WHERE id = ?
	`, name, nick, today(), id)
	if err != nil {
		return fmt.Errorf("updating person %d: %w", id, err)
	}
	return nil
}

// MergeMeta applies fn to the person's current meta document and writes the
// result back. Keys not touched by fn survive; this is a merge of the typed
// fields, not a document replace.
func (s *Store) MergeMeta(id int64, fn func(*PersonMeta)) error {
	p, err := s.GetPerson(id)
	if err != nil {
		return fmt.Errorf("merging meta for person %d: %w", id, err)
	}
	if p == nil {
		return nil
	}

	// Keep unknown keys from the stored document intact.
	raw := map[string]any{}
	if p.Meta != nil {
		_ = json.Unmarshal([]byte(*p.Meta), &raw)
	}
	m := p.MetaDoc()
	fn(&m)
	if m.LastReminded != "" {
		raw["last_reminded"] = m.LastReminded
	} else {
		delete(raw, "last_reminded")
	}
	if m.InstallID != "" {
		raw["install_id"] = m.InstallID
	} else {
		delete(raw, "install_id")
	}

	buf, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("encoding meta for person %d: %w", id, err)
	}
	doc := string(buf)
	_, err = s.conn.Exec(`
		UPDATE people SET meta = ?, date_up = ? WHERE id = ?
	`, doc, today(), id)
	if err != nil {
		return fmt.Errorf("merging meta for person %d: %w", id, err)
	}
	return nil
}
