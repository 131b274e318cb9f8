package store

import "fmt"

func scanTier(scanner interface{ Scan(dest ...any) error }) (Tier, error) {
	var t Tier
	err := scanner.Scan(&t.ID, &t.PplID, &t.Name, &t.Color, &t.Symbol,
		&t.SigDateDelta, &t.DateIns, &t.DateUp)
	return t, err
}

// CreateTier assigns a person to a relationship circle by name. Presentation
// and reminder overrides start unset and fall through to the catalog.
func (s *Store) CreateTier(pplID int64, name string) (Tier, error) {
	now := today()
	res, err := s.conn.Exec(`
		INSERT INTO tiers (ppl_id, name, date_ins, date_up) VALUES (?, ?, ?, ?)
	`, pplID, name, now, now)
	if err != nil {
		return Tier{}, fmt.Errorf("creating tier: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Tier{}, fmt.Errorf("creating tier: %w", err)
	}
	return Tier{ID: id, PplID: pplID, Name: name, DateIns: now, DateUp: now}, nil
}

// Tiers returns every tier assignment row.
func (s *Store) Tiers() ([]Tier, error) {
	rows, err := s.conn.Query(`
		SELECT id, ppl_id, name, color, symbol, sig_date_delta, date_ins, date_up
		FROM tiers ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiers []Tier
	for rows.Next() {
		t, err := scanTier(rows)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

// UpdateTier replaces the tier's name, color and symbol. Unknown ids are a
// silent no-op.
func (s *Store) UpdateTier(id int64, name string, color, symbol *string) error {
	_, err := s.conn.Exec(`
		UPDATE tiers SET name = ?, color = ?, symbol = ?, date_up = ? WHERE id = ?
	`, name, color, symbol, today(), id)
	if err != nil {
		return fmt.Errorf("updating tier %d: %w", id, err)
	}
	return nil
}
