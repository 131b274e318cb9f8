package store

import "fmt"

func scanTierDefault(scanner interface{ Scan(dest ...any) error }) (TierDefault, error) {
	var d TierDefault
	err := scanner.Scan(&d.ID, &d.Key, &d.Suggested, &d.Enabled, &d.Color,
		&d.Symbol, &d.SigDateDelta, &d.SigRemind, &d.DateIns, &d.DateUp)
	return d, err
}

func scanTraitDefault(scanner interface{ Scan(dest ...any) error }) (TraitDefault, error) {
	var d TraitDefault
	err := scanner.Scan(&d.ID, &d.Key, &d.Suggested, &d.Enabled, &d.IsDate,
		&d.IsContact, &d.Color, &d.Symbol, &d.DateIns, &d.DateUp)
	return d, err
}

// CreateTierDefault adds a tier name to the global catalog.
func (s *Store) CreateTierDefault(key string, suggested, enabled bool, color, symbol *string, delta *int64, mode *string) (TierDefault, error) {
	now := today()
	res, err := s.conn.Exec(`
		INSERT INTO tier_defaults (key, suggested, enabled, color, symbol, sig_date_delta, sig_remind, date_ins, date_up)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, key, suggested, enabled, color, symbol, delta, mode, now, now)
	if err != nil {
		return TierDefault{}, fmt.Errorf("creating tier default: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return TierDefault{}, fmt.Errorf("creating tier default: %w", err)
	}
	return TierDefault{ID: id, Key: key, Suggested: suggested, Enabled: enabled,
		Color: color, Symbol: symbol, SigDateDelta: delta, SigRemind: mode,
		DateIns: now, DateUp: now}, nil
}

// TierDefaults returns the tier catalog.
func (s *Store) TierDefaults() ([]TierDefault, error) {
	rows, err := s.conn.Query(`
		SELECT id, key, suggested, enabled, color, symbol, sig_date_delta, sig_remind, date_ins, date_up
		FROM tier_defaults ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defaults []TierDefault
	for rows.Next() {
		d, err := scanTierDefault(rows)
		if err != nil {
			return nil, err
		}
		defaults = append(defaults, d)
	}
	return defaults, rows.Err()
}

// CreateTraitDefault adds a trait key to the global catalog.
func (s *Store) CreateTraitDefault(key string, suggested, enabled, isDate, isContact bool, color, symbol string) (TraitDefault, error) {
	now := today()
	res, err := s.conn.Exec(`
		INSERT INTO trait_defaults (key, suggested, enabled, is_date, is_contact, color, symbol, date_ins, date_up)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, key, suggested, enabled, isDate, isContact, color, symbol, now, now)
	if err != nil {
		return TraitDefault{}, fmt.Errorf("creating trait default: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return TraitDefault{}, fmt.Errorf("creating trait default: %w", err)
	}
	return TraitDefault{ID: id, Key: key, Suggested: suggested, Enabled: enabled,
		IsDate: isDate, IsContact: isContact, Color: color, Symbol: symbol,
		DateIns: now, DateUp: now}, nil
}

// TraitDefaults returns the trait catalog.
func (s *Store) TraitDefaults() ([]TraitDefault, error) {
	rows, err := s.conn.Query(`
		SELECT id, key, suggested, enabled, is_date, is_contact, color, symbol, date_ins, date_up
		FROM trait_defaults ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var defaults []TraitDefault
	for rows.Next() {
		d, err := scanTraitDefault(rows)
		if err != nil {
			return nil, err
		}
		defaults = append(defaults, d)
	}
	return defaults, rows.Err()
}
