package store

import "fmt"

func scanSigDate(scanner interface{ Scan(dest ...any) error }) (SigDate, error) {
	var d SigDate
	err := scanner.Scan(&d.ID, &d.PplID, &d.Date, &d.Event, &d.DoRemind,
		&d.WithPpl, &d.DateIns, &d.DateUp)
	return d, err
}

// CreateSigDate inserts an annually-recurring date for a person. date must
// already be ISO formatted.
func (s *Store) CreateSigDate(pplID int64, date, event string, doRemind bool) (SigDate, error) {
	now := today()
	res, err := s.conn.Exec(`
		INSERT INTO sig_dates (ppl_id, date, event, do_remind, date_ins, date_up)
		VALUES (?, ?, ?, ?, ?, ?)
	`, pplID, date, event, doRemind, now, now)
	if err != nil {
		return SigDate{}, fmt.Errorf("creating sig date: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return SigDate{}, fmt.Errorf("creating sig date: %w", err)
	}
	return SigDate{ID: id, PplID: pplID, Date: date, Event: event, DoRemind: doRemind,
		DateIns: now, DateUp: now}, nil
}

// SigDates returns every significant date row.
func (s *Store) SigDates() ([]SigDate, error) {
	rows, err := s.conn.Query(`
		SELECT id, ppl_id, date, event, do_remind, with_ppl, date_ins, date_up
		FROM sig_dates ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []SigDate
	for rows.Next() {
		d, err := scanSigDate(rows)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

// UpdateSigDate replaces the event name, date and remind flag. Unknown ids
// are a silent no-op.
func (s *Store) UpdateSigDate(id int64, event, date string, doRemind bool) error {
	_, err := s.conn.Exec(`
		UPDATE sig_dates SET event = ?, date = ?, do_remind = ?, date_up = ? WHERE id = ?
	`, event, date, doRemind, today(), id)
	if err != nil {
		return fmt.Errorf("updating sig date %d: %w", id, err)
	}
	return nil
}
