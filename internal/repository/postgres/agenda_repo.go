package postgres

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/fadhilah/ramadhancare/internal/errs"
	"github.com/fadhilah/ramadhancare/internal/model"
)

// AgendaRepo implements AgendaRepository using PostgreSQL.
type AgendaRepo struct{ db *DB }

// NewAgendaRepo constructs an agenda repository.
func NewAgendaRepo(db *DB) *AgendaRepo { return &AgendaRepo{db: db} }

// ListByUser returns every entry owned by the user, soonest first.
func (r *AgendaRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.AgendaEntry, error) {
	const q = `
SELECT id, user_id, title, date, event_time, category, location, reminder, notes
FROM agenda_entries WHERE user_id=$1 ORDER BY date, event_time`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.AgendaEntry
	for rows.Next() {
		var (
			e model.AgendaEntry
			d time.Time
		)
		if err = rows.Scan(&e.ID, &e.UserID, &e.Title, &d, &e.Time, &e.Category, &e.Location, &e.Reminder, &e.Notes); err != nil {
			return nil, err
		}
		e.Date = dateStr(d)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Add inserts a new entry.
func (r *AgendaRepo) Add(ctx context.Context, entry *model.AgendaEntry) error {
	const q = `
INSERT INTO agenda_entries (id, user_id, title, date, event_time, category, location, reminder, notes)
VALUES ($1,$2,$3,$4::date,$5,$6,$7,$8,$9)`
	_, err := r.db.Pool.Exec(ctx, q,
		entry.ID, entry.UserID, entry.Title, entry.Date, entry.Time,
		string(entry.Category), entry.Location, entry.Reminder, entry.Notes)
	return err
}

// Delete removes an entry by ID.
func (r *AgendaRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const q = `DELETE FROM agenda_entries WHERE id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
