package postgres

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/fadhilah/ramadhancare/internal/model"
)

// JournalRepo implements JournalRepository using PostgreSQL.
type JournalRepo struct{ db *DB }

// NewJournalRepo constructs a journal repository.
func NewJournalRepo(db *DB) *JournalRepo { return &JournalRepo{db: db} }

// ListByUser returns every entry owned by the user, oldest first.
func (r *JournalRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.JournalEntry, error) {
	const q = `
SELECT id, user_id, date, mood, story, evaluasi, gratitude
FROM journal_entries WHERE user_id=$1 ORDER BY date`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.JournalEntry
	for rows.Next() {
		var (
			e model.JournalEntry
			d time.Time
		)
		if err = rows.Scan(&e.ID, &e.UserID, &d, &e.Mood, &e.Story, &e.Evaluasi, &e.Gratitude); err != nil {
			return nil, err
		}
		e.Date = dateStr(d)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Upsert inserts the entry or, when one exists for (user_id, date),
// replaces its fields. Writing twice for the same date therefore updates
// the same row instead of creating a duplicate.
func (r *JournalRepo) Upsert(ctx context.Context, entry *model.JournalEntry) error {
	const q = `
INSERT INTO journal_entries (id, user_id, date, mood, story, evaluasi, gratitude)
VALUES ($1,$2,$3::date,$4,$5,$6,$7)
ON CONFLICT (user_id, date)
DO UPDATE SET mood=EXCLUDED.mood, story=EXCLUDED.story,
  evaluasi=EXCLUDED.evaluasi, gratitude=EXCLUDED.gratitude
RETURNING id`
	return r.db.Pool.QueryRow(ctx, q,
		entry.ID, entry.UserID, entry.Date, string(entry.Mood), entry.Story, entry.Evaluasi, entry.Gratitude,
	).Scan(&entry.ID)
}
