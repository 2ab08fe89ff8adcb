package postgres

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/fadhilah/ramadhancare/internal/model"
)

// TilawahRepo implements TilawahRepository using PostgreSQL.
type TilawahRepo struct{ db *DB }

// NewTilawahRepo constructs a tilawah repository.
func NewTilawahRepo(db *DB) *TilawahRepo { return &TilawahRepo{db: db} }

// ListByUser returns every entry owned by the user, oldest first.
func (r *TilawahRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.TilawahRecord, error) {
	const q = `
SELECT id, user_id, date, surah, halaman, juz, ayat
FROM tilawah_records WHERE user_id=$1 ORDER BY date`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.TilawahRecord
	for rows.Next() {
		var (
			rec model.TilawahRecord
			d   time.Time
		)
		if err = rows.Scan(&rec.ID, &rec.UserID, &d, &rec.Surah, &rec.Halaman, &rec.Juz, &rec.Ayat); err != nil {
			return nil, err
		}
		rec.Date = dateStr(d)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Add inserts a new entry.
func (r *TilawahRepo) Add(ctx context.Context, rec *model.TilawahRecord) error {
	const q = `
INSERT INTO tilawah_records (id, user_id, date, surah, halaman, juz, ayat)
VALUES ($1,$2,$3::date,$4,$5,$6,$7)`
	_, err := r.db.Pool.Exec(ctx, q, rec.ID, rec.UserID, rec.Date, rec.Surah, rec.Halaman, rec.Juz, rec.Ayat)
	return err
}
