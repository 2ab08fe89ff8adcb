package postgres

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/fadhilah/ramadhancare/internal/model"
)

// SedekahRepo implements SedekahRepository using PostgreSQL.
type SedekahRepo struct{ db *DB }

// NewSedekahRepo constructs a sedekah repository.
func NewSedekahRepo(db *DB) *SedekahRepo { return &SedekahRepo{db: db} }

// ListByUser returns every entry owned by the user, oldest first.
func (r *SedekahRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.SedekahRecord, error) {
	const q = `
SELECT id, user_id, date, nominal, tujuan, kategori, notes
FROM sedekah_records WHERE user_id=$1 ORDER BY date`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SedekahRecord
	for rows.Next() {
		var (
			rec model.SedekahRecord
			d   time.Time
		)
		if err = rows.Scan(&rec.ID, &rec.UserID, &d, &rec.Nominal, &rec.Tujuan, &rec.Kategori, &rec.Notes); err != nil {
			return nil, err
		}
		rec.Date = dateStr(d)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Add inserts a new entry.
func (r *SedekahRepo) Add(ctx context.Context, rec *model.SedekahRecord) error {
	const q = `
INSERT INTO sedekah_records (id, user_id, date, nominal, tujuan, kategori, notes)
VALUES ($1,$2,$3::date,$4,$5,$6,$7)`
	_, err := r.db.Pool.Exec(ctx, q, rec.ID, rec.UserID, rec.Date, rec.Nominal, rec.Tujuan, rec.Kategori, rec.Notes)
	return err
}
