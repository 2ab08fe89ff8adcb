package postgres

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/fadhilah/ramadhancare/internal/errs"
	"github.com/fadhilah/ramadhancare/internal/model"
)

// PuasaRepo implements PuasaRepository using PostgreSQL. The compound
// "sahur" pair maps to the sahur_time and sahur_photo columns here and
// nowhere else.
type PuasaRepo struct{ db *DB }

// NewPuasaRepo constructs a puasa repository.
func NewPuasaRepo(db *DB) *PuasaRepo { return &PuasaRepo{db: db} }

// ListByUser returns every record owned by the user, oldest first.
func (r *PuasaRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.PuasaRecord, error) {
	const q = `
SELECT id, user_id, date, completed, sahur_time, sahur_photo, alasan
FROM puasa_records WHERE user_id=$1 ORDER BY date`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.PuasaRecord
	for rows.Next() {
		var (
			rec model.PuasaRecord
			d   time.Time
		)
		if err = rows.Scan(&rec.ID, &rec.UserID, &d, &rec.Completed, &rec.SahurTime, &rec.SahurPhoto, &rec.Alasan); err != nil {
			return nil, err
		}
		rec.Date = dateStr(d)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Upsert inserts the record or, when a row for (user_id, date) already
// exists, replaces its fields. The surviving row ID is written back.
func (r *PuasaRepo) Upsert(ctx context.Context, rec *model.PuasaRecord) error {
	const q = `
INSERT INTO puasa_records (id, user_id, date, completed, sahur_time, sahur_photo, alasan)
VALUES ($1,$2,$3::date,$4,$5,$6,$7)
ON CONFLICT (user_id, date)
DO UPDATE SET completed=EXCLUDED.completed, sahur_time=EXCLUDED.sahur_time,
  sahur_photo=EXCLUDED.sahur_photo, alasan=EXCLUDED.alasan
RETURNING id`
	return r.db.Pool.QueryRow(ctx, q,
		rec.ID, rec.UserID, rec.Date, rec.Completed, rec.SahurTime, rec.SahurPhoto, rec.Alasan,
	).Scan(&rec.ID)
}

// Update applies a partial update keyed by record ID.
func (r *PuasaRepo) Update(ctx context.Context, userID, id uuid.UUID, upd model.PuasaUpdate) error {
	const q = `
UPDATE puasa_records SET
  completed   = COALESCE($3, completed),
  sahur_time  = COALESCE($4, sahur_time),
  sahur_photo = COALESCE($5, sahur_photo),
  alasan      = COALESCE($6, alasan)
WHERE id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, id, userID, upd.Completed, upd.SahurTime, upd.SahurPhoto, upd.Alasan)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
