package postgres

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/fadhilah/ramadhancare/internal/errs"
	"github.com/fadhilah/ramadhancare/internal/model"
)

// SholatRepo implements SholatRepository using PostgreSQL.
type SholatRepo struct{ db *DB }

// NewSholatRepo constructs a sholat repository.
func NewSholatRepo(db *DB) *SholatRepo { return &SholatRepo{db: db} }

// ListByUser returns every record owned by the user, oldest first.
func (r *SholatRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.SholatRecord, error) {
	const q = `
SELECT id, user_id, date, type, name, completed, rakaat, alasan
FROM sholat_records WHERE user_id=$1 ORDER BY date, name`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.SholatRecord
	for rows.Next() {
		var (
			rec model.SholatRecord
			d   time.Time
		)
		if err = rows.Scan(&rec.ID, &rec.UserID, &d, &rec.Type, &rec.Name, &rec.Completed, &rec.Rakaat, &rec.Alasan); err != nil {
			return nil, err
		}
		rec.Date = dateStr(d)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Add inserts the record. Wajib rows hit the partial unique index on
// (user_id, date, name) and turn into an update of the existing row; the
// surviving row ID is written back into rec.
func (r *SholatRepo) Add(ctx context.Context, rec *model.SholatRecord) error {
	const q = `
INSERT INTO sholat_records (id, user_id, date, type, name, completed, rakaat, alasan)
VALUES ($1,$2,$3::date,$4,$5,$6,$7,$8)
ON CONFLICT (user_id, date, name) WHERE type = 'wajib'
DO UPDATE SET completed=EXCLUDED.completed, rakaat=EXCLUDED.rakaat, alasan=EXCLUDED.alasan
RETURNING id`
	return r.db.Pool.QueryRow(ctx, q,
		rec.ID, rec.UserID, rec.Date, string(rec.Type), rec.Name, rec.Completed, rec.Rakaat, rec.Alasan,
	).Scan(&rec.ID)
}

// Update applies a partial update keyed by record ID.
func (r *SholatRepo) Update(ctx context.Context, userID, id uuid.UUID, upd model.SholatUpdate) error {
	const q = `
UPDATE sholat_records SET
  completed = COALESCE($3, completed),
  rakaat    = COALESCE($4, rakaat),
  alasan    = COALESCE($5, alasan)
WHERE id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, id, userID, upd.Completed, upd.Rakaat, upd.Alasan)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Delete removes a record by ID.
func (r *SholatRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const q = `DELETE FROM sholat_records WHERE id=$1 AND user_id=$2`
	tag, err := r.db.Pool.Exec(ctx, q, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
