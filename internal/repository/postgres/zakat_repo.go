package postgres

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/fadhilah/ramadhancare/internal/model"
)

// ZakatRepo implements ZakatRepository using PostgreSQL. The monetary and
// identity columns (jumlah_orang, harga_beras, total_nominal,
// metode_penyaluran, bukti_url) map to the Go fields only here.
type ZakatRepo struct{ db *DB }

// NewZakatRepo constructs a zakat repository.
func NewZakatRepo(db *DB) *ZakatRepo { return &ZakatRepo{db: db} }

// ListByUser returns every payment owned by the user, oldest first.
func (r *ZakatRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.ZakatRecord, error) {
	const q = `
SELECT id, user_id, date, paid_time, jumlah_orang, harga_beras, total_nominal,
       bentuk, metode_penyaluran, bukti_url, notes
FROM zakat_records WHERE user_id=$1 ORDER BY date`
	rows, err := r.db.Pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ZakatRecord
	for rows.Next() {
		var (
			rec model.ZakatRecord
			d   time.Time
		)
		if err = rows.Scan(&rec.ID, &rec.UserID, &d, &rec.Time, &rec.JumlahOrang, &rec.HargaBeras,
			&rec.TotalNominal, &rec.Bentuk, &rec.MetodePenyaluran, &rec.BuktiURL, &rec.Notes); err != nil {
			return nil, err
		}
		rec.Date = dateStr(d)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Add inserts a new payment row. TotalNominal is stored exactly as
// submitted; the calculator runs client-side, never here.
func (r *ZakatRepo) Add(ctx context.Context, rec *model.ZakatRecord) error {
	const q = `
INSERT INTO zakat_records (id, user_id, date, paid_time, jumlah_orang, harga_beras,
  total_nominal, bentuk, metode_penyaluran, bukti_url, notes)
VALUES ($1,$2,$3::date,$4,$5,$6,$7,$8,$9,$10,$11)`
	_, err := r.db.Pool.Exec(ctx, q,
		rec.ID, rec.UserID, rec.Date, rec.Time, rec.JumlahOrang, rec.HargaBeras,
		rec.TotalNominal, string(rec.Bentuk), rec.MetodePenyaluran, rec.BuktiURL, rec.Notes)
	return err
}
