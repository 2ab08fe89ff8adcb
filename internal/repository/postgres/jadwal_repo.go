package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fadhilah/ramadhancare/internal/errs"
	"github.com/fadhilah/ramadhancare/internal/model"
)

// JadwalRepo implements JadwalRepository using PostgreSQL. The two variant
// tables share one column layout; the mazhab only picks the table.
type JadwalRepo struct{ db *DB }

// NewJadwalRepo constructs a schedule repository.
func NewJadwalRepo(db *DB) *JadwalRepo { return &JadwalRepo{db: db} }

func jadwalTable(m model.Mazhab) string {
	if m == model.MazhabMuhammadiyah {
		return "jadwal_muhammadiyah"
	}
	return "jadwal_nu"
}

// GetByDate returns the schedule row for the date from the variant table.
func (r *JadwalRepo) GetByDate(ctx context.Context, mazhab model.Mazhab, date string) (*model.JadwalImsakiyah, error) {
	q := `
SELECT date, imsak, subuh, zuhur, asar, magrib, isya
FROM ` + jadwalTable(mazhab) + ` WHERE date=$1::date`
	row := r.db.Pool.QueryRow(ctx, q, date)
	var (
		j model.JadwalImsakiyah
		d time.Time
	)
	if err := row.Scan(&d, &j.Imsak, &j.Subuh, &j.Zuhur, &j.Asar, &j.Magrib, &j.Isya); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	j.Date = dateStr(d)
	return &j, nil
}
