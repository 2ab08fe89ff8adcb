package postgres

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/fadhilah/ramadhancare/internal/errs"
	"github.com/fadhilah/ramadhancare/internal/model"
)

// ProfileRepo implements ProfileRepository using PostgreSQL.
type ProfileRepo struct{ db *DB }

// NewProfileRepo constructs a profile repository.
func NewProfileRepo(db *DB) *ProfileRepo { return &ProfileRepo{db: db} }

// Get selects a profile by user ID.
func (r *ProfileRepo) Get(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error) {
	const q = `
SELECT id, email, name, gender, mazhab, age, city, is_profile_complete, created_at
FROM profiles WHERE id=$1`
	row := r.db.Pool.QueryRow(ctx, q, userID)
	var p model.UserProfile
	if err := row.Scan(&p.ID, &p.Email, &p.Name, &p.Gender, &p.Mazhab, &p.Age, &p.City, &p.IsProfileComplete, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a fresh profile row.
func (r *ProfileRepo) Create(ctx context.Context, p *model.UserProfile) error {
	const q = `
INSERT INTO profiles (id, email, name, gender, mazhab, age, city, is_profile_complete)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`
	_, err := r.db.Pool.Exec(ctx, q,
		p.ID, p.Email, p.Name, string(p.Gender), string(p.Mazhab), p.Age, p.City, p.IsProfileComplete)
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

// Update applies a partial update; unset fields keep their current value.
// The completeness flag latches on once all four onboarding columns are set.
func (r *ProfileRepo) Update(ctx context.Context, userID uuid.UUID, upd model.ProfileUpdate) error {
	const q = `
UPDATE profiles SET
  name   = COALESCE($2, name),
  gender = COALESCE($3, gender),
  mazhab = COALESCE($4, mazhab),
  age    = COALESCE($5, age),
  city   = COALESCE($6, city),
  is_profile_complete = is_profile_complete OR
    (COALESCE($3, gender) <> '' AND COALESCE($4, mazhab) <> '' AND
     COALESCE($5, age) > 0 AND COALESCE($6, city) <> '')
WHERE id=$1`
	tag, err := r.db.Pool.Exec(ctx, q,
		userID, upd.Name, (*string)(upd.Gender), (*string)(upd.Mazhab), upd.Age, upd.City)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNotFound
	}
	return nil
}
