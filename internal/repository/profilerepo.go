// Package repository declares the remote backend contracts consumed by the
// domain store. Implementations live in the postgres subpackage; tests use
// hand-rolled fakes.
package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/fadhilah/ramadhancare/internal/model"
)

// ProfileRepository provides access to the profiles table.
type ProfileRepository interface {
	// Get returns the profile by user ID, errs.ErrNotFound when absent.
	Get(ctx context.Context, userID uuid.UUID) (*model.UserProfile, error)

	// Create inserts a fresh profile row (first sign-in bootstrap).
	Create(ctx context.Context, p *model.UserProfile) error

	// Update applies a partial update keyed by user ID.
	Update(ctx context.Context, userID uuid.UUID, upd model.ProfileUpdate) error
}
