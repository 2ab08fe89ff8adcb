package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/fadhilah/ramadhancare/internal/model"
)

// SholatRepository stores prayer records. Wajib rows are upserted on the
// (user, date, name) natural key; sunnah rows always append.
type SholatRepository interface {
	// ListByUser returns every record owned by the user, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.SholatRecord, error)

	// Add inserts the record, upserting on (user, date, name) for wajib.
	// The confirmed row ID is written back into rec.
	Add(ctx context.Context, rec *model.SholatRecord) error

	// Update applies a partial update keyed by record ID.
	Update(ctx context.Context, userID, id uuid.UUID, upd model.SholatUpdate) error

	// Delete removes a record by ID (user correction path).
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// PuasaRepository stores fasting records, at most one per (user, date).
type PuasaRepository interface {
	// ListByUser returns every record owned by the user, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.PuasaRecord, error)

	// Upsert inserts or, when a row for (user, date) exists, replaces its
	// fields. The confirmed row ID is written back into rec.
	Upsert(ctx context.Context, rec *model.PuasaRecord) error

	// Update applies a partial update keyed by record ID.
	Update(ctx context.Context, userID, id uuid.UUID, upd model.PuasaUpdate) error
}

// TilawahRepository stores append-only reading log entries.
type TilawahRepository interface {
	// ListByUser returns every record owned by the user, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.TilawahRecord, error)

	// Add inserts a new entry.
	Add(ctx context.Context, rec *model.TilawahRecord) error
}
