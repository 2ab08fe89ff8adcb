package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/fadhilah/ramadhancare/internal/model"
)

// ZakatRepository stores zakat fitrah payments.
type ZakatRepository interface {
	// ListByUser returns every payment owned by the user, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.ZakatRecord, error)

	// Add inserts a new payment row.
	Add(ctx context.Context, rec *model.ZakatRecord) error
}

// SedekahRepository stores append-only charity entries.
type SedekahRepository interface {
	// ListByUser returns every entry owned by the user, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.SedekahRecord, error)

	// Add inserts a new entry.
	Add(ctx context.Context, rec *model.SedekahRecord) error
}
