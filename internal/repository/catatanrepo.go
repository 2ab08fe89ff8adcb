package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/fadhilah/ramadhancare/internal/model"
)

// JournalRepository stores daily reflections, at most one per (user, date).
type JournalRepository interface {
	// ListByUser returns every entry owned by the user, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.JournalEntry, error)

	// Upsert inserts or, when an entry for (user, date) exists, replaces
	// its fields. The confirmed row ID is written back into entry.
	Upsert(ctx context.Context, entry *model.JournalEntry) error
}

// AgendaRepository stores user-deletable calendar items.
type AgendaRepository interface {
	// ListByUser returns every entry owned by the user, soonest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.AgendaEntry, error)

	// Add inserts a new entry.
	Add(ctx context.Context, entry *model.AgendaEntry) error

	// Delete removes an entry by ID.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
