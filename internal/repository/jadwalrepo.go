package repository

import (
	"context"

	"github.com/fadhilah/ramadhancare/internal/model"
)

// JadwalRepository reads the date-indexed reference schedules. The mazhab
// argument selects which of the two variant tables is queried.
type JadwalRepository interface {
	// GetByDate returns the schedule row for the date,
	// errs.ErrNotFound when the variant has no row for it.
	GetByDate(ctx context.Context, mazhab model.Mazhab, date string) (*model.JadwalImsakiyah, error)
}
