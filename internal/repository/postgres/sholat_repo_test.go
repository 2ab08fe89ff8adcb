package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/fadhilah/ramadhancare/internal/errs"
	"github.com/fadhilah/ramadhancare/internal/model"
)

func TestSholatRepo_ListByUser_MapsDate(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSholatRepo(db)

	userID := uuid.Must(uuid.NewV4())
	recID := uuid.Must(uuid.NewV4())
	rk := 2

	mock.ExpectQuery(`SELECT id, user_id, date, type, name, completed, rakaat, alasan`).
		WithArgs(userID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "user_id", "date", "type", "name", "completed", "rakaat", "alasan",
		}).AddRow(recID, userID, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC), model.SholatWajib, "subuh", true, &rk, ""))

	out, err := r.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, "2026-03-20", out[0].Date)
	require.Equal(t, model.SholatWajib, out[0].Type)
	require.NotNil(t, out[0].Rakaat)
	require.Equal(t, 2, *out[0].Rakaat)
}

func TestSholatRepo_Add_ReturnsSurvivingID(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSholatRepo(db)

	existing := uuid.Must(uuid.NewV4())
	rec := &model.SholatRecord{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    uuid.Must(uuid.NewV4()),
		Date:      "2026-03-20",
		Type:      model.SholatWajib,
		Name:      model.SholatSubuh,
		Completed: true,
	}

	// The conflict path returns the already-present row; the fresh ID is
	// replaced with the surviving one.
	mock.ExpectQuery(`INSERT INTO sholat_records`).
		WithArgs(rec.ID, rec.UserID, rec.Date, "wajib", rec.Name, rec.Completed, rec.Rakaat, rec.Alasan).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(existing))

	require.NoError(t, r.Add(context.Background(), rec))
	require.Equal(t, existing, rec.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSholatRepo_Update_NotFound(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSholatRepo(db)

	userID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())
	done := true
	mock.ExpectExec(`UPDATE sholat_records SET`).
		WithArgs(id, userID, &done, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := r.Update(context.Background(), userID, id, model.SholatUpdate{Completed: &done})
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestSholatRepo_Delete(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewSholatRepo(db)

	userID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())

	mock.ExpectExec(`DELETE FROM sholat_records`).
		WithArgs(id, userID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	require.NoError(t, r.Delete(context.Background(), userID, id))

	mock.ExpectExec(`DELETE FROM sholat_records`).
		WithArgs(id, userID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	require.ErrorIs(t, r.Delete(context.Background(), userID, id), errs.ErrNotFound)
}
