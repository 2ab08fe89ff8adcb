package postgres

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/fadhilah/ramadhancare/internal/model"
)

func TestJournalRepo_Upsert_KeepsExistingID(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewJournalRepo(db)

	existing := uuid.Must(uuid.NewV4())
	entry := &model.JournalEntry{
		ID:     uuid.Must(uuid.NewV4()),
		UserID: uuid.Must(uuid.NewV4()),
		Date:   "2026-03-20",
		Mood:   model.MoodSangatBaik,
		Story:  "revisi malam",
	}

	mock.ExpectQuery(`INSERT INTO journal_entries`).
		WithArgs(entry.ID, entry.UserID, entry.Date, "sangat-baik", entry.Story, entry.Evaluasi, entry.Gratitude).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(existing))

	require.NoError(t, r.Upsert(context.Background(), entry))
	require.Equal(t, existing, entry.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}
