package store

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/fadhilah/ramadhancare/internal/errs"
	"github.com/fadhilah/ramadhancare/internal/model"
)

// Remote-first write contract: persist to the backend under the current
// user's ownership, and only merge into in-memory state once the backend
// confirmed. On failure the in-memory view stays exactly as it was and the
// error propagates; retry policy belongs to the caller.

// AddSholatRecord persists a prayer record. Wajib records upsert on
// (date, name); the returned record carries the confirmed ID.
func (s *Store) AddSholatRecord(ctx context.Context, rec model.SholatRecord) (*model.SholatRecord, error) {
	sess, seq, err := s.currentSession()
	if err != nil {
		return nil, err
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if rec.ID, err = uuid.NewV4(); err != nil {
		return nil, err
	}
	rec.UserID = sess.UserID
	if err := s.repos.Sholat.Add(ctx, &rec); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionSeq != seq {
		return nil, errs.ErrSessionChanged
	}
	for i := range s.sholatRecords {
		if s.sholatRecords[i].ID == rec.ID {
			s.sholatRecords[i] = rec
			return &rec, nil
		}
	}
	s.sholatRecords = append(s.sholatRecords, rec)
	return &rec, nil
}

// UpdateSholatRecord applies a partial update to a prayer record by ID.
func (s *Store) UpdateSholatRecord(ctx context.Context, id uuid.UUID, upd model.SholatUpdate) error {
	sess, seq, err := s.currentSession()
	if err != nil {
		return err
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.repos.Sholat.Update(ctx, sess.UserID, id, upd); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionSeq != seq {
		return errs.ErrSessionChanged
	}
	for i := range s.sholatRecords {
		if s.sholatRecords[i].ID == id {
			upd.Apply(&s.sholatRecords[i])
			break
		}
	}
	return nil
}

// DeleteSholatRecord removes a prayer record (user correction path).
func (s *Store) DeleteSholatRecord(ctx context.Context, id uuid.UUID) error {
	sess, seq, err := s.currentSession()
	if err != nil {
		return err
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.repos.Sholat.Delete(ctx, sess.UserID, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionSeq != seq {
		return errs.ErrSessionChanged
	}
	s.sholatRecords = removeByID(s.sholatRecords, func(r model.SholatRecord) uuid.UUID { return r.ID }, id)
	return nil
}

// AddPuasaRecord persists today's fasting record, upserting on (user, date):
// writing twice for the same date updates the same row.
func (s *Store) AddPuasaRecord(ctx context.Context, rec model.PuasaRecord) (*model.PuasaRecord, error) {
	sess, seq, err := s.currentSession()
	if err != nil {
		return nil, err
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if rec.ID, err = uuid.NewV4(); err != nil {
		return nil, err
	}
	rec.UserID = sess.UserID
	if err := s.repos.Puasa.Upsert(ctx, &rec); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionSeq != seq {
		return nil, errs.ErrSessionChanged
	}
	for i := range s.puasaRecords {
		if s.puasaRecords[i].Date == rec.Date {
			s.puasaRecords[i] = rec
			return &rec, nil
		}
	}
	s.puasaRecords = append(s.puasaRecords, rec)
	return &rec, nil
}

// UpdatePuasaRecord applies a partial update to a fasting record by ID.
func (s *Store) UpdatePuasaRecord(ctx context.Context, id uuid.UUID, upd model.PuasaUpdate) error {
	sess, seq, err := s.currentSession()
	if err != nil {
		return err
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.repos.Puasa.Update(ctx, sess.UserID, id, upd); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionSeq != seq {
		return errs.ErrSessionChanged
	}
	for i := range s.puasaRecords {
		if s.puasaRecords[i].ID == id {
			upd.Apply(&s.puasaRecords[i])
			break
		}
	}
	return nil
}

// AddTilawahRecord persists a reading log entry (append-only).
func (s *Store) AddTilawahRecord(ctx context.Context, rec model.TilawahRecord) (*model.TilawahRecord, error) {
	sess, seq, err := s.currentSession()
	if err != nil {
		return nil, err
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if rec.ID, err = uuid.NewV4(); err != nil {
		return nil, err
	}
	rec.UserID = sess.UserID
	if err := s.repos.Tilawah.Add(ctx, &rec); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionSeq != seq {
		return nil, errs.ErrSessionChanged
	}
	s.tilawahRecords = append(s.tilawahRecords, rec)
	return &rec, nil
}

// AddZakatRecord persists a zakat payment. TotalNominal comes from the
// calculator path at submit time and is stored as-is.
func (s *Store) AddZakatRecord(ctx context.Context, rec model.ZakatRecord) (*model.ZakatRecord, error) {
	sess, seq, err := s.currentSession()
	if err != nil {
		return nil, err
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if rec.ID, err = uuid.NewV4(); err != nil {
		return nil, err
	}
	rec.UserID = sess.UserID
	if err := s.repos.Zakat.Add(ctx, &rec); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionSeq != seq {
		return nil, errs.ErrSessionChanged
	}
	s.zakatRecords = append(s.zakatRecords, rec)
	return &rec, nil
}

// AddSedekahRecord persists a charity entry (append-only).
func (s *Store) AddSedekahRecord(ctx context.Context, rec model.SedekahRecord) (*model.SedekahRecord, error) {
	sess, seq, err := s.currentSession()
	if err != nil {
		return nil, err
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if rec.ID, err = uuid.NewV4(); err != nil {
		return nil, err
	}
	rec.UserID = sess.UserID
	if err := s.repos.Sedekah.Add(ctx, &rec); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionSeq != seq {
		return nil, errs.ErrSessionChanged
	}
	s.sedekahRecords = append(s.sedekahRecords, rec)
	return &rec, nil
}

// AddJournalEntry persists the daily reflection, upserting on (user, date):
// a second write for the same date overwrites the first.
func (s *Store) AddJournalEntry(ctx context.Context, entry model.JournalEntry) (*model.JournalEntry, error) {
	sess, seq, err := s.currentSession()
	if err != nil {
		return nil, err
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if entry.ID, err = uuid.NewV4(); err != nil {
		return nil, err
	}
	entry.UserID = sess.UserID
	if err := s.repos.Journal.Upsert(ctx, &entry); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionSeq != seq {
		return nil, errs.ErrSessionChanged
	}
	for i := range s.journalEntries {
		if s.journalEntries[i].Date == entry.Date {
			s.journalEntries[i] = entry
			return &entry, nil
		}
	}
	s.journalEntries = append(s.journalEntries, entry)
	return &entry, nil
}

// AddAgendaEntry persists a calendar item.
func (s *Store) AddAgendaEntry(ctx context.Context, entry model.AgendaEntry) (*model.AgendaEntry, error) {
	sess, seq, err := s.currentSession()
	if err != nil {
		return nil, err
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if entry.ID, err = uuid.NewV4(); err != nil {
		return nil, err
	}
	entry.UserID = sess.UserID
	if err := s.repos.Agenda.Add(ctx, &entry); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionSeq != seq {
		return nil, errs.ErrSessionChanged
	}
	s.agendaEntries = append(s.agendaEntries, entry)
	return &entry, nil
}

// DeleteAgendaEntry removes a calendar item.
func (s *Store) DeleteAgendaEntry(ctx context.Context, id uuid.UUID) error {
	sess, seq, err := s.currentSession()
	if err != nil {
		return err
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.repos.Agenda.Delete(ctx, sess.UserID, id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionSeq != seq {
		return errs.ErrSessionChanged
	}
	s.agendaEntries = removeByID(s.agendaEntries, func(e model.AgendaEntry) uuid.UUID { return e.ID }, id)
	return nil
}

// UpdateProfile applies a partial profile update remotely, then runs a full
// refresh so every profile-derived collection (including the schedule
// variant) is rebuilt from scratch rather than merged.
func (s *Store) UpdateProfile(ctx context.Context, upd model.ProfileUpdate) error {
	sess, _, err := s.currentSession()
	if err != nil {
		return err
	}
	s.setLoading(true)
	defer s.setLoading(false)

	if err := s.repos.Profiles.Update(ctx, sess.UserID, upd); err != nil {
		return err
	}

	// Re-read the sequence: refreshing under the pre-update one would be
	// needlessly discarded if an unrelated event fired meanwhile.
	sess, seq, err := s.currentSession()
	if err != nil {
		return err
	}
	return s.fetchAll(ctx, sess, seq)
}

func removeByID[T any](xs []T, id func(T) uuid.UUID, target uuid.UUID) []T {
	out := xs[:0]
	for _, x := range xs {
		if id(x) != target {
			out = append(out, x)
		}
	}
	return out
}
