package store

import (
	"strconv"
	"strings"

	"github.com/fadhilah/ramadhancare/internal/model"
)

// Pure derivations over in-memory state. No I/O; "today" is recomputed in
// the configured zone on every call. Collection accessors return copies so
// callers can never alias store internals.

// CurrentState reports the lifecycle state.
func (s *Store) CurrentState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Loading reports whether a refresh or write is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// IsAuthenticated reports whether a session is active.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isAuthenticated
}

// User returns a copy of the current profile, nil when signed out.
func (s *Store) User() *model.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SholatRecords returns the full prayer collection.
func (s *Store) SholatRecords() []model.SholatRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.SholatRecord(nil), s.sholatRecords...)
}

// TodaySholatRecords returns the prayer records whose date equals today.
func (s *Store) TodaySholatRecords() []model.SholatRecord {
	today := s.Today()
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.SholatRecord
	for _, r := range s.sholatRecords {
		if r.Date == today {
			out = append(out, r)
		}
	}
	return out
}

// PuasaRecords returns the full fasting collection.
func (s *Store) PuasaRecords() []model.PuasaRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.PuasaRecord(nil), s.puasaRecords...)
}

// TodayPuasa returns today's fasting record, or nil when none exists.
func (s *Store) TodayPuasa() *model.PuasaRecord {
	today := s.Today()
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.puasaRecords {
		if r.Date == today {
			rec := r
			return &rec
		}
	}
	return nil
}

// TilawahRecords returns the full reading log.
func (s *Store) TilawahRecords() []model.TilawahRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.TilawahRecord(nil), s.tilawahRecords...)
}

// TodayTilawah returns the reading log entries whose date equals today.
func (s *Store) TodayTilawah() []model.TilawahRecord {
	today := s.Today()
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.TilawahRecord
	for _, r := range s.tilawahRecords {
		if r.Date == today {
			out = append(out, r)
		}
	}
	return out
}

// ZakatRecords returns the full zakat collection.
func (s *Store) ZakatRecords() []model.ZakatRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ZakatRecord(nil), s.zakatRecords...)
}

// TotalZakat sums TotalNominal across the whole collection.
func (s *Store) TotalZakat() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, r := range s.zakatRecords {
		total += r.TotalNominal
	}
	return total
}

// SedekahRecords returns the full charity collection.
func (s *Store) SedekahRecords() []model.SedekahRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.SedekahRecord(nil), s.sedekahRecords...)
}

// TotalSedekah sums Nominal across the whole collection.
func (s *Store) TotalSedekah() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, r := range s.sedekahRecords {
		total += r.Nominal
	}
	return total
}

// SedekahByMonth returns the entries falling in the given year and month.
func (s *Store) SedekahByMonth(year int, month int) []model.SedekahRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.SedekahRecord
	for _, r := range s.sedekahRecords {
		y, m, ok := splitYearMonth(r.Date)
		if ok && y == year && m == month {
			out = append(out, r)
		}
	}
	return out
}

// JournalEntries returns the full journal collection.
func (s *Store) JournalEntries() []model.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.JournalEntry(nil), s.journalEntries...)
}

// JournalByDate returns the entry for the date, or nil when none exists.
func (s *Store) JournalByDate(date string) *model.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.journalEntries {
		if e.Date == date {
			entry := e
			return &entry
		}
	}
	return nil
}

// AgendaEntries returns the full agenda collection.
func (s *Store) AgendaEntries() []model.AgendaEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.AgendaEntry(nil), s.agendaEntries...)
}

// ChatHistory returns the local-only conversation history.
func (s *Store) ChatHistory() []model.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.ChatMessage(nil), s.chatHistory...)
}

// ReminderSettings returns the device-local settings singleton.
func (s *Store) ReminderSettings() model.ReminderSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	rs := s.reminderSettings
	rs.SholatTimes = append([]string(nil), s.reminderSettings.SholatTimes...)
	return rs
}

// TodaySchedule returns today's reference schedule for the user's mazhab,
// nil when no variant row is loaded.
func (s *Store) TodaySchedule() *model.JadwalImsakiyah {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.todayJadwal == nil {
		return nil
	}
	j := *s.todayJadwal
	return &j
}

// splitYearMonth parses the year and month out of a "YYYY-MM-DD" date.
func splitYearMonth(date string) (year, month int, ok bool) {
	parts := strings.SplitN(date, "-", 3)
	if len(parts) != 3 {
		return 0, 0, false
	}
	y, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return y, m, true
}
