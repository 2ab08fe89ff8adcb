package store

import (
	"context"
	"sync"

	"github.com/gofrs/uuid/v5"

	"github.com/fadhilah/ramadhancare/internal/auth"
	"github.com/fadhilah/ramadhancare/internal/errs"
	"github.com/fadhilah/ramadhancare/internal/model"
	"github.com/fadhilah/ramadhancare/internal/repository"
)

// In-memory fakes mirroring the backend's natural-key semantics, so the
// store can be exercised without Postgres.

type fakeProfiles struct {
	mu        sync.Mutex
	profile   *model.UserProfile
	getErr    error
	createErr error
	updateErr error
	creates   int
}

var _ repository.ProfileRepository = (*fakeProfiles)(nil)

func (f *fakeProfiles) Get(_ context.Context, userID uuid.UUID) (*model.UserProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.profile == nil || f.profile.ID != userID {
		return nil, errs.ErrNotFound
	}
	cp := *f.profile
	return &cp, nil
}

func (f *fakeProfiles) Create(_ context.Context, p *model.UserProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.creates++
	cp := *p
	f.profile = &cp
	return nil
}

func (f *fakeProfiles) Update(_ context.Context, userID uuid.UUID, upd model.ProfileUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	if f.profile == nil || f.profile.ID != userID {
		return errs.ErrNotFound
	}
	upd.Apply(f.profile)
	return nil
}

type fakeSholat struct {
	mu      sync.Mutex
	list    []model.SholatRecord
	addErr  error
	listErr error
	block   chan struct{} // non-nil: ListByUser waits until closed
}

var _ repository.SholatRepository = (*fakeSholat)(nil)

func (f *fakeSholat) ListByUser(_ context.Context, userID uuid.UUID) ([]model.SholatRecord, error) {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]model.SholatRecord(nil), f.list...), nil
}

func (f *fakeSholat) Add(_ context.Context, rec *model.SholatRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	if rec.Type == model.SholatWajib {
		for i := range f.list {
			if f.list[i].Type == model.SholatWajib && f.list[i].Date == rec.Date && f.list[i].Name == rec.Name {
				rec.ID = f.list[i].ID // conflict target keeps the existing row
				f.list[i] = *rec
				return nil
			}
		}
	}
	f.list = append(f.list, *rec)
	return nil
}

func (f *fakeSholat) Update(_ context.Context, userID, id uuid.UUID, upd model.SholatUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.list {
		if f.list[i].ID == id {
			upd.Apply(&f.list[i])
			return nil
		}
	}
	return errs.ErrNotFound
}

func (f *fakeSholat) Delete(_ context.Context, userID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.list {
		if f.list[i].ID == id {
			f.list = append(f.list[:i], f.list[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

type fakePuasa struct {
	mu        sync.Mutex
	list      []model.PuasaRecord
	upsertErr error
}

var _ repository.PuasaRepository = (*fakePuasa)(nil)

func (f *fakePuasa) ListByUser(_ context.Context, userID uuid.UUID) ([]model.PuasaRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.PuasaRecord(nil), f.list...), nil
}

func (f *fakePuasa) Upsert(_ context.Context, rec *model.PuasaRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	for i := range f.list {
		if f.list[i].Date == rec.Date {
			rec.ID = f.list[i].ID
			f.list[i] = *rec
			return nil
		}
	}
	f.list = append(f.list, *rec)
	return nil
}

func (f *fakePuasa) Update(_ context.Context, userID, id uuid.UUID, upd model.PuasaUpdate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.list {
		if f.list[i].ID == id {
			upd.Apply(&f.list[i])
			return nil
		}
	}
	return errs.ErrNotFound
}

type fakeTilawah struct {
	mu   sync.Mutex
	list []model.TilawahRecord
}

var _ repository.TilawahRepository = (*fakeTilawah)(nil)

func (f *fakeTilawah) ListByUser(_ context.Context, userID uuid.UUID) ([]model.TilawahRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.TilawahRecord(nil), f.list...), nil
}

func (f *fakeTilawah) Add(_ context.Context, rec *model.TilawahRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.list = append(f.list, *rec)
	return nil
}

type fakeZakat struct {
	mu     sync.Mutex
	list   []model.ZakatRecord
	addErr error
}

var _ repository.ZakatRepository = (*fakeZakat)(nil)

func (f *fakeZakat) ListByUser(_ context.Context, userID uuid.UUID) ([]model.ZakatRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.ZakatRecord(nil), f.list...), nil
}

func (f *fakeZakat) Add(_ context.Context, rec *model.ZakatRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	f.list = append(f.list, *rec)
	return nil
}

type fakeSedekah struct {
	mu     sync.Mutex
	list   []model.SedekahRecord
	addErr error
}

var _ repository.SedekahRepository = (*fakeSedekah)(nil)

func (f *fakeSedekah) ListByUser(_ context.Context, userID uuid.UUID) ([]model.SedekahRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.SedekahRecord(nil), f.list...), nil
}

func (f *fakeSedekah) Add(_ context.Context, rec *model.SedekahRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.addErr != nil {
		return f.addErr
	}
	f.list = append(f.list, *rec)
	return nil
}

type fakeJournal struct {
	mu   sync.Mutex
	list []model.JournalEntry
}

var _ repository.JournalRepository = (*fakeJournal)(nil)

func (f *fakeJournal) ListByUser(_ context.Context, userID uuid.UUID) ([]model.JournalEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.JournalEntry(nil), f.list...), nil
}

func (f *fakeJournal) Upsert(_ context.Context, entry *model.JournalEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.list {
		if f.list[i].Date == entry.Date {
			entry.ID = f.list[i].ID
			f.list[i] = *entry
			return nil
		}
	}
	f.list = append(f.list, *entry)
	return nil
}

type fakeAgenda struct {
	mu   sync.Mutex
	list []model.AgendaEntry
}

var _ repository.AgendaRepository = (*fakeAgenda)(nil)

func (f *fakeAgenda) ListByUser(_ context.Context, userID uuid.UUID) ([]model.AgendaEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.AgendaEntry(nil), f.list...), nil
}

func (f *fakeAgenda) Add(_ context.Context, entry *model.AgendaEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.list = append(f.list, *entry)
	return nil
}

func (f *fakeAgenda) Delete(_ context.Context, userID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.list {
		if f.list[i].ID == id {
			f.list = append(f.list[:i], f.list[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

type fakeJadwal struct {
	mu   sync.Mutex
	rows map[model.Mazhab]map[string]model.JadwalImsakiyah
}

var _ repository.JadwalRepository = (*fakeJadwal)(nil)

func (f *fakeJadwal) GetByDate(_ context.Context, mazhab model.Mazhab, date string) (*model.JadwalImsakiyah, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if byDate, ok := f.rows[mazhab]; ok {
		if j, ok := byDate[date]; ok {
			return &j, nil
		}
	}
	return nil, errs.ErrNotFound
}

// fakeAuth implements AuthProvider with a manually driven event channel.
type fakeAuth struct {
	mu         sync.Mutex
	cur        *auth.Session
	ch         chan auth.Event
	subscribes int
}

var _ AuthProvider = (*fakeAuth)(nil)

func newFakeAuth() *fakeAuth {
	return &fakeAuth{ch: make(chan auth.Event, 16)}
}

func (f *fakeAuth) Current(_ context.Context) (*auth.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cur == nil {
		return nil, nil
	}
	s := *f.cur
	return &s, nil
}

func (f *fakeAuth) Subscribe() <-chan auth.Event {
	f.mu.Lock()
	f.subscribes++
	f.mu.Unlock()
	return f.ch
}

func (f *fakeAuth) signIn(s auth.Session) {
	f.mu.Lock()
	f.cur = &s
	f.mu.Unlock()
	f.ch <- auth.Event{Type: auth.SignedIn, Session: s}
}

func (f *fakeAuth) signOut() {
	f.mu.Lock()
	f.cur = nil
	f.mu.Unlock()
	f.ch <- auth.Event{Type: auth.SignedOut}
}

// fakeKV is an in-memory LocalStore.
type fakeKV struct {
	mu sync.Mutex
	m  map[string][]byte
}

func newFakeKV() *fakeKV { return &fakeKV{m: map[string][]byte{}} }

func (f *fakeKV) Get(key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.m[key]
	return v, ok, nil
}

func (f *fakeKV) Put(key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.m[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeKV) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.m, key)
	return nil
}
