// Package store holds the single source of truth for session state and
// devotional records. It mediates between the remote backend (repositories)
// and the device-local persistence layer, and is the only component views
// talk to.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fadhilah/ramadhancare/internal/auth"
	"github.com/fadhilah/ramadhancare/internal/errs"
	"github.com/fadhilah/ramadhancare/internal/model"
	"github.com/fadhilah/ramadhancare/internal/repository"
)

// State of the store lifecycle.
type State int

const (
	StateUninitialized State = iota
	StateInitializing
	StateReady
)

// Local persistence keys.
const (
	settingsKey = "reminder-settings"
	chatKey     = "chat-history"
)

// refreshTimeout bounds refreshes triggered from the auth event loop,
// which has no caller context.
const refreshTimeout = 30 * time.Second

// AuthProvider is the slice of the session manager the store consumes.
type AuthProvider interface {
	Current(ctx context.Context) (*auth.Session, error)
	Subscribe() <-chan auth.Event
}

// LocalStore is the slice of device-local persistence the store consumes.
type LocalStore interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}

// Repos bundles the remote backend contracts, injected at construction.
type Repos struct {
	Profiles repository.ProfileRepository
	Sholat   repository.SholatRepository
	Puasa    repository.PuasaRepository
	Tilawah  repository.TilawahRepository
	Zakat    repository.ZakatRepository
	Sedekah  repository.SedekahRepository
	Journal  repository.JournalRepository
	Agenda   repository.AgendaRepository
	Jadwal   repository.JadwalRepository
}

// Options tune store behavior. Zero values get sensible defaults.
type Options struct {
	// Location is the fixed zone in which "today" is evaluated, for every
	// caller uniformly. Defaults to Asia/Jakarta.
	Location *time.Location
	// Now overrides the clock (tests).
	Now func() time.Time
	// Logger defaults to zap.NewNop().
	Logger *zap.Logger
}

// Store is the domain store. All exported methods are safe for concurrent
// use; remote-backed operations never mutate in-memory state on failure.
type Store struct {
	repos Repos
	local LocalStore
	authp AuthProvider
	log   *zap.Logger
	loc   *time.Location
	now   func() time.Time

	mu              sync.Mutex
	state           State
	loading         bool
	isAuthenticated bool
	session         *auth.Session
	// sessionSeq increments on every sign-in and sign-out. Refreshes carry
	// the value current when issued and commit only if it is unchanged, so
	// a refresh resolving after sign-out cannot repopulate cleared state.
	sessionSeq uint64

	user           *model.UserProfile
	sholatRecords  []model.SholatRecord
	puasaRecords   []model.PuasaRecord
	tilawahRecords []model.TilawahRecord
	zakatRecords   []model.ZakatRecord
	sedekahRecords []model.SedekahRecord
	journalEntries []model.JournalEntry
	agendaEntries  []model.AgendaEntry
	todayJadwal    *model.JadwalImsakiyah

	reminderSettings model.ReminderSettings
	chatHistory      []model.ChatMessage

	done chan struct{}
	wg   sync.WaitGroup
}

// New constructs a store with injected dependencies and restores the
// device-local settings and chat history. No remote I/O happens here.
func New(repos Repos, local LocalStore, authp AuthProvider, opts Options) *Store {
	loc := opts.Location
	if loc == nil {
		var err error
		if loc, err = time.LoadLocation("Asia/Jakarta"); err != nil {
			loc = time.FixedZone("WIB", 7*3600)
		}
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		repos:            repos,
		local:            local,
		authp:            authp,
		log:              log,
		loc:              loc,
		now:              now,
		reminderSettings: model.DefaultReminderSettings(),
		done:             make(chan struct{}),
	}
	s.restoreLocal()
	return s
}

// Init runs the initialization protocol: subscribe to session events, check
// the current session once, fetch all data when one exists, and reach Ready
// regardless of outcome. Calling Init again after Ready is a no-op.
func (s *Store) Init(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateUninitialized {
		s.mu.Unlock()
		return nil
	}
	s.state = StateInitializing
	s.mu.Unlock()

	events := s.authp.Subscribe()
	s.wg.Add(1)
	go s.watchAuth(events)

	// Ready must be reached even when the session check or the initial
	// fetch fails, or every dependent view hangs on Initializing.
	defer func() {
		s.mu.Lock()
		s.state = StateReady
		s.mu.Unlock()
	}()

	sess, err := s.authp.Current(ctx)
	if err != nil {
		s.log.Warn("session check failed", zap.Error(err))
		return err
	}
	if sess == nil {
		return nil
	}

	s.mu.Lock()
	s.session = sess
	s.isAuthenticated = true
	s.sessionSeq++
	seq := s.sessionSeq
	s.mu.Unlock()

	if err := s.fetchAll(ctx, *sess, seq); err != nil {
		s.log.Warn("initial fetch failed", zap.Error(err))
	}
	return nil
}

// Close stops the event loop and waits for it to drain.
func (s *Store) Close() {
	close(s.done)
	s.wg.Wait()
}

// watchAuth reacts to provider-level session changes for the lifetime of
// the store.
func (s *Store) watchAuth(events <-chan auth.Event) {
	defer s.wg.Done()
	for {
		select {
		case <-s.done:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev.Type {
			case auth.SignedIn:
				sess := ev.Session
				s.mu.Lock()
				s.session = &sess
				s.isAuthenticated = true
				s.sessionSeq++
				seq := s.sessionSeq
				s.mu.Unlock()

				ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
				if err := s.fetchAll(ctx, sess, seq); err != nil && !errors.Is(err, errs.ErrSessionChanged) {
					s.log.Warn("post-signin fetch failed", zap.Error(err))
				}
				cancel()
			case auth.SignedOut:
				s.clearRemoteState()
			}
		}
	}
}

// clearRemoteState drops the profile and every remotely-sourced collection.
// Reminder settings and chat history are local-only and survive.
func (s *Store) clearRemoteState() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionSeq++
	s.isAuthenticated = false
	s.session = nil
	s.user = nil
	s.sholatRecords = nil
	s.puasaRecords = nil
	s.tilawahRecords = nil
	s.zakatRecords = nil
	s.sedekahRecords = nil
	s.journalEntries = nil
	s.agendaEntries = nil
	s.todayJadwal = nil
}

// Refresh reconciles in-memory state with the remote backend from scratch.
// Callers may retry it freely; overlapping refreshes are safe because each
// one commits an independent snapshot wholesale.
func (s *Store) Refresh(ctx context.Context) error {
	sess, seq, err := s.currentSession()
	if err != nil {
		return err
	}
	return s.fetchAll(ctx, sess, seq)
}

// fetchAll performs the profile lookup, then every collection lookup
// concurrently, and commits the snapshot only if the session sequence is
// still the one the refresh was issued under.
func (s *Store) fetchAll(ctx context.Context, sess auth.Session, seq uint64) (err error) {
	s.setLoading(true)
	defer s.setLoading(false)

	profile, err := s.repos.Profiles.Get(ctx, sess.UserID)
	if errors.Is(err, errs.ErrNotFound) {
		// First sign-in: bootstrap the profile row from the session.
		profile = &model.UserProfile{
			ID:        sess.UserID,
			Email:     sess.Email,
			Name:      sess.Name,
			CreatedAt: s.now(),
		}
		err = s.repos.Profiles.Create(ctx, profile)
	}
	if err != nil {
		return err
	}

	var (
		sholat  []model.SholatRecord
		puasa   []model.PuasaRecord
		tilawah []model.TilawahRecord
		zakat   []model.ZakatRecord
		sedekah []model.SedekahRecord
		journal []model.JournalEntry
		agenda  []model.AgendaEntry
		jadwal  *model.JadwalImsakiyah
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (e error) { sholat, e = s.repos.Sholat.ListByUser(gctx, sess.UserID); return })
	g.Go(func() (e error) { puasa, e = s.repos.Puasa.ListByUser(gctx, sess.UserID); return })
	g.Go(func() (e error) { tilawah, e = s.repos.Tilawah.ListByUser(gctx, sess.UserID); return })
	g.Go(func() (e error) { zakat, e = s.repos.Zakat.ListByUser(gctx, sess.UserID); return })
	g.Go(func() (e error) { sedekah, e = s.repos.Sedekah.ListByUser(gctx, sess.UserID); return })
	g.Go(func() (e error) { journal, e = s.repos.Journal.ListByUser(gctx, sess.UserID); return })
	g.Go(func() (e error) { agenda, e = s.repos.Agenda.ListByUser(gctx, sess.UserID); return })
	// The schedule lookup depends on the profile's mazhab, which is already
	// resolved above, so it can join the concurrent batch.
	g.Go(func() error {
		if profile.Mazhab == "" {
			return nil
		}
		j, e := s.repos.Jadwal.GetByDate(gctx, profile.Mazhab, s.Today())
		if errors.Is(e, errs.ErrNotFound) {
			return nil
		}
		jadwal = j
		return e
	})
	if err := g.Wait(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessionSeq != seq {
		// Session changed while the refresh was in flight: discard.
		return errs.ErrSessionChanged
	}
	s.user = profile
	s.sholatRecords = sholat
	s.puasaRecords = puasa
	s.tilawahRecords = tilawah
	s.zakatRecords = zakat
	s.sedekahRecords = sedekah
	s.journalEntries = journal
	s.agendaEntries = agenda
	s.todayJadwal = jadwal
	return nil
}

// currentSession returns the active session and its sequence number, or
// ErrNotAuthenticated.
func (s *Store) currentSession() (auth.Session, uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return auth.Session{}, 0, errs.ErrNotAuthenticated
	}
	return *s.session, s.sessionSeq, nil
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// restoreLocal loads settings and chat history persisted on this device.
// Corrupt or missing values fall back to defaults.
func (s *Store) restoreLocal() {
	if s.local == nil {
		return
	}
	if raw, ok, err := s.local.Get(settingsKey); err == nil && ok {
		var rs model.ReminderSettings
		if json.Unmarshal(raw, &rs) == nil {
			s.reminderSettings = rs
		}
	}
	if raw, ok, err := s.local.Get(chatKey); err == nil && ok {
		var msgs []model.ChatMessage
		if json.Unmarshal(raw, &msgs) == nil {
			s.chatHistory = msgs
		}
	}
}

// Today returns the current calendar date in the store's fixed zone,
// computed per call.
func (s *Store) Today() string {
	return s.now().In(s.loc).Format(model.DateLayout)
}
