// Package auth manages the active session and broadcasts sign-in/sign-out
// events. It does not verify credentials — identities arrive already
// established (the provider's login flow is outside this system) and are
// kept alive across restarts as a signed token in the local store.
package auth

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
)

const sessionKey = "session"

// Session identifies the authenticated user.
type Session struct {
	UserID uuid.UUID
	Email  string
	Name   string
}

// EventType tags a session-change event.
type EventType int

const (
	// SignedIn carries the new session.
	SignedIn EventType = iota + 1
	// SignedOut carries no session.
	SignedOut
)

// Event is a session-change notification.
type Event struct {
	Type    EventType
	Session Session
}

// KV is the slice of local persistence the manager needs.
type KV interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
	Delete(key string) error
}

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// Manager holds the current session and fans events out to subscribers.
type Manager struct {
	kv      KV
	signKey []byte
	ttl     time.Duration
	now     func() time.Time

	mu   sync.Mutex
	cur  *Session
	subs []chan Event
}

// NewManager constructs a manager and restores any unexpired persisted
// session. A restore failure is treated as "no session", not an error.
func NewManager(kv KV, signKey []byte, ttl time.Duration) (*Manager, error) {
	if len(signKey) == 0 {
		return nil, errors.New("auth: empty signing key")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	m := &Manager{kv: kv, signKey: signKey, ttl: ttl, now: time.Now}
	if raw, ok, err := kv.Get(sessionKey); err == nil && ok {
		if s, err := m.parseToken(string(raw)); err == nil {
			m.cur = s
		}
	}
	return m, nil
}

// Current returns the active session, or nil when signed out.
func (m *Manager) Current(ctx context.Context) (*Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cur == nil {
		return nil, nil
	}
	s := *m.cur
	return &s, nil
}

// SignIn activates the session, persists it, and notifies subscribers.
func (m *Manager) SignIn(ctx context.Context, s Session) error {
	if s.UserID == uuid.Nil {
		return errors.New("auth: empty user id")
	}
	tok, err := m.issueToken(s)
	if err != nil {
		return err
	}
	if err := m.kv.Put(sessionKey, []byte(tok)); err != nil {
		return err
	}
	m.mu.Lock()
	m.cur = &s
	m.broadcast(Event{Type: SignedIn, Session: s})
	m.mu.Unlock()
	return nil
}

// SignOut clears the session, removes the persisted token, and notifies
// subscribers. Signing out while signed out is a no-op.
func (m *Manager) SignOut(ctx context.Context) error {
	m.mu.Lock()
	wasActive := m.cur != nil
	m.cur = nil
	if wasActive {
		m.broadcast(Event{Type: SignedOut})
	}
	m.mu.Unlock()
	if !wasActive {
		return nil
	}
	return m.kv.Delete(sessionKey)
}

// Subscribe returns a channel of future session-change events. Slow
// subscribers lose events rather than block sign-in/out.
func (m *Manager) Subscribe() <-chan Event {
	ch := make(chan Event, 16)
	m.mu.Lock()
	m.subs = append(m.subs, ch)
	m.mu.Unlock()
	return ch
}

// Close closes all subscriber channels.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ch := range m.subs {
		close(ch)
	}
	m.subs = nil
}

// broadcast requires m.mu held.
func (m *Manager) broadcast(ev Event) {
	for _, ch := range m.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// issueToken creates a signed HS256 JWT for the session.
func (m *Manager) issueToken(s Session) (string, error) {
	now := m.now()
	claims := sessionClaims{
		Email: s.Email,
		Name:  s.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signKey)
}

// parseToken validates a persisted token and rebuilds the session.
func (m *Manager) parseToken(raw string) (*Session, error) {
	var claims sessionClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) { return m.signKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, err
	}
	uid, err := uuid.FromString(claims.Subject)
	if err != nil {
		return nil, err
	}
	return &Session{UserID: uid, Email: claims.Email, Name: claims.Name}, nil
}
