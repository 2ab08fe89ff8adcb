package auth

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
)

type memKV struct {
	m map[string][]byte
}

func newMemKV() *memKV { return &memKV{m: map[string][]byte{}} }

func (k *memKV) Get(key string) ([]byte, bool, error) {
	v, ok := k.m[key]
	return v, ok, nil
}

func (k *memKV) Put(key string, value []byte) error {
	k.m[key] = append([]byte(nil), value...)
	return nil
}

func (k *memKV) Delete(key string) error {
	delete(k.m, key)
	return nil
}

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestNewManager_RejectsEmptyKey(t *testing.T) {
	if _, err := NewManager(newMemKV(), nil, time.Hour); err == nil {
		t.Fatalf("want error for empty signing key")
	}
}

func TestSignIn_PersistsAndRestores(t *testing.T) {
	kv := newMemKV()
	m, err := NewManager(kv, testKey, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	defer m.Close()

	want := Session{UserID: uuid.Must(uuid.NewV4()), Email: "umi@example.com", Name: "Umi"}
	if err := m.SignIn(context.Background(), want); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	// A fresh manager over the same storage picks the session back up.
	m2, err := NewManager(kv, testKey, 24*time.Hour)
	if err != nil {
		t.Fatalf("restore NewManager: %v", err)
	}
	defer m2.Close()
	got, err := m2.Current(context.Background())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if got == nil || *got != want {
		t.Fatalf("restored session mismatch: got %+v, want %+v", got, want)
	}
}

func TestRestore_SkipsExpiredToken(t *testing.T) {
	kv := newMemKV()
	m, err := NewManager(kv, testKey, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	defer m.Close()
	m.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	s := Session{UserID: uuid.Must(uuid.NewV4()), Email: "umi@example.com"}
	if err := m.SignIn(context.Background(), s); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	m2, err := NewManager(kv, testKey, 24*time.Hour)
	if err != nil {
		t.Fatalf("restore NewManager: %v", err)
	}
	defer m2.Close()
	got, err := m2.Current(context.Background())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if got != nil {
		t.Fatalf("expired token must not restore a session, got %+v", got)
	}
}

func TestRestore_RejectsForeignSignature(t *testing.T) {
	kv := newMemKV()
	m, err := NewManager(kv, testKey, 24*time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	defer m.Close()
	if err := m.SignIn(context.Background(), Session{UserID: uuid.Must(uuid.NewV4())}); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	other, err := NewManager(kv, []byte("another-key-entirely-0000000000"), 24*time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	defer other.Close()
	got, err := other.Current(context.Background())
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if got != nil {
		t.Fatalf("token signed with a different key must not restore, got %+v", got)
	}
}

func TestSignIn_RejectsNilUserID(t *testing.T) {
	m, err := NewManager(newMemKV(), testKey, time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	defer m.Close()
	if err := m.SignIn(context.Background(), Session{Email: "x@example.com"}); err == nil {
		t.Fatalf("want error for nil user id")
	}
}

func TestEvents_SignInAndOut(t *testing.T) {
	kv := newMemKV()
	m, err := NewManager(kv, testKey, time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	defer m.Close()

	events := m.Subscribe()
	s := Session{UserID: uuid.Must(uuid.NewV4()), Email: "umi@example.com"}
	if err := m.SignIn(context.Background(), s); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if err := m.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut: %v", err)
	}

	ev := <-events
	if ev.Type != SignedIn || ev.Session.UserID != s.UserID {
		t.Fatalf("first event want SignedIn for %s, got %+v", s.UserID, ev)
	}
	ev = <-events
	if ev.Type != SignedOut {
		t.Fatalf("second event want SignedOut, got %+v", ev)
	}

	if _, ok := kv.m["session"]; ok {
		t.Fatalf("sign-out must delete the persisted token")
	}
}

func TestSignOut_WhileSignedOutEmitsNothing(t *testing.T) {
	m, err := NewManager(newMemKV(), testKey, time.Hour)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	defer m.Close()

	events := m.Subscribe()
	if err := m.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut: %v", err)
	}
	select {
	case ev := <-events:
		t.Fatalf("unexpected event: %+v", ev)
	default:
	}
}
