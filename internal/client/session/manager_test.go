package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadex/acadex/internal/client/api"
	"github.com/acadex/acadex/internal/logging"
)

// memStore is an in-memory credential store for tests.
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{data: map[string][]byte{}}
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (s *memStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// brokenStore fails every operation.
type brokenStore struct{}

func (brokenStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("storage unavailable")
}
func (brokenStore) Set(context.Context, string, []byte) error {
	return errors.New("storage unavailable")
}
func (brokenStore) Delete(context.Context, string) error {
	return errors.New("storage unavailable")
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeBackend emulates the auth endpoints well enough for session flows.
func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			var req api.LoginRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if req.OTP == "123456" || req.Password == "secret" {
				json.NewEncoder(w).Encode(api.AuthResponse{
					Token: "tok-" + req.Email + req.Phone,
					User:  api.User{ID: 1, Name: "Alice", Email: req.Email, Phone: req.Phone},
				})
				return
			}
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid password"})
		case "/api/register":
			var req api.RegisterRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			if req.Email == "taken@example.com" {
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(map[string]string{"message": "User already exists"})
				return
			}
			json.NewEncoder(w).Encode(api.AuthResponse{
				Token: "reg-tok",
				User:  api.User{ID: 2, Name: req.Name, Email: req.Email, Phone: req.Phone},
			})
		default:
			http.NotFound(w, r)
		}
	}))
}

func newTestManager(store *memStore, baseURL string) *Manager {
	return NewManager(store, api.NewClient(baseURL, time.Second), testLogger())
}

func TestLoginPersistsAndRestores(t *testing.T) {
	srv := fakeBackend(t)
	defer srv.Close()

	ctx := context.Background()
	store := newMemStore()

	m := newTestManager(store, srv.URL)
	m.Restore(ctx)
	assert.False(t, m.Restoring())
	assert.Nil(t, m.User())

	res := m.Login(ctx, "alice@example.com", "secret", "")
	require.True(t, res.Success)
	require.NotNil(t, m.User())
	assert.Equal(t, "Alice", m.User().Name)
	assert.NotEmpty(t, m.Token())

	// A fresh manager over the same store rebuilds the session.
	m2 := newTestManager(store, srv.URL)
	assert.True(t, m2.Restoring())
	m2.Restore(ctx)
	assert.False(t, m2.Restoring())
	require.NotNil(t, m2.User())
	assert.Equal(t, m.Token(), m2.Token())
	assert.Equal(t, "Alice", m2.User().Name)
}

func TestLoginClassifiesPhoneIdentifier(t *testing.T) {
	srv := fakeBackend(t)
	defer srv.Close()

	m := newTestManager(newMemStore(), srv.URL)
	res := m.Login(context.Background(), "9876543210", "", "123456")
	require.True(t, res.Success)
	assert.Equal(t, "9876543210", m.User().Phone)
	assert.Empty(t, m.User().Email)
}

func TestLoginFailureKeepsAnonymous(t *testing.T) {
	srv := fakeBackend(t)
	defer srv.Close()

	ctx := context.Background()
	store := newMemStore()
	m := newTestManager(store, srv.URL)

	res := m.Login(ctx, "alice@example.com", "wrong", "")
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid password", res.Message)
	assert.Nil(t, m.User())
	assert.Empty(t, m.Token())

	raw, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestLoginUnreachableServer(t *testing.T) {
	srv := fakeBackend(t)
	srv.Close()

	m := newTestManager(newMemStore(), srv.URL)
	res := m.Login(context.Background(), "alice@example.com", "secret", "")
	assert.False(t, res.Success)
	assert.True(t, strings.HasPrefix(res.Message, "Unable to reach the server at "+srv.URL))
	assert.True(t, strings.HasSuffix(res.Message, "Please confirm it is running and accessible."))
}

func TestRegisterConflict(t *testing.T) {
	srv := fakeBackend(t)
	defer srv.Close()

	m := newTestManager(newMemStore(), srv.URL)
	res := m.Register(context.Background(), "Bob", "taken@example.com", "pw")
	assert.False(t, res.Success)
	assert.Equal(t, "User already exists", res.Message)
	assert.Nil(t, m.User())
}

func TestRegisterSuccessAuthenticates(t *testing.T) {
	srv := fakeBackend(t)
	defer srv.Close()

	m := newTestManager(newMemStore(), srv.URL)
	res := m.Register(context.Background(), "Bob", "bob@example.com", "pw")
	require.True(t, res.Success)
	assert.Equal(t, "reg-tok", m.Token())
	assert.Equal(t, "Bob", m.User().Name)
}

func TestLogoutClearsEverything(t *testing.T) {
	srv := fakeBackend(t)
	defer srv.Close()

	ctx := context.Background()
	store := newMemStore()
	m := newTestManager(store, srv.URL)
	require.True(t, m.Login(ctx, "alice@example.com", "secret", "").Success)

	m.Logout(ctx)
	assert.Nil(t, m.User())
	assert.Empty(t, m.Token())

	// A fresh restore over the same store stays anonymous.
	m2 := newTestManager(store, srv.URL)
	m2.Restore(ctx)
	assert.Nil(t, m2.User())

	// Logging out while anonymous is a no-op.
	m2.Logout(ctx)
	assert.Nil(t, m2.User())
}

func TestLogoutClearsMemoryEvenIfStorageFails(t *testing.T) {
	srv := fakeBackend(t)
	defer srv.Close()

	ctx := context.Background()
	m := NewManager(brokenStore{}, api.NewClient(srv.URL, time.Second), testLogger())
	require.True(t, m.Login(ctx, "alice@example.com", "secret", "").Success)

	m.Logout(ctx)
	assert.Nil(t, m.User())
	assert.Empty(t, m.Token())
}

func TestRestoreAbsorbsStorageFailure(t *testing.T) {
	srv := fakeBackend(t)
	defer srv.Close()

	m := NewManager(brokenStore{}, api.NewClient(srv.URL, time.Second), testLogger())
	m.Restore(context.Background())
	assert.False(t, m.Restoring())
	assert.Nil(t, m.User())
}

func TestRestoreRejectsCorruptIdentity(t *testing.T) {
	srv := fakeBackend(t)
	defer srv.Close()

	ctx := context.Background()
	store := newMemStore()
	require.NoError(t, store.Set(ctx, "token", []byte("tok")))
	require.NoError(t, store.Set(ctx, "user", []byte("{not json")))

	m := newTestManager(store, srv.URL)
	m.Restore(ctx)
	assert.Nil(t, m.User())
	assert.Empty(t, m.Token())
}

func TestRepeatedLoginOverwritesSession(t *testing.T) {
	srv := fakeBackend(t)
	defer srv.Close()

	ctx := context.Background()
	store := newMemStore()
	m := newTestManager(store, srv.URL)

	require.True(t, m.Login(ctx, "a@example.com", "secret", "").Success)
	first := m.Token()
	require.True(t, m.Login(ctx, "b@example.com", "secret", "").Success)
	assert.NotEqual(t, first, m.Token())

	raw, err := store.Get(ctx, "token")
	require.NoError(t, err)
	assert.Equal(t, m.Token(), string(raw))
}
