// Package session owns the client's authentication state machine. A Manager
// moves between restoring, anonymous and authenticated, keeps the in-memory
// session consistent with the credential store, and never surfaces storage or
// network failures as anything worse than an anonymous session plus a
// human-readable message.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"github.com/acadex/acadex/internal/client/api"
	"github.com/acadex/acadex/internal/client/credstore"
	"github.com/acadex/acadex/internal/logging"
)

const (
	tokenKey = "token"
	userKey  = "user"
)

// Result reports the outcome of a login or register attempt. Message is only
// set on failure and is safe to show to the user verbatim.
type Result struct {
	Success bool
	Message string
}

// Manager is safe for concurrent use. All exported accessors take the read
// lock; transitions take the write lock only around state mutation, never
// around network calls.
type Manager struct {
	store  credstore.Store
	client *api.Client
	logger logging.Logger

	mu        sync.RWMutex
	user      *api.User
	token     string
	restoring bool
}

func NewManager(store credstore.Store, client *api.Client, logger logging.Logger) *Manager {
	return &Manager{
		store:     store,
		client:    client,
		logger:    logger,
		restoring: true,
	}
}

// Restore attempts to rebuild a session from the credential store. Any
// failure, a missing token, an unreadable identity snapshot or a storage
// error, results in an anonymous session; Restore itself never fails. On
// return Restoring reports false.
func (m *Manager) Restore(ctx context.Context) {
	defer func() {
		m.mu.Lock()
		m.restoring = false
		m.mu.Unlock()
	}()

	token, err := m.store.Get(ctx, tokenKey)
	if err != nil {
		m.logger.Warn(ctx, "session restore: token read failed", "error", err)
		return
	}
	if token == nil {
		return
	}

	raw, err := m.store.Get(ctx, userKey)
	if err != nil || raw == nil {
		m.logger.Warn(ctx, "session restore: identity read failed", "error", err)
		return
	}

	var user api.User
	if err := json.Unmarshal(raw, &user); err != nil {
		m.logger.Warn(ctx, "session restore: corrupt identity snapshot", "error", err)
		return
	}

	m.mu.Lock()
	m.token = string(token)
	m.user = &user
	m.mu.Unlock()
}

// splitIdentifier classifies a user-typed identifier: anything containing "@"
// is an email, everything else a phone number.
func splitIdentifier(identifier string) (email, phone string) {
	if strings.Contains(identifier, "@") {
		return identifier, ""
	}
	return "", identifier
}

// unreachableMessage is shown whenever the server cannot be contacted at all.
func (m *Manager) unreachableMessage() string {
	return "Unable to reach the server at " + m.client.BaseURL() + ". Please confirm it is running and accessible."
}

func (m *Manager) finishAuth(ctx context.Context, resp *api.AuthResponse) Result {
	m.mu.Lock()
	m.token = resp.Token
	m.user = &resp.User
	m.mu.Unlock()

	if err := m.store.Set(ctx, tokenKey, []byte(resp.Token)); err != nil {
		m.logger.Warn(ctx, "session: token not persisted", "error", err)
	}
	if raw, err := json.Marshal(resp.User); err == nil {
		if err := m.store.Set(ctx, userKey, raw); err != nil {
			m.logger.Warn(ctx, "session: identity not persisted", "error", err)
		}
	}
	return Result{Success: true}
}

func (m *Manager) classify(err error) Result {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return Result{Message: apiErr.Message}
	}
	return Result{Message: m.unreachableMessage()}
}

// Login authenticates with an email or phone identifier plus a password or a
// one-time code. On success the session is authenticated and persisted,
// replacing any previous one.
func (m *Manager) Login(ctx context.Context, identifier, password, otp string) Result {
	email, phone := splitIdentifier(identifier)
	resp, err := m.client.Login(ctx, api.LoginRequest{
		Email:    email,
		Phone:    phone,
		Password: password,
		OTP:      otp,
	})
	if err != nil {
		return m.classify(err)
	}
	return m.finishAuth(ctx, resp)
}

// Register creates an account and, on success, enters the authenticated state
// exactly as Login does.
func (m *Manager) Register(ctx context.Context, name, identifier, password string) Result {
	email, phone := splitIdentifier(identifier)
	resp, err := m.client.Register(ctx, api.RegisterRequest{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: password,
	})
	if err != nil {
		return m.classify(err)
	}
	return m.finishAuth(ctx, resp)
}

// Logout clears the in-memory session unconditionally and deletes the stored
// credentials best-effort. Calling it while anonymous is a no-op.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.token = ""
	m.user = nil
	m.mu.Unlock()

	if err := m.store.Delete(ctx, tokenKey); err != nil {
		m.logger.Warn(ctx, "session logout: token delete failed", "error", err)
	}
	if err := m.store.Delete(ctx, userKey); err != nil {
		m.logger.Warn(ctx, "session logout: identity delete failed", "error", err)
	}
}

// User returns the authenticated identity, or nil while anonymous.
func (m *Manager) User() *api.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.user
}

// Token returns the current session token, empty while anonymous.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// Restoring reports whether the initial Restore has not yet completed.
func (m *Manager) Restoring() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.restoring
}

// BaseURL exposes the resolved backend address for display.
func (m *Manager) BaseURL() string {
	return m.client.BaseURL()
}
