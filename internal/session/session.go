// Package session keeps server-side login sessions. The browser holds a
// signed token naming the session; the session itself lives in a Store.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CookieName is the name of the session cookie
const CookieName = "wordbook_session"

// ErrNoSession is returned when a token or session is missing, invalid or expired
var ErrNoSession = errors.New("no session")

// Auth is the authentication context of a request
type Auth struct {
	SessionID string `json:"sid"`
	UserID    int64  `json:"user_id"`
	Email     string `json:"email"`
}

// Store persists sessions
type Store interface {
	Save(ctx context.Context, auth *Auth, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*Auth, error)
	Update(ctx context.Context, auth *Auth) error
	Delete(ctx context.Context, sessionID string) error
}

// Manager issues and resolves session tokens
type Manager struct {
	store  Store
	signer *Signer
	ttl    time.Duration
}

// NewManager creates a session manager
func NewManager(store Store, signer *Signer, ttl time.Duration) *Manager {
	return &Manager{store: store, signer: signer, ttl: ttl}
}

// TTL returns the lifetime of new sessions
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Start creates a session for the user and returns its signed token
func (m *Manager) Start(ctx context.Context, userID int64, email string) (string, *Auth, error) {
	auth := &Auth{
		SessionID: uuid.NewString(),
		UserID:    userID,
		Email:     email,
	}
	if err := m.store.Save(ctx, auth, m.ttl); err != nil {
		return "", nil, fmt.Errorf("save session: %w", err)
	}

	token, err := m.signer.Sign(auth.SessionID, userID, m.ttl)
	if err != nil {
		_ = m.store.Delete(ctx, auth.SessionID)
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}
	return token, auth, nil
}

// Resolve verifies token and loads its session
func (m *Manager) Resolve(ctx context.Context, token string) (*Auth, error) {
	claims, err := m.signer.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoSession, err)
	}

	auth, err := m.store.Get(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if auth.UserID != claims.UserID {
		return nil, ErrNoSession
	}
	return auth, nil
}

// SetEmail updates the email remembered in the session
func (m *Manager) SetEmail(ctx context.Context, auth *Auth, email string) error {
	if auth.Email == email {
		return nil
	}
	auth.Email = email
	return m.store.Update(ctx, auth)
}

// End deletes the session
func (m *Manager) End(ctx context.Context, auth *Auth) error {
	return m.store.Delete(ctx, auth.SessionID)
}
