package testutil

import (
	"context"
	"sync"
	"time"

	"wordbook/internal/dictionary"
	"wordbook/internal/domain"
	"wordbook/internal/session"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user whose stored password is the bcrypt hash of password
func NewTestUser(id int64, email, password string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return &domain.User{
		ID:        id,
		Email:     email,
		Password:  string(hash),
		Name:      "Test User",
		CreatedAt: time.Now(),
	}
}

// NewTestWord creates a test word
func NewTestWord(id int64, userID *int64, english string, added time.Time) *domain.Word {
	return &domain.Word{
		ID:             id,
		English:        english,
		Meaning:        "meaning of " + english,
		TurkishMeaning: "anlamı " + english,
		ExampleUsage:   domain.ExampleNotFound,
		AddedDate:      added,
		UserID:         userID,
	}
}

// NewTestEntries creates a single-entry dictionary response
func NewTestEntries(term string, defs ...dictionary.Definition) []dictionary.Entry {
	return []dictionary.Entry{{
		Word:     term,
		Meanings: []dictionary.Meaning{{PartOfSpeech: "noun", Definitions: defs}},
	}}
}

// MemorySessionStore is an in-memory session.Store
type MemorySessionStore struct {
	mu       sync.Mutex
	sessions map[string]session.Auth
}

// NewMemorySessionStore creates an empty store
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]session.Auth)}
}

func (s *MemorySessionStore) Save(_ context.Context, auth *session.Auth, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[auth.SessionID] = *auth
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (*session.Auth, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	auth, ok := s.sessions[sessionID]
	if !ok {
		return nil, session.ErrNoSession
	}
	return &auth, nil
}

func (s *MemorySessionStore) Update(_ context.Context, auth *session.Auth) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[auth.SessionID]; !ok {
		return session.ErrNoSession
	}
	s.sessions[auth.SessionID] = *auth
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// Len returns the number of stored sessions
func (s *MemorySessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
