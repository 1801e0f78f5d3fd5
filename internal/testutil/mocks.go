package testutil

import (
	"context"
	"time"

	"wordbook/internal/dictionary"
	"wordbook/internal/domain"
	"wordbook/internal/session"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockWordRepository is a mock for WordRepository
type MockWordRepository struct {
	mock.Mock
}

func (m *MockWordRepository) Create(ctx context.Context, word *domain.Word) error {
	args := m.Called(ctx, word)
	return args.Error(0)
}

func (m *MockWordRepository) GetByID(ctx context.Context, id int64) (*domain.Word, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Word), args.Error(1)
}

func (m *MockWordRepository) Update(ctx context.Context, word *domain.Word) error {
	args := m.Called(ctx, word)
	return args.Error(0)
}

func (m *MockWordRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWordRepository) ExistsForUser(ctx context.Context, english string, userID *int64) (bool, error) {
	args := m.Called(ctx, english, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockWordRepository) List(ctx context.Context, scope domain.Scope, newestFirst bool) ([]domain.Word, error) {
	args := m.Called(ctx, scope, newestFirst)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) ListRecent(ctx context.Context, scope domain.Scope, limit int) ([]domain.Word, error) {
	args := m.Called(ctx, scope, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) ListSince(ctx context.Context, scope domain.Scope, since time.Time) ([]domain.Word, error) {
	args := m.Called(ctx, scope, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) Search(ctx context.Context, scope domain.Scope, query string) ([]domain.Word, error) {
	args := m.Called(ctx, scope, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) ListByDifficulty(ctx context.Context, scope domain.Scope, level string) ([]domain.Word, error) {
	args := m.Called(ctx, scope, level)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Word), args.Error(1)
}

func (m *MockWordRepository) Count(ctx context.Context, scope domain.Scope) (int64, error) {
	args := m.Called(ctx, scope)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWordRepository) CountSince(ctx context.Context, scope domain.Scope, since time.Time, inclusive bool) (int64, error) {
	args := m.Called(ctx, scope, since, inclusive)
	return args.Get(0).(int64), args.Error(1)
}

// MockDictionary is a mock for the dictionary lookup client
type MockDictionary struct {
	mock.Mock
}

func (m *MockDictionary) Lookup(ctx context.Context, term string) ([]dictionary.Entry, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dictionary.Entry), args.Error(1)
}

// MockTranslator is a mock for the translation client
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) ToTurkish(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

// MockSessionStore is a mock for session.Store
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, auth *session.Auth, ttl time.Duration) error {
	args := m.Called(ctx, auth, ttl)
	return args.Error(0)
}

func (m *MockSessionStore) Get(ctx context.Context, sessionID string) (*session.Auth, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Auth), args.Error(1)
}

func (m *MockSessionStore) Update(ctx context.Context, auth *session.Auth) error {
	args := m.Called(ctx, auth)
	return args.Error(0)
}

func (m *MockSessionStore) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}
