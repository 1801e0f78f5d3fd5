package repository

import (
	"context"
	"time"

	"wordbook/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}

// WordRepository defines word data operations
type WordRepository interface {
	Create(ctx context.Context, word *domain.Word) error
	GetByID(ctx context.Context, id int64) (*domain.Word, error)
	Update(ctx context.Context, word *domain.Word) error
	Delete(ctx context.Context, id int64) error
	ExistsForUser(ctx context.Context, english string, userID *int64) (bool, error)
	List(ctx context.Context, scope domain.Scope, newestFirst bool) ([]domain.Word, error)
	ListRecent(ctx context.Context, scope domain.Scope, limit int) ([]domain.Word, error)
	ListSince(ctx context.Context, scope domain.Scope, since time.Time) ([]domain.Word, error)
	Search(ctx context.Context, scope domain.Scope, query string) ([]domain.Word, error)
	ListByDifficulty(ctx context.Context, scope domain.Scope, level string) ([]domain.Word, error)
	Count(ctx context.Context, scope domain.Scope) (int64, error)
	CountSince(ctx context.Context, scope domain.Scope, since time.Time, inclusive bool) (int64, error)
}
