package service

import (
	"context"
	"errors"
	"strings"

	"wordbook/internal/domain"
	"wordbook/internal/repository"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var errInvalidCredentials = domain.Unauthorized("invalid email or password")

// UserService handles account registration, login and profile changes
type UserService struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
	cost     int
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
		cost:     bcrypt.DefaultCost,
	}
}

// Register creates an account with a hashed password
func (s *UserService) Register(ctx context.Context, email, password, name string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.Validation("email and password are required")
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEmail
	}

	hash, err := s.hash(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:    email,
		Password: hash,
		Name:     strings.TrimSpace(name),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.Int64("user_id", user.ID))
	return user, nil
}

// Authenticate checks credentials. Unknown email and wrong password give the same error.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.Validation("email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, errInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !checkPassword(user.Password, password) {
		return nil, errInvalidCredentials
	}
	return user, nil
}

// GetByID returns a user
func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// Update changes name, email and optionally password after re-checking the current password
func (s *UserService) Update(ctx context.Context, id int64, in domain.UpdateUserInput) (*domain.User, error) {
	user, err := s.verified(ctx, id, in.CurrentPassword)
	if err != nil {
		return nil, err
	}

	email := strings.TrimSpace(in.Email)
	if email != "" && !strings.EqualFold(email, user.Email) {
		other, err := s.userRepo.GetByEmail(ctx, email)
		switch {
		case err == nil && other.ID != user.ID:
			return nil, domain.ErrDuplicateEmail
		case err != nil && !errors.Is(err, domain.ErrNotFound):
			return nil, err
		}
	}
	if email != "" {
		user.Email = email
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		user.Name = name
	}
	if in.Password != "" {
		hash, err := s.hash(in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User updated", zap.Int64("user_id", user.ID))
	return user, nil
}

// Delete removes an account after re-checking the current password
func (s *UserService) Delete(ctx context.Context, id int64, currentPassword string) error {
	if _, err := s.verified(ctx, id, currentPassword); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("User deleted", zap.Int64("user_id", id))
	return nil
}

func (s *UserService) verified(ctx context.Context, id int64, currentPassword string) (*domain.User, error) {
	if currentPassword == "" {
		return nil, domain.Validation("current password is required")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !checkPassword(user.Password, currentPassword) {
		return nil, domain.Unauthorized("current password is incorrect")
	}
	return user, nil
}

func (s *UserService) hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
