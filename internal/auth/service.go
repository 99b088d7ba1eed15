package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/vaughan-dsouza/expert/internal/models"
	"github.com/vaughan-dsouza/expert/internal/store"
)

type PasswordHasher interface {
	Encode(raw string) (string, error)
	Matches(raw, hash string) bool
}

type TokenIssuer interface {
	CreateToken(userID int64, email string, role models.Role) (string, error)
}

// UserStore is the slice of user persistence the auth flows need.
// FindByEmail reports a missing account with store.ErrNotFound and
// Save reports an email unique violation with store.ErrDuplicateEmail.
type UserStore interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Save(ctx context.Context, u *models.User) error
}

// Service implements signup and signin.
type Service struct {
	users  UserStore
	hasher PasswordHasher
	tokens TokenIssuer
	logger *slog.Logger
}

func New(users UserStore, hasher PasswordHasher, tokens TokenIssuer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// Signup registers a new account and returns a token for it.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (string, error) {
	exists, err := s.users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", ErrDuplicateEmail
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		return "", err
	}

	hash, err := s.hasher.Encode(req.Password)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}

	user := &models.User{
		Email:    req.Email,
		Password: hash,
		Role:     role,
	}
	if err := s.users.Save(ctx, user); err != nil {
		// lost a race with a concurrent signup for the same email
		if errors.Is(err, store.ErrDuplicateEmail) {
			return "", ErrDuplicateEmail
		}
		return "", err
	}

	token, err := s.tokens.CreateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", fmt.Errorf("auth: create token: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", user.ID, "role", user.Role)
	return token, nil
}

// Signin verifies credentials and returns a token for the stored user.
func (s *Service) Signin(ctx context.Context, req SigninRequest) (string, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrNotFound) {
		return "", ErrUserNotFound
	}
	if err != nil {
		return "", err
	}

	if !s.hasher.Matches(req.Password, user.Password) {
		return "", ErrInvalidCredential
	}

	token, err := s.tokens.CreateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", fmt.Errorf("auth: create token: %w", err)
	}

	s.logger.InfoContext(ctx, "user signed in", "user_id", user.ID)
	return token, nil
}
