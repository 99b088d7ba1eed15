package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vaughan-dsouza/expert/internal/models"
)

// Users persists accounts in the users table.
type Users struct {
	DB *sqlx.DB
}

func NewUsers(db *sqlx.DB) *Users {
	return &Users{DB: db}
}

func (s *Users) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.DB.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)`, email)
	if err != nil {
		return false, fmt.Errorf("store: exists by email: %w", err)
	}
	return exists, nil
}

func (s *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.DB.GetContext(ctx, &u, `
		SELECT id, email, password_hash, role, created_at
		FROM users
		WHERE email=$1
	`, email)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (s *Users) FindByID(ctx context.Context, id int64) (*models.User, error) {
	var u models.User
	err := s.DB.GetContext(ctx, &u, `
		SELECT id, email, password_hash, role, created_at
		FROM users
		WHERE id=$1
	`, id)
	if err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// Save inserts u and fills in the generated id and creation time.
func (s *Users) Save(ctx context.Context, u *models.User) error {
	err := s.DB.QueryRowxContext(ctx, `
		INSERT INTO users (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, u.Email, u.Password, u.Role).Scan(&u.ID, &u.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	if err != nil {
		return fmt.Errorf("store: insert user: %w", err)
	}
	return nil
}

func (s *Users) UpdateRole(ctx context.Context, id int64, role models.Role) error {
	return s.updateOne(ctx, `UPDATE users SET role=$1 WHERE id=$2`, role, id)
}

func (s *Users) UpdatePassword(ctx context.Context, id int64, hash string) error {
	return s.updateOne(ctx, `UPDATE users SET password_hash=$1 WHERE id=$2`, hash, id)
}

func (s *Users) updateOne(ctx context.Context, query string, args ...any) error {
	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("store: update user: %w", err)
	}
	return affectedOne(res)
}
