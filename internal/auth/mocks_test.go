package auth

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vaughan-dsouza/expert/internal/models"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserStore) Save(ctx context.Context, u *models.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

type mockHasher struct {
	mock.Mock
}

func (m *mockHasher) Encode(raw string) (string, error) {
	args := m.Called(raw)
	return args.String(0), args.Error(1)
}

func (m *mockHasher) Matches(raw, hash string) bool {
	args := m.Called(raw, hash)
	return args.Bool(0)
}

type mockIssuer struct {
	mock.Mock
}

func (m *mockIssuer) CreateToken(userID int64, email string, role models.Role) (string, error) {
	args := m.Called(userID, email, role)
	return args.String(0), args.Error(1)
}
