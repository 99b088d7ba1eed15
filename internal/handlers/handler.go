package handlers

import (
	"context"
	"log/slog"

	"github.com/vaughan-dsouza/expert/internal/auth"
	"github.com/vaughan-dsouza/expert/internal/models"
)

// Authenticator is implemented by auth.Service.
type Authenticator interface {
	Signup(ctx context.Context, req auth.SignupRequest) (string, error)
	Signin(ctx context.Context, req auth.SigninRequest) (string, error)
}

type UserStore interface {
	FindByID(ctx context.Context, id int64) (*models.User, error)
	UpdateRole(ctx context.Context, id int64, role models.Role) error
	UpdatePassword(ctx context.Context, id int64, hash string) error
}

type TodoStore interface {
	Create(ctx context.Context, t *models.Todo) error
	Get(ctx context.Context, id int64) (*models.Todo, error)
	List(ctx context.Context, page, size int) ([]models.Todo, error)
	Update(ctx context.Context, t *models.Todo) error
	Delete(ctx context.Context, id int64) error
}

type CommentStore interface {
	Create(ctx context.Context, c *models.Comment) error
	ListByTodo(ctx context.Context, todoID int64) ([]models.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// Deps are the collaborators shared by the handlers.
type Deps struct {
	Auth     Authenticator
	Hasher   auth.PasswordHasher
	Users    UserStore
	Todos    TodoStore
	Comments CommentStore
	Logger   *slog.Logger
}

type Handler struct {
	Auth     *AuthHandler
	Users    *UserHandler
	Todos    *TodoHandler
	Comments *CommentHandler
}

func NewHandler(d Deps) *Handler {
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	return &Handler{
		Auth:     NewAuthHandler(d.Auth, d.Logger),
		Users:    NewUserHandler(d.Users, d.Hasher, d.Logger),
		Todos:    NewTodoHandler(d.Todos, d.Logger),
		Comments: NewCommentHandler(d.Comments, d.Todos, d.Logger),
	}
}
