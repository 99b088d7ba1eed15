package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/vaughan-dsouza/expert/internal/models"
)

type Todos struct {
	DB *sqlx.DB
}

func NewTodos(db *sqlx.DB) *Todos {
	return &Todos{DB: db}
}

func (s *Todos) Create(ctx context.Context, t *models.Todo) error {
	err := s.DB.QueryRowxContext(ctx, `
		INSERT INTO todos (user_id, title, contents)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, t.UserID, t.Title, t.Contents).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("store: insert todo: %w", err)
	}
	return nil
}

func (s *Todos) Get(ctx context.Context, id int64) (*models.Todo, error) {
	var t models.Todo
	err := s.DB.GetContext(ctx, &t, `
		SELECT id, user_id, title, contents, created_at, updated_at
		FROM todos
		WHERE id=$1
	`, id)
	if err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}

// List returns one page of todos, most recently modified first. page starts at 1.
func (s *Todos) List(ctx context.Context, page, size int) ([]models.Todo, error) {
	todos := []models.Todo{}
	err := s.DB.SelectContext(ctx, &todos, `
		SELECT id, user_id, title, contents, created_at, updated_at
		FROM todos
		ORDER BY updated_at DESC
		LIMIT $1 OFFSET $2
	`, size, (page-1)*size)
	if err != nil {
		return nil, fmt.Errorf("store: list todos: %w", err)
	}
	return todos, nil
}

func (s *Todos) Update(ctx context.Context, t *models.Todo) error {
	t.UpdatedAt = time.Now()
	res, err := s.DB.ExecContext(ctx, `
		UPDATE todos
		SET title=$1, contents=$2, updated_at=$3
		WHERE id=$4
	`, t.Title, t.Contents, t.UpdatedAt, t.ID)
	if err != nil {
		return fmt.Errorf("store: update todo: %w", err)
	}
	return affectedOne(res)
}

func (s *Todos) Delete(ctx context.Context, id int64) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM todos WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("store: delete todo: %w", err)
	}
	return affectedOne(res)
}
