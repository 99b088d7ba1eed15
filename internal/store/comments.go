package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/vaughan-dsouza/expert/internal/models"
)

type Comments struct {
	DB *sqlx.DB
}

func NewComments(db *sqlx.DB) *Comments {
	return &Comments{DB: db}
}

func (s *Comments) Create(ctx context.Context, c *models.Comment) error {
	err := s.DB.QueryRowxContext(ctx, `
		INSERT INTO comments (todo_id, user_id, contents)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, c.TodoID, c.UserID, c.Contents).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("store: insert comment: %w", err)
	}
	return nil
}

func (s *Comments) ListByTodo(ctx context.Context, todoID int64) ([]models.Comment, error) {
	comments := []models.Comment{}
	err := s.DB.SelectContext(ctx, &comments, `
		SELECT id, todo_id, user_id, contents, created_at, updated_at
		FROM comments
		WHERE todo_id=$1
		ORDER BY created_at ASC
	`, todoID)
	if err != nil {
		return nil, fmt.Errorf("store: list comments: %w", err)
	}
	return comments, nil
}

func (s *Comments) Delete(ctx context.Context, id int64) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM comments WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("store: delete comment: %w", err)
	}
	return affectedOne(res)
}

func affectedOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
