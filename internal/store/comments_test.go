package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaughan-dsouza/expert/internal/models"
)

func TestCommentsCreateAndList(t *testing.T) {
	db, mock := newMockDB(t)
	comments := NewComments(db)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO comments`).
		WithArgs(int64(1), int64(2), "nice").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(5), now, now))
	mock.ExpectQuery(`FROM comments\s+WHERE todo_id=\$1`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "todo_id", "user_id", "contents", "created_at", "updated_at"}).
			AddRow(int64(5), int64(1), int64(2), "nice", now, now))

	c := &models.Comment{TodoID: 1, UserID: 2, Contents: "nice"}
	require.NoError(t, comments.Create(context.Background(), c))
	assert.Equal(t, int64(5), c.ID)

	list, err := comments.ListByTodo(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "nice", list[0].Contents)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentsDelete(t *testing.T) {
	db, mock := newMockDB(t)
	comments := NewComments(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM comments WHERE id=$1`)).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM comments WHERE id=$1`)).
		WithArgs(int64(10)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM comments WHERE id=$1`)).
		WithArgs(int64(11)).
		WillReturnError(errors.New("conn reset"))

	assert.NoError(t, comments.Delete(context.Background(), 9))
	assert.ErrorIs(t, comments.Delete(context.Background(), 10), ErrNotFound)

	err := comments.Delete(context.Background(), 11)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
