package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaughan-dsouza/expert/internal/models"
)

func TestTodoLifecycle(t *testing.T) {
	m := newMemStore()
	h := NewTodoHandler(todoStore{m}, slog.Default())

	w := httptest.NewRecorder()
	h.CreateTodo(w, request(http.MethodPost, "/todos", `{"title":"buy milk","contents":"2L"}`, 1, nil))
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.UserID)
	id := map[string]string{"todoId": "1"}

	w = httptest.NewRecorder()
	h.GetTodoByID(w, request(http.MethodGet, "/todos/1", "", 1, id))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	h.UpdateTodo(w, request(http.MethodPut, "/todos/1", `{"title":"buy bread"}`, 2, id))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	h.UpdateTodo(w, request(http.MethodPut, "/todos/1", `{"title":"buy bread"}`, 1, id))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "buy bread", m.todos[1].Title)
	assert.Equal(t, "2L", m.todos[1].Contents)

	w = httptest.NewRecorder()
	h.UpdateTodo(w, request(http.MethodPut, "/todos/1", `{"title":""}`, 1, id))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	h.GetTodos(w, request(http.MethodGet, "/todos?page=1&size=500", "", 1, nil))
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Todo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	w = httptest.NewRecorder()
	h.DeleteTodo(w, request(http.MethodDelete, "/todos/1", "", 1, id))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	h.GetTodoByID(w, request(http.MethodGet, "/todos/1", "", 1, id))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateTodoValidation(t *testing.T) {
	h := NewTodoHandler(todoStore{newMemStore()}, slog.Default())

	w := httptest.NewRecorder()
	h.CreateTodo(w, request(http.MethodPost, "/todos", `{"title":"","contents":"x"}`, 1, nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTodosRejectsOverflowingPage(t *testing.T) {
	h := NewTodoHandler(todoStore{newMemStore()}, slog.Default())

	for _, target := range []string{
		"/todos?page=9223372036854775807",
		"/todos?page=92233720368547759&size=100",
	} {
		w := httptest.NewRecorder()
		h.GetTodos(w, request(http.MethodGet, target, "", 1, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		assert.Contains(t, w.Body.String(), "page out of range", target)
	}
}
