package handlers

import (
	"errors"
	"log/slog"
	"math"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/vaughan-dsouza/expert/internal/models"
	"github.com/vaughan-dsouza/expert/internal/store"
	"github.com/vaughan-dsouza/expert/internal/utils"
)

const maxPageSize = 100

type TodoHandler struct {
	Todos TodoStore
	log   *slog.Logger
}

func NewTodoHandler(todos TodoStore, log *slog.Logger) *TodoHandler {
	return &TodoHandler{Todos: todos, log: log}
}

type todoReq struct {
	Title    string `json:"title"`
	Contents string `json:"contents"`
}

func (r todoReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Contents, validation.Required),
	)
}

// ---------------------- CREATE ----------------------

func (h *TodoHandler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var body todoReq
	if err := utils.DecodeJSON(w, r, &body); err != nil {
		return
	}
	if err := body.Validate(); err != nil {
		utils.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	userID, _ := utils.UserIDFromContext(r.Context())

	todo := models.Todo{
		UserID:   userID,
		Title:    body.Title,
		Contents: body.Contents,
	}
	if err := h.Todos.Create(r.Context(), &todo); err != nil {
		h.internal(w, r, err)
		return
	}

	utils.JSON(w, http.StatusCreated, todo)
}

// ---------------------- GET ONE ----------------------

func (h *TodoHandler) GetTodoByID(w http.ResponseWriter, r *http.Request) {
	todo, ok := h.load(w, r)
	if !ok {
		return
	}
	utils.JSON(w, http.StatusOK, todo)
}

// ---------------------- LIST ----------------------

func (h *TodoHandler) GetTodos(w http.ResponseWriter, r *http.Request) {
	page := utils.QueryInt(r, "page", 1)
	size := utils.QueryInt(r, "size", 10)
	if size > maxPageSize {
		size = maxPageSize
	}
	// (page-1)*size becomes the SQL OFFSET and must not overflow
	if page > math.MaxInt/size {
		utils.JSONError(w, http.StatusBadRequest, "page out of range")
		return
	}

	todos, err := h.Todos.List(r.Context(), page, size)
	if err != nil {
		h.internal(w, r, err)
		return
	}

	utils.JSON(w, http.StatusOK, todos)
}

// ---------------------- UPDATE ----------------------

func (h *TodoHandler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title    *string `json:"title"`
		Contents *string `json:"contents"`
	}
	if err := utils.DecodeJSON(w, r, &body); err != nil {
		return
	}

	todo, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	if body.Title != nil {
		todo.Title = *body.Title
	}
	if body.Contents != nil {
		todo.Contents = *body.Contents
	}
	if err := (todoReq{Title: todo.Title, Contents: todo.Contents}).Validate(); err != nil {
		utils.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Todos.Update(r.Context(), todo); err != nil {
		h.internal(w, r, err)
		return
	}

	utils.JSON(w, http.StatusOK, todo)
}

// ---------------------- DELETE ----------------------

func (h *TodoHandler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	todo, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	err := h.Todos.Delete(r.Context(), todo.ID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		h.internal(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *TodoHandler) load(w http.ResponseWriter, r *http.Request) (*models.Todo, bool) {
	id, err := utils.IDParam(w, r, "todoId")
	if err != nil {
		return nil, false
	}

	todo, err := h.Todos.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "todo not found")
		return nil, false
	}
	if err != nil {
		h.internal(w, r, err)
		return nil, false
	}
	return todo, true
}

func (h *TodoHandler) loadOwned(w http.ResponseWriter, r *http.Request) (*models.Todo, bool) {
	todo, ok := h.load(w, r)
	if !ok {
		return nil, false
	}
	uid, _ := utils.UserIDFromContext(r.Context())
	if todo.UserID != uid {
		utils.JSONError(w, http.StatusForbidden, "not the todo owner")
		return nil, false
	}
	return todo, true
}

func (h *TodoHandler) internal(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "todo request failed", "path", r.URL.Path, "error", err)
	utils.JSONError(w, http.StatusInternalServerError, "internal error")
}
