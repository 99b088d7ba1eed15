package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/vaughan-dsouza/expert/internal/models"
	"github.com/vaughan-dsouza/expert/internal/store"
	"github.com/vaughan-dsouza/expert/internal/utils"
)

type CommentHandler struct {
	Comments CommentStore
	Todos    TodoStore
	log      *slog.Logger
}

func NewCommentHandler(comments CommentStore, todos TodoStore, log *slog.Logger) *CommentHandler {
	return &CommentHandler{Comments: comments, Todos: todos, log: log}
}

type commentReq struct {
	Contents string `json:"contents"`
}

func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	todoID, ok := h.todoID(w, r)
	if !ok {
		return
	}

	var body commentReq
	if err := utils.DecodeJSON(w, r, &body); err != nil {
		return
	}
	if err := validation.Validate(body.Contents, validation.Required); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "contents: "+err.Error())
		return
	}

	uid, _ := utils.UserIDFromContext(r.Context())
	comment := models.Comment{TodoID: todoID, UserID: uid, Contents: body.Contents}
	if err := h.Comments.Create(r.Context(), &comment); err != nil {
		h.internal(w, r, err)
		return
	}

	utils.JSON(w, http.StatusCreated, comment)
}

func (h *CommentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	todoID, ok := h.todoID(w, r)
	if !ok {
		return
	}

	comments, err := h.Comments.ListByTodo(r.Context(), todoID)
	if err != nil {
		h.internal(w, r, err)
		return
	}

	utils.JSON(w, http.StatusOK, comments)
}

// DeleteComment is the admin-only comment removal.
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(w, r, "commentId")
	if err != nil {
		return
	}

	err = h.Comments.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "comment not found")
		return
	}
	if err != nil {
		h.internal(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// todoID reads {todoId} and checks the todo exists.
func (h *CommentHandler) todoID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := utils.IDParam(w, r, "todoId")
	if err != nil {
		return 0, false
	}
	_, err = h.Todos.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "todo not found")
		return 0, false
	}
	if err != nil {
		h.internal(w, r, err)
		return 0, false
	}
	return id, true
}

func (h *CommentHandler) internal(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "comment request failed", "path", r.URL.Path, "error", err)
	utils.JSONError(w, http.StatusInternalServerError, "internal error")
}
