package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/vaughan-dsouza/expert/internal/auth"
	"github.com/vaughan-dsouza/expert/internal/models"
	"github.com/vaughan-dsouza/expert/internal/store"
	"github.com/vaughan-dsouza/expert/internal/utils"
)

type UserHandler struct {
	Users  UserStore
	Hasher auth.PasswordHasher
	log    *slog.Logger
}

func NewUserHandler(users UserStore, hasher auth.PasswordHasher, log *slog.Logger) *UserHandler {
	return &UserHandler{Users: users, Hasher: hasher, log: log}
}

var (
	hasDigit = regexp.MustCompile(`[0-9]`)
	hasUpper = regexp.MustCompile(`[A-Z]`)
)

type changePasswordReq struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (r changePasswordReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OldPassword, validation.Required),
		validation.Field(&r.NewPassword,
			validation.Required,
			validation.Length(8, 0),
			validation.Match(hasDigit).Error("must contain a digit"),
			validation.Match(hasUpper).Error("must contain an uppercase letter"),
		),
	)
}

type changeRoleReq struct {
	Role string `json:"role"`
}

// -------------- ME (protected) ----------------

func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "not authorized")
		return
	}
	h.writeUser(w, r, uid)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(w, r, "userId")
	if err != nil {
		return
	}
	h.writeUser(w, r, id)
}

func (h *UserHandler) writeUser(w http.ResponseWriter, r *http.Request, id int64) {
	user, err := h.Users.FindByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		h.internal(w, r, err)
		return
	}
	utils.JSON(w, http.StatusOK, user)
}

// ChangePassword replaces the caller's password after checking the old one.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	uid, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "not authorized")
		return
	}

	var req changePasswordReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if err := req.Validate(); err != nil {
		utils.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.Users.FindByID(r.Context(), uid)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		h.internal(w, r, err)
		return
	}

	if h.Hasher.Matches(req.NewPassword, user.Password) {
		utils.JSONError(w, http.StatusBadRequest, "new password must differ from the current one")
		return
	}
	if !h.Hasher.Matches(req.OldPassword, user.Password) {
		utils.JSONError(w, http.StatusBadRequest, "wrong password")
		return
	}

	hash, err := h.Hasher.Encode(req.NewPassword)
	if err != nil {
		h.internal(w, r, err)
		return
	}
	if err := h.Users.UpdatePassword(r.Context(), uid, hash); err != nil {
		h.internal(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ChangeRole is the admin-only role update.
func (h *UserHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	id, err := utils.IDParam(w, r, "userId")
	if err != nil {
		return
	}

	var req changeRoleReq
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = h.Users.UpdateRole(r.Context(), id, role)
	if errors.Is(err, store.ErrNotFound) {
		utils.JSONError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		h.internal(w, r, err)
		return
	}

	h.log.InfoContext(r.Context(), "user role changed", "user_id", id, "role", role)
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) internal(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "user request failed", "path", r.URL.Path, "error", err)
	utils.JSONError(w, http.StatusInternalServerError, "internal error")
}
