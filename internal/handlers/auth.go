package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/vaughan-dsouza/expert/internal/auth"
	"github.com/vaughan-dsouza/expert/internal/utils"
)

type AuthHandler struct {
	Service Authenticator
	log     *slog.Logger
}

func NewAuthHandler(svc Authenticator, log *slog.Logger) *AuthHandler {
	return &AuthHandler{Service: svc, log: log}
}

type tokenResp struct {
	BearerToken string `json:"bearerToken"`
}

// -------------- SIGN UP ----------------------

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req auth.SignupRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if err := req.Validate(); err != nil {
		utils.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.Service.Signup(r.Context(), req)
	if err != nil {
		h.authError(w, r, err)
		return
	}

	utils.JSON(w, http.StatusOK, tokenResp{BearerToken: token})
}

// -------------- SIGN IN ----------------------

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req auth.SigninRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		return
	}
	if err := req.Validate(); err != nil {
		utils.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.Service.Signin(r.Context(), req)
	if err != nil {
		h.authError(w, r, err)
		return
	}

	utils.JSON(w, http.StatusOK, tokenResp{BearerToken: token})
}

func (h *AuthHandler) authError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, auth.ErrDuplicateEmail),
		errors.Is(err, auth.ErrUserNotFound),
		errors.Is(err, auth.ErrInvalidRole):
		utils.JSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrInvalidCredential):
		utils.JSONError(w, http.StatusUnauthorized, err.Error())
	default:
		h.log.ErrorContext(r.Context(), "auth request failed", "path", r.URL.Path, "error", err)
		utils.JSONError(w, http.StatusInternalServerError, "internal error")
	}
}
