package auth

import (
	"errors"

	"github.com/vaughan-dsouza/expert/internal/models"
)

var (
	// ErrDuplicateEmail is returned by Signup when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrUserNotFound is returned by Signin when no account has the email.
	ErrUserNotFound = errors.New("user is not registered")

	// ErrInvalidCredential is returned by Signin when the password does not match.
	ErrInvalidCredential = errors.New("wrong password")

	ErrInvalidRole = models.ErrInvalidRole
)
