// Package audit records who called an administrative endpoint, and when,
// before the endpoint runs.
package audit

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/vaughan-dsouza/expert/internal/utils"
)

// Entry is what a Hook observes for one admin request.
type Entry struct {
	RequesterID int64
	Path        string
	Time        time.Time
	RequestID   string
}

// Hook runs before an audited handler. It must not modify the request.
type Hook interface {
	Before(ctx context.Context, e Entry)
}

type HookFunc func(ctx context.Context, e Entry)

func (f HookFunc) Before(ctx context.Context, e Entry) { f(ctx, e) }

// LogHook writes one structured record per audited request.
func LogHook(logger *slog.Logger) Hook {
	return HookFunc(func(ctx context.Context, e Entry) {
		logger.InfoContext(ctx, "admin api request",
			"requester_id", e.RequesterID,
			"request_time", e.Time.Format(time.RFC3339Nano),
			"request_url", e.Path,
			"request_id", e.RequestID,
		)
	})
}

// Option configures Middleware.
type Option func(*auditor)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *auditor) { a.now = now }
}

type auditor struct {
	hook Hook
	now  func() time.Time
}

// Middleware calls hook with an Entry built from the authenticated request and
// then passes the request through unchanged. It expects the auth middleware to
// have run first; a request without a user id is audited with RequesterID 0.
func Middleware(hook Hook, opts ...Option) func(http.Handler) http.Handler {
	a := &auditor{hook: hook, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid, _ := utils.UserIDFromContext(r.Context())
			a.hook.Before(r.Context(), Entry{
				RequesterID: uid,
				Path:        r.URL.RequestURI(),
				Time:        a.now(),
				RequestID:   utils.RequestIDFromContext(r.Context()),
			})
			next.ServeHTTP(w, r)
		})
	}
}
