package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/vaughan-dsouza/expert/internal/utils"
)

const RequestIDHeader = "X-Request-ID"

// RequestID propagates the caller's X-Request-ID or assigns a new uuid.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), utils.CtxRequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
