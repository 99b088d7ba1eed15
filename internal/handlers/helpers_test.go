package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/vaughan-dsouza/expert/internal/utils"
)

// request builds a request carrying chi URL params and, when uid > 0, an authenticated user.
func request(method, target, body string, uid int64, params map[string]string) *http.Request {
	var rdr io.Reader = http.NoBody
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if uid > 0 {
		ctx = context.WithValue(ctx, utils.CtxUserIDKey, uid)
	}
	return req.WithContext(ctx)
}
