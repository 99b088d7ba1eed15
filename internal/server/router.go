package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vaughan-dsouza/expert/internal/audit"
	"github.com/vaughan-dsouza/expert/internal/handlers"
	"github.com/vaughan-dsouza/expert/internal/middleware"
	"github.com/vaughan-dsouza/expert/internal/models"
	"github.com/vaughan-dsouza/expert/internal/utils"
)

type Options struct {
	Handlers     *handlers.Handler
	AccessSecret string
	AuditHook    audit.Hook
	Logger       *slog.Logger

	// optional
	Limiter   middleware.RateLimiter
	AuthLimit int
	Metrics   *middleware.Metrics
	Gatherer  prometheus.Gatherer
	Health    func(ctx context.Context) error
}

func NewRouter(o Options) chi.Router {
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.AuditHook == nil {
		o.AuditHook = audit.LogHook(o.Logger)
	}
	h := o.Handlers

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(o.Logger))
	if o.Metrics != nil {
		r.Use(o.Metrics.Handler)
	}
	// innermost, so recovered panics still reach the access log and metrics as 500s
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		if o.Health != nil {
			ctx, cancel := context.WithTimeout(req.Context(), 2*time.Second)
			defer cancel()
			if err := o.Health(ctx); err != nil {
				utils.JSONError(w, http.StatusServiceUnavailable, "unhealthy")
				return
			}
		}
		utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	if o.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(o.Gatherer, promhttp.HandlerOpts{}))
	}

	// Public
	r.Route("/auth", func(r chi.Router) {
		r.Use(middleware.RateLimit("auth", o.Limiter, o.AuthLimit, time.Minute, o.Metrics))
		r.Post("/signup", h.Auth.SignUp)
		r.Post("/signin", h.Auth.SignIn)
	})

	// Protected
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(o.AccessSecret))

		r.Get("/me", h.Users.Me)
		r.Get("/users/{userId}", h.Users.GetUser)
		r.Put("/users/password", h.Users.ChangePassword)

		r.Get("/todos", h.Todos.GetTodos)
		r.Post("/todos", h.Todos.CreateTodo)
		r.Get("/todos/{todoId}", h.Todos.GetTodoByID)
		r.Put("/todos/{todoId}", h.Todos.UpdateTodo)
		r.Delete("/todos/{todoId}", h.Todos.DeleteTodo)

		r.Get("/todos/{todoId}/comments", h.Comments.GetComments)
		r.Post("/todos/{todoId}/comments", h.Comments.CreateComment)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireRole(models.RoleAdmin))
			r.Use(audit.Middleware(o.AuditHook))

			r.Delete("/comments/{commentId}", h.Comments.DeleteComment)
			r.Patch("/users/{userId}", h.Users.ChangeRole)
		})
	})

	return r
}
