// Package api exposes the ledger over JSON/REST. Handlers decode and
// validate input at the boundary, run exactly one command or query inside
// one store transaction, and map handler errors onto HTTP statuses.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mverdier/coinsplit/internal/auth"
	"github.com/mverdier/coinsplit/internal/middleware"
	"github.com/mverdier/coinsplit/internal/storage"
)

// Server bundles the dependencies of all HTTP handlers.
type Server struct {
	store storage.Store
	authn auth.Authenticator
	jwt   *auth.JWTManager
}

// NewServer creates a server around the given store and auth components.
func NewServer(store storage.Store, authn auth.Authenticator, jwt *auth.JWTManager) *Server {
	return &Server{store: store, authn: authn, jwt: jwt}
}

// Routes assembles the full route tree. Everything except registration,
// login, health and metrics sits behind bearer-token auth.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(middleware.Logging)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/auth/register", s.handleRegister)
	r.Post("/auth/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(s.jwt, writeUnauthorized))

		r.Get("/users/me", s.handleGetMe)
		r.Get("/users", s.handleGetUserByEmail)

		r.Post("/groups", s.handleCreateGroup)
		r.Get("/groups", s.handleListGroups)
		r.Post("/groups/{groupID}/members", s.handleAddMember)
		r.Post("/groups/{groupID}/expenses", s.handleCreateExpense)
		r.Get("/groups/{groupID}/expenses", s.handleListExpenses)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
