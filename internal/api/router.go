// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"nilebank/internal/api/handler"
	"nilebank/internal/auth"
)

// NewRouter sets up and returns a new HTTP router.
func NewRouter(authHandler *handler.AuthHandler, ledgerHandler *handler.LedgerHandler, adminHandler *handler.AdminHandler, tokens *auth.TokenManager, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Registration and sign-in
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.RegisterCustomer)
		r.Post("/admin/register", authHandler.RegisterAdmin)
		r.Post("/login", authHandler.Login)
	})

	// Customer account routes, token required
	r.Route("/account", func(r chi.Router) {
		r.Use(handler.Authenticator(tokens))
		r.Get("/balances", ledgerHandler.Balances)
		r.Post("/deposit", ledgerHandler.Deposit)
		r.Post("/withdraw", ledgerHandler.Withdraw)
		r.Post("/transfer", ledgerHandler.Transfer)
		r.Get("/transactions", ledgerHandler.History)
	})

	// Admin directory routes, admin token required
	r.Route("/admin", func(r chi.Router) {
		r.Use(handler.Authenticator(tokens))
		r.Use(handler.RequireAdmin)
		r.Get("/customers", adminHandler.ListCustomers)
		r.Post("/customers", adminHandler.CreateCustomer)
		r.Post("/users/{userID}/password", adminHandler.ResetPassword)
		r.Post("/users/{userID}/lock", adminHandler.Lock)
		r.Post("/users/{userID}/unlock", adminHandler.Unlock)
		r.Delete("/users/{userID}", adminHandler.Delete)
	})

	return r
}
