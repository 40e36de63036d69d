package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/MGhiremath0281/Apex-Money/internal/auth"
	"github.com/MGhiremath0281/Apex-Money/internal/budget"
	"github.com/MGhiremath0281/Apex-Money/internal/category"
	"github.com/MGhiremath0281/Apex-Money/internal/reports"
	"github.com/MGhiremath0281/Apex-Money/internal/transaction"
	"github.com/MGhiremath0281/Apex-Money/internal/transport/middleware"
	"github.com/MGhiremath0281/Apex-Money/internal/transport/swagger"
	"github.com/MGhiremath0281/Apex-Money/internal/user"
)

type Handlers struct {
	Auth        *auth.Handler
	User        *user.Handler
	Category    *category.Handler
	Transaction *transaction.Handler
	Budget      *budget.Handler
	Reports     *reports.Handler
}

func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggingMiddleware(logger))

	// OpenAPI spec and Swagger UI live outside the API prefix
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/register", h.Auth.Register)
			sr.Post("/login", h.Auth.Login)
			sr.Post("/refresh", h.Auth.RefreshToken)
			sr.Post("/logout", h.Auth.Logout)
		})

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/users/me", h.User.GetCurrentUser)

			pr.Route("/categories", func(cr chi.Router) {
				cr.Post("/", h.Category.CreateCategory)
				cr.Get("/", h.Category.ListCategories)
				cr.Get("/{id}", h.Category.GetCategory)
				cr.Patch("/{id}", h.Category.UpdateCategory)
				cr.Delete("/{id}", h.Category.DeleteCategory)
			})

			pr.Route("/transactions", func(tr chi.Router) {
				tr.Post("/", h.Transaction.CreateTransaction)
				tr.Get("/", h.Transaction.ListTransactions)
				tr.Get("/{id}", h.Transaction.GetTransaction)
				tr.Patch("/{id}", h.Transaction.UpdateTransaction)
				tr.Delete("/{id}", h.Transaction.DeleteTransaction)
			})

			pr.Route("/budgets", func(br chi.Router) {
				br.Post("/", h.Budget.CreateBudget)
				br.Get("/", h.Budget.ListBudgets)
				br.Get("/{id}", h.Budget.GetBudget)
				br.Patch("/{id}", h.Budget.UpdateBudget)
				br.Delete("/{id}", h.Budget.DeleteBudget)
			})

			pr.Get("/dashboard", h.Reports.Dashboard)
			pr.Route("/reports", func(rr chi.Router) {
				rr.Get("/summary", h.Reports.GetMonthlySummary)
				rr.Get("/net-worth", h.Reports.GetNetWorth)
			})
		})
	})
}
