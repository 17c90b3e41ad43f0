package app

import (
	"github.com/centsible/centsible/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Transactions
	r.HandleFunc("/api/transaction", deps.TransactionHandler.List).Methods("GET")
	r.HandleFunc("/api/transaction", deps.TransactionHandler.Create).Methods("POST")
	r.HandleFunc("/api/transaction/{id}", deps.TransactionHandler.Delete).Methods("DELETE")

	// Stats
	r.HandleFunc("/api/stats", deps.StatsHandler.GetStats).Methods("GET")
	r.HandleFunc("/api/stats/chart", deps.StatsHandler.GetChart).Methods("GET")

	// Budget
	r.HandleFunc("/api/budget", deps.BudgetHandler.GetBudget).Methods("GET")

	// Money flow
	r.HandleFunc("/api/flow", deps.FlowHandler.GetFlow).Methods("GET")

	// Recurring items
	r.HandleFunc("/api/recurring", deps.RecurringHandler.List).Methods("GET")
	r.HandleFunc("/api/recurring", deps.RecurringHandler.Create).Methods("POST")
	r.HandleFunc("/api/recurring/materialize", deps.RecurringHandler.Materialize).Methods("POST")
	r.HandleFunc("/api/recurring/{id}/pending", deps.RecurringHandler.Pending).Methods("GET")
	r.HandleFunc("/api/recurring/{id}", deps.RecurringHandler.Delete).Methods("DELETE")

	// User management
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user/current", deps.UserHandler.UpdateUser).Methods("PUT")
	r.HandleFunc("/api/user", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/user/name-availability", deps.UserHandler.IsUsernameAvailable).Methods("GET").Queries("username", "{username}")
	r.HandleFunc("/api/user", deps.UserHandler.GetAvailableUsers).Methods("GET")
	r.HandleFunc("/api/user/{userUid}", deps.UserHandler.DeleteUser).Methods("DELETE")

	// Google integration
	r.HandleFunc("/api/integrations/google/auth/login", deps.GoogleAuth.OAuthLogin).Methods("GET")
	r.HandleFunc("/api/integrations/google/auth/logout", deps.GoogleAuth.OAuthLogout).Methods("DELETE")
	r.HandleFunc("/api/integrations/google/auth/callback", deps.GoogleAuth.OAuthCallback).Methods("GET")
	r.HandleFunc("/api/export/sheets", deps.SheetsHandler.Export).Methods("POST")
}
