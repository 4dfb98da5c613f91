package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/barterup-bff/internal/models"
)

//go:generate mockgen -source=diagnostics.go -destination=diagnostics_mock.go -package=handlers

// SupabasePinger performs a raw request against the BaaS.
type SupabasePinger interface {
	Ping(ctx context.Context) (int, string, error)
}

// DatabasePinger checks the database pool.
type DatabasePinger interface {
	Ping(ctx context.Context) error
}

// NewSupabaseTestHandler passes a raw BaaS response through for debugging.
// @Summary BaaS connectivity check
// @Tags diagnostics
// @Produce json
// @Success 200 {object} models.SupabaseStatus
// @Failure 500 {object} handlers.ErrorResponse "Supabase connection failed"
// @Router /test/supabase [get]
func NewSupabaseTestHandler(client SupabasePinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, body, err := client.Ping(r.Context())
		if err != nil {
			requestLog(r).Errorw("supabase connection failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{
				Status:  models.StatusError,
				Message: "Supabase connection failed: " + err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusOK, models.SupabaseStatus{
			Status:         models.StatusSuccess,
			SupabaseStatus: status,
			Body:           body,
		})
	}
}

// NewDatabaseTestHandler pings the database pool.
// @Summary Database connectivity check
// @Tags diagnostics
// @Produce json
// @Success 200 {object} models.APIResponse
// @Failure 503 {object} models.APIResponse "Database unavailable"
// @Router /test/database [get]
func NewDatabaseTestHandler(db DatabasePinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(r.Context()); err != nil {
			requestLog(r).Errorw("database ping failed", "error", err)
			writeError(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		writeSuccess(w, http.StatusOK, "Database reachable", nil)
	}
}

// RegisterDiagnosticsHandlers registers the debug routes
func RegisterDiagnosticsHandlers(r chi.Router, supabase, database http.HandlerFunc) {
	r.Get("/test/supabase", supabase)
	r.Get("/test/database", database)
}
