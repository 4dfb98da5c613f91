package middlewares

import (
	"net/http"

	"github.com/gorilla/handlers"
)

// CORSMaxAge is the preflight cache duration in seconds. gorilla/handlers
// caps it at 600.
const CORSMaxAge = 3600

// CORSMiddleware allows credentialed cross-origin requests from origins.
func CORSMiddleware(origins []string) func(http.Handler) http.Handler {
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type", "Accept", "X-Requested-With"}),
		handlers.AllowCredentials(),
		handlers.MaxAge(CORSMaxAge),
	)
}
