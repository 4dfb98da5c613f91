package handlers

import (
	"io"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sbilibin2017/barterup-bff/internal/logger"
	"github.com/sbilibin2017/barterup-bff/internal/middlewares"
	"github.com/sbilibin2017/barterup-bff/internal/models"
	"github.com/sbilibin2017/barterup-bff/internal/validation"
	"go.uber.org/zap"
)

//go:generate mockgen -source=response.go -destination=response_mock.go -package=handlers

// BodyValidator checks a raw request body against a named schema.
type BodyValidator interface {
	Validate(schemaID string, body []byte) error
}

const maxBodyBytes = 10 << 20

// ErrorResponse is an error body without the data field
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: error
	Status string `json:"status"`
	// example: Profile picture not found
	Message string `json:"message"`
}

// requestLog returns the logger tagged with the request id set by the logging middleware.
func requestLog(r *http.Request) *zap.SugaredLogger {
	return logger.Log.With("request_id", middlewares.RequestIDFromContext(r.Context()))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, models.Success(message, data))
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.Failure(message))
}

// writeValidationError answers 400 with the message of a validation error
// and reports whether err was one.
func writeValidationError(w http.ResponseWriter, err error) bool {
	msg, ok := validation.Message(err)
	if !ok {
		return false
	}
	writeError(w, http.StatusBadRequest, msg)
	return true
}

// decodeBody reads the body, checks it against schemaID and decodes it into dst.
// On failure the 400 response has already been written.
func decodeBody(w http.ResponseWriter, r *http.Request, v BodyValidator, schemaID string, dst any) bool {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		requestLog(r).Warnw("failed to read request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}

	if err := v.Validate(schemaID, body); err != nil {
		if !writeValidationError(w, err) {
			requestLog(r).Errorw("request body validation failed", "schema", schemaID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// currentUser returns the authenticated user id, answering 401 when absent.
func currentUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid token")
	}
	return userID, ok
}
