package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/barterup-bff/internal/models"
	"github.com/sbilibin2017/barterup-bff/internal/services"
	"github.com/sbilibin2017/barterup-bff/internal/validation"
)

//go:generate mockgen -source=login.go -destination=login_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*services.LoginResult, error)
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticates with the identity provider and tells the client whether the profile still has to be completed
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body models.LoginRequest true "Login Request"
// @Success 200 {object} models.APIResponse{data=models.LoginResponse} "Session returned"
// @Failure 400 {object} models.APIResponse "Invalid request body"
// @Failure 401 {object} models.APIResponse "Invalid email or password"
// @Failure 500 {object} models.APIResponse "Failed to verify account status"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer, v BodyValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if !decodeBody(w, r, v, validation.SchemaLogin, &req) {
			return
		}

		res, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid email or password")
			default:
				requestLog(r).Errorw("login failed", "err", err)
				writeError(w, http.StatusInternalServerError, "Failed to verify account status")
			}
			return
		}

		if res.Profile == nil {
			writeSuccess(w, http.StatusOK, "Profile required", models.LoginResponse{
				Session:  res.Session,
				Message:  "Please complete your profile to continue.",
				NextStep: models.NextStepCompleteProfile,
			})
			return
		}

		writeSuccess(w, http.StatusOK, "Login successful", models.LoginResponse{
			Session:  res.Session,
			Profile:  res.Profile,
			Message:  "Login successful! Welcome back.",
			NextStep: models.NextStepDashboard,
		})
	}
}

// RegisterLoginHandler registers routes for user login
func RegisterLoginHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/auth/login", h)
}
