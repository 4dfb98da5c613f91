package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/barterup-bff/internal/models"
	"github.com/sbilibin2017/barterup-bff/internal/services"
	"github.com/sbilibin2017/barterup-bff/internal/validation"
)

//go:generate mockgen -source=signup.go -destination=signup_mock.go -package=handlers

// Signuper defines the interface that the signup service must implement.
type Signuper interface {
	Signup(ctx context.Context, email, password string) (uuid.UUID, error)
}

// NewSignupHandler returns an HTTP handler for account creation.
// @Summary Create account
// @Description Creates a remote account. The profile is completed in a separate step.
// @Tags auth
// @Accept json
// @Produce json
// @Param signupRequest body models.SignupRequest true "Signup Request"
// @Success 201 {object} models.APIResponse{data=models.SignupResponse} "Account created"
// @Failure 400 {object} models.APIResponse "Invalid input or account already exists"
// @Router /auth/signup [post]
func NewSignupHandler(svc Signuper, v BodyValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.SignupRequest
		if !decodeBody(w, r, v, validation.SchemaSignup, &req) {
			return
		}

		userID, err := svc.Signup(r.Context(), req.Email, req.Password)
		if err != nil {
			if writeValidationError(w, err) {
				return
			}
			msg := "Failed to create account. Please try again."
			if errors.Is(err, services.ErrEmailTaken) {
				msg = "Email already exists. Please login instead."
			}
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		writeSuccess(w, http.StatusCreated, "Account created", models.SignupResponse{
			UserID:   userID,
			Message:  "Account created successfully. Please complete your profile to continue.",
			NextStep: models.NextStepCompleteProfile,
		})
	}
}

// RegisterSignupHandler registers routes for account creation
func RegisterSignupHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/auth/signup", h)
}
