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

//go:generate mockgen -source=complete_profile.go -destination=complete_profile_mock.go -package=handlers

// ProfileCompleter defines the interface that the profile completion service must implement.
type ProfileCompleter interface {
	CompleteProfile(ctx context.Context, email, password string, f models.ProfileFields) (*models.Session, *models.ProfileOut, error)
}

// NewCompleteProfileHandler returns an HTTP handler that stores the first
// profile of a freshly created account and logs the user in.
// @Summary Complete profile
// @Description Re-authenticates with email and password, then creates the profile
// @Tags auth
// @Accept json
// @Produce json
// @Param completeProfileRequest body models.CompleteProfileRequest true "Complete Profile Request"
// @Success 201 {object} models.APIResponse{data=models.CompleteProfileResponse} "Profile completed"
// @Failure 400 {object} models.APIResponse "Validation error"
// @Failure 401 {object} models.APIResponse "Invalid credentials or account not activated"
// @Failure 500 {object} models.APIResponse "Failed to save profile"
// @Router /auth/complete-profile [post]
func NewCompleteProfileHandler(svc ProfileCompleter, v BodyValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CompleteProfileRequest
		if !decodeBody(w, r, v, validation.SchemaCompleteProfile, &req) {
			return
		}

		session, profile, err := svc.CompleteProfile(r.Context(), req.Email, req.Password, req.Profile)
		if err != nil {
			if writeValidationError(w, err) {
				return
			}
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				writeError(w, http.StatusUnauthorized, "Invalid credentials or account not activated")
			default:
				requestLog(r).Errorw("profile completion failed", "err", err)
				writeError(w, http.StatusInternalServerError, "Failed to save profile. Please try again.")
			}
			return
		}

		writeSuccess(w, http.StatusCreated, "Profile completed and logged in", models.CompleteProfileResponse{
			Session:  *session,
			Profile:  *profile,
			Message:  "Profile completed successfully! Now you can upload a profile picture.",
			NextStep: models.NextStepUploadProfile,
		})
	}
}

// RegisterCompleteProfileHandler registers routes for profile completion
func RegisterCompleteProfileHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/auth/complete-profile", h)
}
