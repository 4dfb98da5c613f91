package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/barterup-bff/internal/models"
	"github.com/sbilibin2017/barterup-bff/internal/validation"
)

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

// ProfileReader defines the interface for loading the caller's profile.
type ProfileReader interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.ProfileOut, error)
}

// ProfileUpdater defines the interface for editing the caller's profile.
type ProfileUpdater interface {
	Update(ctx context.Context, userID uuid.UUID, f models.ProfileFields) (*models.ProfileOut, error)
}

// NewGetProfileHandler returns the caller's profile, or null data when none exists.
// @Summary Get profile
// @Tags profile
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.ProfileOut} "Profile or null"
// @Failure 401 {object} models.APIResponse "Invalid token"
// @Failure 500 {object} models.APIResponse "Failed to retrieve profile"
// @Router /api/profile [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		profile, err := svc.Get(r.Context(), userID)
		if err != nil {
			requestLog(r).Errorw("failed to get profile", "userID", userID, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to retrieve profile")
			return
		}

		if profile == nil {
			writeSuccess(w, http.StatusOK, "No profile found", nil)
			return
		}
		writeSuccess(w, http.StatusOK, "Profile retrieved successfully", profile)
	}
}

// NewUpdateProfileHandler replaces the editable fields of the caller's profile.
// @Summary Update profile
// @Description Accepts YYYY-MM-DD, DD/MM/YYYY or MM/DD/YYYY birth dates. An empty date clears it.
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body models.ProfileFields true "Profile fields"
// @Success 200 {object} models.APIResponse{data=models.ProfileOut}
// @Failure 400 {object} models.APIResponse "Validation error"
// @Failure 401 {object} models.APIResponse "Invalid token"
// @Failure 500 {object} models.APIResponse "Failed to update profile"
// @Router /api/profile [put]
// @Security BearerAuth
func NewUpdateProfileHandler(svc ProfileUpdater, v BodyValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req models.ProfileFields
		if !decodeBody(w, r, v, validation.SchemaProfileUpdate, &req) {
			return
		}

		profile, err := svc.Update(r.Context(), userID, req)
		if err != nil {
			if writeValidationError(w, err) {
				return
			}
			requestLog(r).Errorw("failed to update profile", "userID", userID, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to update profile")
			return
		}

		writeSuccess(w, http.StatusOK, "Profile updated successfully", profile)
	}
}

// RegisterProfileHandlers registers routes for reading and editing the profile
func RegisterProfileHandlers(r chi.Router, get, update http.HandlerFunc) {
	r.Get("/api/profile", get)
	r.Put("/api/profile", update)
}
