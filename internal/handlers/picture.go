package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/barterup-bff/internal/models"
	"github.com/sbilibin2017/barterup-bff/internal/repositories"
	"github.com/sbilibin2017/barterup-bff/internal/services"
	"github.com/sbilibin2017/barterup-bff/internal/validation"
)

//go:generate mockgen -source=picture.go -destination=picture_mock.go -package=handlers

// PictureUploader defines the interface for storing a profile picture.
type PictureUploader interface {
	UploadPicture(ctx context.Context, userID uuid.UUID, req models.UploadPictureRequest) (string, error)
}

// PictureReader defines the interface for reading a stored picture.
type PictureReader interface {
	Read(name string) ([]byte, string, error)
}

// NewUploadPictureHandler stores a base64 encoded profile picture.
// @Summary Upload profile picture
// @Description Accepts JPEG, PNG, GIF and WEBP images, optionally as a data URL
// @Tags profile
// @Accept json
// @Produce json
// @Param picture body models.UploadPictureRequest true "Picture"
// @Success 200 {object} models.APIResponse{data=models.PictureResponse}
// @Failure 400 {object} models.APIResponse "Invalid file type or payload"
// @Failure 401 {object} models.APIResponse "Invalid token"
// @Failure 500 {object} models.APIResponse "Failed to save profile picture"
// @Router /api/profile-picture/upload [post]
// @Security BearerAuth
func NewUploadPictureHandler(svc PictureUploader, v BodyValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req models.UploadPictureRequest
		if !decodeBody(w, r, v, validation.SchemaPictureUpload, &req) {
			return
		}

		pictureURL, err := svc.UploadPicture(r.Context(), userID, req)
		if err != nil {
			if writeValidationError(w, err) {
				return
			}
			switch {
			case errors.Is(err, services.ErrPictureRecord):
				writeError(w, http.StatusInternalServerError, "Failed to save profile picture information")
			default:
				writeError(w, http.StatusInternalServerError, "Failed to save profile picture")
			}
			return
		}

		writeSuccess(w, http.StatusOK, "Profile picture uploaded", models.PictureResponse{
			ProfilePictureURL: pictureURL,
			Message:           "Profile picture uploaded successfully!",
		})
	}
}

// NewSkipPictureHandler acknowledges that the user skipped the picture step.
// @Summary Skip profile picture
// @Tags profile
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.SkipPictureResponse}
// @Failure 401 {object} models.APIResponse "Invalid token"
// @Router /api/profile-picture/skip [post]
// @Security BearerAuth
func NewSkipPictureHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := currentUser(w, r); !ok {
			return
		}

		writeSuccess(w, http.StatusOK, "Profile setup completed", models.SkipPictureResponse{
			Message:  "Profile picture skipped. You can add one later from your profile settings.",
			NextStep: models.NextStepDashboard,
		})
	}
}

// NewServePictureHandler serves a stored picture by file name. Only the base
// name of the requested path is looked up.
// @Summary Get profile picture
// @Tags profile
// @Produce octet-stream
// @Param filename path string true "File name"
// @Success 200 {file} binary
// @Failure 404 {object} handlers.ErrorResponse "Profile picture not found"
// @Router /api/uploads/profile_pictures/{filename} [get]
func NewServePictureHandler(store PictureReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "filename")
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}

		data, contentType, err := store.Read(name)
		if err != nil {
			if !errors.Is(err, repositories.ErrPictureNotFound) {
				requestLog(r).Errorw("failed to read profile picture", "name", name, "error", err)
			}
			writeJSON(w, http.StatusNotFound, ErrorResponse{
				Status:  models.StatusError,
				Message: "Profile picture not found",
			})
			return
		}

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

// RegisterPictureHandlers registers the authenticated picture routes
func RegisterPictureHandlers(r chi.Router, upload, skip http.HandlerFunc) {
	r.Post("/api/profile-picture/upload", upload)
	r.Post("/api/profile-picture/skip", skip)
}

// RegisterServePictureHandler registers the public picture file routes
func RegisterServePictureHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/api/uploads/profile_pictures/{filename}", h)
	r.Get("/api/profile-picture/{filename}", h)
}
