package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/sbilibin2017/barterup-bff/internal/middlewares"
	"github.com/sbilibin2017/barterup-bff/internal/models"
	"github.com/sbilibin2017/barterup-bff/internal/validation"
)

//go:generate mockgen -source=posts.go -destination=posts_mock.go -package=handlers

// PostCreator defines the interface for publishing a post.
type PostCreator interface {
	Create(ctx context.Context, userID uuid.UUID, content string, imageURL *string) (*models.Post, error)
}

// PostLister defines the interface for reading the feed.
type PostLister interface {
	List(ctx context.Context, viewer uuid.UUID) (*models.PostFeed, error)
	ListByUser(ctx context.Context, owner, viewer uuid.UUID) ([]models.EnhancedPost, error)
}

// NewCreatePostHandler publishes a post of the caller.
// @Summary Create post
// @Tags posts
// @Accept json
// @Produce json
// @Param post body models.CreatePostRequest true "Post"
// @Success 200 {object} models.APIResponse{data=models.Post}
// @Failure 400 {object} models.APIResponse "Validation error"
// @Failure 401 {object} models.APIResponse "Invalid token"
// @Failure 500 {object} models.APIResponse "Failed to create post"
// @Router /api/posts [post]
// @Security BearerAuth
func NewCreatePostHandler(svc PostCreator, v BodyValidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req models.CreatePostRequest
		if !decodeBody(w, r, v, validation.SchemaPostCreate, &req) {
			return
		}

		post, err := svc.Create(r.Context(), userID, req.Content, req.ImageURL)
		if err != nil {
			if writeValidationError(w, err) {
				return
			}
			requestLog(r).Errorw("failed to create post", "userID", userID, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to create post")
			return
		}

		writeSuccess(w, http.StatusOK, "Post created successfully", post)
	}
}

// NewListPostsHandler returns the newest posts with author details. A bearer
// token is optional and only marks the caller's own posts.
// @Summary List posts
// @Tags posts
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]models.EnhancedPost}
// @Failure 500 {object} models.APIResponse "Failed to retrieve posts"
// @Router /api/posts [get]
func NewListPostsHandler(svc PostLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		viewer, _ := middlewares.UserIDFromContext(r.Context())

		feed, err := svc.List(r.Context(), viewer)
		if err != nil {
			requestLog(r).Errorw("failed to list posts", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to retrieve posts")
			return
		}

		msg := "Posts retrieved successfully"
		if feed.Tier == models.TierDegraded {
			msg = "Posts retrieved successfully (basic mode)"
		}
		writeSuccess(w, http.StatusOK, msg, feed.Posts)
	}
}

// NewListUserPostsHandler returns the posts of one user.
// @Summary List posts of a user
// @Tags posts
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.APIResponse{data=[]models.EnhancedPost}
// @Failure 400 {object} models.APIResponse "Invalid user id"
// @Failure 500 {object} models.APIResponse "Failed to retrieve posts"
// @Router /api/users/{id}/posts [get]
func NewListUserPostsHandler(svc PostLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid user id")
			return
		}
		viewer, _ := middlewares.UserIDFromContext(r.Context())

		posts, err := svc.ListByUser(r.Context(), owner, viewer)
		if err != nil {
			requestLog(r).Errorw("failed to list user posts", "owner", owner, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to retrieve posts")
			return
		}

		writeSuccess(w, http.StatusOK, "Posts retrieved successfully", posts)
	}
}

// RegisterCreatePostHandler registers the authenticated post routes
func RegisterCreatePostHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/api/posts", h)
	r.Post("/posts", h)
}

// RegisterListPostsHandlers registers the public post routes. Listings are
// compressed when the client accepts it.
func RegisterListPostsHandlers(r chi.Router, list, byUser http.HandlerFunc) {
	compressed := handlers.CompressHandler(list)
	r.Method(http.MethodGet, "/api/posts", compressed)
	r.Method(http.MethodGet, "/posts", compressed)
	r.Method(http.MethodGet, "/api/users/{id}/posts", handlers.CompressHandler(byUser))
}
