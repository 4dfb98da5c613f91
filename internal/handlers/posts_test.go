package handlers

import (
	"compress/gzip"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/barterup-bff/internal/models"
	"github.com/sbilibin2017/barterup-bff/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestCreatePostHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPostCreator(ctrl)
	userID := uuid.New()
	uid := userID.String()

	tests := []struct {
		name            string
		inputBody       any
		mockSetup       func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name:      "success",
			inputBody: models.CreatePostRequest{Content: "Swap guitar lessons for bread", ImageURL: strPtr("https://example.com/b.jpg")},
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), userID, "Swap guitar lessons for bread", strPtr("https://example.com/b.jpg")).
					Return(&models.Post{ID: "p1", UserID: &uid, Content: strPtr("Swap guitar lessons for bread")}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Post created successfully",
		},
		{
			name:      "null image",
			inputBody: `{"content":"hello there","image_url":null}`,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), userID, "hello there", nil).
					Return(&models.Post{ID: "p2"}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Post created successfully",
		},
		{
			name:         "content not a string",
			inputBody:    `{"content":42}`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "empty content",
			inputBody: models.CreatePostRequest{Content: " "},
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), userID, " ", nil).
					Return(nil, validation.Errorf("Post content is required"))
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Post content is required",
		},
		{
			name:      "store failure",
			inputBody: models.CreatePostRequest{Content: "hello there"},
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), userID, "hello there", nil).
					Return(nil, errors.New("500"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Failed to create post",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := asUser(newJSONRequest(t, http.MethodPost, "/api/posts", tt.inputBody), userID)
			w := httptest.NewRecorder()

			NewCreatePostHandler(mockSvc, bodyValidator).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, decodeEnvelope(t, w).Message)
			}
		})
	}
}

func TestListPostsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPostLister(ctrl)
	viewer := uuid.New()

	posts := []models.EnhancedPost{{ID: "p1", AuthorName: "You", AuthorRole: "User", IsOwnPost: true}}

	tests := []struct {
		name            string
		authenticated   bool
		mockSetup       func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name:          "joined tier",
			authenticated: true,
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), viewer).
					Return(&models.PostFeed{Tier: models.TierJoined, Posts: posts}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Posts retrieved successfully",
		},
		{
			name: "degraded tier anonymous",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), uuid.Nil).
					Return(&models.PostFeed{Tier: models.TierDegraded, Posts: posts}, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Posts retrieved successfully (basic mode)",
		},
		{
			name: "failure",
			mockSetup: func() {
				mockSvc.EXPECT().List(gomock.Any(), uuid.Nil).Return(nil, errors.New("all tiers failed"))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Failed to retrieve posts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
			if tt.authenticated {
				req = asUser(req, viewer)
			}
			w := httptest.NewRecorder()

			NewListPostsHandler(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			resp := decodeEnvelope(t, w)
			assert.Equal(t, tt.expectedMessage, resp.Message)

			if tt.expectedCode == http.StatusOK {
				var data []models.EnhancedPost
				require.NoError(t, json.Unmarshal(resp.Data, &data))
				assert.Equal(t, posts, data)
			}
		})
	}
}

func TestListPostsHandler_Compressed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPostLister(ctrl)
	mockSvc.EXPECT().List(gomock.Any(), uuid.Nil).
		Return(&models.PostFeed{Tier: models.TierJoined, Posts: []models.EnhancedPost{}}, nil)

	r := chi.NewRouter()
	RegisterListPostsHandlers(r, NewListPostsHandler(mockSvc), NewListUserPostsHandler(mockSvc))

	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)

	var resp envelope
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "Posts retrieved successfully", resp.Message)
	assert.JSONEq(t, "[]", string(resp.Data))
}

func TestListUserPostsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPostLister(ctrl)
	owner := uuid.New()

	r := chi.NewRouter()
	RegisterListPostsHandlers(r, NewListPostsHandler(mockSvc), NewListUserPostsHandler(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.EXPECT().ListByUser(gomock.Any(), owner, uuid.Nil).
			Return([]models.EnhancedPost{{ID: "p1", UserID: owner.String()}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/"+owner.String()+"/posts", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Posts retrieved successfully", decodeEnvelope(t, w).Message)
	})

	t.Run("bad id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/not-a-uuid/posts", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid user id", decodeEnvelope(t, w).Message)
	})

	t.Run("failure", func(t *testing.T) {
		mockSvc.EXPECT().ListByUser(gomock.Any(), owner, uuid.Nil).Return(nil, errors.New("timeout"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/users/"+owner.String()+"/posts", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
