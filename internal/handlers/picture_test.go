package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/barterup-bff/internal/models"
	"github.com/sbilibin2017/barterup-bff/internal/repositories"
	"github.com/sbilibin2017/barterup-bff/internal/services"
	"github.com/sbilibin2017/barterup-bff/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadPictureHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPictureUploader(ctrl)
	userID := uuid.New()
	body := models.UploadPictureRequest{ImageData: "iVBORw0KGgo=", FileName: "me.png", ContentType: "image/png"}
	pictureURL := fmt.Sprintf("%s%s_profile.png", services.PicturePathPrefix, userID)

	tests := []struct {
		name            string
		inputBody       any
		mockSetup       func()
		expectedCode    int
		expectedMessage string
	}{
		{
			name:      "success",
			inputBody: body,
			mockSetup: func() {
				mockSvc.EXPECT().UploadPicture(gomock.Any(), userID, body).Return(pictureURL, nil)
			},
			expectedCode:    http.StatusOK,
			expectedMessage: "Profile picture uploaded",
		},
		{
			name:         "missing content type",
			inputBody:    map[string]string{"image_data": "abc"},
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:      "unsupported type",
			inputBody: body,
			mockSetup: func() {
				mockSvc.EXPECT().UploadPicture(gomock.Any(), userID, body).
					Return("", validation.Errorf("Invalid file type. Only JPEG, PNG, GIF, and WEBP are allowed."))
			},
			expectedCode:    http.StatusBadRequest,
			expectedMessage: "Invalid file type. Only JPEG, PNG, GIF, and WEBP are allowed.",
		},
		{
			name:      "storage failure",
			inputBody: body,
			mockSetup: func() {
				mockSvc.EXPECT().UploadPicture(gomock.Any(), userID, body).
					Return("", fmt.Errorf("%w: disk full", services.ErrPictureStorage))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Failed to save profile picture",
		},
		{
			name:      "record failure",
			inputBody: body,
			mockSetup: func() {
				mockSvc.EXPECT().UploadPicture(gomock.Any(), userID, body).
					Return("", fmt.Errorf("%w: 401", services.ErrPictureRecord))
			},
			expectedCode:    http.StatusInternalServerError,
			expectedMessage: "Failed to save profile picture information",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			req := asUser(newJSONRequest(t, http.MethodPost, "/api/profile-picture/upload", tt.inputBody), userID)
			w := httptest.NewRecorder()

			NewUploadPictureHandler(mockSvc, bodyValidator).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			resp := decodeEnvelope(t, w)
			if tt.expectedMessage != "" {
				assert.Equal(t, tt.expectedMessage, resp.Message)
			}
			if tt.expectedCode == http.StatusOK {
				var data models.PictureResponse
				require.NoError(t, json.Unmarshal(resp.Data, &data))
				assert.Equal(t, pictureURL, data.ProfilePictureURL)
			}
		})
	}
}

func TestSkipPictureHandler(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := asUser(httptest.NewRequest(http.MethodPost, "/api/profile-picture/skip", nil), uuid.New())

		NewSkipPictureHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w)
		assert.Equal(t, "Profile setup completed", resp.Message)

		var data models.SkipPictureResponse
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, models.NextStepDashboard, data.NextStep)
	})

	t.Run("anonymous", func(t *testing.T) {
		w := httptest.NewRecorder()
		NewSkipPictureHandler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/profile-picture/skip", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestServePictureHandler(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "profile_pictures")
	store := repositories.NewPictureStore(dir)

	png := []byte{0x89, 'P', 'N', 'G', '\r', '\n'}
	require.NoError(t, store.Save("abc_profile.png", png))
	require.NoError(t, os.WriteFile(filepath.Join(root, "secret.txt"), []byte("top secret"), 0o600))

	r := chi.NewRouter()
	RegisterServePictureHandler(r, NewServePictureHandler(store))

	tests := []struct {
		name         string
		target       string
		expectedCode int
		expectedType string
		expectedBody []byte
	}{
		{"existing file", "/api/uploads/profile_pictures/abc_profile.png", http.StatusOK, "image/png", png},
		{"alias route", "/api/profile-picture/abc_profile.png", http.StatusOK, "image/png", png},
		{"missing file", "/api/uploads/profile_pictures/nope.png", http.StatusNotFound, "application/json", nil},
		{"encoded traversal", "/api/uploads/profile_pictures/..%2Fsecret.txt", http.StatusNotFound, "application/json", nil},
		{"deep traversal", "/api/uploads/profile_pictures/..%2F..%2Fetc%2Fpasswd", http.StatusNotFound, "application/json", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedType, w.Header().Get("Content-Type"))

			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, tt.expectedBody, w.Body.Bytes())
				return
			}
			var raw map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
			assert.Equal(t, map[string]any{"status": "error", "message": "Profile picture not found"}, raw)
		})
	}
}

func TestServePictureHandler_ReadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockPictureReader(ctrl)
	mockStore.EXPECT().Read("x.png").Return(nil, "", errors.New("permission denied"))

	r := chi.NewRouter()
	RegisterServePictureHandler(r, NewServePictureHandler(mockStore))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/uploads/profile_pictures/x.png", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
