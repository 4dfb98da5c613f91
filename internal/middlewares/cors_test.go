package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORSMiddleware(t *testing.T) {
	origins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}

	tests := []struct {
		name             string
		method           string
		origin           string
		requestMethod    string
		expectedStatus   int
		expectedOrigin   string
		expectNextCalled bool
	}{
		{
			name:             "SimpleRequestAllowedOrigin",
			method:           http.MethodGet,
			origin:           "http://localhost:3000",
			expectedStatus:   http.StatusTeapot,
			expectedOrigin:   "http://localhost:3000",
			expectNextCalled: true,
		},
		{
			name:             "SimpleRequestOtherOrigin",
			method:           http.MethodGet,
			origin:           "http://evil.example",
			expectedStatus:   http.StatusTeapot,
			expectNextCalled: true,
		},
		{
			name:           "PreflightAllowed",
			method:         http.MethodOptions,
			origin:         "http://127.0.0.1:3000",
			requestMethod:  http.MethodPut,
			expectedStatus: http.StatusOK,
			expectedOrigin: "http://127.0.0.1:3000",
		},
		{
			name:           "PreflightDisallowedMethod",
			method:         http.MethodOptions,
			origin:         "http://localhost:3000",
			requestMethod:  http.MethodPatch,
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "PreflightOtherOrigin",
			method:         http.MethodOptions,
			origin:         "http://evil.example",
			requestMethod:  http.MethodGet,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(tt.method, "/api/posts", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.requestMethod != "" {
				req.Header.Set("Access-Control-Request-Method", tt.requestMethod)
			}
			rr := httptest.NewRecorder()

			CORSMiddleware(origins)(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			assert.Equal(t, tt.expectedOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			if tt.expectedOrigin != "" {
				assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
			}
			if tt.name == "PreflightAllowed" {
				assert.Equal(t, "600", rr.Header().Get("Access-Control-Max-Age"))
			}
		})
	}
}
