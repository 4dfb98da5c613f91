package facades

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupabaseClient_URLs(t *testing.T) {
	c := NewSupabaseClient(" https://abc.supabase.co/ ", "anon", "service", nil)

	assert.Equal(t, "https://abc.supabase.co/auth/v1/signup", c.AuthURL("signup"))
	assert.Equal(t, "https://abc.supabase.co/auth/v1/token", c.AuthURL("/token"))
	assert.Equal(t, "https://abc.supabase.co/rest/v1/profiles", c.RestURL("profiles"))
}

func TestSupabaseClient_Do_Headers(t *testing.T) {
	tests := []struct {
		name       string
		key        KeyKind
		wantAPIKey string
		wantAuth   string
	}{
		{"anon", KeyAnon, "anon-key", ""},
		{"service", KeyService, "service-key", "Bearer service-key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.wantAPIKey, r.Header.Get("apikey"))
				assert.Equal(t, tt.wantAuth, r.Header.Get("Authorization"))
				assert.Equal(t, "return=minimal", r.Header.Get("Prefer"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
				assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
				assert.Equal(t, "eq.42", r.URL.Query().Get("id"))

				body, _ := io.ReadAll(r.Body)
				assert.JSONEq(t, `{"a":1}`, string(body))
				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			c := NewSupabaseClient(srv.URL, "anon-key", "service-key", srv.Client())
			resp, err := c.Do(context.Background(), Request{
				Method: http.MethodPatch,
				URL:    c.RestURL("profiles"),
				Query:  url.Values{"id": {"eq.42"}},
				Body:   map[string]int{"a": 1},
				Key:    tt.key,
				Prefer: "return=minimal",
			})
			require.NoError(t, err)
			assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		})
	}
}

func TestSupabaseClient_Do_UpstreamError(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{"msg field", `{"msg":"User already registered"}`, "User already registered"},
		{"message field", `{"message":"relation does not exist"}`, "relation does not exist"},
		{"error_description field", `{"error":"invalid_grant","error_description":"Invalid login credentials"}`, "Invalid login credentials"},
		{"plain text", `bad gateway`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewSupabaseClient(srv.URL, "anon", "service", srv.Client())
			_, err := c.Do(context.Background(), Request{Method: http.MethodGet, URL: c.RestURL("posts")})

			var upErr *UpstreamError
			require.True(t, errors.As(err, &upErr))
			assert.Equal(t, http.StatusBadRequest, upErr.StatusCode)
			assert.Equal(t, tt.wantMessage, upErr.Message)
			assert.Equal(t, tt.body, upErr.Body)
		})
	}
}

func TestSupabaseClient_Do_QueryOnURLWithQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		assert.Equal(t, "1", r.URL.Query().Get("x"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewSupabaseClient(srv.URL, "anon", "service", srv.Client())
	_, err := c.Do(context.Background(), Request{
		Method: http.MethodGet,
		URL:    c.AuthURL("token?grant_type=password"),
		Query:  url.Values{"x": {"1"}},
	})
	assert.NoError(t, err)
}

func TestSupabaseClient_Do_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	c := NewSupabaseClient(srv.URL, "anon", "service", nil)
	_, err := c.Do(context.Background(), Request{Method: http.MethodGet, URL: c.RestURL("posts")})
	assert.Error(t, err)

	var upErr *UpstreamError
	assert.False(t, errors.As(err, &upErr))
}

func TestSupabaseClient_Ping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/profiles", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid API key"}`))
	}))
	defer srv.Close()

	c := NewSupabaseClient(srv.URL, "anon", "service", srv.Client())
	status, body, err := c.Ping(context.Background())

	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, `{"message":"Invalid API key"}`, body)
}
