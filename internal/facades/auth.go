package facades

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/sbilibin2017/barterup-bff/internal/logger"
	"github.com/sbilibin2017/barterup-bff/internal/models"
)

var (
	// ErrNoUserID is returned when an auth response carries no usable user id.
	ErrNoUserID = errors.New("supabase auth response has no user id")
	// ErrNoAccessToken is returned when a login response carries no token.
	ErrNoAccessToken = errors.New("supabase login response has no access token")
)

// AuthFacade wraps the BaaS auth endpoints.
type AuthFacade struct {
	client *SupabaseClient
}

// NewAuthFacade creates a new AuthFacade.
func NewAuthFacade(client *SupabaseClient) *AuthFacade {
	return &AuthFacade{client: client}
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp creates a remote auth user and returns its id.
func (f *AuthFacade) SignUp(ctx context.Context, email, password string) (uuid.UUID, error) {
	resp, err := f.client.Do(ctx, Request{
		Method: http.MethodPost,
		URL:    f.client.AuthURL("signup"),
		Body:   credentials{Email: email, Password: password},
		Key:    KeyAnon,
	})
	if err != nil {
		return uuid.Nil, err
	}

	var body struct {
		ID   *uuid.UUID       `json:"id"`
		User *models.AuthUser `json:"user"`
	}
	if err := resp.Decode(&body); err != nil {
		return uuid.Nil, err
	}

	switch {
	case body.User != nil && body.User.ID != uuid.Nil:
		return body.User.ID, nil
	case body.ID != nil && *body.ID != uuid.Nil:
		return *body.ID, nil
	}
	return uuid.Nil, ErrNoUserID
}

// SignInWithPassword exchanges credentials for a session. The user id is
// read from the embedded user object, not from the token.
func (f *AuthFacade) SignInWithPassword(ctx context.Context, email, password string) (*models.Session, uuid.UUID, error) {
	resp, err := f.client.Do(ctx, Request{
		Method: http.MethodPost,
		URL:    f.client.AuthURL("token"),
		Query:  url.Values{"grant_type": {"password"}},
		Body:   credentials{Email: email, Password: password},
		Key:    KeyAnon,
	})
	if err != nil {
		return nil, uuid.Nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, uuid.Nil, newUpstreamError(resp.StatusCode, resp.Body)
	}

	var body struct {
		models.Session
		User *models.AuthUser `json:"user"`
	}
	if err := resp.Decode(&body); err != nil {
		return nil, uuid.Nil, err
	}
	if body.User == nil || body.User.ID == uuid.Nil {
		logger.Log.Errorw("login response without user", "email", email)
		return nil, uuid.Nil, ErrNoUserID
	}
	if body.AccessToken == "" {
		return nil, uuid.Nil, ErrNoAccessToken
	}

	session := body.Session
	return &session, body.User.ID, nil
}
