package jwt

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const bearerPrefix = "Bearer "

// Error variables
var (
	ErrMissingHeader  = errors.New("authorization header missing")
	ErrInvalidHeader  = errors.New("invalid authorization header format")
	ErrMalformedToken = errors.New("malformed token")
	ErrMissingSubject = errors.New("sub not found in token")
	ErrInvalidSubject = errors.New("invalid sub format")
)

// Extractor recovers the user id from a BaaS-issued access token.
//
// With a secret the token is verified (HS256 signature and expiry). Without
// one only the payload segment is decoded and nothing is checked, so any
// well-formed token naming a valid sub is accepted.
type Extractor struct {
	SecretKey string // HS256 secret shared with the BaaS, empty for unverified mode
}

// New creates a new Extractor instance
func New(secretKey string) *Extractor {
	return &Extractor{SecretKey: strings.TrimSpace(secretKey)}
}

// Verified reports whether tokens are signature checked.
func (e *Extractor) Verified() bool {
	return e.SecretKey != ""
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (e *Extractor) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrMissingHeader
	}
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", ErrInvalidHeader
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	if token == "" {
		return "", ErrInvalidHeader
	}
	return token, nil
}

// GetUserID returns the token's sub claim as a user id.
func (e *Extractor) GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error) {
	if e.Verified() {
		return e.verifiedSubject(tokenString)
	}
	return unverifiedSubject(tokenString)
}

func (e *Extractor) verifiedSubject(tokenString string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(e.SecretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return uuid.Nil, err
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, err
	}
	if sub == "" {
		return uuid.Nil, ErrMissingSubject
	}
	return parseSubject(sub)
}

func unverifiedSubject(tokenString string) (uuid.UUID, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return uuid.Nil, ErrMalformedToken
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		payload, err = base64.StdEncoding.DecodeString(parts[1])
		if err != nil {
			return uuid.Nil, ErrMalformedToken
		}
	}

	var claims map[string]any
	if err := json.Unmarshal(payload, &claims); err != nil {
		return uuid.Nil, ErrMalformedToken
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, ErrMissingSubject
	}
	return parseSubject(sub)
}

func parseSubject(sub string) (uuid.UUID, error) {
	id, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, ErrInvalidSubject
	}
	return id, nil
}
