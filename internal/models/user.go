package models

import "github.com/google/uuid"

// AuthUser is the user object embedded in BaaS auth responses.
type AuthUser struct {
	ID    uuid.UUID `json:"id"`    // Identifier shared with the profile row
	Email string    `json:"email"` // Login email
}

// Session is an opaque credential issued by the BaaS. Never persisted.
// swagger:model Session
type Session struct {
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken  string  `json:"access_token"`
	RefreshToken *string `json:"refresh_token"`
	ExpiresIn    *int64  `json:"expires_in"`
	// example: bearer
	TokenType *string `json:"token_type"`
}
