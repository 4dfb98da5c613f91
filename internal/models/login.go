package models

import "github.com/google/uuid"

// Next step hints returned to the client.
const (
	NextStepCompleteProfile = "complete_profile"
	NextStepUploadProfile   = "upload_profile"
	NextStepDashboard       = "dashboard"
)

// SignupRequest represents the JSON body for account creation
// swagger:model SignupRequest
type SignupRequest struct {
	// required: true
	// example: jane@example.com
	Email string `json:"email"`

	// required: true
	// example: secret123
	Password string `json:"password"`

	// Accepted for compatibility, not forwarded
	// example: jane
	Username *string `json:"username,omitempty"`
}

// SignupResponse is the payload of a successful signup
// swagger:model SignupResponse
type SignupResponse struct {
	UserID uuid.UUID `json:"user_id"`
	// example: Account created successfully. Please complete your profile to continue.
	Message string `json:"message"`
	// example: complete_profile
	NextStep string `json:"next_step"`
}

// LoginRequest represents the JSON body for password login
// swagger:model LoginRequest
type LoginRequest struct {
	// required: true
	// example: jane@example.com
	Email string `json:"email"`

	// required: true
	// example: secret123
	Password string `json:"password"`
}

// LoginResponse is the payload of a successful login. Profile is omitted
// when the user still has to complete it.
// swagger:model LoginResponse
type LoginResponse struct {
	Session  Session     `json:"session"`
	Profile  *ProfileOut `json:"profile,omitempty"`
	Message  string      `json:"message"`
	NextStep string      `json:"next_step"`
}
