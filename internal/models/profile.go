package models

import "github.com/google/uuid"

// DefaultRole is written on every profile upsert.
const DefaultRole = "user"

// ProfileRecord is a row of the profiles table as returned by the BaaS REST API.
type ProfileRecord struct {
	ID                uuid.UUID `json:"id"`
	DateOfBirth       *string   `json:"date_of_birth"`
	PrimarySkill      *string   `json:"primary_skill"`
	SkillToLearn      *string   `json:"skill_to_learn"`
	Bio               *string   `json:"bio"`
	ProfilePictureURL *string   `json:"profile_picture_url"`
	FullName          *string   `json:"full_name"`
	Role              *string   `json:"role"`
	CreatedAt         *string   `json:"created_at,omitempty"`
	UpdatedAt         *string   `json:"updated_at,omitempty"`
}

// Out converts the row into its client-facing shape.
func (p *ProfileRecord) Out() *ProfileOut {
	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}
	return &ProfileOut{
		ID:                p.ID,
		UserID:            p.ID,
		DateOfBirth:       deref(p.DateOfBirth),
		PrimarySkill:      deref(p.PrimarySkill),
		SkillToLearn:      deref(p.SkillToLearn),
		Bio:               deref(p.Bio),
		ProfilePictureURL: p.ProfilePictureURL,
	}
}

// ProfileUpsert is the body sent to create or replace a profile row.
// A nil DateOfBirth is stored as null. An empty Role is left out so the
// stored role survives updates.
type ProfileUpsert struct {
	ID           uuid.UUID `json:"id"`
	DateOfBirth  *string   `json:"date_of_birth"`
	PrimarySkill string    `json:"primary_skill"`
	SkillToLearn string    `json:"skill_to_learn"`
	Bio          string    `json:"bio"`
	Role         string    `json:"role,omitempty"`
}

// ProfileOut is the profile as returned to clients
// swagger:model ProfileOut
type ProfileOut struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	// example: 1990-06-15
	DateOfBirth string `json:"date_of_birth"`
	// example: Music
	PrimarySkill string `json:"primary_skill"`
	// example: Cooking
	SkillToLearn string `json:"skill_to_learn"`
	// example: I play guitar and want to learn to bake bread.
	Bio               string  `json:"bio"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}

// ProfileFields are the user-editable profile attributes
// swagger:model ProfileFields
type ProfileFields struct {
	// example: 15/06/1990
	DateOfBirth string `json:"date_of_birth"`
	// example: Music
	PrimarySkill string `json:"primary_skill"`
	// example: Cooking
	SkillToLearn string `json:"skill_to_learn"`
	// example: I play guitar and want to learn to bake bread.
	Bio string `json:"bio"`
}

// CompleteProfileRequest represents the JSON body for profile completion
// swagger:model CompleteProfileRequest
type CompleteProfileRequest struct {
	// required: true
	// example: jane@example.com
	Email string `json:"email"`
	// required: true
	// example: secret123
	Password string        `json:"password"`
	Profile  ProfileFields `json:"profile"`
}

// CompleteProfileResponse is the payload of a successful profile completion
// swagger:model CompleteProfileResponse
type CompleteProfileResponse struct {
	Session  Session    `json:"session"`
	Profile  ProfileOut `json:"profile"`
	Message  string     `json:"message"`
	NextStep string     `json:"next_step"`
}
