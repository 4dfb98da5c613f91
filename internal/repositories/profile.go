package repositories

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/sbilibin2017/barterup-bff/internal/facades"
	"github.com/sbilibin2017/barterup-bff/internal/logger"
	"github.com/sbilibin2017/barterup-bff/internal/models"
)

const profilesTable = "profiles"

// ProfileRepository is the single read/write abstraction over the profiles table.
type ProfileRepository struct {
	client *facades.SupabaseClient
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(client *facades.SupabaseClient) *ProfileRepository {
	return &ProfileRepository{client: client}
}

func eq(id uuid.UUID) string {
	return "eq." + id.String()
}

// Upsert creates or replaces the profile row keyed by p.ID and returns the stored row.
func (r *ProfileRepository) Upsert(ctx context.Context, p models.ProfileUpsert) (*models.ProfileRecord, error) {
	resp, err := r.client.Do(ctx, facades.Request{
		Method: http.MethodPost,
		URL:    r.client.RestURL(profilesTable),
		Body:   p,
		Key:    facades.KeyService,
		Prefer: "resolution=merge-duplicates,return=representation",
	})
	logger.Log.Infow("profile upsert", "user_id", p.ID, "error", err)
	if err != nil {
		return nil, err
	}

	var rows []models.ProfileRecord
	if err := resp.Decode(&rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("profile upsert for %s returned no rows", p.ID)
	}
	return &rows[0], nil
}

// GetByID returns the profile row, or nil when the user has none.
func (r *ProfileRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ProfileRecord, error) {
	resp, err := r.client.Do(ctx, facades.Request{
		Method: http.MethodGet,
		URL:    r.client.RestURL(profilesTable),
		Query:  url.Values{"id": {eq(id)}, "select": {"*"}},
		Key:    facades.KeyService,
	})
	if err != nil {
		logger.Log.Errorw("failed to fetch profile", "user_id", id, "error", err)
		return nil, err
	}

	var rows []models.ProfileRecord
	if err := resp.Decode(&rows); err != nil {
		return nil, err
	}

	logger.Log.Infow("profile fetch", "user_id", id, "found", len(rows) > 0)
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// GetRole returns the role column, or "" when the row or the role is missing.
func (r *ProfileRepository) GetRole(ctx context.Context, id uuid.UUID) (string, error) {
	resp, err := r.client.Do(ctx, facades.Request{
		Method: http.MethodGet,
		URL:    r.client.RestURL(profilesTable),
		Query:  url.Values{"id": {eq(id)}, "select": {"role"}},
		Key:    facades.KeyService,
	})
	if err != nil {
		return "", err
	}

	var rows []struct {
		Role *string `json:"role"`
	}
	if err := resp.Decode(&rows); err != nil {
		return "", err
	}
	if len(rows) == 0 || rows[0].Role == nil {
		return "", nil
	}
	return *rows[0].Role, nil
}

// IsRoleUser reports whether the profile carries the default role.
func (r *ProfileRepository) IsRoleUser(ctx context.Context, id uuid.UUID) (bool, error) {
	role, err := r.GetRole(ctx, id)
	if err != nil {
		return false, err
	}
	return role == models.DefaultRole, nil
}

// UpdatePicture sets or clears the picture URL of a profile.
func (r *ProfileRepository) UpdatePicture(ctx context.Context, id uuid.UUID, pictureURL *string) error {
	_, err := r.client.Do(ctx, facades.Request{
		Method: http.MethodPatch,
		URL:    r.client.RestURL(profilesTable),
		Query:  url.Values{"id": {eq(id)}},
		Body:   map[string]*string{"profile_picture_url": pictureURL},
		Key:    facades.KeyService,
		Prefer: "return=minimal",
	})
	logger.Log.Infow("profile picture update", "user_id", id, "error", err)
	return err
}

// Delete removes the profile row and reports whether one existed.
func (r *ProfileRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	resp, err := r.client.Do(ctx, facades.Request{
		Method: http.MethodDelete,
		URL:    r.client.RestURL(profilesTable),
		Query:  url.Values{"id": {eq(id)}},
		Key:    facades.KeyService,
		Prefer: "return=representation",
	})
	if err != nil {
		return false, err
	}

	var rows []models.ProfileRecord
	if err := resp.Decode(&rows); err != nil {
		return false, err
	}
	return len(rows) > 0, nil
}
