package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/barterup-bff/internal/logger"
	"github.com/sbilibin2017/barterup-bff/internal/models"
	"github.com/sbilibin2017/barterup-bff/internal/validation"
)

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=services

var (
	// ErrPictureStorage is returned when a picture cannot be written to disk.
	ErrPictureStorage = errors.New("failed to store profile picture")
	// ErrPictureRecord is returned when the picture URL cannot be saved on the profile.
	ErrPictureRecord = errors.New("failed to save profile picture information")
)

// PicturePathPrefix is the public URL prefix of stored pictures.
const PicturePathPrefix = "/api/uploads/profile_pictures/"

var pictureExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}

// ProfileStore is the profiles table.
type ProfileStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.ProfileRecord, error)
	Upsert(ctx context.Context, p models.ProfileUpsert) (*models.ProfileRecord, error)
	UpdatePicture(ctx context.Context, id uuid.UUID, pictureURL *string) error
}

// ProfileCache caches profile rows.
type ProfileCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.ProfileRecord, error)
	Set(ctx context.Context, p *models.ProfileRecord) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PictureStorage persists picture bytes.
type PictureStorage interface {
	Save(name string, data []byte) error
	Remove(name string) error
}

// ProfileService handles profile reads, updates and pictures.
type ProfileService struct {
	store    ProfileStore
	cache    ProfileCache
	pictures PictureStorage
	events   EventPublisher
	now      func() time.Time
}

// NewProfileService creates a new ProfileService. cache may be nil.
func NewProfileService(store ProfileStore, cache ProfileCache, pictures PictureStorage, events EventPublisher) *ProfileService {
	return &ProfileService{
		store:    store,
		cache:    cache,
		pictures: pictures,
		events:   events,
		now:      time.Now,
	}
}

// Get returns the user's profile, or nil when none exists.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*models.ProfileOut, error) {
	if s.cache != nil {
		if p, err := s.cache.Get(ctx, userID); err == nil {
			return p.Out(), nil
		}
	}

	p, err := s.store.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrProfileLookup, err)
	}
	if p == nil {
		return nil, nil
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, p); err != nil {
			logger.Log.Warnw("failed to cache profile", "user_id", userID, "error", err)
		}
	}
	return p.Out(), nil
}

// Save upserts a profile row and drops any cached copy.
func (s *ProfileService) Save(ctx context.Context, p models.ProfileUpsert) (*models.ProfileOut, error) {
	saved, err := s.store.Upsert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProfileSave, err)
	}
	s.invalidate(ctx, p.ID)
	return saved.Out(), nil
}

// Update validates and replaces the editable fields of a profile. An empty
// date of birth is stored as null.
func (s *ProfileService) Update(ctx context.Context, userID uuid.UUID, f models.ProfileFields) (*models.ProfileOut, error) {
	primary := strings.TrimSpace(f.PrimarySkill)
	toLearn := strings.TrimSpace(f.SkillToLearn)
	bio := strings.TrimSpace(f.Bio)

	if primary == "" {
		return nil, validation.Errorf("Primary skill is required")
	}
	if toLearn == "" {
		return nil, validation.Errorf("Skill to learn is required")
	}

	var (
		dob *time.Time
		iso *string
	)
	if strings.TrimSpace(f.DateOfBirth) != "" {
		d, err := validation.ParseDate(f.DateOfBirth, validation.LayoutISO, validation.LayoutDMY, validation.LayoutMDY)
		if err != nil {
			return nil, validation.Errorf(fmt.Sprintf("Invalid date format: '%s'. Use YYYY-MM-DD", f.DateOfBirth))
		}
		formatted := d.Format(validation.StorageDateLayout)
		dob, iso = &d, &formatted
	}

	if err := validation.Profile(dob, primary, toLearn, bio, s.now()); err != nil {
		return nil, err
	}

	out, err := s.Save(ctx, models.ProfileUpsert{
		ID:           userID,
		DateOfBirth:  iso,
		PrimarySkill: primary,
		SkillToLearn: toLearn,
		Bio:          bio,
	})
	if err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", userID, "error", err)
		return nil, err
	}

	s.events.Publish(ctx, models.EventProfileUpdated, userID, out)
	return out, nil
}

// UploadPicture decodes and stores a picture, then records its public URL
// on the profile. The file is removed again if the profile update fails.
func (s *ProfileService) UploadPicture(ctx context.Context, userID uuid.UUID, req models.UploadPictureRequest) (string, error) {
	ext, ok := pictureExtensions[req.ContentType]
	if !ok {
		return "", validation.Errorf("Invalid file type. Only JPEG, PNG, GIF, and WEBP are allowed.")
	}

	data := req.ImageData
	if strings.Contains(data, ",") {
		data = strings.Split(data, ",")[1]
	}

	img, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		logger.Log.Warnw("invalid picture payload", "user_id", userID, "error", err)
		return "", validation.Errorf("Invalid base64 image data")
	}

	name := fmt.Sprintf("%s_profile.%s", userID, ext)
	if err := s.pictures.Save(name, img); err != nil {
		logger.Log.Errorw("failed to save profile picture", "user_id", userID, "error", err)
		return "", fmt.Errorf("%w: %v", ErrPictureStorage, err)
	}

	publicURL := PicturePathPrefix + name
	if err := s.store.UpdatePicture(ctx, userID, &publicURL); err != nil {
		logger.Log.Errorw("failed to record profile picture", "user_id", userID, "error", err)
		if rmErr := s.pictures.Remove(name); rmErr != nil {
			logger.Log.Errorw("failed to remove orphaned picture", "name", name, "error", rmErr)
		}
		return "", fmt.Errorf("%w: %v", ErrPictureRecord, err)
	}

	s.invalidate(ctx, userID)
	s.events.Publish(ctx, models.EventProfilePictureUpdated, userID, map[string]string{"profile_picture_url": publicURL})
	return publicURL, nil
}

func (s *ProfileService) invalidate(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, userID); err != nil {
		logger.Log.Warnw("failed to invalidate cached profile", "user_id", userID, "error", err)
	}
}
