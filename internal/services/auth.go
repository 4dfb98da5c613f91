package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/barterup-bff/internal/logger"
	"github.com/sbilibin2017/barterup-bff/internal/models"
	"github.com/sbilibin2017/barterup-bff/internal/validation"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// Error variables
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrSignupFailed       = errors.New("failed to create account")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProfileLookup      = errors.New("failed to load profile")
	ErrProfileSave        = errors.New("failed to save profile")
)

const minPasswordLen = 6

// AuthProvider is the remote identity provider.
type AuthProvider interface {
	SignUp(ctx context.Context, email, password string) (uuid.UUID, error)
	SignInWithPassword(ctx context.Context, email, password string) (*models.Session, uuid.UUID, error)
}

// ProfileManager reads and writes profiles on behalf of the auth flows.
type ProfileManager interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.ProfileOut, error)
	Save(ctx context.Context, p models.ProfileUpsert) (*models.ProfileOut, error)
}

// LoginResult is the outcome of a password login. Profile is nil when the
// user has not completed it yet.
type LoginResult struct {
	Session models.Session
	UserID  uuid.UUID
	Profile *models.ProfileOut
}

// AuthService handles signup, login and profile completion.
type AuthService struct {
	auth     AuthProvider
	profiles ProfileManager
	events   EventPublisher
	now      func() time.Time
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(auth AuthProvider, profiles ProfileManager, events EventPublisher) *AuthService {
	return &AuthService{
		auth:     auth,
		profiles: profiles,
		events:   events,
		now:      time.Now,
	}
}

// Signup validates the credentials and creates a remote account. No profile
// row is created.
func (svc *AuthService) Signup(ctx context.Context, email, password string) (uuid.UUID, error) {
	email = validation.NormalizeEmail(email)

	if !validation.IsEmail(email) {
		return uuid.Nil, validation.Errorf("Invalid email format")
	}
	if len(password) < minPasswordLen {
		return uuid.Nil, validation.Errorf("Password must be at least 6 characters long")
	}

	userID, err := svc.auth.SignUp(ctx, email, password)
	if err != nil {
		logger.Log.Errorw("signup failed", "email", email, "err", err)
		if strings.Contains(err.Error(), "already registered") {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, fmt.Errorf("%w: %v", ErrSignupFailed, err)
	}

	svc.events.Publish(ctx, models.EventUserSignedUp, userID, nil)
	return userID, nil
}

// Login authenticates against the provider and looks up the user's profile.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	session, userID, err := svc.login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	profile, err := svc.profiles.Get(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to check user profile", "user_id", userID, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrProfileLookup, err)
	}

	return &LoginResult{Session: *session, UserID: userID, Profile: profile}, nil
}

// CompleteProfile validates the fields, re-authenticates with the given
// credentials and stores the profile under the authenticated user's id.
func (svc *AuthService) CompleteProfile(ctx context.Context, email, password string, f models.ProfileFields) (*models.Session, *models.ProfileOut, error) {
	dob, err := svc.validateCompletion(email, password, f)
	if err != nil {
		return nil, nil, err
	}

	session, userID, err := svc.login(ctx, email, password)
	if err != nil {
		return nil, nil, err
	}

	iso := dob.Format(validation.StorageDateLayout)
	profile, err := svc.profiles.Save(ctx, models.ProfileUpsert{
		ID:           userID,
		DateOfBirth:  &iso,
		PrimarySkill: strings.TrimSpace(f.PrimarySkill),
		SkillToLearn: strings.TrimSpace(f.SkillToLearn),
		Bio:          strings.TrimSpace(f.Bio),
		Role:         models.DefaultRole,
	})
	if err != nil {
		logger.Log.Errorw("failed to save profile", "user_id", userID, "err", err)
		return nil, nil, err
	}

	svc.events.Publish(ctx, models.EventProfileCompleted, userID, profile)
	return session, profile, nil
}

func (svc *AuthService) login(ctx context.Context, email, password string) (*models.Session, uuid.UUID, error) {
	email = validation.NormalizeEmail(email)

	session, userID, err := svc.auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		logger.Log.Errorw("login failed", "email", email, "err", err)
		return nil, uuid.Nil, ErrInvalidCredentials
	}
	return session, userID, nil
}

func (svc *AuthService) validateCompletion(email, password string, f models.ProfileFields) (time.Time, error) {
	if strings.TrimSpace(email) == "" ||
		strings.TrimSpace(password) == "" ||
		strings.TrimSpace(f.DateOfBirth) == "" ||
		strings.TrimSpace(f.PrimarySkill) == "" ||
		strings.TrimSpace(f.SkillToLearn) == "" ||
		strings.TrimSpace(f.Bio) == "" {
		return time.Time{}, validation.Errorf("All fields are required")
	}

	dob, err := validation.ParseDate(f.DateOfBirth, validation.LayoutDMY, validation.LayoutISO)
	if err != nil {
		return time.Time{}, validation.Errorf("Invalid date format. Use DD/MM/YYYY")
	}
	if err := validation.CheckAge(dob, svc.now()); err != nil {
		return time.Time{}, err
	}

	primary, toLearn := strings.TrimSpace(f.PrimarySkill), strings.TrimSpace(f.SkillToLearn)
	if err := validation.CheckSkillLength(primary, toLearn); err != nil {
		return time.Time{}, err
	}
	if err := validation.CheckSkills(primary, toLearn); err != nil {
		return time.Time{}, err
	}
	if err := validation.CheckBio(strings.TrimSpace(f.Bio)); err != nil {
		return time.Time{}, err
	}
	return dob, nil
}
