package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sbilibin2017/barterup-bff/internal/logger"
	"github.com/sbilibin2017/barterup-bff/internal/models"
	"github.com/sbilibin2017/barterup-bff/internal/validation"
)

//go:generate mockgen -source=post.go -destination=post_mock.go -package=services

const maxPostChars = 5000

// Placeholder author attributes.
const (
	authorSelf      = "You"
	authorAnonymous = "Anonymous User"
	authorMember    = "Member"
	authorRole      = "User"
)

// PostStore is the posts table.
type PostStore interface {
	Create(ctx context.Context, p models.NewPost) (*models.Post, error)
	ListWithProfiles(ctx context.Context, limit int) (*models.PostList, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.PostWithAuthor, error)
}

// PostService creates posts and builds the feed.
type PostService struct {
	store  PostStore
	events EventPublisher
	limit  int
}

// NewPostService creates a new PostService listing at most limit posts.
func NewPostService(store PostStore, events EventPublisher, limit int) *PostService {
	return &PostService{store: store, events: events, limit: limit}
}

// Create stores a new post of userID. An empty image URL is stored as null.
func (s *PostService) Create(ctx context.Context, userID uuid.UUID, content string, imageURL *string) (*models.Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, validation.Errorf("Post content is required")
	}
	if utf8.RuneCountInString(content) > maxPostChars {
		return nil, validation.Errorf("Post content must be less than 5000 characters")
	}
	if imageURL != nil && strings.TrimSpace(*imageURL) == "" {
		imageURL = nil
	}

	post, err := s.store.Create(ctx, models.NewPost{UserID: userID, Content: content, ImageURL: imageURL})
	if err != nil {
		logger.Log.Errorw("failed to create post", "user_id", userID, "error", err)
		return nil, err
	}

	s.events.Publish(ctx, models.EventPostCreated, userID, map[string]string{"post_id": post.ID})
	return post, nil
}

// List returns the enriched feed as seen by viewer. uuid.Nil means anonymous.
func (s *PostService) List(ctx context.Context, viewer uuid.UUID) (*models.PostFeed, error) {
	list, err := s.store.ListWithProfiles(ctx, s.limit)
	if err != nil {
		return nil, err
	}

	feed := &models.PostFeed{Tier: list.Tier, Posts: make([]models.EnhancedPost, 0, len(list.Posts))}
	for _, p := range list.Posts {
		if list.Tier == models.TierDegraded {
			feed.Posts = append(feed.Posts, enrichBasic(p.Post, viewer))
		} else {
			feed.Posts = append(feed.Posts, enrichJoined(p, viewer))
		}
	}

	logger.Log.Infow("posts listed", "tier", list.Tier.String(), "count", len(feed.Posts))
	return feed, nil
}

// ListByUser returns the enriched posts of owner as seen by viewer.
func (s *PostService) ListByUser(ctx context.Context, owner, viewer uuid.UUID) ([]models.EnhancedPost, error) {
	posts, err := s.store.ListByUser(ctx, owner, s.limit)
	if err != nil {
		return nil, err
	}

	out := make([]models.EnhancedPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, enrichJoined(p, viewer))
	}
	return out, nil
}

func nonBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}

func isOwn(postUserID *string, viewer uuid.UUID) bool {
	return viewer != uuid.Nil && postUserID != nil && *postUserID != "" &&
		strings.EqualFold(*postUserID, viewer.String())
}

func basePost(p models.Post) models.EnhancedPost {
	out := models.EnhancedPost{
		ID:        p.ID,
		Content:   p.Content,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.UserID != nil {
		out.UserID = *p.UserID
	}
	return out
}

func enrichJoined(p models.PostWithAuthor, viewer uuid.UUID) models.EnhancedPost {
	out := basePost(p.Post)
	out.IsOwnPost = isOwn(p.UserID, viewer)

	var a models.PostAuthor
	if p.Profiles != nil {
		a = *p.Profiles
	}

	switch name := nonBlank(a.FullName); {
	case name != nil:
		out.AuthorName = *name
	case out.IsOwnPost:
		out.AuthorName = authorSelf
	default:
		out.AuthorName = authorAnonymous
	}

	switch {
	case nonBlank(a.Role) != nil:
		out.AuthorRole = *a.Role
	case nonBlank(a.PrimarySkill) != nil:
		out.AuthorRole = *a.PrimarySkill
	default:
		out.AuthorRole = authorRole
	}

	out.AuthorAvatar = nonBlank(a.ProfilePictureURL)
	out.AuthorPrimarySkill = nonBlank(a.PrimarySkill)
	return out
}

func enrichBasic(p models.Post, viewer uuid.UUID) models.EnhancedPost {
	out := basePost(p)
	out.IsOwnPost = isOwn(p.UserID, viewer)
	out.AuthorName = authorMember
	if out.IsOwnPost {
		out.AuthorName = authorSelf
	}
	out.AuthorRole = authorRole
	return out
}
