package models

import "github.com/google/uuid"

// Post is a row of the posts table.
// swagger:model Post
type Post struct {
	ID        string  `json:"id"`
	UserID    *string `json:"user_id"`
	Content   *string `json:"content"`
	ImageURL  *string `json:"image_url"`
	CreatedAt *string `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
}

// PostAuthor is the embedded profile snapshot of a joined post.
type PostAuthor struct {
	FullName          *string `json:"full_name"`
	PrimarySkill      *string `json:"primary_skill"`
	Bio               *string `json:"bio"`
	ProfilePictureURL *string `json:"profile_picture_url"`
	Role              *string `json:"role"`
}

// PostWithAuthor is a post row with its embedded profile, nil when the
// author has no profile.
type PostWithAuthor struct {
	Post
	Profiles *PostAuthor `json:"profiles"`
}

// NewPost is the insert body for a post.
type NewPost struct {
	UserID   uuid.UUID `json:"user_id"`
	Content  string    `json:"content"`
	ImageURL *string   `json:"image_url"`
}

// CreatePostRequest represents the JSON body for creating a post
// swagger:model CreatePostRequest
type CreatePostRequest struct {
	// required: true
	// example: Looking for someone to teach me sourdough.
	Content string `json:"content"`
	// example: https://example.com/bread.jpg
	ImageURL *string `json:"image_url"`
}

// PostTier tells how much author data a post listing carries.
type PostTier int

const (
	// TierJoined means the constraint-qualified embed succeeded.
	TierJoined PostTier = iota
	// TierJoinFallback means only the unqualified embed succeeded.
	TierJoinFallback
	// TierDegraded means posts were listed without any author data.
	TierDegraded
)

func (t PostTier) String() string {
	switch t {
	case TierJoined:
		return "joined"
	case TierJoinFallback:
		return "join_fallback"
	case TierDegraded:
		return "degraded"
	}
	return "unknown"
}

// PostList is the tagged result of a post listing. Posts carry nil
// Profiles in the degraded tier.
type PostList struct {
	Tier  PostTier
	Posts []PostWithAuthor
}

// EnhancedPost is a post shaped for the feed
// swagger:model EnhancedPost
type EnhancedPost struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id"`
	Content   *string `json:"content"`
	ImageURL  *string `json:"image_url"`
	CreatedAt *string `json:"created_at"`
	UpdatedAt *string `json:"updated_at"`
	// example: Jane Doe
	AuthorName   string  `json:"author_name"`
	AuthorAvatar *string `json:"author_avatar"`
	// example: user
	AuthorRole         string  `json:"author_role"`
	AuthorPrimarySkill *string `json:"author_primary_skill"`
	IsOwnPost          bool    `json:"is_own_post"`
}

// PostFeed is an enriched listing together with the tier it was built from.
type PostFeed struct {
	Tier  PostTier
	Posts []EnhancedPost
}
