package repositories

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/barterup-bff/internal/facades"
	"github.com/sbilibin2017/barterup-bff/internal/logger"
	"github.com/sbilibin2017/barterup-bff/internal/models"
)

const (
	postsTable    = "posts"
	authorColumns = "full_name,primary_skill,bio,profile_picture_url,role"

	selectJoined   = "*,profiles!posts_user_id_fkey(" + authorColumns + ")"
	selectFallback = "*,profiles(" + authorColumns + ")"
	orderNewest    = "created_at.desc"
)

// PostRepository reads and writes the posts table.
type PostRepository struct {
	client *facades.SupabaseClient
}

// NewPostRepository creates a new PostRepository.
func NewPostRepository(client *facades.SupabaseClient) *PostRepository {
	return &PostRepository{client: client}
}

// Create inserts a post and returns the stored row.
func (r *PostRepository) Create(ctx context.Context, p models.NewPost) (*models.Post, error) {
	resp, err := r.client.Do(ctx, facades.Request{
		Method: http.MethodPost,
		URL:    r.client.RestURL(postsTable),
		Body:   p,
		Key:    facades.KeyService,
		Prefer: "return=representation",
	})
	logger.Log.Infow("post insert", "user_id", p.UserID, "error", err)
	if err != nil {
		return nil, err
	}

	var rows []models.Post
	if err := resp.Decode(&rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("post insert for %s returned no rows", p.UserID)
	}
	return &rows[0], nil
}

// ListWithProfiles lists the newest posts, embedding author profiles when
// the BaaS can resolve the join. It tries the constraint-qualified embed,
// then the unqualified one, then plain rows. It fails only if all three fail.
func (r *PostRepository) ListWithProfiles(ctx context.Context, limit int) (*models.PostList, error) {
	posts, err := r.list(ctx, url.Values{"select": {selectJoined}}, limit)
	if err == nil {
		return &models.PostList{Tier: models.TierJoined, Posts: posts}, nil
	}
	logger.Log.Warnw("posts join by constraint failed, retrying unqualified", "error", err)

	posts, err = r.list(ctx, url.Values{"select": {selectFallback}}, limit)
	if err == nil {
		return &models.PostList{Tier: models.TierJoinFallback, Posts: posts}, nil
	}
	logger.Log.Warnw("posts join failed, listing without profiles", "error", err)

	posts, err = r.list(ctx, url.Values{}, limit)
	if err != nil {
		logger.Log.Errorw("failed to list posts", "error", err)
		return nil, err
	}
	for i := range posts {
		posts[i].Profiles = nil
	}
	return &models.PostList{Tier: models.TierDegraded, Posts: posts}, nil
}

// ListByUser lists the newest posts of one user with the unqualified embed.
func (r *PostRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.PostWithAuthor, error) {
	posts, err := r.list(ctx, url.Values{
		"user_id": {eq(userID)},
		"select":  {selectFallback},
	}, limit)
	if err != nil {
		logger.Log.Errorw("failed to list user posts", "user_id", userID, "error", err)
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) list(ctx context.Context, query url.Values, limit int) ([]models.PostWithAuthor, error) {
	query.Set("order", orderNewest)
	query.Set("limit", strconv.Itoa(limit))

	resp, err := r.client.Do(ctx, facades.Request{
		Method: http.MethodGet,
		URL:    r.client.RestURL(postsTable),
		Query:  query,
		Key:    facades.KeyService,
	})
	if err != nil {
		return nil, err
	}

	posts := []models.PostWithAuthor{}
	if err := resp.Decode(&posts); err != nil {
		return nil, err
	}
	return posts, nil
}
