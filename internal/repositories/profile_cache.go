package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/barterup-bff/internal/logger"
	"github.com/sbilibin2017/barterup-bff/internal/models"
)

// ErrCacheMiss is returned when a profile is not cached.
var ErrCacheMiss = errors.New("profile not found in cache")

// ProfileCacheRepository caches profile rows in Redis.
type ProfileCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of cached rows
}

// NewProfileCacheRepository creates a new cache with the given TTL.
func NewProfileCacheRepository(client *redis.Client, expiration time.Duration) *ProfileCacheRepository {
	return &ProfileCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func profileKey(id uuid.UUID) string {
	return fmt.Sprintf("profile:%s", id)
}

// Get returns a cached profile or ErrCacheMiss.
func (r *ProfileCacheRepository) Get(ctx context.Context, id uuid.UUID) (*models.ProfileRecord, error) {
	key := profileKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		logger.Log.Warnw("profile cache get failed", "key", key, "error", err)
		return nil, err
	}

	var p models.ProfileRecord
	if err := json.Unmarshal(val, &p); err != nil {
		logger.Log.Warnw("profile cache entry corrupt", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Debugw("profile cache hit", "key", key)
	return &p, nil
}

// Set caches a profile row.
func (r *ProfileCacheRepository) Set(ctx context.Context, p *models.ProfileRecord) error {
	key := profileKey(p.ID)

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Debugw("profile cache set", "key", key, "error", err)
	return err
}

// Delete drops a cached profile. Missing keys are not an error.
func (r *ProfileCacheRepository) Delete(ctx context.Context, id uuid.UUID) error {
	key := profileKey(id)
	err := r.client.Del(ctx, key).Err()
	logger.Log.Debugw("profile cache invalidate", "key", key, "error", err)
	return err
}
