package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/barterup-bff/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestProfileCacheRepository(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()
	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewProfileCacheRepository(rdb, 2*time.Second)

	t.Run("set and get", func(t *testing.T) {
		skill := "Music"
		p := &models.ProfileRecord{ID: uuid.New(), PrimarySkill: &skill}

		require.NoError(t, repo.Set(ctx, p))

		got, err := repo.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.ID, got.ID)
		assert.Equal(t, "Music", *got.PrimarySkill)
	})

	t.Run("miss", func(t *testing.T) {
		_, err := repo.Get(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("delete", func(t *testing.T) {
		p := &models.ProfileRecord{ID: uuid.New()}
		require.NoError(t, repo.Set(ctx, p))
		require.NoError(t, repo.Delete(ctx, p.ID))

		_, err := repo.Get(ctx, p.ID)
		assert.ErrorIs(t, err, ErrCacheMiss)

		assert.NoError(t, repo.Delete(ctx, p.ID))
	})

	t.Run("expires", func(t *testing.T) {
		p := &models.ProfileRecord{ID: uuid.New()}
		require.NoError(t, repo.Set(ctx, p))

		time.Sleep(3 * time.Second)

		_, err := repo.Get(ctx, p.ID)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("corrupt entry", func(t *testing.T) {
		id := uuid.New()
		require.NoError(t, rdb.Set(ctx, profileKey(id), "not json", time.Minute).Err())

		_, err := repo.Get(ctx, id)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrCacheMiss)
	})
}
