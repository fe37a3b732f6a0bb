package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a test Redis client using miniredis
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := &Client{
		Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}

	return client, mr
}

func TestClient_SetGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	err := client.Set(ctx, "resources:list", "payload", 1*time.Hour)
	require.NoError(t, err)

	val, err := client.Get(ctx, "resources:list")
	require.NoError(t, err)
	assert.Equal(t, "payload", val)
}

func TestClient_GetMissing(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	_, err := client.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestClient_Delete(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	_ = client.Set(ctx, "k1", "v1", 1*time.Hour)
	_ = client.Set(ctx, "k2", "v2", 1*time.Hour)

	require.NoError(t, client.Delete(ctx, "k1"))

	_, err := client.Get(ctx, "k1")
	assert.Error(t, err)

	val, err := client.Get(ctx, "k2")
	require.NoError(t, err)
	assert.Equal(t, "v2", val)
}

func TestClient_Exists(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	exists, err := client.Exists(ctx, "k1")
	require.NoError(t, err)
	assert.False(t, exists)

	_ = client.Set(ctx, "k1", "v1", 1*time.Hour)

	exists, err = client.Exists(ctx, "k1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestClient_Expiration(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "k1", "v1", 1*time.Minute))

	mr.FastForward(2 * time.Minute)

	_, err := client.Get(ctx, "k1")
	assert.ErrorIs(t, err, redis.Nil)
}
