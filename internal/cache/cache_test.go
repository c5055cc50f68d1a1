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

func newCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return New(client, time.Minute), mr
}

func TestCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c, mr := newCache(t)

	type payload struct {
		Title string `json:"title"`
	}

	hit, err := c.GetJSON(ctx, "k", &payload{})
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, c.SetJSON(ctx, "k", payload{Title: "Casa Horizonte"}))
	assert.True(t, mr.Exists("k"))

	var got payload
	hit, err = c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "Casa Horizonte", got.Title)

	require.NoError(t, c.Delete(ctx, "k"))
	assert.False(t, mr.Exists("k"))
}

func TestCache_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	c, mr := newCache(t)

	require.NoError(t, c.SetJSON(ctx, "k", "v"))
	mr.FastForward(2 * time.Minute)

	var got string
	hit, err := c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_NilIsAMiss(t *testing.T) {
	ctx := context.Background()
	var c *Cache

	var got string
	hit, err := c.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, c.SetJSON(ctx, "k", "v"))
	assert.NoError(t, c.Delete(ctx, "k"))
}
