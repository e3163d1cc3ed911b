package cache

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestProductKey(t *testing.T) {
	id := uuid.MustParse("0190f5c2-8a4e-7b6d-9c1e-2f3a4b5c6d7e")

	assert.Equal(t, "product:0190f5c2-8a4e-7b6d-9c1e-2f3a4b5c6d7e", productKey(id.String()))
	assert.Equal(t, "product:slug:blue-running-shoe", slugKey("blue-running-shoe"))
}

func TestNewProductCache_DisabledWithoutURL(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	c, err := NewProductCache(Params{Lc: lc, Config: &config.Config{Redis: &config.RedisConfig{}}, Logger: logger})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, c.Set(ctx, &entity.Product{ID: uuid.New(), Slug: "x"}))

	got, err := c.Get(ctx, "x")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Invalidate(ctx, uuid.New(), "x"))
}

func TestNewProductCache_InvalidURL(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewProductCache(Params{Lc: lc, Config: &config.Config{Redis: &config.RedisConfig{URL: "http://not-redis"}}, Logger: logger})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid redis url")
}

func newTestRedisCache(t *testing.T) (*miniredis.Miniredis, *redisProductCache) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return srv, NewRedisProductCache(client, 10*time.Minute).(*redisProductCache)
}

func TestRedisProductCache_SlugAlias(t *testing.T) {
	srv, c := newTestRedisCache(t)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Slug: "trail-runner", Name: "Trail Runner", Stock: 9}

	require.NoError(t, c.Set(ctx, product))
	assert.Equal(t, product.ID.String(), mustGet(t, srv, slugKey("trail-runner")))

	bySlug, err := c.Get(ctx, "trail-runner")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, 9, bySlug.Stock)

	byID, err := c.Get(ctx, product.ID.String())
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "Trail Runner", byID.Name)
}

func TestRedisProductCache_InvalidateByIDExpiresSlugLookups(t *testing.T) {
	_, c := newTestRedisCache(t)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Slug: "trail-runner", Stock: 9}
	require.NoError(t, c.Set(ctx, product))

	require.NoError(t, c.Invalidate(ctx, product.ID, ""))

	got, err := c.Get(ctx, "trail-runner")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisProductCache_InvalidateDropsRenamedSlug(t *testing.T) {
	srv, c := newTestRedisCache(t)
	ctx := context.Background()
	product := &entity.Product{ID: uuid.New(), Slug: "trail-runner"}
	require.NoError(t, c.Set(ctx, product))

	require.NoError(t, c.Invalidate(ctx, product.ID, "trail-runner"))

	assert.False(t, srv.Exists(slugKey("trail-runner")))
	assert.False(t, srv.Exists(productKey(product.ID.String())))
}

func mustGet(t *testing.T, srv *miniredis.Miniredis, key string) string {
	t.Helper()

	v, err := srv.Get(key)
	require.NoError(t, err)

	return v
}
