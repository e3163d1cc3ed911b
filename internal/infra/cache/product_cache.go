// Package cache provides the Redis read-through cache for product detail reads.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/lifecycle"
	"marketplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	keyPrefix  = "product:"
	slugPrefix = "product:slug:"
	defaultTTL = 5 * time.Minute
)

type redisProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

// Params holds dependencies for ProductCache, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewProductCache connects to redis.url, or returns a pass-through cache when it is empty.
func NewProductCache(params Params) (service.ProductCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.URL == "" {
		params.Logger.Info("Redis not configured, product cache disabled")

		return noopCache{}, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis url")
	}
	client := redis.NewClient(opts)

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(pingCtx).Err(); err != nil {
				return errors.Wrap(err, "failed to connect to redis")
			}
			params.Logger.Info("Connected to Redis", slog.String("addr", opts.Addr))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisProductCache(client, ttl), nil
}

// NewRedisProductCache wraps an existing client.
func NewRedisProductCache(client *redis.Client, ttl time.Duration) service.ProductCache {
	return &redisProductCache{client: client, ttl: ttl}
}

// Get looks a product up by id or slug. A slug resolves through its alias
// to the id entry, so dropping the id entry is enough to expire both.
// A miss returns (nil, nil).
func (c *redisProductCache) Get(ctx context.Context, key string) (*entity.Product, error) {
	if _, err := uuid.Parse(key); err != nil {
		id, err := c.client.Get(ctx, slugKey(key)).Result()
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read product slug alias")
		}
		key = id
	}

	data, err := c.client.Get(ctx, productKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read product cache")
	}

	var product entity.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, errors.Wrap(err, "failed to decode cached product")
	}

	return &product, nil
}

// Set stores the product under its id and points its slug alias at it.
func (c *redisProductCache) Set(ctx context.Context, product *entity.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return errors.Wrap(err, "failed to encode product for cache")
	}

	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, productKey(product.ID.String()), data, c.ttl)
		if product.Slug != "" {
			pipe.Set(ctx, slugKey(product.Slug), product.ID.String(), c.ttl)
		}

		return nil
	})

	return errors.Wrap(err, "failed to write product cache")
}

// Invalidate drops the id entry, and the slug alias when slug is given.
func (c *redisProductCache) Invalidate(ctx context.Context, id uuid.UUID, slug string) error {
	keys := []string{productKey(id.String())}
	if slug != "" {
		keys = append(keys, slugKey(slug))
	}

	return errors.Wrap(c.client.Del(ctx, keys...).Err(), "failed to invalidate product cache")
}

func productKey(id string) string {
	return keyPrefix + id
}

func slugKey(slug string) string {
	return slugPrefix + slug
}

// noopCache always misses.
type noopCache struct{}

func (noopCache) Get(context.Context, string) (*entity.Product, error) { return nil, nil }

func (noopCache) Set(context.Context, *entity.Product) error { return nil }

func (noopCache) Invalidate(context.Context, uuid.UUID, string) error { return nil }
