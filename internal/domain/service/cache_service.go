package service

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ProductCache is a read-through cache for single products. A miss returns (nil, nil).
type ProductCache interface {
	Get(ctx context.Context, key string) (*entity.Product, error)
	Set(ctx context.Context, product *entity.Product) error

	// Invalidate drops the cached product. An empty slug is enough after
	// writes that keep the slug; pass the old slug after a rename.
	Invalidate(ctx context.Context, id uuid.UUID, slug string) error
}
