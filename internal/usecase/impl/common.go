// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// clock is swapped in tests.
type clock func() time.Time

func (c clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}

	return c()
}

// translate maps a repository sentinel to the domain error the caller should see.
// Errors without a mapping are returned wrapped with msg.
func translate(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrUserNotFound):
		return errors.Wrap(domainerrors.ErrUserNotFound, msg)
	case errors.Is(err, repository.ErrProductNotFound):
		return errors.Wrap(domainerrors.ErrProductNotFound, msg)
	case errors.Is(err, repository.ErrVariantNotFound):
		return errors.Wrap(domainerrors.ErrVariantNotFound, msg)
	case errors.Is(err, repository.ErrListingNotFound):
		return errors.Wrap(domainerrors.ErrListingNotFound, msg)
	case errors.Is(err, repository.ErrCategoryNotFound):
		return errors.Wrap(domainerrors.ErrCategoryNotFound, msg)
	case errors.Is(err, repository.ErrBrandNotFound):
		return errors.Wrap(domainerrors.ErrBrandNotFound, msg)
	case errors.Is(err, repository.ErrInsufficientStock):
		return errors.Wrap(domainerrors.ErrInsufficientStock, msg)
	case errors.Is(err, repository.ErrOrderNotFound):
		return errors.Wrap(domainerrors.ErrOrderNotFound, msg)
	case errors.Is(err, repository.ErrReviewNotFound), errors.Is(err, repository.ErrSellerReviewNotFound):
		return errors.Wrap(domainerrors.ErrReviewNotFound, msg)
	case errors.Is(err, repository.ErrDuplicateReview):
		return errors.Wrap(domainerrors.ErrDuplicateReview, msg)
	case errors.Is(err, repository.ErrSellerNotFound):
		return errors.Wrap(domainerrors.ErrSellerNotFound, msg)
	case errors.Is(err, repository.ErrAddressNotFound):
		return errors.Wrap(domainerrors.ErrAddressNotFound, msg)
	case errors.Is(err, repository.ErrDeviceNotFound):
		return errors.Wrap(domainerrors.ErrDeviceNotFound, msg)
	case errors.Is(err, repository.ErrRoleNotFound):
		return errors.Wrap(domainerrors.ErrNotFound.WithMessage("Role not found"), msg)
	default:
		return errors.Wrap(err, msg)
	}
}

// resolveSellerID returns the seller profile id an actor acts as. Admins may
// name any seller; everyone else must own an approved profile.
func resolveSellerID(ctx context.Context, sellers repository.SellerRepository, actor usecase.Actor, requested *uuid.UUID) (uuid.UUID, error) {
	if actor.IsAdmin() && requested != nil {
		if _, err := sellers.FindByID(ctx, *requested); err != nil {
			return uuid.Nil, translate(err, "failed to find seller")
		}

		return *requested, nil
	}

	seller, err := sellers.FindByUserID(ctx, actor.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrSellerNotFound) {
			return uuid.Nil, errors.Wrap(domainerrors.ErrForbidden, "caller has no seller profile")
		}

		return uuid.Nil, errors.Wrap(err, "failed to find seller profile")
	}
	if seller.Status != entity.SellerStatusApproved {
		return uuid.Nil, errors.Wrap(domainerrors.ErrForbidden, "seller profile is not approved")
	}

	return seller.ID, nil
}

// authorizeSellerResource succeeds for admins and for the seller owning ownerSellerID.
func authorizeSellerResource(ctx context.Context, sellers repository.SellerRepository, actor usecase.Actor, ownerSellerID uuid.UUID) error {
	if actor.IsAdmin() {
		return nil
	}

	sellerID, err := resolveSellerID(ctx, sellers, actor, nil)
	if err != nil {
		return err
	}
	if sellerID != ownerSellerID {
		return errors.Wrap(domainerrors.ErrForbidden, "resource belongs to another seller")
	}

	return nil
}

// uploadAll stores every file under folder, deleting the already stored ones when one fails.
func uploadAll(ctx context.Context, storage service.ImageStorage, logger *slog.Logger, folder string, files []*usecase.FileUpload) ([]*service.StoredObject, error) {
	stored := make([]*service.StoredObject, 0, len(files))
	for _, f := range files {
		obj, err := storage.Upload(ctx, folder, f.Filename, f.ContentType, f.Content)
		if err != nil {
			for _, done := range stored {
				if delErr := storage.Delete(ctx, done.Key); delErr != nil {
					logger.Warn("Failed to roll back uploaded image", slog.String("key", done.Key), slog.Any("error", delErr))
				}
			}

			return nil, errors.Wrap(err, "failed to upload image")
		}
		stored = append(stored, obj)
	}

	return stored, nil
}

// invalidateProducts drops cached copies after stock or rating writes. A
// failure only logs; entries still expire with the cache TTL.
func invalidateProducts(ctx context.Context, cache service.ProductCache, logger *slog.Logger, ids ...uuid.UUID) {
	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true

		if err := cache.Invalidate(ctx, id, ""); err != nil {
			logger.Warn("Product cache invalidation failed", slog.Any("productID", id), slog.Any("error", err))
		}
	}
}

func orderProductIDs(order *entity.Order) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(order.Items))
	for _, item := range order.Items {
		ids = append(ids, item.ProductID)
	}

	return ids
}
