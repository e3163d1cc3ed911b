package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
	cart         usecase.CartUsecase
	logger       *slog.Logger
}

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	WishlistRepo repository.WishlistRepository
	ProductRepo  repository.ProductRepository
	Cart         usecase.CartUsecase
	Logger       *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		wishlistRepo: params.WishlistRepo,
		productRepo:  params.ProductRepo,
		cart:         params.Cart,
		logger:       params.Logger,
	}
}

func (s *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, s.logger)
}

// GetWishlist returns the saved products; deleted products are dropped from the view.
func (s *wishlistService) GetWishlist(ctx context.Context, userID uuid.UUID) (*entity.Wishlist, error) {
	items, err := s.wishlistRepo.List(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	products := map[uuid.UUID]*entity.Product{}
	if len(ids) > 0 {
		found, err := s.productRepo.FindByIDs(ctx, ids)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load wishlist products")
		}
		for _, p := range found {
			products[p.ID] = p
		}
	}

	wishlist := &entity.Wishlist{UserID: userID, Items: make([]*entity.WishlistItem, 0, len(items))}
	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			continue
		}
		item.Product = product
		wishlist.Items = append(wishlist.Items, item)
	}

	return wishlist, nil
}

// AddToWishlist saves an active product. Saving it twice is a no-op.
func (s *wishlistService) AddToWishlist(ctx context.Context, userID, productID uuid.UUID) (*entity.Wishlist, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, translate(err, "failed to find product")
	}
	if !product.IsActive {
		return nil, errors.Wrap(domainerrors.ErrProductUnavailable, "product is not active")
	}

	if err := s.wishlistRepo.Add(ctx, userID, productID); err != nil {
		return nil, errors.Wrap(err, "failed to add to wishlist")
	}

	return s.GetWishlist(ctx, userID)
}

// RemoveFromWishlist drops a saved product.
func (s *wishlistService) RemoveFromWishlist(ctx context.Context, userID, productID uuid.UUID) (*entity.Wishlist, error) {
	if err := s.wishlistRepo.Remove(ctx, userID, productID); err != nil {
		return nil, errors.Wrap(err, "failed to remove from wishlist")
	}

	return s.GetWishlist(ctx, userID)
}

// ClearWishlist drops every saved product.
func (s *wishlistService) ClearWishlist(ctx context.Context, userID uuid.UUID) error {
	return errors.Wrap(s.wishlistRepo.Clear(ctx, userID), "failed to clear wishlist")
}

// MoveToCart adds one unit to the cart, then removes the product from the wishlist.
func (s *wishlistService) MoveToCart(ctx context.Context, userID, productID uuid.UUID) (*entity.Cart, error) {
	cart, err := s.cart.AddItem(ctx, userID, &usecase.AddCartItemInput{ProductID: productID, Quantity: 1})
	if err != nil {
		return nil, errors.Wrap(err, "failed to move wishlist item to cart")
	}

	if err := s.wishlistRepo.Remove(ctx, userID, productID); err != nil {
		// The cart already holds the item; a stale wishlist entry is harmless.
		s.log(ctx).Warn("Failed to remove moved wishlist item", slog.Any("productID", productID), slog.Any("error", err))
	}

	return cart, nil
}
