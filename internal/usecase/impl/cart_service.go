package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"marketplace/config"
	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const defaultCartTTL = 30 * 24 * time.Hour

var defaultTaxRate = decimal.RequireFromString("0.08")

// cartService implements the CartUsecase interface. Every mutation locks the
// cart row so it serialises with checkout.
type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	taxRate   decimal.Decimal
	cartTTL   time.Duration
	logger    *slog.Logger
	clock     clock
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	srv := &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		taxRate:   defaultTaxRate,
		cartTTL:   defaultCartTTL,
		logger:    params.Logger,
	}
	if params.Config != nil && params.Config.Shop != nil {
		if !params.Config.Shop.TaxRate.IsZero() {
			srv.taxRate = params.Config.Shop.TaxRate
		}
		if params.Config.Shop.CartTTL > 0 {
			srv.cartTTL = params.Config.Shop.CartTTL
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// GetCart returns the user's cart, creating an empty one on first use.
func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, repository.ErrCartNotFound) {
		return nil, errors.Wrap(err, "failed to find cart")
	}

	cart = entity.NewCart(userID, srv.clock.now(), srv.cartTTL)
	if err := srv.cartRepo.Create(ctx, cart); err != nil {
		// A concurrent request may have created it first.
		if existing, findErr := srv.cartRepo.FindByUserID(ctx, userID); findErr == nil {
			return existing, nil
		}

		return nil, errors.Wrap(err, "failed to create cart")
	}

	return cart, nil
}

// mutate runs fn against the locked cart and persists the recalculated totals.
func (srv *cartService) mutate(ctx context.Context, userID uuid.UUID, fn func(repoFactory repository.RepositoryFactory, cart *entity.Cart) error) (*entity.Cart, error) {
	var result *entity.Cart

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		cart, err := cartRepo.FindByUserIDForUpdate(ctx, userID)
		if errors.Is(err, repository.ErrCartNotFound) {
			cart = entity.NewCart(userID, srv.clock.now(), srv.cartTTL)
			if err := cartRepo.Create(ctx, cart); err != nil {
				return errors.Wrap(err, "failed to create cart")
			}
		} else if err != nil {
			return errors.Wrap(err, "failed to lock cart")
		}

		if err := fn(repoFactory, cart); err != nil {
			return err
		}

		cart.Recalculate(srv.taxRate)
		cart.UpdatedAt = srv.clock.now()
		if err := cartRepo.Save(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}
		result = cart

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// cartLine is a resolved catalog target of a cart line.
type cartLine struct {
	product *entity.Product
	listing *entity.ProductListing
}

func (l cartLine) ref() entity.CartItemRef {
	if l.listing != nil {
		return entity.ByListing(l.listing.ID)
	}

	return entity.ByProduct(l.product.ID)
}

func (l cartLine) price() decimal.Decimal {
	if l.listing != nil {
		return l.listing.Price
	}

	return l.product.Price
}

// resolveLine loads the product, and the listing when given, and checks they can be sold.
func resolveLine(ctx context.Context, repoFactory repository.RepositoryFactory, productID uuid.UUID, listingID *uuid.UUID) (cartLine, error) {
	var line cartLine

	if listingID != nil {
		listing, err := repoFactory.NewListingRepository().FindByID(ctx, *listingID)
		if err != nil {
			return line, translate(err, "failed to find listing")
		}
		if productID != uuid.Nil && listing.ProductID != productID {
			return line, errors.Wrap(domainerrors.ErrListingNotFound, "listing belongs to another product")
		}
		if !listing.IsAvailable {
			return line, errors.Wrap(domainerrors.ErrProductUnavailable, "listing is not available")
		}
		line.listing = listing
		productID = listing.ProductID
	}

	product, err := repoFactory.NewProductRepository().FindByID(ctx, productID)
	if err != nil {
		return line, translate(err, "failed to find product")
	}
	if !product.IsPurchasable() {
		return line, errors.Wrap(domainerrors.ErrProductUnavailable, "product is not active")
	}
	line.product = product

	return line, nil
}

func insufficientStock(product *entity.Product) error {
	return errors.Wrap(
		domainerrors.ErrInsufficientStock.WithDetails("only "+strconv.Itoa(product.Stock)+" units of "+product.Name+" available"),
		"stock check failed",
	)
}

func (srv *cartService) newItem(cart *entity.Cart, line cartLine, quantity int) *entity.CartItem {
	item := &entity.CartItem{
		ID:          uuid.New(),
		CartID:      cart.ID,
		ProductID:   line.product.ID,
		SellerID:    line.product.SellerID,
		ProductName: line.product.Name,
		Image:       line.product.PrimaryImage(),
		Quantity:    quantity,
		Price:       line.price(),
		AddedAt:     srv.clock.now(),
	}
	if line.listing != nil {
		listingID := line.listing.ID
		item.ListingID = &listingID
		item.VariantID = line.listing.VariantID
		item.SellerID = line.listing.SellerID
	}

	return item
}

// AddItem adds a line or increments an existing one. The first-add price is kept.
func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, input *usecase.AddCartItemInput) (*entity.Cart, error) {
	if input.Quantity < 1 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Quantity must be at least 1"), "add cart item")
	}

	cart, err := srv.mutate(ctx, userID, func(repoFactory repository.RepositoryFactory, cart *entity.Cart) error {
		line, err := resolveLine(ctx, repoFactory, input.ProductID, input.ListingID)
		if err != nil {
			return err
		}

		if existing := cart.Find(line.ref()); existing != nil {
			if !line.product.HasStock(existing.Quantity + input.Quantity) {
				return insufficientStock(line.product)
			}
			existing.Quantity += input.Quantity

			return nil
		}

		if !line.product.HasStock(input.Quantity) {
			return insufficientStock(line.product)
		}
		cart.Items = append(cart.Items, srv.newItem(cart, line, input.Quantity))

		return nil
	})
	if err != nil {
		srv.log(ctx).Debug("Add to cart rejected", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to add cart item")
	}

	return cart, nil
}

// UpdateItemQuantity sets a line's quantity; zero or less removes it.
func (srv *cartService) UpdateItemQuantity(ctx context.Context, userID uuid.UUID, ref entity.CartItemRef, quantity int) (*entity.Cart, error) {
	cart, err := srv.mutate(ctx, userID, func(repoFactory repository.RepositoryFactory, cart *entity.Cart) error {
		item := cart.Find(ref)
		if item == nil {
			return errors.Wrap(domainerrors.ErrCartItemNotFound, "update cart item")
		}
		if quantity <= 0 {
			cart.Remove(ref)

			return nil
		}

		product, err := repoFactory.NewProductRepository().FindByID(ctx, item.ProductID)
		if err != nil {
			return translate(err, "failed to find product")
		}
		if !product.HasStock(quantity) {
			return insufficientStock(product)
		}
		item.Quantity = quantity

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update cart item")
	}

	return cart, nil
}

// RemoveItem drops one line.
func (srv *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, ref entity.CartItemRef) (*entity.Cart, error) {
	cart, err := srv.mutate(ctx, userID, func(_ repository.RepositoryFactory, cart *entity.Cart) error {
		if !cart.Remove(ref) {
			return errors.Wrap(domainerrors.ErrCartItemNotFound, "remove cart item")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return cart, nil
}

// ClearCart empties the cart.
func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.mutate(ctx, userID, func(_ repository.RepositoryFactory, cart *entity.Cart) error {
		cart.Clear()

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear cart")
	}

	return cart, nil
}

// ItemCount sums line quantities; a user without a cart has zero.
func (srv *cartService) ItemCount(ctx context.Context, userID uuid.UUID) (int, error) {
	cart, err := srv.cartRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return 0, nil
		}

		return 0, errors.Wrap(err, "failed to find cart")
	}

	return cart.ItemCount(), nil
}

// SyncCart merges client-held lines. Unknown, inactive and under-stocked lines are skipped.
func (srv *cartService) SyncCart(ctx context.Context, userID uuid.UUID, items []usecase.SyncCartItem) (*entity.Cart, error) {
	cart, err := srv.mutate(ctx, userID, func(repoFactory repository.RepositoryFactory, cart *entity.Cart) error {
		for _, in := range items {
			if in.Quantity < 1 || (in.ProductID == nil && in.ListingID == nil) {
				continue
			}

			productID := uuid.Nil
			if in.ProductID != nil {
				productID = *in.ProductID
			}

			line, err := resolveLine(ctx, repoFactory, productID, in.ListingID)
			if err != nil {
				if isSkippableSyncError(err) {
					srv.log(ctx).Debug("Skipping cart sync line", slog.Any("productID", productID), slog.Any("error", err))

					continue
				}

				return err
			}

			existing := cart.Find(line.ref())
			merged := in.Quantity
			if existing != nil {
				merged += existing.Quantity
			}
			if !line.product.HasStock(merged) {
				srv.log(ctx).Debug("Skipping under-stocked cart sync line", slog.Any("productID", line.product.ID))

				continue
			}

			if existing != nil {
				existing.Quantity = merged
			} else {
				cart.Items = append(cart.Items, srv.newItem(cart, line, in.Quantity))
			}
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to sync cart")
	}

	return cart, nil
}

func isSkippableSyncError(err error) bool {
	return errors.Is(err, domainerrors.ErrProductNotFound) ||
		errors.Is(err, domainerrors.ErrListingNotFound) ||
		errors.Is(err, domainerrors.ErrProductUnavailable)
}
