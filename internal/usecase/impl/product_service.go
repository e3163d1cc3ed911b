package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"
	"marketplace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultFeaturedLimit = 8
	defaultRelatedLimit  = 4
	productImageFolder   = "products"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager    repository.TransactionManager
	productRepo  repository.ProductRepository
	variantRepo  repository.VariantRepository
	listingRepo  repository.ListingRepository
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
	sellerRepo   repository.SellerRepository
	cache        service.ProductCache
	storage      service.ImageStorage
	logger       *slog.Logger
	clock        clock
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ProductRepo  repository.ProductRepository
	VariantRepo  repository.VariantRepository
	ListingRepo  repository.ListingRepository
	CategoryRepo repository.CategoryRepository
	BrandRepo    repository.BrandRepository
	SellerRepo   repository.SellerRepository
	Cache        service.ProductCache
	Storage      service.ImageStorage
	Logger       *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:    params.TxManager,
		productRepo:  params.ProductRepo,
		variantRepo:  params.VariantRepo,
		listingRepo:  params.ListingRepo,
		categoryRepo: params.CategoryRepo,
		brandRepo:    params.BrandRepo,
		sellerRepo:   params.SellerRepo,
		cache:        params.Cache,
		storage:      params.Storage,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// CreateProduct adds an active product owned by the caller's seller profile.
func (srv *productService) CreateProduct(ctx context.Context, actor usecase.Actor, input *usecase.CreateProductInput) (*entity.Product, error) {
	sellerID, err := resolveSellerID(ctx, srv.sellerRepo, actor, input.SellerID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	slug := util.Slugify(name)
	if slug == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Product name is required"), "create product")
	}
	if input.Price.IsNegative() || input.Stock < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Price and stock cannot be negative"), "create product")
	}
	if err := srv.checkReferences(ctx, input.BrandID, input.CategoryIDs); err != nil {
		return nil, err
	}

	now := srv.clock.now()
	product := &entity.Product{
		ID:               uuid.New(),
		Name:             name,
		Slug:             slug,
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		SellerID:         sellerID,
		BrandID:          input.BrandID,
		CategoryIDs:      input.CategoryIDs,
		Price:            input.Price,
		CompareAtPrice:   input.CompareAtPrice,
		Stock:            input.Stock,
		SKU:              entity.NormalizeSKU(input.SKU),
		Tags:             input.Tags,
		Images:           input.Images,
		IsFeatured:       input.IsFeatured,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	product.EnsurePrimaryImage()

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}
	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("sellerID", sellerID))

	return product, nil
}

func (srv *productService) checkReferences(ctx context.Context, brandID *uuid.UUID, categoryIDs []uuid.UUID) error {
	if brandID != nil {
		if _, err := srv.brandRepo.FindByID(ctx, *brandID); err != nil {
			return translate(err, "failed to find brand")
		}
	}
	for _, id := range categoryIDs {
		if _, err := srv.categoryRepo.FindByID(ctx, id); err != nil {
			return translate(err, "failed to find category")
		}
	}

	return nil
}

// GetProduct looks a product up by id or slug through the cache.
func (srv *productService) GetProduct(ctx context.Context, idOrSlug string) (*entity.Product, error) {
	product, err := srv.cache.Get(ctx, idOrSlug)
	if err != nil {
		srv.log(ctx).Warn("Product cache read failed", slog.String("key", idOrSlug), slog.Any("error", err))
	}

	if product == nil {
		if id, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
			product, err = srv.productRepo.FindByID(ctx, id)
		} else {
			product, err = srv.productRepo.FindBySlug(ctx, idOrSlug)
		}
		if err != nil {
			return nil, translate(err, "failed to find product")
		}

		if err := srv.cache.Set(ctx, product); err != nil {
			srv.log(ctx).Warn("Product cache write failed", slog.Any("productID", product.ID), slog.Any("error", err))
		}
	}

	// View counting never fails the read. The stored counter replaces the
	// possibly cached one.
	views, err := srv.productRepo.IncrementViews(ctx, product.ID)
	if err != nil {
		srv.log(ctx).Warn("Failed to increment product views", slog.Any("productID", product.ID), slog.Any("error", err))
	} else {
		product.Views = views
	}

	return product, nil
}

// ListProducts returns one page of active products matching the filter.
func (srv *productService) ListProducts(ctx context.Context, filter entity.ProductFilter, page entity.Pagination) (*entity.Page[*entity.Product], error) {
	filter.IncludeInactive = false

	products, total, err := srv.productRepo.List(ctx, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return entity.NewPage(products, total, page), nil
}

// SearchProducts matches text against name and descriptions.
func (srv *productService) SearchProducts(ctx context.Context, text string, page entity.Pagination) (*entity.Page[*entity.Product], error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Search query is required"), "search products")
	}

	return srv.ListProducts(ctx, entity.ProductFilter{Search: text}, page)
}

// FeaturedProducts lists active featured products.
func (srv *productService) FeaturedProducts(ctx context.Context, limit int) ([]*entity.Product, error) {
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}

	products, _, err := srv.productRepo.List(ctx, entity.ProductFilter{Featured: true}, entity.Pagination{Page: 1, Limit: limit})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list featured products")
	}

	return products, nil
}

// RelatedProducts lists active products sharing a category with the product.
func (srv *productService) RelatedProducts(ctx context.Context, productID uuid.UUID, limit int) ([]*entity.Product, error) {
	if limit <= 0 {
		limit = defaultRelatedLimit
	}
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		return nil, translate(err, "failed to find product")
	}

	products, err := srv.productRepo.Related(ctx, productID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list related products")
	}

	return products, nil
}

// MyProducts lists every product of the caller's seller profile.
func (srv *productService) MyProducts(ctx context.Context, actor usecase.Actor, page entity.Pagination) (*entity.Page[*entity.Product], error) {
	sellerID, err := resolveSellerID(ctx, srv.sellerRepo, actor, nil)
	if err != nil {
		return nil, err
	}

	products, total, err := srv.productRepo.List(ctx, entity.ProductFilter{SellerID: &sellerID, IncludeInactive: true}, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller products")
	}

	return entity.NewPage(products, total, page), nil
}

// ownedProduct loads a product the actor may mutate.
func (srv *productService) ownedProduct(ctx context.Context, actor usecase.Actor, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, translate(err, "failed to find product")
	}
	if err := authorizeSellerResource(ctx, srv.sellerRepo, actor, product.SellerID); err != nil {
		return nil, err
	}

	return product, nil
}

// invalidate drops every cached key of the product, including a previous slug.
func (srv *productService) invalidate(ctx context.Context, product *entity.Product, oldSlug string) {
	if err := srv.cache.Invalidate(ctx, product.ID, product.Slug); err != nil {
		srv.log(ctx).Warn("Product cache invalidation failed", slog.Any("productID", product.ID), slog.Any("error", err))
	}
	if oldSlug != "" && oldSlug != product.Slug {
		if err := srv.cache.Invalidate(ctx, product.ID, oldSlug); err != nil {
			srv.log(ctx).Warn("Product cache invalidation failed", slog.Any("productID", product.ID), slog.Any("error", err))
		}
	}
}

// UpdateProduct applies the non-nil fields. A rename regenerates the slug.
func (srv *productService) UpdateProduct(ctx context.Context, actor usecase.Actor, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.ownedProduct(ctx, actor, productID)
	if err != nil {
		return nil, err
	}
	oldSlug := product.Slug

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		slug := util.Slugify(name)
		if slug == "" {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Product name is required"), "update product")
		}
		product.Name = name
		product.Slug = slug
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.ShortDescription != nil {
		product.ShortDescription = *input.ShortDescription
	}
	if input.BrandID != nil || input.CategoryIDs != nil {
		if err := srv.checkReferences(ctx, input.BrandID, input.CategoryIDs); err != nil {
			return nil, err
		}
	}
	if input.BrandID != nil {
		product.BrandID = input.BrandID
	}
	if input.CategoryIDs != nil {
		product.CategoryIDs = input.CategoryIDs
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Price cannot be negative"), "update product")
		}
		product.Price = *input.Price
	}
	if input.CompareAtPrice != nil {
		product.CompareAtPrice = input.CompareAtPrice
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Stock cannot be negative"), "update product")
		}
		product.Stock = *input.Stock
	}
	if input.SKU != nil {
		product.SKU = entity.NormalizeSKU(*input.SKU)
	}
	if input.Tags != nil {
		product.Tags = input.Tags
	}
	if input.Images != nil {
		product.Images = input.Images
		product.EnsurePrimaryImage()
	}
	if input.IsFeatured != nil {
		product.IsFeatured = *input.IsFeatured
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, translate(err, "failed to update product")
	}
	srv.invalidate(ctx, product, oldSlug)

	return product, nil
}

// ToggleActive sets or flips the active flag.
func (srv *productService) ToggleActive(ctx context.Context, actor usecase.Actor, productID uuid.UUID, active *bool) (*entity.Product, error) {
	product, err := srv.ownedProduct(ctx, actor, productID)
	if err != nil {
		return nil, err
	}

	if active != nil {
		product.IsActive = *active
	} else {
		product.IsActive = !product.IsActive
	}

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, translate(err, "failed to update product status")
	}
	srv.invalidate(ctx, product, "")
	srv.log(ctx).Info("Product status changed", slog.Any("productID", productID), slog.Bool("active", product.IsActive))

	return product, nil
}

// DeleteProduct removes the product and its stored images.
func (srv *productService) DeleteProduct(ctx context.Context, actor usecase.Actor, productID uuid.UUID) error {
	product, err := srv.ownedProduct(ctx, actor, productID)
	if err != nil {
		return err
	}

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		return translate(err, "failed to delete product")
	}
	srv.invalidate(ctx, product, "")

	for _, img := range product.Images {
		if img.Key == "" {
			continue
		}
		if err := srv.storage.Delete(ctx, img.Key); err != nil {
			srv.log(ctx).Warn("Failed to delete product image", slog.String("key", img.Key), slog.Any("error", err))
		}
	}
	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID))

	return nil
}

// CreateVariant adds a variant. The first variant, or one flagged default, becomes the only default.
func (srv *productService) CreateVariant(ctx context.Context, actor usecase.Actor, productID uuid.UUID, input *usecase.CreateVariantInput) (*entity.ProductVariant, error) {
	product, err := srv.ownedProduct(ctx, actor, productID)
	if err != nil {
		return nil, err
	}

	sku := entity.NormalizeSKU(input.SKU)
	if sku == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("SKU is required"), "create variant")
	}
	if input.Price.IsNegative() || input.StockQuantity < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Price and stock cannot be negative"), "create variant")
	}

	now := srv.clock.now()
	variant := &entity.ProductVariant{
		ID:            uuid.New(),
		ProductID:     productID,
		SKU:           sku,
		Attributes:    input.Attributes,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		Weight:        input.Weight,
		Barcode:       input.Barcode,
		IsDefault:     input.IsDefault || len(product.Variants) == 0,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		variantRepo := repoFactory.NewVariantRepository()
		if variant.IsDefault {
			if err := variantRepo.ClearDefault(ctx, productID); err != nil {
				return errors.Wrap(err, "failed to clear default variant")
			}
		}

		return variantRepo.Create(ctx, variant)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create variant")
	}
	srv.invalidate(ctx, product, "")

	return variant, nil
}

// UploadImages stores the files and appends them to the product gallery.
func (srv *productService) UploadImages(ctx context.Context, actor usecase.Actor, productID uuid.UUID, files []*usecase.FileUpload) (*entity.Product, error) {
	if len(files) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("At least one image is required"), "upload images")
	}

	product, err := srv.ownedProduct(ctx, actor, productID)
	if err != nil {
		return nil, err
	}

	stored, err := uploadAll(ctx, srv.storage, srv.log(ctx), productImageFolder+"/"+productID.String(), files)
	if err != nil {
		return nil, err
	}
	for _, obj := range stored {
		product.Images = append(product.Images, entity.ProductImage{Key: obj.Key, URL: obj.URL})
	}
	product.EnsurePrimaryImage()

	if err := srv.productRepo.Update(ctx, product); err != nil {
		return nil, translate(err, "failed to save product images")
	}
	srv.invalidate(ctx, product, "")

	return product, nil
}

// CreateListing offers the product, or one of its variants, under the caller's seller profile.
func (srv *productService) CreateListing(ctx context.Context, actor usecase.Actor, productID uuid.UUID, input *usecase.CreateListingInput) (*entity.ProductListing, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, translate(err, "failed to find product")
	}

	sellerID := product.SellerID
	if !actor.IsAdmin() {
		if sellerID, err = resolveSellerID(ctx, srv.sellerRepo, actor, nil); err != nil {
			return nil, err
		}
	}

	if input.VariantID != nil {
		variant, err := srv.variantRepo.FindByID(ctx, *input.VariantID)
		if err != nil {
			return nil, translate(err, "failed to find variant")
		}
		if variant.ProductID != productID {
			return nil, errors.Wrap(domainerrors.ErrVariantNotFound, "variant belongs to another product")
		}
	}
	if input.Price.IsNegative() || input.StockQuantity < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Price and stock cannot be negative"), "create listing")
	}

	now := srv.clock.now()
	listing := &entity.ProductListing{
		ID:            uuid.New(),
		ProductID:     productID,
		VariantID:     input.VariantID,
		SellerID:      sellerID,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
		IsAvailable:   input.StockQuantity > 0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := srv.listingRepo.Create(ctx, listing); err != nil {
		return nil, errors.Wrap(err, "failed to create listing")
	}

	return listing, nil
}

// UpdateListingStock adds, subtracts or sets the listing stock.
func (srv *productService) UpdateListingStock(ctx context.Context, actor usecase.Actor, listingID uuid.UUID, quantity int, op entity.StockOperation) (*entity.ProductListing, error) {
	if quantity < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Quantity cannot be negative"), "update listing stock")
	}
	switch op {
	case entity.StockAdd, entity.StockSubtract, entity.StockSet:
	default:
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Operation must be add, subtract or set"), string(op))
	}

	listing, err := srv.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		return nil, translate(err, "failed to find listing")
	}
	if err := authorizeSellerResource(ctx, srv.sellerRepo, actor, listing.SellerID); err != nil {
		return nil, err
	}

	listing.ApplyStock(quantity, op)
	listing.UpdatedAt = srv.clock.now()
	if err := srv.listingRepo.Update(ctx, listing); err != nil {
		return nil, translate(err, "failed to update listing stock")
	}

	return listing, nil
}
