package postgres

import (
	"context"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productSorts whitelists the accepted sort keys. A leading "-" means descending.
var productSorts = map[string]string{
	"createdAt":      "products.created_at ASC",
	"-createdAt":     "products.created_at DESC",
	"price":          "products.price ASC",
	"-price":         "products.price DESC",
	"name":           "products.name ASC",
	"-name":          "products.name DESC",
	"averageRating":  "products.average_rating ASC",
	"-averageRating": "products.average_rating DESC",
	"totalSold":      "products.total_sold ASC",
	"-totalSold":     "products.total_sold DESC",
}

const defaultProductSort = "products.created_at DESC"

const incrementViewsSQL = `UPDATE products SET views = views + 1 WHERE id = ? RETURNING views`

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// Create persists a product together with its category links.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	product.ID = newID(product.ID)
	productM := fromProductDomain(product)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("*").Omit("Brand", "Categories").Create(productM).Error; err != nil {
			return err
		}

		return replaceProductCategories(tx, productM.ID, product.CategoryIDs)
	})
	if err != nil {
		return translateProductError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindByID retrieves a product with its brand, categories and variants.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	return repo.findOne(ctx, "products.id = ?", id)
}

// FindBySlug retrieves a product by its unique slug.
func (repo *productRepository) FindBySlug(ctx context.Context, slug string) (*entity.Product, error) {
	return repo.findOne(ctx, "products.slug = ?", slug)
}

func (repo *productRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Brand").
		Preload("Categories").
		Where(query, args...).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	var variantModels []*model.ProductVariantModel
	if err := repo.db.WithContext(ctx).
		Where("product_id = ?", productM.ID).
		Order("is_default DESC, created_at ASC").
		Find(&variantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load product variants")
	}

	product := toProductDomain(&productM)
	for _, variantM := range variantModels {
		product.Variants = append(product.Variants, toVariantDomain(variantM))
	}

	return product, nil
}

// FindByIDs retrieves the products with the given ids in no particular order.
func (repo *productRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	return toProductDomains(productModels), nil
}

// Update saves the editable columns and re-links categories. Counters are left alone.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	productM.UpdatedAt = time.Now()

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.ProductModel{}).
			Where("id = ?", product.ID).
			Select("*").
			Omit("id", "seller_id", "created_at", "average_rating", "total_reviews", "total_sold", "views", "Brand", "Categories").
			Updates(productM)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return repository.ErrProductNotFound
		}

		return replaceProductCategories(tx, product.ID, product.CategoryIDs)
	})
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return err
		}

		return translateProductError(err, "failed to update product")
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Delete removes a product, its category links, variants and listings.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM product_categories WHERE product_id = ?", id).Error; err != nil {
			return errors.Wrap(err, "failed to unlink product categories")
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductListingModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete product listings")
		}
		if err := tx.Where("product_id = ?", id).Delete(&model.ProductVariantModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete product variants")
		}

		result := tx.Where("id = ?", id).Delete(&model.ProductModel{})
		if result.Error != nil {
			return errors.Wrap(result.Error, "failed to delete product")
		}
		if result.RowsAffected == 0 {
			return repository.ErrProductNotFound
		}

		return nil
	})
}

// List applies every filter in SQL so pagination counts stay exact.
// A price bound matches the product price or the price of any active variant.
func (repo *productRepository) List(ctx context.Context, filter entity.ProductFilter, page entity.Pagination) ([]*entity.Product, int64, error) {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if !filter.IncludeInactive {
		query = query.Where("products.is_active = ?", true)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("products.name ILIKE ? OR products.description ILIKE ?", pattern, pattern)
	}
	if filter.CategoryID != nil {
		query = query.Where("EXISTS (SELECT 1 FROM product_categories pc WHERE pc.product_id = products.id AND pc.category_id = ?)", *filter.CategoryID)
	}
	if filter.BrandID != nil {
		query = query.Where("products.brand_id = ?", *filter.BrandID)
	}
	if filter.SellerID != nil {
		query = query.Where("products.seller_id = ?", *filter.SellerID)
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil {
		productCond, variantCond, args := priceBounds(filter)
		query = query.Where(
			"("+productCond+") OR EXISTS (SELECT 1 FROM product_variants pv WHERE pv.product_id = products.id AND pv.is_active AND "+variantCond+")",
			append(args, args...)...,
		)
	}
	if filter.MinRating > 0 {
		query = query.Where("products.average_rating >= ?", filter.MinRating)
	}
	if filter.InStock {
		query = query.Where("products.stock > 0")
	}
	if filter.Featured {
		query = query.Where("products.is_featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	order, ok := productSorts[filter.Sort]
	if !ok {
		order = defaultProductSort
	}

	var productModels []*model.ProductModel
	if err := query.
		Preload("Brand").
		Preload("Categories").
		Scopes(paginate(page)).
		Order(order).
		Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	return toProductDomains(productModels), total, nil
}

// priceBounds renders the same bounds against the product and variant price columns.
func priceBounds(filter entity.ProductFilter) (productCond, variantCond string, args []any) {
	switch {
	case filter.MinPrice != nil && filter.MaxPrice != nil:
		return "products.price BETWEEN ? AND ?", "pv.price BETWEEN ? AND ?", []any{*filter.MinPrice, *filter.MaxPrice}
	case filter.MinPrice != nil:
		return "products.price >= ?", "pv.price >= ?", []any{*filter.MinPrice}
	default:
		return "products.price <= ?", "pv.price <= ?", []any{*filter.MaxPrice}
	}
}

// Related returns active products sharing a category with the product, best rated first.
func (repo *productRepository) Related(ctx context.Context, productID uuid.UUID, limit int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Categories").
		Where("products.id <> ? AND products.is_active = ?", productID, true).
		Where(`EXISTS (
			SELECT 1 FROM product_categories pc
			JOIN product_categories own ON own.category_id = pc.category_id
			WHERE pc.product_id = products.id AND own.product_id = ?)`, productID).
		Order("products.average_rating DESC").
		Limit(limit).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find related products")
	}

	return toProductDomains(productModels), nil
}

// IncrementViews bumps the view counter in place and returns the stored value.
func (repo *productRepository) IncrementViews(ctx context.Context, id uuid.UUID) (int, error) {
	var views int
	result := repo.db.WithContext(ctx).Raw(incrementViewsSQL, id).Scan(&views)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to increment product views")
	}
	if result.RowsAffected == 0 {
		return 0, repository.ErrProductNotFound
	}

	return views, nil
}

// DecrementStock subtracts qty when enough stock remains. The predicate and the
// write run as one statement so concurrent checkouts cannot oversell.
func (repo *productRepository) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ? AND stock >= ?", id, qty).
		UpdateColumns(map[string]any{
			"stock":      gorm.Expr("stock - ?", qty),
			"total_sold": gorm.Expr("total_sold + ?", qty),
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement stock")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ProductModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check product")
	}
	if count == 0 {
		return repository.ErrProductNotFound
	}

	return repository.ErrInsufficientStock
}

// RestoreStock returns qty to stock and reverses the sold counter.
func (repo *productRepository) RestoreStock(ctx context.Context, id uuid.UUID, qty int) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"stock":      gorm.Expr("stock + ?", qty),
			"total_sold": gorm.Expr("GREATEST(total_sold - ?, 0)", qty),
		}).Error; err != nil {
		return errors.Wrap(err, "failed to restore stock")
	}

	return nil
}

// UpdateRating stores the aggregate of approved reviews.
func (repo *productRepository) UpdateRating(ctx context.Context, id uuid.UUID, summary entity.RatingSummary) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		UpdateColumns(map[string]any{
			"average_rating": entity.RoundRating(summary.Average),
			"total_reviews":  summary.Count,
		}).Error; err != nil {
		return errors.Wrap(err, "failed to update product rating")
	}

	return nil
}

// CountBySeller counts the products owned by a seller.
func (repo *productRepository) CountBySeller(ctx context.Context, sellerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("seller_id = ?", sellerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count seller products")
	}

	return count, nil
}

// replaceProductCategories rewrites the join rows without touching the categories themselves.
func replaceProductCategories(tx *gorm.DB, productID uuid.UUID, categoryIDs []uuid.UUID) error {
	if err := tx.Exec("DELETE FROM product_categories WHERE product_id = ?", productID).Error; err != nil {
		return err
	}
	if len(categoryIDs) == 0 {
		return nil
	}

	rows := make([]map[string]any, 0, len(categoryIDs))
	seen := make(map[uuid.UUID]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		rows = append(rows, map[string]any{"product_id": productID, "category_id": id})
	}

	return tx.Table("product_categories").Create(rows).Error
}

func translateProductError(err error, msg string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ConflictError(fieldLabel(conflictingColumn(err, "products", "slug")))
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails("unknown category or brand reference")
	case isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails("stock cannot be negative")
	default:
		return domainerrors.NewDatabaseExecuteError(err, msg)
	}
}

// --- Mapper Functions ---

func toProductDomains(productModels []*model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:               data.ID,
		Name:             data.Name,
		Slug:             data.Slug,
		Description:      data.Description,
		ShortDescription: data.ShortDescription,
		SellerID:         data.SellerID,
		BrandID:          data.BrandID,
		Brand:            toBrandDomain(data.Brand),
		CategoryIDs:      make([]uuid.UUID, 0, len(data.Categories)),
		Price:            data.Price,
		CompareAtPrice:   data.CompareAtPrice,
		Stock:            data.Stock,
		SKU:              data.SKU,
		Images:           make([]entity.ProductImage, 0, len(data.Images)),
		Tags:             data.Tags,
		AverageRating:    data.AverageRating,
		TotalReviews:     data.TotalReviews,
		TotalSold:        data.TotalSold,
		Views:            data.Views,
		IsFeatured:       data.IsFeatured,
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}

	for _, categoryM := range data.Categories {
		product.Categories = append(product.Categories, toCategoryDomain(categoryM))
		product.CategoryIDs = append(product.CategoryIDs, categoryM.ID)
	}
	for _, img := range data.Images {
		product.Images = append(product.Images, entity.ProductImage{Key: img.Key, URL: img.URL, IsPrimary: img.IsPrimary})
	}

	return product
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	images := make([]model.ImageJSON, 0, len(data.Images))
	for _, img := range data.Images {
		images = append(images, model.ImageJSON{Key: img.Key, URL: img.URL, IsPrimary: img.IsPrimary})
	}

	return &model.ProductModel{
		ID:               data.ID,
		Name:             data.Name,
		Slug:             data.Slug,
		Description:      data.Description,
		ShortDescription: data.ShortDescription,
		SellerID:         data.SellerID,
		BrandID:          data.BrandID,
		Price:            data.Price,
		CompareAtPrice:   data.CompareAtPrice,
		Stock:            data.Stock,
		SKU:              data.SKU,
		Images:           images,
		Tags:             data.Tags,
		AverageRating:    data.AverageRating,
		TotalReviews:     data.TotalReviews,
		TotalSold:        data.TotalSold,
		Views:            data.Views,
		IsFeatured:       data.IsFeatured,
		IsActive:         data.IsActive,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
