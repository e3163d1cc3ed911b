package impl

import (
	"context"
	"strings"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"
	"marketplace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// brandService implements the BrandUsecase interface.
type brandService struct {
	brandRepo repository.BrandRepository
	clock     clock
}

// NewBrandService is the constructor for brandService.
func NewBrandService(brandRepo repository.BrandRepository) usecase.BrandUsecase {
	return &brandService{brandRepo: brandRepo}
}

func applyBrandInput(brand *entity.Brand, input *usecase.BrandInput) {
	if input.Name != nil {
		brand.Name = strings.TrimSpace(*input.Name)
		brand.Slug = util.Slugify(brand.Name)
	}
	if input.Description != nil {
		brand.Description = *input.Description
	}
	if input.Logo != nil {
		brand.Logo = *input.Logo
	}
	if input.Website != nil {
		brand.Website = *input.Website
	}
	if input.IsFeatured != nil {
		brand.IsFeatured = *input.IsFeatured
	}
	if input.IsActive != nil {
		brand.IsActive = *input.IsActive
	}
}

// CreateBrand stores a brand. Names are unique.
func (srv *brandService) CreateBrand(ctx context.Context, input *usecase.BrandInput) (*entity.Brand, error) {
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Brand name is required"), "create brand")
	}

	now := srv.clock.now()
	brand := &entity.Brand{ID: uuid.New(), IsActive: true, CreatedAt: now, UpdatedAt: now}
	applyBrandInput(brand, input)

	if err := srv.brandRepo.Create(ctx, brand); err != nil {
		return nil, errors.Wrap(err, "failed to create brand")
	}

	return brand, nil
}

func (srv *brandService) GetBrand(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	brand, err := srv.brandRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "failed to find brand")
	}

	return brand, nil
}

func (srv *brandService) ListBrands(ctx context.Context, activeOnly bool) ([]*entity.Brand, error) {
	brands, err := srv.brandRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}

func (srv *brandService) UpdateBrand(ctx context.Context, id uuid.UUID, input *usecase.BrandInput) (*entity.Brand, error) {
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Brand name is required"), "update brand")
	}

	brand, err := srv.brandRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "failed to find brand")
	}
	applyBrandInput(brand, input)
	brand.UpdatedAt = srv.clock.now()

	if err := srv.brandRepo.Update(ctx, brand); err != nil {
		return nil, translate(err, "failed to update brand")
	}

	return brand, nil
}

func (srv *brandService) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	if err := srv.brandRepo.Delete(ctx, id); err != nil {
		return translate(err, "failed to delete brand")
	}

	return nil
}
