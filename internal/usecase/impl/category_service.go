package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/usecase"
	"marketplace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
	clock        clock
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository, logger *slog.Logger) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// CreateCategory stores a category; its level derives from the parent.
func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CategoryInput) (*entity.Category, error) {
	if input.Name == nil || util.Slugify(*input.Name) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Category name is required"), "create category")
	}

	now := srv.clock.now()
	category := &entity.Category{
		ID:        uuid.New(),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyCategoryInput(category, input)

	if input.ParentID != nil {
		parent, err := srv.categoryRepo.FindByID(ctx, *input.ParentID)
		if err != nil {
			return nil, translate(err, "failed to find parent category")
		}
		category.AttachParent(parent)
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}
	srv.log(ctx).Info("Category created", slog.Any("categoryID", category.ID), slog.Int("level", category.Level))

	return category, nil
}

func applyCategoryInput(category *entity.Category, input *usecase.CategoryInput) {
	if input.Name != nil {
		category.Name = strings.TrimSpace(*input.Name)
		category.Slug = util.Slugify(category.Name)
	}
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.Image != nil {
		category.Image = *input.Image
	}
	if input.SortOrder != nil {
		category.SortOrder = *input.SortOrder
	}
	if input.IsFeatured != nil {
		category.IsFeatured = *input.IsFeatured
	}
	if input.IsActive != nil {
		category.IsActive = *input.IsActive
	}
}

// GetCategory resolves an id or a slug.
func (srv *categoryService) GetCategory(ctx context.Context, idOrSlug string) (*entity.Category, error) {
	var (
		category *entity.Category
		err      error
	)
	if id, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
		category, err = srv.categoryRepo.FindByID(ctx, id)
	} else {
		category, err = srv.categoryRepo.FindBySlug(ctx, idOrSlug)
	}
	if err != nil {
		return nil, translate(err, "failed to find category")
	}

	return category, nil
}

// ListCategories returns the flat list or the nested tree.
func (srv *categoryService) ListCategories(ctx context.Context, activeOnly, tree bool) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}
	if tree {
		return entity.BuildCategoryTree(categories), nil
	}

	return categories, nil
}

// UpdateCategory applies the non-nil fields. Re-parenting recomputes the level of the whole subtree.
func (srv *categoryService) UpdateCategory(ctx context.Context, id uuid.UUID, input *usecase.CategoryInput) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, "failed to find category")
	}
	if input.Name != nil && util.Slugify(*input.Name) == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Category name is required"), "update category")
	}

	previousLevel := category.Level
	applyCategoryInput(category, input)

	var all []*entity.Category
	switch {
	case input.ClearParent:
		category.AttachParent(nil)
	case input.ParentID != nil:
		all, err = srv.categoryRepo.List(ctx, false)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list categories")
		}
		parent, err := srv.categoryRepo.FindByID(ctx, *input.ParentID)
		if err != nil {
			return nil, translate(err, "failed to find parent category")
		}
		if isDescendantOrSelf(all, parent.ID, id) {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("A category cannot be moved under itself"), "update category")
		}
		category.AttachParent(parent)
	}
	category.UpdatedAt = srv.clock.now()

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		return nil, translate(err, "failed to update category")
	}

	if category.Level != previousLevel {
		if all == nil {
			if all, err = srv.categoryRepo.List(ctx, false); err != nil {
				return nil, errors.Wrap(err, "failed to list categories")
			}
		}
		if err := srv.relevelChildren(ctx, all, category); err != nil {
			return nil, err
		}
	}

	return category, nil
}

// isDescendantOrSelf walks up from candidate and reports whether it reaches root.
func isDescendantOrSelf(all []*entity.Category, candidate, root uuid.UUID) bool {
	parents := make(map[uuid.UUID]*uuid.UUID, len(all))
	for _, c := range all {
		parents[c.ID] = c.ParentID
	}

	seen := make(map[uuid.UUID]bool)
	for cur := &candidate; cur != nil && !seen[*cur]; cur = parents[*cur] {
		if *cur == root {
			return true
		}
		seen[*cur] = true
	}

	return false
}

func (srv *categoryService) relevelChildren(ctx context.Context, all []*entity.Category, parent *entity.Category) error {
	for _, c := range all {
		if c.ParentID == nil || *c.ParentID != parent.ID {
			continue
		}
		c.AttachParent(parent)
		c.UpdatedAt = srv.clock.now()
		if err := srv.categoryRepo.Update(ctx, c); err != nil {
			return errors.Wrap(err, "failed to update child category level")
		}
		if err := srv.relevelChildren(ctx, all, c); err != nil {
			return err
		}
	}

	return nil
}

// DeleteCategory removes a leaf category.
func (srv *categoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	all, err := srv.categoryRepo.List(ctx, false)
	if err != nil {
		return errors.Wrap(err, "failed to list categories")
	}
	for _, c := range all {
		if c.ParentID != nil && *c.ParentID == id {
			return errors.Wrap(domainerrors.ErrValidationFailed.WithMessage("Category still has subcategories"), "delete category")
		}
	}

	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		return translate(err, "failed to delete category")
	}
	srv.log(ctx).Info("Category deleted", slog.Any("categoryID", id))

	return nil
}
