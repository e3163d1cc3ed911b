package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockRepo "marketplace/internal/mocks/repository"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCategoryService(t *testing.T) (usecase.CategoryUsecase, *mockRepo.MockCategoryRepository) {
	repo := mockRepo.NewMockCategoryRepository(t)
	srv := NewCategoryService(repo, newDiscardLogger())
	srv.(*categoryService).clock = fixedClock()

	return srv, repo
}

func TestCategoryService_CreateCategory_LevelFollowsParent(t *testing.T) {
	srv, repo := createTestCategoryService(t)
	parent := &entity.Category{ID: uuid.New(), Name: "Audio", Level: 1}

	repo.EXPECT().FindByID(mock.Anything, parent.ID).Return(parent, nil)
	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Category")).Return(nil)

	category, err := srv.CreateCategory(context.Background(), &usecase.CategoryInput{
		Name:     strPtr("Over-Ear Headphones"),
		ParentID: &parent.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, category.Level)
	assert.Equal(t, parent.ID, *category.ParentID)
	assert.Equal(t, "over-ear-headphones", category.Slug)
	assert.True(t, category.IsActive)
}

func TestCategoryService_CreateCategory_Root(t *testing.T) {
	srv, repo := createTestCategoryService(t)

	repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Category")).Return(nil)

	category, err := srv.CreateCategory(context.Background(), &usecase.CategoryInput{Name: strPtr("Electronics")})
	require.NoError(t, err)
	assert.Equal(t, 0, category.Level)
	assert.Nil(t, category.ParentID)
}

func TestCategoryService_CreateCategory_NameRequired(t *testing.T) {
	srv, _ := createTestCategoryService(t)

	_, err := srv.CreateCategory(context.Background(), &usecase.CategoryInput{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCategoryService_UpdateCategory_RejectsMoveUnderDescendant(t *testing.T) {
	srv, repo := createTestCategoryService(t)
	root := &entity.Category{ID: uuid.New(), Level: 0}
	child := &entity.Category{ID: uuid.New(), ParentID: &root.ID, Level: 1}

	repo.EXPECT().FindByID(mock.Anything, root.ID).Return(root, nil)
	repo.EXPECT().List(mock.Anything, false).Return([]*entity.Category{root, child}, nil)
	repo.EXPECT().FindByID(mock.Anything, child.ID).Return(child, nil)

	_, err := srv.UpdateCategory(context.Background(), root.ID, &usecase.CategoryInput{ParentID: &child.ID})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCategoryService_UpdateCategory_ReparentRelevelsSubtree(t *testing.T) {
	srv, repo := createTestCategoryService(t)
	home := &entity.Category{ID: uuid.New(), Level: 0}
	audio := &entity.Category{ID: uuid.New(), Level: 0}
	speakers := &entity.Category{ID: uuid.New(), ParentID: &audio.ID, Level: 1}
	soundbars := &entity.Category{ID: uuid.New(), ParentID: &speakers.ID, Level: 2}

	repo.EXPECT().FindByID(mock.Anything, audio.ID).Return(audio, nil)
	repo.EXPECT().List(mock.Anything, false).Return([]*entity.Category{home, audio, speakers, soundbars}, nil)
	repo.EXPECT().FindByID(mock.Anything, home.ID).Return(home, nil)
	repo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*entity.Category")).Return(nil).Times(3)

	got, err := srv.UpdateCategory(context.Background(), audio.ID, &usecase.CategoryInput{ParentID: &home.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, got.Level)
	assert.Equal(t, 2, speakers.Level)
	assert.Equal(t, 3, soundbars.Level)
}

func TestCategoryService_ListCategories_Tree(t *testing.T) {
	srv, repo := createTestCategoryService(t)
	root := &entity.Category{ID: uuid.New()}
	leaf := &entity.Category{ID: uuid.New(), ParentID: &root.ID, Level: 1}

	repo.EXPECT().List(mock.Anything, true).Return([]*entity.Category{root, leaf}, nil)

	tree, err := srv.ListCategories(context.Background(), true, true)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	assert.Equal(t, []*entity.Category{leaf}, tree[0].Children)
}
