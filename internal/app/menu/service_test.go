package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/YelzhanWeb/restaurant/internal/adapter/logger"
	"github.com/YelzhanWeb/restaurant/internal/domain"
	"github.com/YelzhanWeb/restaurant/internal/mocks"
)

var errMiss = errors.New("cache miss")

func newTestService(repo *mocks.MenuRepository, cache *mocks.MenuCache) *Service {
	return NewService(repo, cache, logger.New("test"))
}

func TestListCategoriesCacheMiss(t *testing.T) {
	repo := new(mocks.MenuRepository)
	cache := new(mocks.MenuCache)
	svc := newTestService(repo, cache)

	categories := []*domain.Category{{ID: 1, Name: "Starters"}}
	cache.On("Get", mock.Anything, categoriesKey, mock.Anything).Return(errMiss)
	repo.On("ListCategories", mock.Anything).Return(categories, nil)
	cache.On("Set", mock.Anything, categoriesKey, categories).Return(nil)

	got, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, categories, got)
	cache.AssertCalled(t, "Set", mock.Anything, categoriesKey, categories)
}

func TestListCategoriesCacheHitSkipsStore(t *testing.T) {
	repo := new(mocks.MenuRepository)
	cache := new(mocks.MenuCache)
	svc := newTestService(repo, cache)

	cache.On("Get", mock.Anything, categoriesKey, mock.Anything).Return(nil)

	_, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	repo.AssertNotCalled(t, "ListCategories", mock.Anything)
}

func TestListCategoriesCacheWriteFailureIsNotFatal(t *testing.T) {
	repo := new(mocks.MenuRepository)
	cache := new(mocks.MenuCache)
	svc := newTestService(repo, cache)

	categories := []*domain.Category{{ID: 1, Name: "Starters"}}
	cache.On("Get", mock.Anything, categoriesKey, mock.Anything).Return(errMiss)
	repo.On("ListCategories", mock.Anything).Return(categories, nil)
	cache.On("Set", mock.Anything, categoriesKey, categories).Return(errors.New("redis down"))

	got, err := svc.ListCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, categories, got)
}

func TestCreateCategoryInvalidatesCache(t *testing.T) {
	repo := new(mocks.MenuRepository)
	cache := new(mocks.MenuCache)
	svc := newTestService(repo, cache)

	repo.On("CreateCategory", mock.Anything, mock.Anything).Return(nil)
	cache.On("Invalidate", mock.Anything, categoriesKey).Return(nil)

	_, err := svc.CreateCategory(context.Background(), &domain.Category{Name: "Desserts"})
	require.NoError(t, err)
	cache.AssertCalled(t, "Invalidate", mock.Anything, categoriesKey)
}

func TestDeleteCategoryBlockedByItems(t *testing.T) {
	repo := new(mocks.MenuRepository)
	cache := new(mocks.MenuCache)
	svc := newTestService(repo, cache)

	repo.On("CountCategoryItems", mock.Anything, 3).Return(4, nil)

	err := svc.DeleteCategory(context.Background(), 3)
	assert.ErrorIs(t, err, domain.ErrCategoryHasItems)
	repo.AssertNotCalled(t, "DeleteCategory", mock.Anything, mock.Anything)
}

func TestDeleteEmptyCategory(t *testing.T) {
	repo := new(mocks.MenuRepository)
	cache := new(mocks.MenuCache)
	svc := newTestService(repo, cache)

	repo.On("CountCategoryItems", mock.Anything, 3).Return(0, nil)
	repo.On("DeleteCategory", mock.Anything, 3).Return(nil)
	cache.On("Invalidate", mock.Anything, categoriesKey).Return(nil)

	require.NoError(t, svc.DeleteCategory(context.Background(), 3))
}

func TestCreateItemRequiresExistingCategory(t *testing.T) {
	repo := new(mocks.MenuRepository)
	cache := new(mocks.MenuCache)
	svc := newTestService(repo, cache)

	repo.On("FindCategoryByID", mock.Anything, 99).Return(nil, domain.ErrCategoryNotFound)

	_, err := svc.CreateItem(context.Background(), &domain.MenuItem{CategoryID: 99, Name: "Tiramisu"})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	repo.AssertNotCalled(t, "CreateItem", mock.Anything, mock.Anything)
}

func TestUpdateItemInvalidatesListings(t *testing.T) {
	repo := new(mocks.MenuRepository)
	cache := new(mocks.MenuCache)
	svc := newTestService(repo, cache)

	item := &domain.MenuItem{ID: 7, CategoryID: 1, Name: "Tiramisu"}
	repo.On("FindItemByID", mock.Anything, 7).Return(item, nil)
	repo.On("UpdateItem", mock.Anything, item).Return(nil)
	cache.On("Invalidate", mock.Anything, itemsKeyPrefix+"*").Return(nil)
	cache.On("Invalidate", mock.Anything, categoriesKey).Return(nil)

	_, err := svc.UpdateItem(context.Background(), item)
	require.NoError(t, err)
	cache.AssertCalled(t, "Invalidate", mock.Anything, itemsKeyPrefix+"*")
}
