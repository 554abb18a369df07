package menu

import (
	"context"
	"fmt"

	"github.com/YelzhanWeb/restaurant/internal/adapter/logger"
	"github.com/YelzhanWeb/restaurant/internal/domain"
	"github.com/YelzhanWeb/restaurant/internal/interfaces"
)

const (
	categoriesKey  = "menu:categories"
	itemsKeyPrefix = "menu:items:"
)

// Service serves the menu with a read-side cache over listings. Writes
// invalidate the affected keys; item resolution for order creation bypasses
// the cache entirely and lives on the repository.
type Service struct {
	repo  interfaces.MenuRepository
	cache interfaces.MenuCache
	lgr   logger.Logger
}

func NewService(repo interfaces.MenuRepository, cache interfaces.MenuCache, lgr logger.Logger) *Service {
	return &Service{repo: repo, cache: cache, lgr: lgr}
}

func (s *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	var cached []*domain.Category
	if err := s.cache.Get(ctx, categoriesKey, &cached); err == nil {
		return cached, nil
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, categoriesKey, categories); err != nil {
		s.lgr.Debug("menu_cache", "failed to cache categories", "", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return categories, nil
}

func (s *Service) CreateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	s.invalidate(ctx, categoriesKey)
	return c, nil
}

func (s *Service) UpdateCategory(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	if _, err := s.repo.FindCategoryByID(ctx, c.ID); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}
	s.invalidate(ctx, categoriesKey)
	return c, nil
}

// DeleteCategory refuses to delete a category that still has menu items.
func (s *Service) DeleteCategory(ctx context.Context, id int) error {
	count, err := s.repo.CountCategoryItems(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrCategoryHasItems
	}
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, categoriesKey)
	return nil
}

func (s *Service) ListItems(ctx context.Context, filter interfaces.MenuItemFilter) ([]*domain.MenuItem, error) {
	key := itemsKey(filter)

	var cached []*domain.MenuItem
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return cached, nil
	}

	items, err := s.repo.ListItems(ctx, filter)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, items); err != nil {
		s.lgr.Debug("menu_cache", "failed to cache menu items", "", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return items, nil
}

func (s *Service) GetItem(ctx context.Context, id int) (*domain.MenuItem, error) {
	return s.repo.FindItemByID(ctx, id)
}

func (s *Service) CreateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	if _, err := s.repo.FindCategoryByID(ctx, item.CategoryID); err != nil {
		return nil, err
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(ctx, itemsKeyPrefix+"*")
	s.invalidate(ctx, categoriesKey)
	return item, nil
}

func (s *Service) UpdateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	if _, err := s.repo.FindItemByID(ctx, item.ID); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	s.invalidate(ctx, itemsKeyPrefix+"*")
	s.invalidate(ctx, categoriesKey)
	return item, nil
}

func (s *Service) DeleteItem(ctx context.Context, id int) error {
	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, itemsKeyPrefix+"*")
	s.invalidate(ctx, categoriesKey)
	return nil
}

func (s *Service) invalidate(ctx context.Context, pattern string) {
	if err := s.cache.Invalidate(ctx, pattern); err != nil {
		s.lgr.Debug("menu_cache", "failed to invalidate cache", "", map[string]interface{}{
			"pattern": pattern,
			"error":   err.Error(),
		})
	}
}

func itemsKey(filter interfaces.MenuItemFilter) string {
	categoryID := 0
	if filter.CategoryID != nil {
		categoryID = *filter.CategoryID
	}
	return fmt.Sprintf("%s%d:%t:%s:%d:%d",
		itemsKeyPrefix, categoryID, filter.AvailableOnly, filter.Search, filter.Limit, filter.Offset)
}
