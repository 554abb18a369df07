package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/YelzhanWeb/restaurant/internal/domain"
	"github.com/YelzhanWeb/restaurant/internal/interfaces"
)

type menuRepository struct {
	db DB
}

func NewMenuRepository(db DB) interfaces.MenuRepository {
	return &menuRepository{db: db}
}

// ResolveItem reads current price and availability straight from the store.
// The order builder depends on this being uncached.
func (r *menuRepository) ResolveItem(ctx context.Context, menuItemID int) (*domain.MenuItemRef, error) {
	query := `SELECT id, name, price, is_available FROM menu_items WHERE id = $1`

	var ref domain.MenuItemRef
	err := r.db.QueryRow(ctx, query, menuItemID).Scan(&ref.ID, &ref.Name, &ref.Price, &ref.IsAvailable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to resolve menu item: %w", err)
	}
	return &ref, nil
}

func (r *menuRepository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	query := `
		SELECT c.id, c.name, c.description, c.image_url, c.sort_order, c.is_active,
		       c.created_at, c.updated_at,
		       COUNT(mi.id) AS item_count,
		       COUNT(mi.id) FILTER (WHERE mi.is_available) AS available_count
		FROM categories c
		LEFT JOIN menu_items mi ON c.id = mi.category_id
		WHERE c.is_active
		GROUP BY c.id
		ORDER BY c.sort_order, c.name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL, &c.SortOrder,
			&c.IsActive, &c.CreatedAt, &c.UpdatedAt, &c.ItemCount, &c.AvailableCount); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (r *menuRepository) FindCategoryByID(ctx context.Context, id int) (*domain.Category, error) {
	query := `
		SELECT id, name, description, image_url, sort_order, is_active, created_at, updated_at
		FROM categories WHERE id = $1
	`
	var c domain.Category
	err := r.db.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description, &c.ImageURL,
		&c.SortOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to load category: %w", err)
	}
	return &c, nil
}

func (r *menuRepository) CreateCategory(ctx context.Context, c *domain.Category) error {
	query := `
		INSERT INTO categories (name, description, image_url, sort_order)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, c.Name, c.Description, c.ImageURL, c.SortOrder).
		Scan(&c.ID, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert category: %w", err)
	}
	return nil
}

func (r *menuRepository) UpdateCategory(ctx context.Context, c *domain.Category) error {
	query := `
		UPDATE categories
		SET name = $1, description = $2, image_url = $3, sort_order = $4, is_active = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query, c.Name, c.Description, c.ImageURL, c.SortOrder, c.IsActive, c.ID).
		Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	return nil
}

func (r *menuRepository) DeleteCategory(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

func (r *menuRepository) CountCategoryItems(ctx context.Context, categoryID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items WHERE category_id = $1`, categoryID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count category items: %w", err)
	}
	return count, nil
}

const menuItemSelect = `
	SELECT mi.id, mi.category_id, c.name, mi.name, mi.description, mi.price,
	       mi.image_url, mi.ingredients, mi.allergens, mi.preparation_time,
	       mi.calories, mi.sort_order, mi.is_available, mi.is_featured,
	       mi.created_at, mi.updated_at
	FROM menu_items mi
	LEFT JOIN categories c ON mi.category_id = c.id
`

func scanMenuItem(row Row, item *domain.MenuItem) error {
	return row.Scan(&item.ID, &item.CategoryID, &item.CategoryName, &item.Name,
		&item.Description, &item.Price, &item.ImageURL, &item.Ingredients,
		&item.Allergens, &item.PreparationTime, &item.Calories, &item.SortOrder,
		&item.IsAvailable, &item.IsFeatured, &item.CreatedAt, &item.UpdatedAt)
}

func (r *menuRepository) ListItems(ctx context.Context, filter interfaces.MenuItemFilter) ([]*domain.MenuItem, error) {
	query := menuItemSelect + ` WHERE 1=1`
	var args []any

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		query += ` AND mi.category_id = $` + strconv.Itoa(len(args))
	}
	if filter.AvailableOnly {
		query += ` AND mi.is_available`
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		query += ` AND (mi.name ILIKE $` + n + ` OR mi.description ILIKE $` + n + `)`
	}

	query += ` ORDER BY mi.sort_order, mi.name`

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit)
	query += ` LIMIT $` + strconv.Itoa(len(args))
	args = append(args, offset)
	query += ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []*domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.CategoryID, &item.CategoryName, &item.Name,
			&item.Description, &item.Price, &item.ImageURL, &item.Ingredients,
			&item.Allergens, &item.PreparationTime, &item.Calories, &item.SortOrder,
			&item.IsAvailable, &item.IsFeatured, &item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (r *menuRepository) FindItemByID(ctx context.Context, id int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := scanMenuItem(r.db.QueryRow(ctx, menuItemSelect+` WHERE mi.id = $1`, id), &item)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMenuItemNotFound
		}
		return nil, fmt.Errorf("failed to load menu item: %w", err)
	}
	return &item, nil
}

func (r *menuRepository) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	query := `
		INSERT INTO menu_items (category_id, name, description, price, image_url,
		                        ingredients, allergens, preparation_time, calories,
		                        sort_order, is_available, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		item.CategoryID, item.Name, item.Description, item.Price, item.ImageURL,
		item.Ingredients, item.Allergens, item.PreparationTime, item.Calories,
		item.SortOrder, item.IsAvailable, item.IsFeatured,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert menu item: %w", err)
	}
	return nil
}

func (r *menuRepository) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	query := `
		UPDATE menu_items
		SET category_id = $1, name = $2, description = $3, price = $4, image_url = $5,
		    ingredients = $6, allergens = $7, preparation_time = $8, calories = $9,
		    sort_order = $10, is_available = $11, is_featured = $12, updated_at = NOW()
		WHERE id = $13
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		item.CategoryID, item.Name, item.Description, item.Price, item.ImageURL,
		item.Ingredients, item.Allergens, item.PreparationTime, item.Calories,
		item.SortOrder, item.IsAvailable, item.IsFeatured, item.ID,
	).Scan(&item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrMenuItemNotFound
		}
		return fmt.Errorf("failed to update menu item: %w", err)
	}
	return nil
}

func (r *menuRepository) DeleteItem(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMenuItemNotFound
	}
	return nil
}
