package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category groups menu items for presentation.
type Category struct {
	ID          int
	Name        string
	Description *string
	ImageURL    *string
	SortOrder   int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	ItemCount      int
	AvailableCount int
}

// MenuItem is a catalog entry. Price here is the live catalog price; orders
// snapshot it at creation time and never read it back.
type MenuItem struct {
	ID              int
	CategoryID      int
	CategoryName    *string
	Name            string
	Description     *string
	Price           decimal.Decimal
	ImageURL        *string
	Ingredients     *string
	Allergens       *string
	PreparationTime int
	Calories        *int
	SortOrder       int
	IsAvailable     bool
	IsFeatured      bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MenuItemRef is the minimal catalog view the order builder resolves against.
type MenuItemRef struct {
	ID          int
	Name        string
	Price       decimal.Decimal
	IsAvailable bool
}
