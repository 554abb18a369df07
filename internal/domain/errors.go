package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyOrder           = errors.New("order must contain at least one item")
	ErrInvalidQuantity      = errors.New("item quantity must be a positive integer")
	ErrInvalidOrderType     = errors.New("invalid order type")
	ErrInvalidStatus        = errors.New("invalid order status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	ErrOrderNotFound    = errors.New("order not found")
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrTableNotFound    = errors.New("table not found")
	ErrUserNotFound     = errors.New("user not found")

	ErrCategoryHasItems        = errors.New("category still has menu items")
	ErrCustomerHasActiveOrders = errors.New("customer has active orders")
	ErrTableHasActiveOrders    = errors.New("table has active orders")
	ErrPhoneTaken              = errors.New("phone number already registered")
	ErrTableNumberTaken        = errors.New("table number already in use")
	ErrUsernameTaken           = errors.New("username or email already in use")
	ErrInvalidCredentials      = errors.New("invalid username or password")
)

// ItemUnavailableError rejects an entire order because one referenced menu
// item is missing or marked unavailable.
type ItemUnavailableError struct {
	MenuItemID int
}

func (e *ItemUnavailableError) Error() string {
	return fmt.Sprintf("menu item %d not found or unavailable", e.MenuItemID)
}

// InvalidTransitionError rejects a lifecycle move the state machine forbids.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot transition from %s to %s", e.From, e.To)
}
