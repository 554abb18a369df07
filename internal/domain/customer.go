package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is a guest record with aggregated order statistics attached by
// read-side queries.
type Customer struct {
	ID            int
	FirstName     string
	LastName      string
	Email         *string
	Phone         string
	Address       *string
	BirthDate     *time.Time
	Notes         *string
	LoyaltyPoints int
	CreatedAt     time.Time
	UpdatedAt     time.Time

	OrderCount    int
	TotalSpent    decimal.Decimal
	LastOrderDate *time.Time
}
