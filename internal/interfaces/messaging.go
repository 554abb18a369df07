package interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/YelzhanWeb/restaurant/internal/domain"
)

// OrderCreatedMessage is published to the orders topic exchange after the
// creating transaction commits. Consumers (kitchen displays, notification
// subscribers) see only durable orders.
type OrderCreatedMessage struct {
	OrderNumber string            `json:"order_number"`
	OrderType   domain.OrderType  `json:"order_type"`
	TableID     *int              `json:"table_id,omitempty"`
	Lines       []OrderLineNotice `json:"items"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	CreatedAt   time.Time         `json:"created_at"`
}

type OrderLineNotice struct {
	MenuItemID      int     `json:"menu_item_id"`
	ItemName        string  `json:"item_name"`
	Quantity        int     `json:"quantity"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

type StatusChangedMessage struct {
	OrderNumber string        `json:"order_number"`
	OldStatus   domain.Status `json:"old_status"`
	NewStatus   domain.Status `json:"new_status"`
	ChangedAt   time.Time     `json:"changed_at"`
}

type PaymentChangedMessage struct {
	OrderNumber   string                `json:"order_number"`
	PaymentStatus domain.PaymentStatus  `json:"payment_status"`
	PaymentMethod *domain.PaymentMethod `json:"payment_method,omitempty"`
	TotalAmount   decimal.Decimal       `json:"total_amount"`
	ChangedAt     time.Time             `json:"changed_at"`
}

// MessagePublisher fans order lifecycle events out to interested consumers.
// Publishing is best-effort and always happens after the database commit.
type MessagePublisher interface {
	PublishOrderCreated(ctx context.Context, msg OrderCreatedMessage) error
	PublishStatusChanged(ctx context.Context, msg StatusChangedMessage) error
	PublishPaymentChanged(ctx context.Context, msg PaymentChangedMessage) error
}

// MenuCache is a read-side cache for menu listings. The order builder must
// not use it for price or availability resolution.
type MenuCache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, pattern string) error
}
