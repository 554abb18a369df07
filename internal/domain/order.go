package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order represents a restaurant order entity. Monetary fields are snapshots
// computed at creation time; later catalog price changes never alter them.
type Order struct {
	ID                  int
	Number              string
	CustomerID          *int
	TableID             *int
	UserID              int
	Type                OrderType
	Status              Status
	PaymentStatus       PaymentStatus
	PaymentMethod       *PaymentMethod
	Subtotal            decimal.Decimal
	TaxAmount           decimal.Decimal
	TotalAmount         decimal.Decimal
	SpecialInstructions *string
	Lines               []OrderLine
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Presentational fields resolved by read-side joins.
	CustomerName  *string
	CustomerPhone *string
	TableNumber   *string
	WaiterName    *string
	ItemCount     int
}

// OrderLine is one catalog item within an order. UnitPrice is the catalog
// price at order time; both price fields are immutable once persisted.
type OrderLine struct {
	ID              int
	OrderID         int
	MenuItemID      int
	ItemName        string
	Quantity        int
	UnitPrice       decimal.Decimal
	TotalPrice      decimal.Decimal
	SpecialRequests *string
}

// TransitionStatus moves the order to a new fulfillment status, enforcing
// the state machine.
func (o *Order) TransitionStatus(to Status) error {
	if !to.Valid() {
		return ErrInvalidStatus
	}
	if !CanTransition(o.Status, to) {
		return &InvalidTransitionError{From: string(o.Status), To: string(to)}
	}
	o.Status = to
	o.UpdatedAt = time.Now()
	return nil
}

// TransitionPayment moves the order to a new payment status. The payment
// method is recorded only on the move to paid.
func (o *Order) TransitionPayment(to PaymentStatus, method *PaymentMethod) error {
	if !to.Valid() {
		return ErrInvalidPaymentStatus
	}
	if method != nil && !method.Valid() {
		return ErrInvalidPaymentMethod
	}
	if !CanTransitionPayment(o.PaymentStatus, to) {
		return &InvalidTransitionError{From: string(o.PaymentStatus), To: string(to)}
	}
	o.PaymentStatus = to
	if to == PaymentPaid && method != nil {
		o.PaymentMethod = method
	}
	o.UpdatedAt = time.Now()
	return nil
}
