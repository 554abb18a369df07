package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"confirmed to preparing", StatusConfirmed, StatusPreparing, true},
		{"preparing to ready", StatusPreparing, StatusReady, true},
		{"ready to served", StatusReady, StatusServed, true},
		{"served to completed", StatusServed, StatusCompleted, true},
		{"cancel from pending", StatusPending, StatusCancelled, true},
		{"cancel from served", StatusServed, StatusCancelled, true},
		{"skip ahead", StatusPending, StatusPreparing, false},
		{"backward", StatusReady, StatusPreparing, false},
		{"completed is terminal", StatusCompleted, StatusServed, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"no self transition", StatusPreparing, StatusPreparing, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestStatusFullLifecycle(t *testing.T) {
	order := &Order{Status: StatusPending}
	for _, next := range []Status{StatusConfirmed, StatusPreparing, StatusReady, StatusServed, StatusCompleted} {
		require.NoError(t, order.TransitionStatus(next))
		assert.Equal(t, next, order.Status)
	}

	err := order.TransitionStatus(StatusCancelled)
	var transitionErr *InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "completed", transitionErr.From)
}

func TestTransitionStatusRejectsUnknown(t *testing.T) {
	order := &Order{Status: StatusPending}
	assert.ErrorIs(t, order.TransitionStatus(Status("shipped")), ErrInvalidStatus)
	assert.Equal(t, StatusPending, order.Status)
}

func TestTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusServed.Terminal())
}

func TestCanTransitionPayment(t *testing.T) {
	assert.True(t, CanTransitionPayment(PaymentPending, PaymentPaid))
	assert.True(t, CanTransitionPayment(PaymentPaid, PaymentRefunded))
	assert.False(t, CanTransitionPayment(PaymentPending, PaymentRefunded))
	assert.False(t, CanTransitionPayment(PaymentPaid, PaymentPending))
	assert.False(t, CanTransitionPayment(PaymentRefunded, PaymentPaid))
}

func TestTransitionPaymentRecordsMethod(t *testing.T) {
	method := PaymentMethodCard
	order := &Order{PaymentStatus: PaymentPending}

	require.NoError(t, order.TransitionPayment(PaymentPaid, &method))
	assert.Equal(t, PaymentPaid, order.PaymentStatus)
	require.NotNil(t, order.PaymentMethod)
	assert.Equal(t, PaymentMethodCard, *order.PaymentMethod)

	// Refund keeps the method that was charged.
	require.NoError(t, order.TransitionPayment(PaymentRefunded, nil))
	assert.Equal(t, PaymentRefunded, order.PaymentStatus)
	assert.Equal(t, PaymentMethodCard, *order.PaymentMethod)
}

func TestTransitionPaymentRejectsInvalidMethod(t *testing.T) {
	method := PaymentMethod("crypto")
	order := &Order{PaymentStatus: PaymentPending}
	assert.ErrorIs(t, order.TransitionPayment(PaymentPaid, &method), ErrInvalidPaymentMethod)
	assert.Equal(t, PaymentPending, order.PaymentStatus)
}

func TestOrderTypeValid(t *testing.T) {
	assert.True(t, OrderTypeDineIn.Valid())
	assert.True(t, OrderTypeTakeaway.Valid())
	assert.True(t, OrderTypeDelivery.Valid())
	assert.False(t, OrderType("drive_thru").Valid())
}

func TestTableDerivedStatus(t *testing.T) {
	assert.Equal(t, "occupied", (&Table{ActiveOrders: 2, IsAvailable: true}).DerivedStatus())
	assert.Equal(t, "available", (&Table{IsAvailable: true}).DerivedStatus())
	assert.Equal(t, "maintenance", (&Table{IsAvailable: false}).DerivedStatus())
}
