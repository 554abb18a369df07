package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/YelzhanWeb/restaurant/internal/adapter/logger"
	"github.com/YelzhanWeb/restaurant/internal/domain"
	"github.com/YelzhanWeb/restaurant/internal/interfaces"
	"github.com/YelzhanWeb/restaurant/internal/mocks"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type fixedNumbers struct{}

func (fixedNumbers) Next(t time.Time) string { return "ORD-20260115-AB12CD" }

func newTestService(repo *mocks.OrderRepository, catalog *mocks.CatalogResolver, pub *mocks.MessagePublisher) *Service {
	return NewService(repo, catalog, pub, fixedNumbers{}, dec("0.18"), logger.New("test"))
}

func validCommand() interfaces.CreateOrderCommand {
	return interfaces.CreateOrderCommand{
		UserID:    7,
		OrderType: "dine_in",
		Lines: []interfaces.OrderLineRequest{
			{MenuItemID: 1, Quantity: 2},
			{MenuItemID: 2, Quantity: 1},
		},
	}
}

func TestCreateOrderValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*interfaces.CreateOrderCommand)
		wantErr error
	}{
		{
			name:    "empty order",
			mutate:  func(cmd *interfaces.CreateOrderCommand) { cmd.Lines = nil },
			wantErr: domain.ErrEmptyOrder,
		},
		{
			name:    "zero quantity",
			mutate:  func(cmd *interfaces.CreateOrderCommand) { cmd.Lines[0].Quantity = 0 },
			wantErr: domain.ErrInvalidQuantity,
		},
		{
			name:    "negative quantity",
			mutate:  func(cmd *interfaces.CreateOrderCommand) { cmd.Lines[1].Quantity = -3 },
			wantErr: domain.ErrInvalidQuantity,
		},
		{
			name:    "unknown order type",
			mutate:  func(cmd *interfaces.CreateOrderCommand) { cmd.OrderType = "drive_thru" },
			wantErr: domain.ErrInvalidOrderType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.OrderRepository)
			catalog := new(mocks.CatalogResolver)
			pub := new(mocks.MessagePublisher)
			svc := newTestService(repo, catalog, pub)

			cmd := validCommand()
			tt.mutate(&cmd)

			_, err := svc.CreateOrder(context.Background(), cmd)
			assert.ErrorIs(t, err, tt.wantErr)

			// Nothing may touch the catalog or the store on validation failure.
			catalog.AssertNotCalled(t, "ResolveItem", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateOrderUnavailableItemRejectsWholeOrder(t *testing.T) {
	repo := new(mocks.OrderRepository)
	catalog := new(mocks.CatalogResolver)
	pub := new(mocks.MessagePublisher)
	svc := newTestService(repo, catalog, pub)

	catalog.On("ResolveItem", mock.Anything, 1).Return(&domain.MenuItemRef{
		ID: 1, Name: "Lemonade", Price: dec("4.00"), IsAvailable: true,
	}, nil)
	catalog.On("ResolveItem", mock.Anything, 2).Return(&domain.MenuItemRef{
		ID: 2, Name: "Seasonal Soup", Price: dec("8.00"), IsAvailable: false,
	}, nil)

	_, err := svc.CreateOrder(context.Background(), validCommand())

	var unavailable *domain.ItemUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 2, unavailable.MenuItemID)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	pub.AssertNotCalled(t, "PublishOrderCreated", mock.Anything, mock.Anything)
}

func TestCreateOrderMissingItemRejectsWholeOrder(t *testing.T) {
	repo := new(mocks.OrderRepository)
	catalog := new(mocks.CatalogResolver)
	pub := new(mocks.MessagePublisher)
	svc := newTestService(repo, catalog, pub)

	catalog.On("ResolveItem", mock.Anything, 1).Return(nil, domain.ErrMenuItemNotFound)

	_, err := svc.CreateOrder(context.Background(), validCommand())

	var unavailable *domain.ItemUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, 1, unavailable.MenuItemID)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateOrderPricesFromCatalogSnapshot(t *testing.T) {
	repo := new(mocks.OrderRepository)
	catalog := new(mocks.CatalogResolver)
	pub := new(mocks.MessagePublisher)
	svc := newTestService(repo, catalog, pub)

	catalog.On("ResolveItem", mock.Anything, 1).Return(&domain.MenuItemRef{
		ID: 1, Name: "Grilled Salmon", Price: dec("10.00"), IsAvailable: true,
	}, nil)
	catalog.On("ResolveItem", mock.Anything, 2).Return(&domain.MenuItemRef{
		ID: 2, Name: "House Salad", Price: dec("5.50"), IsAvailable: true,
	}, nil)

	var persisted *domain.Order
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Order")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*domain.Order)
			persisted.ID = 42
			persisted.CreatedAt = time.Now()
		}).Return(nil)
	repo.On("FindByID", mock.Anything, 42).Return(&domain.Order{
		ID:          42,
		Number:      "ORD-20260115-AB12CD",
		Type:        domain.OrderTypeDineIn,
		Status:      domain.StatusPending,
		Subtotal:    dec("25.50"),
		TaxAmount:   dec("4.59"),
		TotalAmount: dec("30.09"),
		Lines: []domain.OrderLine{
			{MenuItemID: 1, ItemName: "Grilled Salmon", Quantity: 2, UnitPrice: dec("10.00"), TotalPrice: dec("20.00")},
			{MenuItemID: 2, ItemName: "House Salad", Quantity: 1, UnitPrice: dec("5.50"), TotalPrice: dec("5.50")},
		},
	}, nil)
	pub.On("PublishOrderCreated", mock.Anything, mock.Anything).Return(nil)

	created, err := svc.CreateOrder(context.Background(), validCommand())
	require.NoError(t, err)

	// Persisted snapshot uses catalog prices and computed totals.
	require.NotNil(t, persisted)
	assert.Equal(t, "ORD-20260115-AB12CD", persisted.Number)
	assert.Equal(t, domain.StatusPending, persisted.Status)
	assert.Equal(t, domain.PaymentPending, persisted.PaymentStatus)
	assert.True(t, dec("25.50").Equal(persisted.Subtotal), "subtotal = %s", persisted.Subtotal)
	assert.True(t, dec("4.59").Equal(persisted.TaxAmount), "tax = %s", persisted.TaxAmount)
	assert.True(t, dec("30.09").Equal(persisted.TotalAmount), "total = %s", persisted.TotalAmount)
	require.Len(t, persisted.Lines, 2)
	assert.True(t, dec("10.00").Equal(persisted.Lines[0].UnitPrice))
	assert.True(t, dec("20.00").Equal(persisted.Lines[0].TotalPrice))

	assert.Equal(t, 42, created.ID)
	pub.AssertCalled(t, "PublishOrderCreated", mock.Anything, mock.MatchedBy(func(msg interfaces.OrderCreatedMessage) bool {
		return msg.OrderNumber == "ORD-20260115-AB12CD" && len(msg.Lines) == 2
	}))
}

func TestCreateOrderPersistenceFailure(t *testing.T) {
	repo := new(mocks.OrderRepository)
	catalog := new(mocks.CatalogResolver)
	pub := new(mocks.MessagePublisher)
	svc := newTestService(repo, catalog, pub)

	catalog.On("ResolveItem", mock.Anything, mock.Anything).Return(&domain.MenuItemRef{
		ID: 1, Name: "Espresso", Price: dec("3.00"), IsAvailable: true,
	}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	_, err := svc.CreateOrder(context.Background(), validCommand())
	require.Error(t, err)
	pub.AssertNotCalled(t, "PublishOrderCreated", mock.Anything, mock.Anything)
}

func TestCreateOrderPublishFailureDoesNotFailRequest(t *testing.T) {
	repo := new(mocks.OrderRepository)
	catalog := new(mocks.CatalogResolver)
	pub := new(mocks.MessagePublisher)
	svc := newTestService(repo, catalog, pub)

	catalog.On("ResolveItem", mock.Anything, mock.Anything).Return(&domain.MenuItemRef{
		ID: 1, Name: "Espresso", Price: dec("3.00"), IsAvailable: true,
	}, nil)
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Order).ID = 9 }).Return(nil)
	repo.On("FindByID", mock.Anything, 9).Return(&domain.Order{ID: 9, Number: "ORD-20260115-AB12CD"}, nil)
	pub.On("PublishOrderCreated", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	created, err := svc.CreateOrder(context.Background(), validCommand())
	require.NoError(t, err)
	assert.Equal(t, 9, created.ID)
}

func TestCreateOrderReloadFailureReturnsCommittedOrder(t *testing.T) {
	repo := new(mocks.OrderRepository)
	catalog := new(mocks.CatalogResolver)
	pub := new(mocks.MessagePublisher)
	svc := newTestService(repo, catalog, pub)

	catalog.On("ResolveItem", mock.Anything, mock.Anything).Return(&domain.MenuItemRef{
		ID: 1, Name: "Espresso", Price: dec("3.00"), IsAvailable: true,
	}, nil)
	repo.On("Create", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { args.Get(1).(*domain.Order).ID = 17 }).Return(nil)
	repo.On("FindByID", mock.Anything, 17).Return(nil, errors.New("connection reset"))
	pub.On("PublishOrderCreated", mock.Anything, mock.Anything).Return(nil)

	// The order committed; a failed read-back must not turn into an error
	// that makes the client retry and order twice.
	created, err := svc.CreateOrder(context.Background(), validCommand())
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, 17, created.ID)
	assert.Equal(t, "ORD-20260115-AB12CD", created.Number)
	assert.True(t, dec("10.62").Equal(created.TotalAmount), "total = %s", created.TotalAmount)
	require.Len(t, created.Lines, 2)

	pub.AssertCalled(t, "PublishOrderCreated", mock.Anything, mock.MatchedBy(func(msg interfaces.OrderCreatedMessage) bool {
		return msg.OrderNumber == "ORD-20260115-AB12CD"
	}))
}

func TestUpdateStatusHappyPath(t *testing.T) {
	repo := new(mocks.OrderRepository)
	catalog := new(mocks.CatalogResolver)
	pub := new(mocks.MessagePublisher)
	svc := newTestService(repo, catalog, pub)

	repo.On("FindByID", mock.Anything, 5).Return(&domain.Order{
		ID: 5, Number: "ORD-20260115-XY99ZZ", Status: domain.StatusPending,
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	pub.On("PublishStatusChanged", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.UpdateStatus(context.Background(), 5, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)

	pub.AssertCalled(t, "PublishStatusChanged", mock.Anything, mock.MatchedBy(func(msg interfaces.StatusChangedMessage) bool {
		return msg.OldStatus == domain.StatusPending && msg.NewStatus == domain.StatusConfirmed
	}))
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	repo := new(mocks.OrderRepository)
	catalog := new(mocks.CatalogResolver)
	pub := new(mocks.MessagePublisher)
	svc := newTestService(repo, catalog, pub)

	repo.On("FindByID", mock.Anything, 5).Return(&domain.Order{
		ID: 5, Status: domain.StatusCompleted,
	}, nil)

	_, err := svc.UpdateStatus(context.Background(), 5, domain.StatusPending)
	var transitionErr *domain.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	pub.AssertNotCalled(t, "PublishStatusChanged", mock.Anything, mock.Anything)
}

func TestUpdateStatusOrderNotFound(t *testing.T) {
	repo := new(mocks.OrderRepository)
	catalog := new(mocks.CatalogResolver)
	pub := new(mocks.MessagePublisher)
	svc := newTestService(repo, catalog, pub)

	repo.On("FindByID", mock.Anything, 404).Return(nil, domain.ErrOrderNotFound)

	_, err := svc.UpdateStatus(context.Background(), 404, domain.StatusConfirmed)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestUpdatePaymentRecordsMethod(t *testing.T) {
	repo := new(mocks.OrderRepository)
	catalog := new(mocks.CatalogResolver)
	pub := new(mocks.MessagePublisher)
	svc := newTestService(repo, catalog, pub)

	repo.On("FindByID", mock.Anything, 5).Return(&domain.Order{
		ID: 5, Number: "ORD-20260115-XY99ZZ", PaymentStatus: domain.PaymentPending, TotalAmount: dec("30.09"),
	}, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)
	pub.On("PublishPaymentChanged", mock.Anything, mock.Anything).Return(nil)

	method := domain.PaymentMethodCash
	updated, err := svc.UpdatePayment(context.Background(), 5, domain.PaymentPaid, &method)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPaid, updated.PaymentStatus)
	require.NotNil(t, updated.PaymentMethod)
	assert.Equal(t, domain.PaymentMethodCash, *updated.PaymentMethod)
}

func TestUpdatePaymentRejectsRefundBeforePaid(t *testing.T) {
	repo := new(mocks.OrderRepository)
	catalog := new(mocks.CatalogResolver)
	pub := new(mocks.MessagePublisher)
	svc := newTestService(repo, catalog, pub)

	repo.On("FindByID", mock.Anything, 5).Return(&domain.Order{
		ID: 5, PaymentStatus: domain.PaymentPending,
	}, nil)

	_, err := svc.UpdatePayment(context.Background(), 5, domain.PaymentRefunded, nil)
	var transitionErr *domain.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestListOrdersRejectsInvalidStatusFilter(t *testing.T) {
	repo := new(mocks.OrderRepository)
	catalog := new(mocks.CatalogResolver)
	pub := new(mocks.MessagePublisher)
	svc := newTestService(repo, catalog, pub)

	bad := domain.Status("shipped")
	_, err := svc.ListOrders(context.Background(), interfaces.OrderFilter{Status: &bad})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
