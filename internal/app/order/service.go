package order

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/YelzhanWeb/restaurant/internal/adapter/logger"
	"github.com/YelzhanWeb/restaurant/internal/domain"
	"github.com/YelzhanWeb/restaurant/internal/interfaces"
)

type Service struct {
	orders    interfaces.OrderRepository
	catalog   interfaces.CatalogResolver
	publisher interfaces.MessagePublisher
	numbers   interfaces.OrderNumberGenerator
	taxRate   decimal.Decimal
	lgr       logger.Logger
}

func NewService(
	orders interfaces.OrderRepository,
	catalog interfaces.CatalogResolver,
	publisher interfaces.MessagePublisher,
	numbers interfaces.OrderNumberGenerator,
	taxRate decimal.Decimal,
	lgr logger.Logger,
) *Service {
	return &Service{
		orders:    orders,
		catalog:   catalog,
		publisher: publisher,
		numbers:   numbers,
		taxRate:   taxRate,
		lgr:       lgr,
	}
}

// CreateOrder validates the request, resolves every line against the live
// catalog, prices the order, and persists it atomically. Events go out only
// after the transaction commits; a publish failure never fails the request.
func (s *Service) CreateOrder(ctx context.Context, cmd interfaces.CreateOrderCommand) (*domain.Order, error) {
	if len(cmd.Lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}
	if !domain.OrderType(cmd.OrderType).Valid() {
		return nil, domain.ErrInvalidOrderType
	}
	for _, line := range cmd.Lines {
		if line.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
	}

	lines := make([]domain.OrderLine, 0, len(cmd.Lines))
	priced := make([]domain.PricedLine, 0, len(cmd.Lines))
	for _, req := range cmd.Lines {
		ref, err := s.catalog.ResolveItem(ctx, req.MenuItemID)
		if err != nil {
			if errors.Is(err, domain.ErrMenuItemNotFound) {
				return nil, &domain.ItemUnavailableError{MenuItemID: req.MenuItemID}
			}
			return nil, err
		}
		if !ref.IsAvailable {
			return nil, &domain.ItemUnavailableError{MenuItemID: req.MenuItemID}
		}
		lines = append(lines, domain.OrderLine{
			MenuItemID:      ref.ID,
			ItemName:        ref.Name,
			Quantity:        req.Quantity,
			UnitPrice:       ref.Price,
			TotalPrice:      domain.LineTotal(ref.Price, req.Quantity),
			SpecialRequests: req.SpecialRequests,
		})
		priced = append(priced, domain.PricedLine{UnitPrice: ref.Price, Quantity: req.Quantity})
	}

	totals := domain.ComputeTotals(priced, s.taxRate)
	now := time.Now()

	ord := &domain.Order{
		Number:              s.numbers.Next(now),
		CustomerID:          cmd.CustomerID,
		TableID:             cmd.TableID,
		UserID:              cmd.UserID,
		Type:                domain.OrderType(cmd.OrderType),
		Status:              domain.StatusPending,
		PaymentStatus:       domain.PaymentPending,
		Subtotal:            totals.Subtotal,
		TaxAmount:           totals.TaxAmount,
		TotalAmount:         totals.TotalAmount,
		SpecialInstructions: cmd.SpecialInstructions,
		Lines:               lines,
	}

	if err := s.orders.Create(ctx, ord); err != nil {
		s.lgr.Error("order_create", "failed to persist order", "", map[string]interface{}{
			"order_number": ord.Number,
		}, err)
		return nil, err
	}

	// The order is committed at this point. The reload only enriches the
	// response with joined display names, so if it fails the built order is
	// returned instead of an error that would invite a duplicate retry.
	created, err := s.orders.FindByID(ctx, ord.ID)
	if err != nil {
		s.lgr.Error("order_create", "failed to reload order after commit", "", map[string]interface{}{
			"order_number": ord.Number,
		}, err)
		created = ord
	}

	s.publishCreated(ctx, created)

	s.lgr.Info("order_create", "order created", "", map[string]interface{}{
		"order_number": created.Number,
		"total_amount": created.TotalAmount.String(),
		"item_count":   len(created.Lines),
	})
	return created, nil
}

func (s *Service) publishCreated(ctx context.Context, ord *domain.Order) {
	notices := make([]interfaces.OrderLineNotice, 0, len(ord.Lines))
	for _, l := range ord.Lines {
		notices = append(notices, interfaces.OrderLineNotice{
			MenuItemID:      l.MenuItemID,
			ItemName:        l.ItemName,
			Quantity:        l.Quantity,
			SpecialRequests: l.SpecialRequests,
		})
	}
	err := s.publisher.PublishOrderCreated(ctx, interfaces.OrderCreatedMessage{
		OrderNumber: ord.Number,
		OrderType:   ord.Type,
		TableID:     ord.TableID,
		Lines:       notices,
		TotalAmount: ord.TotalAmount,
		CreatedAt:   ord.CreatedAt,
	})
	if err != nil {
		s.lgr.Error("order_publish", "failed to publish order created event", "", map[string]interface{}{
			"order_number": ord.Number,
		}, err)
	}
}

func (s *Service) GetOrder(ctx context.Context, id int) (*domain.Order, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *Service) ListOrders(ctx context.Context, filter interfaces.OrderFilter) ([]*domain.Order, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	return s.orders.List(ctx, filter)
}

// UpdateStatus advances the fulfillment status through the state machine and
// persists the result.
func (s *Service) UpdateStatus(ctx context.Context, id int, status domain.Status) (*domain.Order, error) {
	ord, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := ord.Status
	if err := ord.TransitionStatus(status); err != nil {
		return nil, err
	}
	if err := s.orders.Update(ctx, ord); err != nil {
		return nil, err
	}

	if err := s.publisher.PublishStatusChanged(ctx, interfaces.StatusChangedMessage{
		OrderNumber: ord.Number,
		OldStatus:   oldStatus,
		NewStatus:   ord.Status,
		ChangedAt:   ord.UpdatedAt,
	}); err != nil {
		s.lgr.Error("order_publish", "failed to publish status changed event", "", map[string]interface{}{
			"order_number": ord.Number,
		}, err)
	}

	s.lgr.Info("order_status", "order status updated", "", map[string]interface{}{
		"order_number": ord.Number,
		"old_status":   string(oldStatus),
		"new_status":   string(ord.Status),
	})
	return ord, nil
}

// UpdatePayment moves the payment status and records the method on the move
// to paid.
func (s *Service) UpdatePayment(ctx context.Context, id int, status domain.PaymentStatus, method *domain.PaymentMethod) (*domain.Order, error) {
	ord, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ord.TransitionPayment(status, method); err != nil {
		return nil, err
	}
	if err := s.orders.Update(ctx, ord); err != nil {
		return nil, err
	}

	if err := s.publisher.PublishPaymentChanged(ctx, interfaces.PaymentChangedMessage{
		OrderNumber:   ord.Number,
		PaymentStatus: ord.PaymentStatus,
		PaymentMethod: ord.PaymentMethod,
		TotalAmount:   ord.TotalAmount,
		ChangedAt:     ord.UpdatedAt,
	}); err != nil {
		s.lgr.Error("order_publish", "failed to publish payment changed event", "", map[string]interface{}{
			"order_number": ord.Number,
		}, err)
	}

	s.lgr.Info("order_payment", "order payment updated", "", map[string]interface{}{
		"order_number":   ord.Number,
		"payment_status": string(ord.PaymentStatus),
	})
	return ord, nil
}

func (s *Service) DailySummary(ctx context.Context, date time.Time) (*interfaces.OrderSummary, error) {
	return s.orders.DailySummary(ctx, date)
}
