package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/YelzhanWeb/restaurant/internal/domain"
	"github.com/YelzhanWeb/restaurant/internal/interfaces"
)

type orderRepository struct {
	db DB
}

func NewOrderRepository(db DB) interfaces.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order row and every line row in one transaction. The
// deferred rollback is a no-op once Commit succeeds, so a failure at any
// point leaves zero rows visible.
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO orders (order_number, customer_id, table_id, user_id, order_type,
		                    status, payment_status, subtotal, tax_amount, total_amount,
		                    special_instructions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`
	err = tx.QueryRow(ctx, query,
		order.Number, order.CustomerID, order.TableID, order.UserID, order.Type,
		order.Status, order.PaymentStatus, order.Subtotal, order.TaxAmount,
		order.TotalAmount, order.SpecialInstructions,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	lineQuery := `
		INSERT INTO order_items (order_id, menu_item_id, quantity, unit_price, total_price, special_requests)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	for i := range order.Lines {
		line := &order.Lines[i]
		err = tx.QueryRow(ctx, lineQuery,
			order.ID, line.MenuItemID, line.Quantity, line.UnitPrice, line.TotalPrice, line.SpecialRequests,
		).Scan(&line.ID)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
		line.OrderID = order.ID
	}

	return tx.Commit(ctx)
}

const orderSelect = `
	SELECT o.id, o.order_number, o.customer_id, o.table_id, o.user_id, o.order_type,
	       o.status, o.payment_status, o.payment_method,
	       o.subtotal, o.tax_amount, o.total_amount, o.special_instructions,
	       o.created_at, o.updated_at,
	       c.first_name || ' ' || c.last_name AS customer_name,
	       c.phone AS customer_phone,
	       t.table_number,
	       u.first_name || ' ' || u.last_name AS waiter_name
	FROM orders o
	LEFT JOIN customers c ON o.customer_id = c.id
	LEFT JOIN tables t ON o.table_id = t.id
	LEFT JOIN users u ON o.user_id = u.id
`

func scanOrder(row Row, order *domain.Order) error {
	return row.Scan(
		&order.ID, &order.Number, &order.CustomerID, &order.TableID, &order.UserID,
		&order.Type, &order.Status, &order.PaymentStatus, &order.PaymentMethod,
		&order.Subtotal, &order.TaxAmount, &order.TotalAmount, &order.SpecialInstructions,
		&order.CreatedAt, &order.UpdatedAt,
		&order.CustomerName, &order.CustomerPhone, &order.TableNumber, &order.WaiterName,
	)
}

func (r *orderRepository) FindByID(ctx context.Context, id int) (*domain.Order, error) {
	var order domain.Order
	err := scanOrder(r.db.QueryRow(ctx, orderSelect+` WHERE o.id = $1`, id), &order)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to load order: %w", err)
	}

	lines, err := r.loadLines(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Lines = lines
	order.ItemCount = len(lines)

	return &order, nil
}

func (r *orderRepository) loadLines(ctx context.Context, orderID int) ([]domain.OrderLine, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.menu_item_id, mi.name, oi.quantity,
		       oi.unit_price, oi.total_price, oi.special_requests
		FROM order_items oi
		JOIN menu_items mi ON oi.menu_item_id = mi.id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}
	defer rows.Close()

	var lines []domain.OrderLine
	for rows.Next() {
		var l domain.OrderLine
		if err := rows.Scan(&l.ID, &l.OrderID, &l.MenuItemID, &l.ItemName,
			&l.Quantity, &l.UnitPrice, &l.TotalPrice, &l.SpecialRequests); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *orderRepository) List(ctx context.Context, filter interfaces.OrderFilter) ([]*domain.Order, error) {
	query := `
		SELECT o.id, o.order_number, o.customer_id, o.table_id, o.user_id, o.order_type,
		       o.status, o.payment_status, o.payment_method,
		       o.subtotal, o.tax_amount, o.total_amount, o.special_instructions,
		       o.created_at, o.updated_at,
		       c.first_name || ' ' || c.last_name AS customer_name,
		       c.phone AS customer_phone,
		       t.table_number,
		       u.first_name || ' ' || u.last_name AS waiter_name,
		       (SELECT COUNT(*) FROM order_items oi WHERE oi.order_id = o.id) AS item_count
		FROM orders o
		LEFT JOIN customers c ON o.customer_id = c.id
		LEFT JOIN tables t ON o.table_id = t.id
		LEFT JOIN users u ON o.user_id = u.id
		WHERE 1=1
	`
	var args []any

	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += ` AND o.status = $` + strconv.Itoa(len(args))
	}
	if filter.Date != nil {
		args = append(args, filter.Date.Format("2006-01-02"))
		query += ` AND o.created_at::date = $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY o.created_at DESC`

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
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(
			&o.ID, &o.Number, &o.CustomerID, &o.TableID, &o.UserID,
			&o.Type, &o.Status, &o.PaymentStatus, &o.PaymentMethod,
			&o.Subtotal, &o.TaxAmount, &o.TotalAmount, &o.SpecialInstructions,
			&o.CreatedAt, &o.UpdatedAt,
			&o.CustomerName, &o.CustomerPhone, &o.TableNumber, &o.WaiterName,
			&o.ItemCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

func (r *orderRepository) Update(ctx context.Context, order *domain.Order) error {
	query := `
		UPDATE orders
		SET status = $1, payment_status = $2, payment_method = $3, updated_at = $4
		WHERE id = $5
	`
	tag, err := r.db.Exec(ctx, query,
		order.Status, order.PaymentStatus, order.PaymentMethod, order.UpdatedAt, order.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *orderRepository) DailySummary(ctx context.Context, date time.Time) (*interfaces.OrderSummary, error) {
	query := `
		SELECT
			COUNT(*) AS total_orders,
			COUNT(*) FILTER (WHERE status = 'completed') AS completed_orders,
			COUNT(*) FILTER (WHERE status = 'pending') AS pending_orders,
			COUNT(*) FILTER (WHERE status = 'preparing') AS preparing_orders,
			COALESCE(SUM(total_amount) FILTER (WHERE payment_status = 'paid'), 0) AS total_revenue,
			COALESCE(AVG(total_amount) FILTER (WHERE payment_status = 'paid'), 0) AS average_order_value
		FROM orders
		WHERE created_at::date = $1
	`
	var s interfaces.OrderSummary
	err := r.db.QueryRow(ctx, query, date.Format("2006-01-02")).Scan(
		&s.TotalOrders, &s.CompletedOrders, &s.PendingOrders, &s.PreparingOrders,
		&s.TotalRevenue, &s.AverageOrderValue,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily summary: %w", err)
	}
	s.AverageOrderValue = s.AverageOrderValue.Round(2)
	return &s, nil
}
