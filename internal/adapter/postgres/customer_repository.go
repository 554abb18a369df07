package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/YelzhanWeb/restaurant/internal/domain"
	"github.com/YelzhanWeb/restaurant/internal/interfaces"
)

type customerRepository struct {
	db DB
}

func NewCustomerRepository(db DB) interfaces.CustomerRepository {
	return &customerRepository{db: db}
}

const customerSelect = `
	SELECT c.id, c.first_name, c.last_name, c.email, c.phone, c.address,
	       c.birth_date, c.notes, c.loyalty_points, c.created_at, c.updated_at,
	       COUNT(DISTINCT o.id) AS order_count,
	       COALESCE(SUM(o.total_amount), 0) AS total_spent,
	       MAX(o.created_at) AS last_order_date
	FROM customers c
	LEFT JOIN orders o ON c.id = o.customer_id
`

func (r *customerRepository) List(ctx context.Context, search string, limit, offset int) ([]*domain.Customer, error) {
	query := customerSelect + ` WHERE 1=1`
	var args []any

	if search != "" {
		args = append(args, "%"+search+"%")
		query += ` AND (c.first_name ILIKE $1 OR c.last_name ILIKE $1 OR c.phone ILIKE $1 OR c.email ILIKE $1)`
	}

	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` GROUP BY c.id ORDER BY c.created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []*domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone,
			&c.Address, &c.BirthDate, &c.Notes, &c.LoyaltyPoints, &c.CreatedAt,
			&c.UpdatedAt, &c.OrderCount, &c.TotalSpent, &c.LastOrderDate); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) FindByID(ctx context.Context, id int) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.QueryRow(ctx, customerSelect+` WHERE c.id = $1 GROUP BY c.id`, id).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address,
		&c.BirthDate, &c.Notes, &c.LoyaltyPoints, &c.CreatedAt, &c.UpdatedAt,
		&c.OrderCount, &c.TotalSpent, &c.LastOrderDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to load customer: %w", err)
	}
	return &c, nil
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `
		INSERT INTO customers (first_name, last_name, email, phone, address, birth_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, loyalty_points, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		c.FirstName, c.LastName, c.Email, c.Phone, c.Address, c.BirthDate, c.Notes,
	).Scan(&c.ID, &c.LoyaltyPoints, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	return nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `
		UPDATE customers
		SET first_name = $1, last_name = $2, email = $3, phone = $4, address = $5,
		    birth_date = $6, notes = $7, loyalty_points = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		c.FirstName, c.LastName, c.Email, c.Phone, c.Address,
		c.BirthDate, c.Notes, c.LoyaltyPoints, c.ID,
	).Scan(&c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCustomerNotFound
		}
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (r *customerRepository) PhoneInUse(ctx context.Context, phone string, excludeID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM customers WHERE phone = $1 AND id <> $2)`,
		phone, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check phone: %w", err)
	}
	return exists, nil
}

// AnalyticsSummary aggregates the customer base: total count, signups in
// the month containing now, and the average paid spend per customer who has
// paid at least once.
func (r *customerRepository) AnalyticsSummary(ctx context.Context, now time.Time) (*interfaces.CustomerAnalyticsSummary, error) {
	summary := &interfaces.CustomerAnalyticsSummary{AverageCustomerValue: decimal.Zero}
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE date_trunc('month', created_at) = date_trunc('month', $1::timestamptz)),
		       COALESCE((SELECT AVG(spent) FROM (
		           SELECT SUM(total_amount) AS spent
		           FROM orders
		           WHERE payment_status = 'paid' AND customer_id IS NOT NULL
		           GROUP BY customer_id
		       ) pc), 0)
		FROM customers
	`, now).Scan(&summary.TotalCustomers, &summary.NewCustomersThisMonth, &summary.AverageCustomerValue)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer analytics: %w", err)
	}
	summary.AverageCustomerValue = summary.AverageCustomerValue.Round(2)
	return summary, nil
}

func (r *customerRepository) CountActiveOrders(ctx context.Context, customerID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE customer_id = $1 AND status NOT IN ('completed', 'cancelled')`,
		customerID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active orders: %w", err)
	}
	return count, nil
}
