package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/YelzhanWeb/restaurant/internal/interfaces"
)

type reportRepository struct {
	db DB
}

func NewReportRepository(db DB) interfaces.ReportRepository {
	return &reportRepository{db: db}
}

// DailySales aggregates one day of committed orders. Revenue counts only
// paid orders; the hourly breakdown is zero-filled across all 24 slots.
func (r *reportRepository) DailySales(ctx context.Context, date time.Time) (*interfaces.DailySalesReport, error) {
	day := date.Format("2006-01-02")

	report := &interfaces.DailySalesReport{
		Date:          day,
		TotalRevenue:  decimal.Zero,
		AvgOrderValue: decimal.Zero,
	}
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'completed'),
		       COALESCE(SUM(total_amount) FILTER (WHERE payment_status = 'paid'), 0),
		       COALESCE(AVG(total_amount) FILTER (WHERE payment_status = 'paid'), 0),
		       COUNT(*) FILTER (WHERE payment_method = 'cash'),
		       COUNT(*) FILTER (WHERE payment_method = 'card')
		FROM orders
		WHERE created_at::date = $1
	`, day).Scan(&report.TotalOrders, &report.CompletedOrders, &report.TotalRevenue,
		&report.AvgOrderValue, &report.CashPayments, &report.CardPayments)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily sales: %w", err)
	}
	report.AvgOrderValue = report.AvgOrderValue.Round(2)

	rows, err := r.db.Query(ctx, `
		SELECT EXTRACT(HOUR FROM created_at)::int,
		       COUNT(*),
		       COALESCE(SUM(total_amount) FILTER (WHERE payment_status = 'paid'), 0)
		FROM orders
		WHERE created_at::date = $1
		GROUP BY 1
		ORDER BY 1
	`, day)
	if err != nil {
		return nil, fmt.Errorf("failed to load hourly breakdown: %w", err)
	}
	defer rows.Close()

	byHour := make(map[int]interfaces.HourlySales)
	for rows.Next() {
		var hour int
		var hs interfaces.HourlySales
		if err := rows.Scan(&hour, &hs.Orders, &hs.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan hourly breakdown: %w", err)
		}
		byHour[hour] = hs
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	report.HourlyBreakdown = make([]interfaces.HourlySales, 24)
	for hour := 0; hour < 24; hour++ {
		slot := interfaces.HourlySales{
			Hour:    fmt.Sprintf("%02d:00", hour),
			Revenue: decimal.Zero,
		}
		if hs, ok := byHour[hour]; ok {
			slot.Orders = hs.Orders
			slot.Revenue = hs.Revenue
		}
		report.HourlyBreakdown[hour] = slot
	}

	return report, nil
}

func (r *reportRepository) MonthlySales(ctx context.Context, year, month int) (*interfaces.MonthlySalesReport, error) {
	report := &interfaces.MonthlySalesReport{
		Year:          year,
		Month:         month,
		TotalRevenue:  decimal.Zero,
		AvgOrderValue: decimal.Zero,
	}
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(total_amount) FILTER (WHERE payment_status = 'paid'), 0),
		       COALESCE(AVG(total_amount) FILTER (WHERE payment_status = 'paid'), 0)
		FROM orders
		WHERE EXTRACT(YEAR FROM created_at) = $1 AND EXTRACT(MONTH FROM created_at) = $2
	`, year, month).Scan(&report.TotalOrders, &report.TotalRevenue, &report.AvgOrderValue)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly sales: %w", err)
	}
	report.AvgOrderValue = report.AvgOrderValue.Round(2)

	rows, err := r.db.Query(ctx, `
		SELECT EXTRACT(DAY FROM created_at)::int,
		       COUNT(*),
		       COALESCE(SUM(total_amount) FILTER (WHERE payment_status = 'paid'), 0)
		FROM orders
		WHERE EXTRACT(YEAR FROM created_at) = $1 AND EXTRACT(MONTH FROM created_at) = $2
		GROUP BY 1
		ORDER BY 1
	`, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load daily breakdown: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ds interfaces.DaySales
		if err := rows.Scan(&ds.Day, &ds.Orders, &ds.Revenue); err != nil {
			return nil, fmt.Errorf("failed to scan daily breakdown: %w", err)
		}
		report.DailyBreakdown = append(report.DailyBreakdown, ds)
	}
	return report, rows.Err()
}

func (r *reportRepository) PopularItems(ctx context.Context, limit int, rng interfaces.DateRange) ([]*interfaces.PopularItem, error) {
	query := `
		SELECT mi.id, mi.name, mi.price, c.name,
		       SUM(oi.quantity), SUM(oi.total_price), COUNT(DISTINCT o.id)
		FROM order_items oi
		JOIN menu_items mi ON oi.menu_item_id = mi.id
		JOIN categories c ON mi.category_id = c.id
		JOIN orders o ON oi.order_id = o.id
		WHERE o.payment_status = 'paid'
	`
	var args []any
	if rng.From != nil && rng.To != nil {
		args = append(args, rng.From.Format("2006-01-02"), rng.To.Format("2006-01-02"))
		query += ` AND o.created_at::date BETWEEN $1 AND $2`
	}

	if limit <= 0 {
		limit = 10
	}
	args = append(args, limit)
	query += ` GROUP BY mi.id, mi.name, mi.price, c.name
		ORDER BY SUM(oi.quantity) DESC
		LIMIT $` + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load popular items: %w", err)
	}
	defer rows.Close()

	var items []*interfaces.PopularItem
	for rows.Next() {
		var p interfaces.PopularItem
		if err := rows.Scan(&p.MenuItemID, &p.Name, &p.Price, &p.CategoryName,
			&p.TotalSold, &p.TotalRevenue, &p.OrderCount); err != nil {
			return nil, fmt.Errorf("failed to scan popular item: %w", err)
		}
		items = append(items, &p)
	}
	return items, rows.Err()
}

func (r *reportRepository) PaymentMethods(ctx context.Context, rng interfaces.DateRange) ([]*interfaces.PaymentMethodReport, error) {
	query := `
		SELECT payment_method, COUNT(*), SUM(total_amount), AVG(total_amount)
		FROM orders
		WHERE payment_status = 'paid' AND payment_method IS NOT NULL
	`
	var args []any
	if rng.From != nil && rng.To != nil {
		args = append(args, rng.From.Format("2006-01-02"), rng.To.Format("2006-01-02"))
		query += ` AND created_at::date BETWEEN $1 AND $2`
	}
	query += ` GROUP BY payment_method ORDER BY SUM(total_amount) DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment methods: %w", err)
	}
	defer rows.Close()

	var reports []*interfaces.PaymentMethodReport
	for rows.Next() {
		var p interfaces.PaymentMethodReport
		if err := rows.Scan(&p.Method, &p.TransactionCount, &p.TotalAmount, &p.AverageAmount); err != nil {
			return nil, fmt.Errorf("failed to scan payment method: %w", err)
		}
		p.AverageAmount = p.AverageAmount.Round(2)
		reports = append(reports, &p)
	}
	return reports, rows.Err()
}

// CustomerAnalytics pairs the customer-base summary with the top ten
// customers by paid spend. Spend is aggregated from paid orders, so
// customers who never paid carry zero and stay out of both the average and
// the ranking.
func (r *reportRepository) CustomerAnalytics(ctx context.Context, now time.Time) (*interfaces.CustomerAnalytics, error) {
	analytics := &interfaces.CustomerAnalytics{
		Summary: interfaces.CustomerAnalyticsSummary{AverageCustomerValue: decimal.Zero},
	}
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
	`, now).Scan(&analytics.Summary.TotalCustomers, &analytics.Summary.NewCustomersThisMonth,
		&analytics.Summary.AverageCustomerValue)
	if err != nil {
		return nil, fmt.Errorf("failed to load customer summary: %w", err)
	}
	analytics.Summary.AverageCustomerValue = analytics.Summary.AverageCustomerValue.Round(2)

	rows, err := r.db.Query(ctx, `
		SELECT c.first_name || ' ' || c.last_name,
		       c.phone,
		       COUNT(o.id),
		       SUM(o.total_amount),
		       c.loyalty_points
		FROM customers c
		JOIN orders o ON o.customer_id = c.id AND o.payment_status = 'paid'
		GROUP BY c.id
		HAVING SUM(o.total_amount) > 0
		ORDER BY SUM(o.total_amount) DESC
		LIMIT 10
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load top customers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var tc interfaces.TopCustomer
		if err := rows.Scan(&tc.Name, &tc.Phone, &tc.TotalOrders, &tc.TotalSpent, &tc.LoyaltyPoints); err != nil {
			return nil, fmt.Errorf("failed to scan top customer: %w", err)
		}
		analytics.TopCustomers = append(analytics.TopCustomers, tc)
	}
	return analytics, rows.Err()
}

// TableUtilization lists every table with its order volume for one date,
// busiest first. Revenue counts only paid orders; the average covers all of
// the day's orders on that table.
func (r *reportRepository) TableUtilization(ctx context.Context, date time.Time) ([]*interfaces.TableUtilization, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.table_number,
		       t.capacity,
		       COUNT(o.id),
		       COALESCE(SUM(o.total_amount) FILTER (WHERE o.payment_status = 'paid'), 0),
		       COALESCE(AVG(o.total_amount), 0)
		FROM tables t
		LEFT JOIN orders o ON o.table_id = t.id AND o.created_at::date = $1
		GROUP BY t.id
		ORDER BY COUNT(o.id) DESC, t.table_number
	`, date.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("failed to load table utilization: %w", err)
	}
	defer rows.Close()

	var tables []*interfaces.TableUtilization
	for rows.Next() {
		var tu interfaces.TableUtilization
		if err := rows.Scan(&tu.TableNumber, &tu.Capacity, &tu.OrdersCount, &tu.Revenue, &tu.AvgOrderValue); err != nil {
			return nil, fmt.Errorf("failed to scan table utilization: %w", err)
		}
		tu.AvgOrderValue = tu.AvgOrderValue.Round(2)
		tables = append(tables, &tu)
	}
	return tables, rows.Err()
}
