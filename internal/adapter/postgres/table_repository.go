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

type tableRepository struct {
	db DB
}

func NewTableRepository(db DB) interfaces.TableRepository {
	return &tableRepository{db: db}
}

func (r *tableRepository) List(ctx context.Context, filter interfaces.TableFilter) ([]*domain.Table, error) {
	query := `
		SELECT t.id, t.table_number, t.capacity, t.location, t.qr_code, t.is_available,
		       t.created_at, t.updated_at,
		       COUNT(o.id) FILTER (WHERE o.status IN ('pending', 'confirmed', 'preparing', 'ready')) AS active_orders,
		       MAX(o.created_at) AS last_order_time
		FROM tables t
		LEFT JOIN orders o ON t.id = o.table_id AND o.created_at::date = CURRENT_DATE
		WHERE 1=1
	`
	var args []any

	if filter.Location != nil {
		args = append(args, *filter.Location)
		query += ` AND t.location = $` + strconv.Itoa(len(args))
	}
	if filter.AvailableOnly {
		query += ` AND t.is_available`
	}

	query += ` GROUP BY t.id ORDER BY t.table_number`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query tables: %w", err)
	}
	defer rows.Close()

	var tables []*domain.Table
	for rows.Next() {
		var t domain.Table
		if err := rows.Scan(&t.ID, &t.Number, &t.Capacity, &t.Location, &t.QRCode,
			&t.IsAvailable, &t.CreatedAt, &t.UpdatedAt, &t.ActiveOrders, &t.LastOrderTime); err != nil {
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}
		tables = append(tables, &t)
	}
	return tables, rows.Err()
}

func (r *tableRepository) FindByID(ctx context.Context, id int) (*domain.Table, error) {
	query := `
		SELECT t.id, t.table_number, t.capacity, t.location, t.qr_code, t.is_available,
		       t.created_at, t.updated_at,
		       COUNT(o.id) FILTER (WHERE o.status IN ('pending', 'confirmed', 'preparing', 'ready')) AS active_orders,
		       MAX(o.created_at) AS last_order_time
		FROM tables t
		LEFT JOIN orders o ON t.id = o.table_id AND o.created_at::date = CURRENT_DATE
		WHERE t.id = $1
		GROUP BY t.id
	`
	var t domain.Table
	err := r.db.QueryRow(ctx, query, id).Scan(&t.ID, &t.Number, &t.Capacity, &t.Location,
		&t.QRCode, &t.IsAvailable, &t.CreatedAt, &t.UpdatedAt, &t.ActiveOrders, &t.LastOrderTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to load table: %w", err)
	}
	return &t, nil
}

func (r *tableRepository) Create(ctx context.Context, t *domain.Table) error {
	query := `
		INSERT INTO tables (table_number, capacity, location, qr_code)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_available, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, t.Number, t.Capacity, t.Location, t.QRCode).
		Scan(&t.ID, &t.IsAvailable, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert table: %w", err)
	}
	return nil
}

func (r *tableRepository) Update(ctx context.Context, t *domain.Table) error {
	query := `
		UPDATE tables
		SET table_number = $1, capacity = $2, location = $3, is_available = $4,
		    qr_code = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query, t.Number, t.Capacity, t.Location, t.IsAvailable, t.QRCode, t.ID).
		Scan(&t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrTableNotFound
		}
		return fmt.Errorf("failed to update table: %w", err)
	}
	return nil
}

func (r *tableRepository) UpdateAvailability(ctx context.Context, id int, available bool) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE tables SET is_available = $1, updated_at = NOW() WHERE id = $2`,
		available, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update table availability: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTableNotFound
	}
	return nil
}

func (r *tableRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tables WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete table: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTableNotFound
	}
	return nil
}

func (r *tableRepository) NumberInUse(ctx context.Context, number string, excludeID int) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM tables WHERE table_number = $1 AND id <> $2)`,
		number, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check table number: %w", err)
	}
	return exists, nil
}

func (r *tableRepository) CountActiveOrders(ctx context.Context, tableID int) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE table_id = $1 AND status IN ('pending', 'confirmed', 'preparing', 'ready')`,
		tableID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active orders: %w", err)
	}
	return count, nil
}

func (r *tableRepository) Stats(ctx context.Context, date time.Time) (*interfaces.TableStats, error) {
	var stats interfaces.TableStats
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_available),
		       COUNT(*) FILTER (WHERE NOT is_available),
		       COALESCE(SUM(capacity), 0)
		FROM tables
	`).Scan(&stats.TotalTables, &stats.AvailableTables, &stats.MaintenanceTables, &stats.TotalCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to load table stats: %w", err)
	}

	err = r.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT o.table_id)
		FROM orders o
		JOIN tables t ON o.table_id = t.id
		WHERE o.created_at::date = $1
		  AND o.status IN ('pending', 'confirmed', 'preparing', 'ready')
	`, date.Format("2006-01-02")).Scan(&stats.OccupiedTables)
	if err != nil {
		return nil, fmt.Errorf("failed to count occupied tables: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT location, COUNT(*), COALESCE(SUM(capacity), 0)
		FROM tables
		GROUP BY location
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to load location stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ls interfaces.LocationStats
		if err := rows.Scan(&ls.Location, &ls.TableCount, &ls.Capacity); err != nil {
			return nil, fmt.Errorf("failed to scan location stats: %w", err)
		}
		stats.ByLocation = append(stats.ByLocation, ls)
	}
	return &stats, rows.Err()
}
