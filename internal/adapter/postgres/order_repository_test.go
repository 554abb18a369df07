package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YelzhanWeb/restaurant/internal/interfaces"
)

type stubRows struct{}

func (stubRows) Next() bool        { return false }
func (stubRows) Scan(...any) error { return nil }
func (stubRows) Err() error        { return nil }
func (stubRows) Close()            {}

// recordingDB captures the last query and its arguments.
type recordingDB struct {
	query string
	args  []any
}

func (db *recordingDB) Query(ctx context.Context, sql string, args ...any) (Rows, error) {
	db.query = sql
	db.args = args
	return stubRows{}, nil
}

func (db *recordingDB) QueryRow(ctx context.Context, sql string, args ...any) Row {
	db.query = sql
	db.args = args
	return nil
}

func (db *recordingDB) Exec(ctx context.Context, sql string, args ...any) (CommandTag, error) {
	return nil, nil
}

func (db *recordingDB) Begin(ctx context.Context) (Tx, error) { return nil, nil }

func (db *recordingDB) Close() {}

func TestOrderListPaginationBounds(t *testing.T) {
	tests := []struct {
		name       string
		filter     interfaces.OrderFilter
		wantLimit  int
		wantOffset int
	}{
		{"defaults", interfaces.OrderFilter{}, 50, 0},
		{"zero limit defaulted", interfaces.OrderFilter{Offset: 40}, 50, 40},
		{"negative limit defaulted", interfaces.OrderFilter{Limit: -1}, 50, 0},
		{"negative offset clamped", interfaces.OrderFilter{Limit: 20, Offset: -10}, 20, 0},
		{"explicit values kept", interfaces.OrderFilter{Limit: 5, Offset: 15}, 5, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &recordingDB{}
			repo := NewOrderRepository(db)

			_, err := repo.List(context.Background(), tt.filter)
			require.NoError(t, err)

			// LIMIT and OFFSET are always the last two placeholders.
			require.GreaterOrEqual(t, len(db.args), 2)
			assert.Equal(t, tt.wantLimit, db.args[len(db.args)-2])
			assert.Equal(t, tt.wantOffset, db.args[len(db.args)-1])
		})
	}
}

func TestCustomerListPaginationBounds(t *testing.T) {
	db := &recordingDB{}
	repo := NewCustomerRepository(db)

	_, err := repo.List(context.Background(), "", 0, -25)
	require.NoError(t, err)

	require.Len(t, db.args, 2)
	assert.Equal(t, 50, db.args[0])
	assert.Equal(t, 0, db.args[1])
}

func TestMenuListItemsPaginationBounds(t *testing.T) {
	db := &recordingDB{}
	repo := NewMenuRepository(db)

	_, err := repo.ListItems(context.Background(), interfaces.MenuItemFilter{Limit: 10, Offset: -3})
	require.NoError(t, err)

	require.Len(t, db.args, 2)
	assert.Equal(t, 10, db.args[0])
	assert.Equal(t, 0, db.args[1])
}
