package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdashifraza7786/RAS-sub001/internal/models"
)

func orderColumns() []string {
	return []string{"id", "status", "staff_id", "table_id", "created_at", "updated_at"}
}

func TestGetOrdersByRange(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	placedAt := time.Date(2024, 3, 12, 13, 0, 0, 0, time.UTC)

	t.Run("resolves lines and ingredients", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM orders`).
			WithArgs(start, end).
			WillReturnRows(sqlmock.NewRows(orderColumns()).
				AddRow(10, "completed", 3, 5, placedAt, placedAt).
				AddRow(11, "pending", nil, nil, placedAt, placedAt))

		mock.ExpectQuery(`FROM order_items oi`).
			WillReturnRows(sqlmock.NewRows(orderItemColumns()).
				AddRow(100, 10, 7, "Pizza", 2, 12.5).
				AddRow(101, 10, nil, nil, 1, 4.0))

		mock.ExpectQuery(`FROM order_item_ingredients`).
			WillReturnRows(sqlmock.NewRows(ingredientColumns()).
				AddRow(100, 42, 0.5).
				AddRow(100, 43, 1.0))

		repo := NewOrderRepository(db)
		orders, err := repo.GetOrdersByRange(context.Background(), start, end)

		require.NoError(t, err)
		require.Len(t, orders, 2)

		first := orders[0]
		assert.Equal(t, "completed", first.Status)
		require.NotNil(t, first.StaffID)
		assert.Equal(t, int64(3), *first.StaffID)
		require.Len(t, first.Items, 2)
		assert.Len(t, first.Items[0].Ingredients, 2)
		assert.Nil(t, first.Items[1].MenuItemID)
		assert.Nil(t, first.Items[1].ItemName)

		second := orders[1]
		assert.Nil(t, second.StaffID)
		assert.Empty(t, second.Items)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty range skips the line queries", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM orders`).
			WithArgs(start, end).
			WillReturnRows(sqlmock.NewRows(orderColumns()))

		repo := NewOrderRepository(db)
		orders, err := repo.GetOrdersByRange(context.Background(), start, end)

		require.NoError(t, err)
		assert.Empty(t, orders)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps query failures", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM orders`).
			WithArgs(start, end).
			WillReturnError(errors.New("connection reset"))

		repo := NewOrderRepository(db)
		orders, err := repo.GetOrdersByRange(context.Background(), start, end)

		assert.Nil(t, orders)
		assert.ErrorIs(t, err, ErrDatabaseError)
	})
}

func TestGetOrders(t *testing.T) {
	placedAt := time.Date(2024, 3, 12, 13, 0, 0, 0, time.UTC)

	t.Run("filters and paginates", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		status := "completed"
		filters := models.OrderFilters{Status: &status, Page: 2, PageSize: 10}

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM orders WHERE 1=1 AND status = \$1`).
			WithArgs(status).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(15))

		mock.ExpectQuery(`(?s)FROM orders WHERE 1=1 AND status = \$1.*LIMIT \$2 OFFSET \$3`).
			WithArgs(status, 10, 10).
			WillReturnRows(sqlmock.NewRows(orderColumns()).
				AddRow(11, "completed", 3, 5, placedAt, placedAt))

		repo := NewOrderRepository(db)
		orders, total, err := repo.GetOrders(context.Background(), filters)

		require.NoError(t, err)
		assert.Equal(t, 15, total)
		require.Len(t, orders, 1)
		assert.Equal(t, int64(11), orders[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("defaults page and page size", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM orders WHERE 1=1`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		mock.ExpectQuery(`(?s)FROM orders WHERE 1=1.*LIMIT \$1 OFFSET \$2`).
			WithArgs(20, 0).
			WillReturnRows(sqlmock.NewRows(orderColumns()))

		repo := NewOrderRepository(db)
		orders, total, err := repo.GetOrders(context.Background(), models.OrderFilters{})

		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, orders)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
