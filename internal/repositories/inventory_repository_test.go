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

func TestInventoryGetAllItems(t *testing.T) {
	columns := []string{"id", "name", "category", "quantity", "min_stock_level",
		"unit_cost", "total_cost", "expiry_date", "status", "updated_at"}
	updatedAt := time.Date(2024, 3, 12, 8, 0, 0, 0, time.UTC)

	t.Run("scans nullable columns", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		expiry := updatedAt.AddDate(0, 0, 5)
		mock.ExpectQuery(`FROM inventory_items`).
			WillReturnRows(sqlmock.NewRows(columns).
				AddRow(1, "Chicken", "Meat", 12.0, 5.0, 4.5, 54.0, expiry, models.StockStatusInStock, updatedAt).
				AddRow(2, "Napkins", nil, 200.0, 50.0, 0.1, 20.0, nil, "", updatedAt))

		repo := NewInventoryRepository(db)
		items, err := repo.GetAllItems(context.Background())

		require.NoError(t, err)
		require.Len(t, items, 2)

		chicken := items[0]
		require.NotNil(t, chicken.Category)
		assert.Equal(t, "Meat", *chicken.Category)
		require.NotNil(t, chicken.ExpiryDate)
		assert.Equal(t, expiry, *chicken.ExpiryDate)
		assert.Equal(t, models.StockStatusInStock, chicken.Status)

		napkins := items[1]
		assert.Nil(t, napkins.Category)
		assert.Nil(t, napkins.ExpiryDate)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("wraps query failures", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`FROM inventory_items`).
			WillReturnError(errors.New("connection reset"))

		repo := NewInventoryRepository(db)
		items, err := repo.GetAllItems(context.Background())

		assert.Nil(t, items)
		assert.ErrorIs(t, err, ErrDatabaseError)
	})
}
