package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdashifraza7786/RAS-sub001/internal/models"
)

func TestAggregateInventory(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	meat := "Meat"
	produce := "Produce"

	t.Run("low stock by threshold or by label", func(t *testing.T) {
		items := []models.InventoryItem{
			// Quantity at or below the threshold counts even when the
			// stored label says otherwise.
			{ID: 1, Name: "Chicken", Quantity: 2, MinStockLevel: 5, Status: models.StockStatusInStock},
			{ID: 2, Name: "Flour", Quantity: 50, MinStockLevel: 5, Status: models.StockStatusOutOfStock},
			{ID: 3, Name: "Tomatoes", Quantity: 40, MinStockLevel: 10, Status: models.StockStatusInStock},
		}

		report := aggregateInventory(items, nil, now)

		assert.Equal(t, 2, report.LowStockItems)
		require.Len(t, report.LowStockItemList, 2)
		assert.Equal(t, "Chicken", report.LowStockItemList[0].Name)
		assert.Equal(t, "Flour", report.LowStockItemList[1].Name)
	})

	t.Run("low stock list is capped at ten", func(t *testing.T) {
		items := make([]models.InventoryItem, 0, 12)
		for i := 0; i < 12; i++ {
			items = append(items, models.InventoryItem{
				ID: int64(i + 1), Name: fmt.Sprintf("Item %d", i+1),
				Quantity: 1, MinStockLevel: 5, Status: models.StockStatusInStock,
			})
		}

		report := aggregateInventory(items, nil, now)

		assert.Equal(t, 12, report.LowStockItems)
		assert.Len(t, report.LowStockItemList, 10)
	})

	t.Run("expiring items within seven days", func(t *testing.T) {
		soon := now.AddDate(0, 0, 3)
		later := now.AddDate(0, 0, 30)
		items := []models.InventoryItem{
			{ID: 1, Name: "Milk", Quantity: 10, MinStockLevel: 2, ExpiryDate: &soon},
			{ID: 2, Name: "Rice", Quantity: 10, MinStockLevel: 2, ExpiryDate: &later},
			{ID: 3, Name: "Salt", Quantity: 10, MinStockLevel: 2},
		}

		report := aggregateInventory(items, nil, now)

		assert.Equal(t, 1, report.ExpiringItems)
	})

	t.Run("categories valued and sorted descending", func(t *testing.T) {
		items := []models.InventoryItem{
			{ID: 1, Name: "Chicken", Category: &meat, Quantity: 10, MinStockLevel: 2, TotalCost: 200},
			{ID: 2, Name: "Beef", Category: &meat, Quantity: 10, MinStockLevel: 2, TotalCost: 400},
			{ID: 3, Name: "Lettuce", Category: &produce, Quantity: 10, MinStockLevel: 2, TotalCost: 50},
			{ID: 4, Name: "Napkins", Quantity: 10, MinStockLevel: 2, TotalCost: 100},
		}

		report := aggregateInventory(items, nil, now)

		assert.Equal(t, 4, report.TotalItems)
		assert.Equal(t, 750.0, report.TotalValue)

		require.Len(t, report.StockCategories, 3)
		assert.Equal(t, "Meat", report.StockCategories[0].Category)
		assert.Equal(t, 600.0, report.StockCategories[0].Value)
		assert.Equal(t, 2, report.StockCategories[0].Items)
		assert.Equal(t, uncategorizedLabel, report.StockCategories[1].Category)
		assert.Equal(t, "Produce", report.StockCategories[2].Category)
	})

	t.Run("movement classified by recorded usage", func(t *testing.T) {
		items := []models.InventoryItem{
			{ID: 1, Name: "Chicken", Category: &meat, Quantity: 10, MinStockLevel: 2, TotalCost: 300},
			{ID: 2, Name: "Beef", Category: &meat, Quantity: 10, MinStockLevel: 2, TotalCost: 300},
			{ID: 3, Name: "Lettuce", Category: &produce, Quantity: 10, MinStockLevel: 2, TotalCost: 50},
		}
		orders := []models.Order{
			{Items: []models.OrderItem{
				{Quantity: 1, Ingredients: []models.IngredientUsage{
					{InventoryItemID: 1, Quantity: 30},
					{InventoryItemID: 2, Quantity: 20},
					{InventoryItemID: 3, Quantity: 2},
				}},
			}},
		}

		report := aggregateInventory(items, orders, now)

		require.Len(t, report.StockCategories, 2)
		// Meat: 50 units over 2 items, Produce: 2 units over 1 item.
		assert.Equal(t, movementHigh, report.StockCategories[0].AvgMovement)
		assert.Equal(t, movementLow, report.StockCategories[1].AvgMovement)
	})

	t.Run("movement falls back to item count without usage", func(t *testing.T) {
		items := make([]models.InventoryItem, 0, 6)
		for i := 0; i < 6; i++ {
			items = append(items, models.InventoryItem{
				ID: int64(i + 1), Name: fmt.Sprintf("Item %d", i+1), Category: &produce,
				Quantity: 10, MinStockLevel: 2,
			})
		}

		report := aggregateInventory(items, nil, now)

		require.Len(t, report.StockCategories, 1)
		assert.Equal(t, movementMedium, report.StockCategories[0].AvgMovement)
	})

	t.Run("empty snapshot yields a zeroed report", func(t *testing.T) {
		report := aggregateInventory(nil, nil, now)

		assert.Equal(t, 0, report.TotalItems)
		assert.Equal(t, 0.0, report.TotalValue)
		assert.Empty(t, report.StockCategories)
		assert.Empty(t, report.LowStockItemList)
	})
}
