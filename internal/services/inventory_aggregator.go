package services

import (
	"sort"
	"time"

	"github.com/mdashifraza7786/RAS-sub001/internal/models"
)

const (
	// usageLookbackDays is the fixed trailing window used to estimate
	// ingredient movement. It is deliberately independent of the report's
	// requested period so changing the period never shifts usage numbers.
	usageLookbackDays = 30

	// expiryHorizonDays is how far ahead the expiring-items count looks.
	expiryHorizonDays = 7

	// uncategorizedLabel groups items without a category.
	uncategorizedLabel = "Uncategorized"
)

// Average-movement labels for stock categories.
const (
	movementHigh   = "High"
	movementMedium = "Medium"
	movementLow    = "Low"
)

type categoryBucket struct {
	category string
	items    int
	value    float64
	usage    float64
	hasUsage bool
}

// aggregateInventory builds the inventory report from the current item
// snapshot plus the ingredient usage recorded by orders in the trailing
// 30 days.
func aggregateInventory(items []models.InventoryItem, recentOrders []models.Order, now time.Time) *models.InventoryReport {
	report := &models.InventoryReport{
		StockCategories:  []models.StockCategory{},
		LowStockItemList: []models.LowStockItem{},
	}

	usageByItem := ingredientUsageByItem(recentOrders)
	expiryLimit := now.AddDate(0, 0, expiryHorizonDays)
	categories := newKeyedAccumulator[categoryBucket]()

	for _, item := range items {
		report.TotalItems++
		report.TotalValue += item.TotalCost

		if isLowStock(item) {
			report.LowStockItems++
			if len(report.LowStockItemList) < 10 {
				report.LowStockItemList = append(report.LowStockItemList, models.LowStockItem{
					ID:            item.ID,
					Name:          item.Name,
					Quantity:      item.Quantity,
					MinStockLevel: item.MinStockLevel,
					Status:        item.Status,
				})
			}
		}

		if item.ExpiryDate != nil && !item.ExpiryDate.After(expiryLimit) {
			report.ExpiringItems++
		}

		label := uncategorizedLabel
		if item.Category != nil && *item.Category != "" {
			label = *item.Category
		}
		bucket := categories.bucket(label)
		bucket.category = label
		bucket.items++
		bucket.value += item.TotalCost
		if used, ok := usageByItem[item.ID]; ok {
			bucket.usage += used
			bucket.hasUsage = true
		}
	}

	grouped := categories.collect()
	sort.SliceStable(grouped, func(i, j int) bool {
		return grouped[i].value > grouped[j].value
	})
	for _, bucket := range grouped {
		report.StockCategories = append(report.StockCategories, models.StockCategory{
			Category:    bucket.category,
			Items:       bucket.items,
			Value:       bucket.value,
			AvgMovement: classifyMovement(bucket),
		})
	}

	return report
}

// isLowStock honors both the stored status label and the raw
// quantity-vs-threshold comparison; either condition qualifies.
func isLowStock(item models.InventoryItem) bool {
	switch item.Status {
	case models.StockStatusLowStock, models.StockStatusCritical, models.StockStatusOutOfStock:
		return true
	}
	return item.Quantity <= item.MinStockLevel
}

// classifyMovement labels a category High/Medium/Low. With recorded usage
// the classification follows usage per item; without any usage it falls
// back to the raw item count.
func classifyMovement(bucket *categoryBucket) string {
	if bucket.hasUsage {
		perItem := bucket.usage / float64(bucket.items)
		switch {
		case perItem > 20:
			return movementHigh
		case perItem < 5:
			return movementLow
		default:
			return movementMedium
		}
	}
	switch {
	case bucket.items > 20:
		return movementHigh
	case bucket.items < 5:
		return movementLow
	default:
		return movementMedium
	}
}

// ingredientUsageByItem totals consumed quantity per inventory item across
// every order line that lists ingredient references.
func ingredientUsageByItem(orders []models.Order) map[int64]float64 {
	usage := make(map[int64]float64)
	for _, order := range orders {
		for _, line := range order.Items {
			for _, ingredient := range line.Ingredients {
				usage[ingredient.InventoryItemID] += ingredient.Quantity
			}
		}
	}
	return usage
}
