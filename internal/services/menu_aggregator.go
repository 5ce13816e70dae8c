package services

import (
	"sort"

	"github.com/mdashifraza7786/RAS-sub001/internal/models"
)

// defaultMenuRating stands in for items without a popularity score. A
// fixed neutral value keeps report output deterministic and cacheable.
const defaultMenuRating = 4.0

type menuCategoryBucket struct {
	category string
	count    int
}

// aggregateMenu builds the menu report from the current menu snapshot and
// the orders of the requested window.
func aggregateMenu(menuItems []models.MenuItem, orders []models.Order) *models.MenuReport {
	report := &models.MenuReport{
		TotalItems:        len(menuItems),
		CategoryBreakdown: []models.CategoryBreakdown{},
		TopItems:          []models.MenuItemStats{},
		LeastOrderedItems: []models.MenuItemStats{},
	}

	categories := newKeyedAccumulator[menuCategoryBucket]()
	stats := make([]models.MenuItemStats, 0, len(menuItems))
	statsByID := make(map[int64]*models.MenuItemStats, len(menuItems))

	for _, item := range menuItems {
		category := uncategorizedLabel
		if item.Category != nil && *item.Category != "" {
			category = *item.Category
		}
		bucket := categories.bucket(category)
		bucket.category = category
		bucket.count++

		rating := defaultMenuRating
		if item.Popularity != nil {
			rating = *item.Popularity
		}
		stats = append(stats, models.MenuItemStats{
			MenuItemID: item.ID,
			Name:       item.Name,
			Category:   category,
			Price:      item.Price,
			Rating:     rating,
		})
	}
	for i := range stats {
		statsByID[stats[i].MenuItemID] = &stats[i]
	}

	for _, order := range orders {
		for _, line := range order.Items {
			if line.MenuItemID == nil {
				continue
			}
			item, ok := statsByID[*line.MenuItemID]
			if !ok {
				continue
			}
			item.OrderedCount += line.Quantity
			item.Revenue += line.UnitPrice * float64(line.Quantity)
		}
	}

	for _, bucket := range categories.collect() {
		report.CategoryBreakdown = append(report.CategoryBreakdown, models.CategoryBreakdown{
			Category:   bucket.category,
			Count:      bucket.count,
			Percentage: percentOf(float64(bucket.count), float64(report.TotalItems)),
		})
	}
	sort.SliceStable(report.CategoryBreakdown, func(i, j int) bool {
		return report.CategoryBreakdown[i].Count > report.CategoryBreakdown[j].Count
	})

	top := make([]models.MenuItemStats, len(stats))
	copy(top, stats)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].OrderedCount > top[j].OrderedCount
	})
	report.TopItems = capList(top, 10)

	// Items never ordered in the window are excluded here rather than
	// treated as "least ordered".
	least := []models.MenuItemStats{}
	for _, item := range stats {
		if item.OrderedCount > 0 {
			least = append(least, item)
		}
	}
	sort.SliceStable(least, func(i, j int) bool {
		return least[i].OrderedCount < least[j].OrderedCount
	})
	report.LeastOrderedItems = capList(least, 5)

	return report
}
