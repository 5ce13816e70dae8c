package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mdashifraza7786/RAS-sub001/internal/models"
)

// InventoryRepository defines read access to the current inventory
// snapshot. Inventory reporting is always "as of now", so there is no
// time-filtered variant.
type InventoryRepository interface {
	GetAllItems(ctx context.Context) ([]models.InventoryItem, error)
}

type inventoryRepository struct {
	db *sql.DB
}

// NewInventoryRepository creates a new instance of InventoryRepository.
func NewInventoryRepository(db *sql.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) GetAllItems(ctx context.Context) ([]models.InventoryItem, error) {
	query := `
		SELECT id, name, category, quantity, min_stock_level, unit_cost, total_cost,
		       expiry_date, COALESCE(status, ''), updated_at
		FROM inventory_items
		ORDER BY name ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying inventory items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	items := []models.InventoryItem{}
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Quantity,
			&item.MinStockLevel, &item.UnitCost, &item.TotalCost,
			&item.ExpiryDate, &item.Status, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning inventory item: %v", ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating inventory items: %v", ErrDatabaseError, err)
	}

	return items, nil
}
