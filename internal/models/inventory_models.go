package models

import "time"

// Stock status labels assigned to inventory items by the stock-keeping
// screens. The reporting engine treats Low/Critical/Out-of-Stock as
// low-stock regardless of the quantity-vs-threshold comparison.
const (
	StockStatusInStock    = "In Stock"
	StockStatusLowStock   = "Low Stock"
	StockStatusCritical   = "Critical Stock"
	StockStatusOutOfStock = "Out of Stock"
)

// InventoryItem represents a stocked ingredient or supply.
type InventoryItem struct {
	ID            int64      `json:"id" db:"id"`
	Name          string     `json:"name" db:"name"`
	Category      *string    `json:"category,omitempty" db:"category"`
	Quantity      float64    `json:"quantity" db:"quantity"`
	MinStockLevel float64    `json:"min_stock_level" db:"min_stock_level"`
	UnitCost      float64    `json:"unit_cost" db:"unit_cost"`
	TotalCost     float64    `json:"total_cost" db:"total_cost"` // quantity * unit cost, maintained by the CRUD side
	ExpiryDate    *time.Time `json:"expiry_date,omitempty" db:"expiry_date"`
	Status        string     `json:"status" db:"status"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`
}
