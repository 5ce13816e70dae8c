package models

import "time"

// Order represents a placed order together with its line items.
type Order struct {
	ID        int64       `json:"id" db:"id"`
	Status    string      `json:"status" db:"status"`
	StaffID   *int64      `json:"staff_id,omitempty" db:"staff_id"`
	TableID   *int64      `json:"table_id,omitempty" db:"table_id"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
	Items     []OrderItem `json:"items,omitempty"`
}

// OrderItem is a single line of an order. MenuItemID and ItemName are
// nullable because the referenced menu item may have been deleted since
// the order was placed.
type OrderItem struct {
	ID          int64             `json:"id" db:"id"`
	OrderID     int64             `json:"order_id" db:"order_id"`
	MenuItemID  *int64            `json:"menu_item_id,omitempty" db:"menu_item_id"`
	ItemName    *string           `json:"item_name,omitempty"`
	Quantity    int               `json:"quantity" db:"quantity"`
	UnitPrice   float64           `json:"unit_price" db:"unit_price"`
	Ingredients []IngredientUsage `json:"ingredients,omitempty"`
}

// IngredientUsage records how much of an inventory item a single order
// line consumed.
type IngredientUsage struct {
	InventoryItemID int64   `json:"inventory_item_id" db:"inventory_item_id"`
	Quantity        float64 `json:"quantity" db:"quantity"`
}

// OrderFilters defines the available filters for querying orders.
// This struct is used by both the service and repository layers.
type OrderFilters struct {
	Status   *string `form:"status"`
	StaffID  *int64  `form:"staff_id"`
	TableID  *int64  `form:"table_id"`
	Date     *string `form:"date"` // Expected format YYYY-MM-DD
	Page     int     `form:"page"`
	PageSize int     `form:"page_size"`
}
