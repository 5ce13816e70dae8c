package models

import "time"

// Report payload shapes. These are wire contracts consumed by the admin
// dashboard, which expects camelCase keys, so the JSON tags here differ
// from the snake_case used by the rest of the API.

// TimeRange is the resolved reporting window echoed back to the caller.
type TimeRange struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Report wraps one of the five report payloads with its window metadata.
type Report struct {
	ReportType  string      `json:"reportType"`
	Period      string      `json:"period"`
	TimeRange   TimeRange   `json:"timeRange"`
	Data        interface{} `json:"data"`
	GeneratedAt time.Time   `json:"generatedAt"`
}

// --- Sales report ---

// DailyRevenue is one calendar-day bucket of the sales report.
type DailyRevenue struct {
	Date    string  `json:"date"` // YYYY-MM-DD, UTC
	Revenue float64 `json:"revenue"`
	Orders  int     `json:"orders"`
}

// PaymentMethodBreakdown groups paid bills by payment method.
type PaymentMethodBreakdown struct {
	Method     string  `json:"method"`
	Amount     float64 `json:"amount"`
	Count      int     `json:"count"`
	Percentage int     `json:"percentage"`
}

// OrderTypeBreakdown groups paid bills by the status of their originating order.
type OrderTypeBreakdown struct {
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
	Count      int     `json:"count"`
	Percentage int     `json:"percentage"`
}

// TopSellingItem ranks a menu item by revenue across the window.
type TopSellingItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// SalesReport is the payload for type=sales.
type SalesReport struct {
	TotalRevenue      float64                  `json:"totalRevenue"`
	TotalOrders       int                      `json:"totalOrders"`
	AverageOrderValue float64                  `json:"averageOrderValue"`
	RevenueByDay      []DailyRevenue           `json:"revenueByDay"`
	PaymentMethods    []PaymentMethodBreakdown `json:"paymentMethods"`
	OrderTypes        []OrderTypeBreakdown     `json:"orderTypes"`
	TopSellingItems   []TopSellingItem         `json:"topSellingItems"`
	TableTurnoverRate float64                  `json:"tableTurnoverRate"`
}

// --- Inventory report ---

// StockCategory aggregates inventory items that share a category.
type StockCategory struct {
	Category    string  `json:"category"`
	Items       int     `json:"items"`
	Value       float64 `json:"value"`
	AvgMovement string  `json:"avgMovement"` // High, Medium or Low
}

// LowStockItem is the compact shape of an item below its threshold.
type LowStockItem struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Quantity      float64 `json:"quantity"`
	MinStockLevel float64 `json:"minStockLevel"`
	Status        string  `json:"status"`
}

// InventoryReport is the payload for type=inventory.
type InventoryReport struct {
	TotalItems       int             `json:"totalItems"`
	TotalValue       float64         `json:"totalValue"`
	LowStockItems    int             `json:"lowStockItems"`
	ExpiringItems    int             `json:"expiringItems"`
	StockCategories  []StockCategory `json:"stockCategories"`
	LowStockItemList []LowStockItem  `json:"lowStockItemList"`
}

// --- Staff report ---

// RoleCount is the number of staff members holding a role.
type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

// TopPerformer carries a staff member's performance score plus the extra
// metric relevant to their role: tables served for waiters, orders handled
// for chefs, nothing for everyone else.
type TopPerformer struct {
	StaffID       int64  `json:"staffId"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	Performance   int    `json:"performance"`
	TablesServed  *int   `json:"tablesServed,omitempty"`
	OrdersHandled *int   `json:"ordersHandled,omitempty"`
}

// StaffReport is the payload for type=staff.
type StaffReport struct {
	TotalStaff    int            `json:"totalStaff"`
	StaffByRole   []RoleCount    `json:"staffByRole"`
	TopPerformers []TopPerformer `json:"topPerformers"`
}

// --- Menu report ---

// CategoryBreakdown is the share of menu items per category.
type CategoryBreakdown struct {
	Category   string `json:"category"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// MenuItemStats carries per-item order statistics for the window.
type MenuItemStats struct {
	MenuItemID   int64   `json:"menuItemId"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Price        float64 `json:"price"`
	OrderedCount int     `json:"orderedCount"`
	Revenue      float64 `json:"revenue"`
	Rating       float64 `json:"rating"`
}

// MenuReport is the payload for type=menu.
type MenuReport struct {
	TotalItems        int                 `json:"totalItems"`
	CategoryBreakdown []CategoryBreakdown `json:"categoryBreakdown"`
	TopItems          []MenuItemStats     `json:"topItems"`
	LeastOrderedItems []MenuItemStats     `json:"leastOrderedItems"`
}

// --- Customer report ---

// TopCustomer is the compact projection of a customer's visit history.
type TopCustomer struct {
	Name          string  `json:"name"`
	Visits        int     `json:"visits"`
	TotalSpent    float64 `json:"totalSpent"`
	LastVisit     string  `json:"lastVisit"` // RFC3339
	FavoriteItem  string  `json:"favoriteItem"`
	PreferredTime string  `json:"preferredTime"` // Morning, Afternoon, Evening or "No data"
}

// CustomerReport is the payload for type=customers.
type CustomerReport struct {
	TotalCustomers  int           `json:"totalCustomers"`
	NewCustomers    int           `json:"newCustomers"`
	RepeatCustomers int           `json:"repeatCustomers"`
	TopCustomers    []TopCustomer `json:"topCustomers"`
}

// DashboardSummary bundles all five reports for the default month window.
type DashboardSummary struct {
	Sales       *SalesReport     `json:"sales"`
	Inventory   *InventoryReport `json:"inventory"`
	Staff       *StaffReport     `json:"staff"`
	Menu        *MenuReport      `json:"menu"`
	Customers   *CustomerReport  `json:"customers"`
	GeneratedAt time.Time        `json:"generatedAt"`
}
