package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mdashifraza7786/RAS-sub001/internal/models"

	"github.com/lib/pq"
)

// OrderRepository defines read access to orders. The reporting engine uses
// GetOrdersByRange for its usage/staff lookbacks; the list endpoint uses
// GetOrders with filters and pagination.
type OrderRepository interface {
	GetOrdersByRange(ctx context.Context, start, end time.Time) ([]models.Order, error)
	GetOrders(ctx context.Context, filters models.OrderFilters) ([]models.Order, int, error) // orders, total count, error
}

type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new instance of OrderRepository.
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

// GetOrdersByRange returns the orders created inside [start, end], each
// with its lines and the lines' ingredient usage resolved.
func (r *orderRepository) GetOrdersByRange(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	query := `
		SELECT id, status, staff_id, table_id, created_at, updated_at
		FROM orders
		WHERE created_at >= $1 AND created_at <= $2
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: querying orders by range: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	orders := []models.Order{}
	orderIDs := []int64{}
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.ID, &order.Status, &order.StaffID, &order.TableID,
			&order.CreatedAt, &order.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: scanning order: %v", ErrDatabaseError, err)
		}
		orders = append(orders, order)
		orderIDs = append(orderIDs, order.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating orders: %v", ErrDatabaseError, err)
	}

	if len(orderIDs) > 0 {
		itemsByOrder, err := loadOrderItems(ctx, r.db, orderIDs)
		if err != nil {
			return nil, err
		}
		for i := range orders {
			orders[i].Items = itemsByOrder[orders[i].ID]
		}
	}

	return orders, nil
}

// GetOrders returns a filtered, paginated page of orders plus the total
// count matching the filters. Lines are not resolved for the list view.
func (r *orderRepository) GetOrders(ctx context.Context, filters models.OrderFilters) ([]models.Order, int, error) {
	var queryBuilder strings.Builder
	args := []interface{}{}
	argIdx := 1

	queryBuilder.WriteString(`FROM orders WHERE 1=1`)
	if filters.Status != nil {
		queryBuilder.WriteString(" AND status = $" + strconv.Itoa(argIdx))
		args = append(args, *filters.Status)
		argIdx++
	}
	if filters.StaffID != nil {
		queryBuilder.WriteString(" AND staff_id = $" + strconv.Itoa(argIdx))
		args = append(args, *filters.StaffID)
		argIdx++
	}
	if filters.TableID != nil {
		queryBuilder.WriteString(" AND table_id = $" + strconv.Itoa(argIdx))
		args = append(args, *filters.TableID)
		argIdx++
	}
	if filters.Date != nil {
		queryBuilder.WriteString(" AND created_at::date = $" + strconv.Itoa(argIdx))
		args = append(args, *filters.Date)
		argIdx++
	}

	totalCount := 0
	countQuery := "SELECT COUNT(*) " + queryBuilder.String()
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("%w: counting orders: %v", ErrDatabaseError, err)
	}

	page := filters.Page
	if page < 1 {
		page = 1
	}
	pageSize := filters.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	listQuery := "SELECT id, status, staff_id, table_id, created_at, updated_at " +
		queryBuilder.String() +
		" ORDER BY created_at DESC, id DESC" +
		" LIMIT $" + strconv.Itoa(argIdx) + " OFFSET $" + strconv.Itoa(argIdx+1)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: querying orders: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.ID, &order.Status, &order.StaffID, &order.TableID,
			&order.CreatedAt, &order.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("%w: scanning order: %v", ErrDatabaseError, err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating orders: %v", ErrDatabaseError, err)
	}

	return orders, totalCount, nil
}

// loadOrderItems fetches the lines for a batch of orders in one query,
// joined with the menu item name, and a second query for the lines'
// ingredient usage. Shared by the bill and order repositories.
func loadOrderItems(ctx context.Context, db *sql.DB, orderIDs []int64) (map[int64][]models.OrderItem, error) {
	query := `
		SELECT oi.id, oi.order_id, oi.menu_item_id, mi.name, oi.quantity, oi.unit_price
		FROM order_items oi
		LEFT JOIN menu_items mi ON oi.menu_item_id = mi.id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.order_id ASC, oi.id ASC`

	rows, err := db.QueryContext(ctx, query, pq.Array(orderIDs))
	if err != nil {
		return nil, fmt.Errorf("%w: querying order items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	items := []models.OrderItem{}
	itemIDs := []int64{}
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.ItemName,
			&item.Quantity, &item.UnitPrice); err != nil {
			return nil, fmt.Errorf("%w: scanning order item: %v", ErrDatabaseError, err)
		}
		items = append(items, item)
		itemIDs = append(itemIDs, item.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating order items: %v", ErrDatabaseError, err)
	}

	ingredientsByItem := make(map[int64][]models.IngredientUsage)
	if len(itemIDs) > 0 {
		ingredientQuery := `
			SELECT order_item_id, inventory_item_id, quantity
			FROM order_item_ingredients
			WHERE order_item_id = ANY($1)
			ORDER BY order_item_id ASC, inventory_item_id ASC`

		ingRows, err := db.QueryContext(ctx, ingredientQuery, pq.Array(itemIDs))
		if err != nil {
			return nil, fmt.Errorf("%w: querying order item ingredients: %v", ErrDatabaseError, err)
		}
		defer ingRows.Close()

		for ingRows.Next() {
			var orderItemID int64
			var usage models.IngredientUsage
			if err := ingRows.Scan(&orderItemID, &usage.InventoryItemID, &usage.Quantity); err != nil {
				return nil, fmt.Errorf("%w: scanning ingredient usage: %v", ErrDatabaseError, err)
			}
			ingredientsByItem[orderItemID] = append(ingredientsByItem[orderItemID], usage)
		}
		if err := ingRows.Err(); err != nil {
			return nil, fmt.Errorf("%w: iterating ingredient usage: %v", ErrDatabaseError, err)
		}
	}

	itemsByOrder := make(map[int64][]models.OrderItem)
	for _, item := range items {
		item.Ingredients = ingredientsByItem[item.ID]
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	return itemsByOrder, nil
}
