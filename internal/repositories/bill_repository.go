package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mdashifraza7786/RAS-sub001/internal/models"
)

// BillRepository defines read access to finalized bills. The reporting
// engine is the main consumer; every method returns bills with their
// originating order and order lines already resolved.
type BillRepository interface {
	// GetPaidBills returns bills with payment status "paid" created inside
	// [start, end].
	GetPaidBills(ctx context.Context, start, end time.Time) ([]models.Bill, error)
	// GetBillsByRange returns all bills created inside [start, end]
	// regardless of payment status.
	GetBillsByRange(ctx context.Context, start, end time.Time) ([]models.Bill, error)
}

type billRepository struct {
	db *sql.DB
}

// NewBillRepository creates a new instance of BillRepository.
func NewBillRepository(db *sql.DB) BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) GetPaidBills(ctx context.Context, start, end time.Time) ([]models.Bill, error) {
	return r.getBills(ctx, start, end, true)
}

func (r *billRepository) GetBillsByRange(ctx context.Context, start, end time.Time) ([]models.Bill, error) {
	return r.getBills(ctx, start, end, false)
}

func (r *billRepository) getBills(ctx context.Context, start, end time.Time, paidOnly bool) ([]models.Bill, error) {
	query := `
		SELECT b.id, b.order_id, b.total, b.payment_method, b.payment_status,
		       b.customer_name, b.customer_phone, b.created_at,
		       o.id, o.status, o.staff_id, o.table_id, o.created_at, o.updated_at
		FROM bills b
		LEFT JOIN orders o ON b.order_id = o.id
		WHERE b.created_at >= $1 AND b.created_at <= $2`
	if paidOnly {
		query += ` AND b.payment_status = 'paid'`
	}
	query += ` ORDER BY b.created_at ASC, b.id ASC`

	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("%w: querying bills: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	bills := []models.Bill{}
	orderIDs := []int64{}
	for rows.Next() {
		var bill models.Bill
		var (
			orderID        sql.NullInt64
			orderStatus    sql.NullString
			orderStaffID   sql.NullInt64
			orderTableID   sql.NullInt64
			orderCreatedAt sql.NullTime
			orderUpdatedAt sql.NullTime
		)
		if err := rows.Scan(
			&bill.ID, &bill.OrderID, &bill.Total, &bill.PaymentMethod, &bill.PaymentStatus,
			&bill.CustomerName, &bill.CustomerPhone, &bill.CreatedAt,
			&orderID, &orderStatus, &orderStaffID, &orderTableID, &orderCreatedAt, &orderUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning bill: %v", ErrDatabaseError, err)
		}

		if orderID.Valid {
			order := &models.Order{
				ID:     orderID.Int64,
				Status: orderStatus.String,
			}
			if orderStaffID.Valid {
				order.StaffID = &orderStaffID.Int64
			}
			if orderTableID.Valid {
				order.TableID = &orderTableID.Int64
			}
			if orderCreatedAt.Valid {
				order.CreatedAt = orderCreatedAt.Time
			}
			if orderUpdatedAt.Valid {
				order.UpdatedAt = orderUpdatedAt.Time
			}
			bill.Order = order
			orderIDs = append(orderIDs, order.ID)
		}
		bills = append(bills, bill)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating bills: %v", ErrDatabaseError, err)
	}

	if len(orderIDs) > 0 {
		itemsByOrder, err := loadOrderItems(ctx, r.db, orderIDs)
		if err != nil {
			return nil, err
		}
		for i := range bills {
			if bills[i].Order != nil {
				bills[i].Order.Items = itemsByOrder[bills[i].Order.ID]
			}
		}
	}

	return bills, nil
}
