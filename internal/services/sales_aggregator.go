package services

import (
	"sort"
	"strconv"

	"github.com/mdashifraza7786/RAS-sub001/internal/models"
)

// unknownItemName labels order lines whose menu item no longer resolves.
const unknownItemName = "Unknown Item"

type dayBucket struct {
	date    string
	revenue float64
	orders  int
}

type paymentBucket struct {
	method string
	amount float64
	count  int
}

type orderTypeBucket struct {
	status string
	amount float64
	count  int
}

type itemSalesBucket struct {
	name     string
	quantity int
	revenue  float64
}

// aggregateSales builds the sales report from the paid bills of the
// window. tableCount is the configured number of tables in the restaurant
// and only feeds the turnover heuristic.
func aggregateSales(bills []models.Bill, window TimeWindow, tableCount int) *models.SalesReport {
	report := &models.SalesReport{
		RevenueByDay:    []models.DailyRevenue{},
		PaymentMethods:  []models.PaymentMethodBreakdown{},
		OrderTypes:      []models.OrderTypeBreakdown{},
		TopSellingItems: []models.TopSellingItem{},
	}

	days := newKeyedAccumulator[dayBucket]()
	payments := newKeyedAccumulator[paymentBucket]()
	orderTypes := newKeyedAccumulator[orderTypeBucket]()
	itemSales := newKeyedAccumulator[itemSalesBucket]()

	for _, bill := range bills {
		report.TotalRevenue += bill.Total
		report.TotalOrders++

		date := bill.CreatedAt.UTC().Format("2006-01-02")
		day := days.bucket(date)
		day.date = date
		day.revenue += bill.Total
		day.orders++

		payment := payments.bucket(bill.PaymentMethod)
		payment.method = bill.PaymentMethod
		payment.amount += bill.Total
		payment.count++

		// Bills whose order is gone stay in the totals above but are
		// skipped for the order-type grouping and the item ranking.
		if bill.Order == nil {
			continue
		}

		status := bill.Order.Status
		if status == "" {
			status = "unknown"
		}
		orderType := orderTypes.bucket(status)
		orderType.status = status
		orderType.amount += bill.Total
		orderType.count++

		for _, line := range bill.Order.Items {
			key := lineItemKey(line)
			bucket := itemSales.bucket(key)
			if bucket.name == "" {
				bucket.name = lineItemName(line)
			}
			bucket.quantity += line.Quantity
			bucket.revenue += line.UnitPrice * float64(line.Quantity)
		}
	}

	if report.TotalOrders > 0 {
		report.AverageOrderValue = report.TotalRevenue / float64(report.TotalOrders)
	}

	for _, day := range days.collect() {
		report.RevenueByDay = append(report.RevenueByDay, models.DailyRevenue{
			Date:    day.date,
			Revenue: day.revenue,
			Orders:  day.orders,
		})
	}
	sort.SliceStable(report.RevenueByDay, func(i, j int) bool {
		return report.RevenueByDay[i].Date < report.RevenueByDay[j].Date
	})

	for _, payment := range payments.collect() {
		report.PaymentMethods = append(report.PaymentMethods, models.PaymentMethodBreakdown{
			Method:     payment.method,
			Amount:     payment.amount,
			Count:      payment.count,
			Percentage: percentOf(payment.amount, report.TotalRevenue),
		})
	}

	for _, orderType := range orderTypes.collect() {
		report.OrderTypes = append(report.OrderTypes, models.OrderTypeBreakdown{
			Type:       orderType.status,
			Amount:     orderType.amount,
			Count:      orderType.count,
			Percentage: percentOf(orderType.amount, report.TotalRevenue),
		})
	}

	top := itemSales.collect()
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].revenue > top[j].revenue
	})
	for _, item := range capList(top, 10) {
		report.TopSellingItems = append(report.TopSellingItems, models.TopSellingItem{
			Name:     item.name,
			Quantity: item.quantity,
			Revenue:  item.revenue,
		})
	}

	report.TableTurnoverRate = tableTurnoverRate(report.TotalOrders, tableCount, window)

	return report
}

// tableTurnoverRate is a rough utilization heuristic: orders per table per
// day across the window. Zero-day windows yield 0 rather than dividing by
// zero.
func tableTurnoverRate(totalOrders, tableCount int, window TimeWindow) float64 {
	days := window.DaysSpanned()
	if days <= 0 || tableCount <= 0 {
		return 0
	}
	return (float64(totalOrders) / float64(tableCount)) / float64(days)
}

// lineItemKey identifies an order line's menu item: by id when the
// reference survives, falling back to the recorded name.
func lineItemKey(line models.OrderItem) string {
	if line.MenuItemID != nil {
		return "id:" + strconv.FormatInt(*line.MenuItemID, 10)
	}
	if line.ItemName != nil && *line.ItemName != "" {
		return "name:" + *line.ItemName
	}
	return "unknown"
}

func lineItemName(line models.OrderItem) string {
	if line.ItemName != nil && *line.ItemName != "" {
		return *line.ItemName
	}
	return unknownItemName
}
