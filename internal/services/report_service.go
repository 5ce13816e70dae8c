package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mdashifraza7786/RAS-sub001/internal/models"
	"github.com/mdashifraza7786/RAS-sub001/internal/repositories"

	"golang.org/x/sync/errgroup"
)

// Report types served by the dispatcher.
const (
	ReportTypeSales     = "sales"
	ReportTypeInventory = "inventory"
	ReportTypeStaff     = "staff"
	ReportTypeMenu      = "menu"
	ReportTypeCustomers = "customers"
)

var (
	ErrInvalidReportType = errors.New("invalid report type")
	ErrInvalidTimeRange  = errors.New("invalid time range")
)

// ReportQuery carries the raw request parameters for a report.
type ReportQuery struct {
	Type      string `form:"type"`
	Period    string `form:"period"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// ReportService is the reporting engine's entry point. Each call pulls its
// own snapshot from the repositories and computes in memory; the service
// holds no mutable state between calls.
type ReportService interface {
	GenerateReport(ctx context.Context, query ReportQuery) (*models.Report, error)
	GetDashboardSummary(ctx context.Context) (*models.DashboardSummary, error)
}

type reportService struct {
	billRepo      repositories.BillRepository
	orderRepo     repositories.OrderRepository
	inventoryRepo repositories.InventoryRepository
	staffRepo     repositories.StaffRepository
	menuRepo      repositories.MenuRepository
	tableCount    int
	now           func() time.Time
}

// NewReportService creates a new instance of ReportService. tableCount is
// the restaurant's configured table count used by the sales turnover
// heuristic.
func NewReportService(
	billRepo repositories.BillRepository,
	orderRepo repositories.OrderRepository,
	inventoryRepo repositories.InventoryRepository,
	staffRepo repositories.StaffRepository,
	menuRepo repositories.MenuRepository,
	tableCount int,
) ReportService {
	return &reportService{
		billRepo:      billRepo,
		orderRepo:     orderRepo,
		inventoryRepo: inventoryRepo,
		staffRepo:     staffRepo,
		menuRepo:      menuRepo,
		tableCount:    tableCount,
		now:           time.Now,
	}
}

// GenerateReport validates the query, resolves the reporting window and
// dispatches to the matching aggregator. Repository failures propagate
// unchanged; no partial report is ever returned.
func (s *reportService) GenerateReport(ctx context.Context, query ReportQuery) (*models.Report, error) {
	reportType := query.Type
	if reportType == "" {
		reportType = ReportTypeSales
	}
	period := query.Period
	if period == "" {
		period = PeriodMonth
	}

	now := s.now()
	window := ResolveTimeWindow(period, query.StartDate, query.EndDate, now)
	if window.Start.After(window.End) {
		return nil, fmt.Errorf("%w: start %s is after end %s",
			ErrInvalidTimeRange, window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339))
	}

	var data interface{}
	var err error
	switch reportType {
	case ReportTypeSales:
		data, err = s.buildSalesReport(ctx, window)
	case ReportTypeInventory:
		data, err = s.buildInventoryReport(ctx)
	case ReportTypeStaff:
		data, err = s.buildStaffReport(ctx)
	case ReportTypeMenu:
		data, err = s.buildMenuReport(ctx, window)
	case ReportTypeCustomers:
		data, err = s.buildCustomerReport(ctx, window)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidReportType, reportType)
	}
	if err != nil {
		return nil, err
	}

	return &models.Report{
		ReportType:  reportType,
		Period:      period,
		TimeRange:   models.TimeRange{StartDate: window.Start, EndDate: window.End},
		Data:        data,
		GeneratedAt: s.now(),
	}, nil
}

// GetDashboardSummary computes all five reports for the default month
// window. The aggregators share no state, so they run concurrently.
func (s *reportService) GetDashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	window := ResolveTimeWindow(PeriodMonth, "", "", s.now())
	summary := &models.DashboardSummary{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		report, err := s.buildSalesReport(gctx, window)
		summary.Sales = report
		return err
	})
	g.Go(func() error {
		report, err := s.buildInventoryReport(gctx)
		summary.Inventory = report
		return err
	})
	g.Go(func() error {
		report, err := s.buildStaffReport(gctx)
		summary.Staff = report
		return err
	})
	g.Go(func() error {
		report, err := s.buildMenuReport(gctx, window)
		summary.Menu = report
		return err
	})
	g.Go(func() error {
		report, err := s.buildCustomerReport(gctx, window)
		summary.Customers = report
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary.GeneratedAt = s.now()
	return summary, nil
}

func (s *reportService) buildSalesReport(ctx context.Context, window TimeWindow) (*models.SalesReport, error) {
	bills, err := s.billRepo.GetPaidBills(ctx, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("fetching paid bills: %w", err)
	}
	return aggregateSales(bills, window, s.tableCount), nil
}

func (s *reportService) buildInventoryReport(ctx context.Context) (*models.InventoryReport, error) {
	items, err := s.inventoryRepo.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching inventory items: %w", err)
	}
	now := s.now()
	lookback := TimeWindow{Start: now.AddDate(0, 0, -usageLookbackDays), End: now}
	recentOrders, err := s.orderRepo.GetOrdersByRange(ctx, lookback.Start, lookback.End)
	if err != nil {
		return nil, fmt.Errorf("fetching orders for usage lookback: %w", err)
	}
	return aggregateInventory(items, recentOrders, now), nil
}

func (s *reportService) buildStaffReport(ctx context.Context) (*models.StaffReport, error) {
	staff, err := s.staffRepo.GetActiveStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching staff: %w", err)
	}
	now := s.now()
	recentOrders, err := s.orderRepo.GetOrdersByRange(ctx, now.AddDate(0, 0, -usageLookbackDays), now)
	if err != nil {
		return nil, fmt.Errorf("fetching orders for staff lookback: %w", err)
	}
	return aggregateStaff(staff, recentOrders), nil
}

func (s *reportService) buildMenuReport(ctx context.Context, window TimeWindow) (*models.MenuReport, error) {
	menuItems, err := s.menuRepo.GetAllItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching menu items: %w", err)
	}
	orders, err := s.orderRepo.GetOrdersByRange(ctx, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("fetching orders for menu report: %w", err)
	}
	return aggregateMenu(menuItems, orders), nil
}

func (s *reportService) buildCustomerReport(ctx context.Context, window TimeWindow) (*models.CustomerReport, error) {
	bills, err := s.billRepo.GetBillsByRange(ctx, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("fetching bills for customer report: %w", err)
	}
	previous := window.Previous()
	previousBills, err := s.billRepo.GetBillsByRange(ctx, previous.Start, previous.End)
	if err != nil {
		return nil, fmt.Errorf("fetching previous-period bills: %w", err)
	}
	return aggregateCustomers(bills, previousBills), nil
}
