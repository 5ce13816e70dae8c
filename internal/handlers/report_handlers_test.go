package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdashifraza7786/RAS-sub001/internal/models"
	"github.com/mdashifraza7786/RAS-sub001/internal/services"
)

type stubReportService struct {
	report    *models.Report
	summary   *models.DashboardSummary
	err       error
	lastQuery services.ReportQuery
}

func (s *stubReportService) GenerateReport(ctx context.Context, query services.ReportQuery) (*models.Report, error) {
	s.lastQuery = query
	return s.report, s.err
}

func (s *stubReportService) GetDashboardSummary(ctx context.Context) (*models.DashboardSummary, error) {
	return s.summary, s.err
}

func setupReportRouter(svc services.ReportService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewReportHandler(svc)
	router := gin.New()
	router.GET("/reports", handler.GetReport)
	router.GET("/reports/dashboard", handler.GetDashboardSummary)
	return router
}

func TestGetReport(t *testing.T) {
	t.Run("passes query parameters through", func(t *testing.T) {
		svc := &stubReportService{report: &models.Report{
			ReportType:  "sales",
			Period:      "custom",
			Data:        &models.SalesReport{TotalRevenue: 600},
			GeneratedAt: time.Now(),
		}}
		router := setupReportRouter(svc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/reports?type=sales&period=custom&startDate=2024-03-01&endDate=2024-03-10", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, services.ReportQuery{
			Type:      "sales",
			Period:    "custom",
			StartDate: "2024-03-01",
			EndDate:   "2024-03-10",
		}, svc.lastQuery)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "sales", body["reportType"])
		data, ok := body["data"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, 600.0, data["totalRevenue"])
	})

	t.Run("invalid report type maps to 400", func(t *testing.T) {
		svc := &stubReportService{err: services.ErrInvalidReportType}
		router := setupReportRouter(svc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/reports?type=payroll", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid report type")
	})

	t.Run("invalid time range maps to 400", func(t *testing.T) {
		svc := &stubReportService{err: services.ErrInvalidTimeRange}
		router := setupReportRouter(svc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/reports?period=custom&startDate=2024-03-10&endDate=2024-03-01", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid time range")
	})

	t.Run("other failures map to 500", func(t *testing.T) {
		svc := &stubReportService{err: errors.New("connection reset")}
		router := setupReportRouter(svc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/reports", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to generate report")
		// Internals stay out of the response body.
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}

func TestGetDashboardSummary(t *testing.T) {
	t.Run("returns the summary", func(t *testing.T) {
		svc := &stubReportService{summary: &models.DashboardSummary{
			Sales:       &models.SalesReport{TotalRevenue: 250},
			Inventory:   &models.InventoryReport{},
			Staff:       &models.StaffReport{},
			Menu:        &models.MenuReport{},
			Customers:   &models.CustomerReport{},
			GeneratedAt: time.Now(),
		}}
		router := setupReportRouter(svc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/reports/dashboard", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		sales, ok := body["sales"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, 250.0, sales["totalRevenue"])
	})

	t.Run("failures map to 500", func(t *testing.T) {
		svc := &stubReportService{err: errors.New("connection reset")}
		router := setupReportRouter(svc)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/reports/dashboard", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
