package handlers

import (
	"errors"
	"net/http"

	"github.com/mdashifraza7786/RAS-sub001/internal/services"
	"github.com/mdashifraza7786/RAS-sub001/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler exposes the reporting engine over HTTP.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// GetReport generates one of the five reports. Type defaults to sales and
// period to month; startDate/endDate are consulted only for period=custom.
func (h *ReportHandler) GetReport(c *gin.Context) {
	query := services.ReportQuery{
		Type:      c.Query("type"),
		Period:    c.Query("period"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	}

	report, err := h.reportService.GenerateReport(c.Request.Context(), query)
	if err != nil {
		utils.LogError(err, "GetReport: Error from reportService.GenerateReport")
		if errors.Is(err, services.ErrInvalidReportType) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid report type", err.Error()))
		} else if errors.Is(err, services.ErrInvalidTimeRange) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Invalid time range", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to generate report", "Internal error"))
		}
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetDashboardSummary returns all five reports for the default month window.
func (h *ReportHandler) GetDashboardSummary(c *gin.Context) {
	summary, err := h.reportService.GetDashboardSummary(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetDashboardSummary: Error from reportService.GetDashboardSummary")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to generate report", "Internal error"))
		return
	}

	c.JSON(http.StatusOK, summary)
}
