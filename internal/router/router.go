package router

import (
	"database/sql"

	"github.com/mdashifraza7786/RAS-sub001/internal/handlers"
	"github.com/mdashifraza7786/RAS-sub001/internal/middleware"
	"github.com/mdashifraza7786/RAS-sub001/internal/repositories"
	"github.com/mdashifraza7786/RAS-sub001/internal/services"
	"github.com/mdashifraza7786/RAS-sub001/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB) {
	// Initialize Repositories
	authRepo := repositories.NewAuthRepository(db)
	billRepo := repositories.NewBillRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	inventoryRepo := repositories.NewInventoryRepository(db)
	staffRepo := repositories.NewStaffRepository(db)
	menuRepo := repositories.NewMenuRepository(db)

	// The turnover heuristic divides by the restaurant's table count,
	// which is deployment-specific and therefore configured, not derived.
	tableCount := utils.GetenvInt("RESTAURANT_TABLE_COUNT", 12)

	// Initialize Services
	authService := services.NewAuthService(authRepo, db)
	reportService := services.NewReportService(billRepo, orderRepo, inventoryRepo, staffRepo, menuRepo, tableCount)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	reportHandler := handlers.NewReportHandler(reportService)
	catalogHandler := handlers.NewCatalogHandler(orderRepo, inventoryRepo, menuRepo, staffRepo)

	apiV1 := engine.Group("/api/v1")

	SetupAuthRoutes(apiV1, authHandler)

	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupReportRoutes(authenticated, reportHandler)
		SetupCatalogRoutes(authenticated, catalogHandler)
	}
}
