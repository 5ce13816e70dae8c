package router

import (
	"github.com/mdashifraza7786/RAS-sub001/internal/handlers"
	"github.com/mdashifraza7786/RAS-sub001/internal/middleware"
	"github.com/mdashifraza7786/RAS-sub001/internal/models"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the authentication routes.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.RegisterUser)
		authRoutes.POST("/login", authHandler.LoginUser)
		authRoutes.POST("/refresh-token", authHandler.RefreshToken)

		authRequiredRoutes := authRoutes.Group("")
		authRequiredRoutes.Use(middleware.AuthMiddleware())
		{
			authRequiredRoutes.POST("/logout", authHandler.LogoutUser)
			authRequiredRoutes.GET("/me", authHandler.GetCurrentUser)
		}
	}
}

// SetupReportRoutes sets up the reporting routes. Reports expose revenue
// and staff figures, so only managers and admins may call them.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := authenticatedGroup.Group("/reports")
	reportRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleManager))
	{
		reportRoutes.GET("", reportHandler.GetReport)
		reportRoutes.GET("/dashboard", reportHandler.GetDashboardSummary)
	}
}

// SetupCatalogRoutes sets up the read-only list routes used by the admin
// screens.
func SetupCatalogRoutes(authenticatedGroup *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalogRoutes := authenticatedGroup.Group("")
	catalogRoutes.Use(middleware.RoleAuthMiddleware(models.RoleAdmin, models.RoleManager, models.RoleChef, models.RoleWaiter))
	{
		catalogRoutes.GET("/orders", catalogHandler.GetOrders)
		catalogRoutes.GET("/inventory", catalogHandler.GetInventoryItems)
		catalogRoutes.GET("/menu", catalogHandler.GetMenuItems)
		catalogRoutes.GET("/staff", catalogHandler.GetStaff)
	}
}
