package handlers

import (
	"net/http"

	"github.com/mdashifraza7786/RAS-sub001/internal/models"
	"github.com/mdashifraza7786/RAS-sub001/internal/repositories"
	"github.com/mdashifraza7786/RAS-sub001/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only list endpoints the admin screens
// use: orders, inventory, menu and staff. It reads through the same
// repositories the reporting engine consumes.
type CatalogHandler struct {
	orderRepo     repositories.OrderRepository
	inventoryRepo repositories.InventoryRepository
	menuRepo      repositories.MenuRepository
	staffRepo     repositories.StaffRepository
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(
	orderRepo repositories.OrderRepository,
	inventoryRepo repositories.InventoryRepository,
	menuRepo repositories.MenuRepository,
	staffRepo repositories.StaffRepository,
) *CatalogHandler {
	return &CatalogHandler{
		orderRepo:     orderRepo,
		inventoryRepo: inventoryRepo,
		menuRepo:      menuRepo,
		staffRepo:     staffRepo,
	}
}

// GetOrders lists orders with optional filters and pagination.
func (h *CatalogHandler) GetOrders(c *gin.Context) {
	var filters models.OrderFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid query parameters: "+err.Error(), err.Error()))
		return
	}

	orders, totalCount, err := h.orderRepo.GetOrders(c.Request.Context(), filters)
	if err != nil {
		utils.LogError(err, "GetOrders: Error from orderRepo.GetOrders")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to retrieve orders.", "Internal error"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders, "total_count": totalCount})
}

// GetInventoryItems lists the current inventory snapshot.
func (h *CatalogHandler) GetInventoryItems(c *gin.Context) {
	items, err := h.inventoryRepo.GetAllItems(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetInventoryItems: Error from inventoryRepo.GetAllItems")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to retrieve inventory items.", "Internal error"))
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetMenuItems lists the current menu snapshot.
func (h *CatalogHandler) GetMenuItems(c *gin.Context) {
	items, err := h.menuRepo.GetAllItems(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetMenuItems: Error from menuRepo.GetAllItems")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to retrieve menu items.", "Internal error"))
		return
	}

	c.JSON(http.StatusOK, items)
}

// GetStaff lists all staff members excluding admin accounts.
func (h *CatalogHandler) GetStaff(c *gin.Context) {
	staff, err := h.staffRepo.GetActiveStaff(c.Request.Context())
	if err != nil {
		utils.LogError(err, "GetStaff: Error from staffRepo.GetActiveStaff")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to retrieve staff.", "Internal error"))
		return
	}

	c.JSON(http.StatusOK, staff)
}
