package handlers

import (
	"net/http"

	"github.com/RajRabadiya018/CarringNanny/services/admin"
	"github.com/RajRabadiya018/CarringNanny/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated back-office operations.
type AdminHandler struct {
	Service admin.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc admin.AdminService) *AdminHandler {
	return &AdminHandler{Service: svc}
}

// GetAllUsersHandler returns all users (with sensitive fields excluded).
func (ah *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := ah.Service.GetAllUsers()
	if err != nil {
		zap.L().Error("Failed to fetch all users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch users", "internal")
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeleteUserHandler removes an account and cascades its bookings and profile.
func (ah *AdminHandler) DeleteUserHandler(c *gin.Context) {
	if err := ah.Service.DeleteUser(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "validation")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// GetAllNanniesHandler returns all nanny profiles.
func (ah *AdminHandler) GetAllNanniesHandler(c *gin.Context) {
	nannies, err := ah.Service.GetAllNannies()
	if err != nil {
		zap.L().Error("Failed to fetch all nannies", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch nannies", "internal")
		return
	}
	c.JSON(http.StatusOK, nannies)
}

// DeleteNannyHandler removes a nanny profile (not the account) and cascades
// its bookings.
func (ah *AdminHandler) DeleteNannyHandler(c *gin.Context) {
	if err := ah.Service.DeleteNanny(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "validation")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Nanny profile deleted successfully"})
}

// GetAllBookingsHandler returns every booking for the back-office listing.
func (ah *AdminHandler) GetAllBookingsHandler(c *gin.Context) {
	bookings, err := ah.Service.GetAllBookings()
	if err != nil {
		zap.L().Error("Failed to fetch all bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", "internal")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetStatsHandler returns the dashboard counters and recent activity.
func (ah *AdminHandler) GetStatsHandler(c *gin.Context) {
	stats, err := ah.Service.GetStats()
	if err != nil {
		zap.L().Error("Failed to assemble stats", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch stats", "internal")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RecomputePriceHandler queues a background price audit for one booking.
func (ah *AdminHandler) RecomputePriceHandler(c *gin.Context) {
	if err := ah.Service.EnqueuePriceAudit(c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "validation")
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"message": "Price audit queued"})
}
