package handlers

import (
	"net/http"

	"github.com/RajRabadiya018/CarringNanny/models"
	"github.com/RajRabadiya018/CarringNanny/services/nanny"
	"github.com/RajRabadiya018/CarringNanny/utils"

	"github.com/gin-gonic/gin"
)

// NannyHandler exposes nanny profile endpoints.
type NannyHandler struct {
	Service nanny.NannyService
}

// NewNannyHandler creates a new NannyHandler.
func NewNannyHandler(svc nanny.NannyService) *NannyHandler {
	return &NannyHandler{Service: svc}
}

// ListNanniesHandler returns all nanny profiles.
func (h *NannyHandler) ListNanniesHandler(c *gin.Context) {
	nannies, err := h.Service.GetAllNannies()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, nannies)
}

// GetNannyHandler returns one profile by ID.
func (h *NannyHandler) GetNannyHandler(c *gin.Context) {
	n, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, err.Error(), "not_found")
		return
	}
	c.JSON(http.StatusOK, n)
}

// CreateProfileHandler creates the profile for the authenticated nanny account.
func (h *NannyHandler) CreateProfileHandler(c *gin.Context) {
	var req models.Nanny
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request: "+err.Error(), "validation")
		return
	}

	created, err := h.Service.CreateProfile(actorID(c), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateProfileHandler rewrites the authenticated nanny's profile.
func (h *NannyHandler) UpdateProfileHandler(c *gin.Context) {
	var req models.Nanny
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request: "+err.Error(), "validation")
		return
	}

	updated, err := h.Service.UpdateProfile(actorID(c), req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "validation")
		return
	}
	c.JSON(http.StatusOK, updated)
}
