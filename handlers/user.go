package handlers

import (
	"net/http"

	"github.com/RajRabadiya018/CarringNanny/models"
	"github.com/RajRabadiya018/CarringNanny/services/user"
	"github.com/RajRabadiya018/CarringNanny/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterHandler creates a parent or nanny account.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req models.User
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request: "+err.Error(), "validation")
		return
	}

	resp, err := h.Service.Register(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler authenticates and returns a token.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request: "+err.Error(), "validation")
		return
	}

	resp, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetProfileHandler returns the authenticated user's profile.
func (h *UserHandler) GetProfileHandler(c *gin.Context) {
	u, err := h.Service.GetUserByID(actorID(c))
	if err != nil {
		zap.L().Error("failed to get user profile", zap.Error(err))
		utils.JSONError(c, http.StatusNotFound, "profile not found", "not_found")
		return
	}
	c.JSON(http.StatusOK, u.Public())
}

// UpdateProfileHandler updates the authenticated user's profile.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	var req models.User
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request: "+err.Error(), "validation")
		return
	}

	updated, err := h.Service.UpdateProfile(actorID(c), req)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "validation")
		return
	}
	c.JSON(http.StatusOK, updated.Public())
}
