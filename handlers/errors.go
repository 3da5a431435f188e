package handlers

import (
	"errors"
	"net/http"

	"github.com/RajRabadiya018/CarringNanny/services/booking"
	"github.com/RajRabadiya018/CarringNanny/services/nanny"
	"github.com/RajRabadiya018/CarringNanny/services/user"
	"github.com/RajRabadiya018/CarringNanny/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps domain errors to HTTP statuses with a stable
// machine-checkable code, so clients can tell "wrong actor" (forbidden) from
// "wrong current state" (invalid_transition).
func respondServiceError(c *gin.Context, err error) {
	var (
		validationErr booking.ValidationError
		notFoundErr   booking.NotFoundError
		forbiddenErr  booking.ForbiddenError
		transitionErr booking.InvalidTransitionError
		pricingErr    booking.PricingUnavailableError
	)

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Error(), "validation")
	case errors.As(err, &notFoundErr):
		utils.JSONError(c, http.StatusNotFound, notFoundErr.Error(), "not_found")
	case errors.As(err, &forbiddenErr):
		utils.JSONError(c, http.StatusForbidden, forbiddenErr.Error(), "forbidden")
	case errors.As(err, &transitionErr):
		utils.JSONError(c, http.StatusConflict, transitionErr.Error(), "invalid_transition")
	case errors.As(err, &pricingErr):
		utils.JSONError(c, http.StatusUnprocessableEntity, pricingErr.Error(), "pricing_unavailable")
	case errors.Is(err, user.ErrEmailTaken):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "validation")
	case errors.Is(err, user.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, err.Error(), "unauthenticated")
	case errors.Is(err, nanny.ErrProfileExists), errors.Is(err, nanny.ErrNotNanny):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "validation")
	default:
		zap.L().Error("unhandled service error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "internal")
	}
}

// actorID returns the authenticated user ID set by the auth middleware.
func actorID(c *gin.Context) string {
	return c.GetString("userID")
}
