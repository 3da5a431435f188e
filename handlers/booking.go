package handlers

import (
	"net/http"

	"github.com/RajRabadiya018/CarringNanny/models"
	"github.com/RajRabadiya018/CarringNanny/services/booking"
	"github.com/RajRabadiya018/CarringNanny/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBookingHandler creates a pending booking for the authenticated parent.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var draft models.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request: "+err.Error(), "validation")
		return
	}

	b, err := h.Service.CreateBooking(actorID(c), draft)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GetBookingHandler returns one booking to a participant.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.Service.GetBookingByID(c.Param("id"), actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListParentBookingsHandler returns the authenticated parent's bookings.
func (h *BookingHandler) ListParentBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.GetParentBookings(actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListNannyBookingsHandler returns the authenticated nanny's bookings.
func (h *BookingHandler) ListNannyBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.GetNannyBookings(actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// transitionBody carries the optional free text attached on a transition.
type transitionBody struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
	Notes   string `json:"notes"`
}

func bindTransitionBody(c *gin.Context) transitionBody {
	var body transitionBody
	// A missing or empty body is fine; only decode errors matter and those
	// surface as empty fields checked by the service.
	_ = c.ShouldBindJSON(&body)
	return body
}

// CancelBookingHandler cancels a pending or confirmed booking (parent only).
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	body := bindTransitionBody(c)
	b, err := h.Service.CancelBooking(c.Param("id"), actorID(c), body.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ConfirmBookingHandler confirms a pending booking (nanny only).
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	body := bindTransitionBody(c)
	b, err := h.Service.ConfirmBooking(c.Param("id"), actorID(c), body.Message)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeclineBookingHandler declines a pending booking with a mandatory reason
// (nanny only).
func (h *BookingHandler) DeclineBookingHandler(c *gin.Context) {
	body := bindTransitionBody(c)
	b, err := h.Service.DeclineBooking(c.Param("id"), actorID(c), body.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CompleteBookingHandler marks a confirmed booking completed (nanny only).
func (h *BookingHandler) CompleteBookingHandler(c *gin.Context) {
	body := bindTransitionBody(c)
	b, err := h.Service.CompleteBooking(c.Param("id"), actorID(c), body.Notes)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ReviewBookingHandler attaches a parent review to a completed booking.
func (h *BookingHandler) ReviewBookingHandler(c *gin.Context) {
	var req struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request: "+err.Error(), "validation")
		return
	}

	b, err := h.Service.AddParentReview(c.Param("id"), actorID(c), req.Rating, req.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
