package handlers

import (
	"errors"
	"net/http"

	"deltaclinic/middleware"
	"deltaclinic/models"
	"deltaclinic/services/booking"
	"deltaclinic/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.Booking
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking", err.Error())
		return
	}

	result, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, booking.ErrInvalidBooking) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid booking", err.Error())
			return
		}
		getLogger(c).Error("Failed to create booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", "")
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetBookingsByEmail handles GET /bookings?email=. Callers may only list their own bookings.
func (h *BookingHandler) GetBookingsByEmail(c *gin.Context) {
	email := c.Query("email")
	decoded, _ := middleware.AuthenticatedEmail(c)
	if email == "" || email != decoded {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}

	bookings, err := h.Service.ListByEmail(c.Request.Context(), email)
	if err != nil {
		getLogger(c).Error("Failed to list bookings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch bookings", "")
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingByID handles GET /bookings/:id.
func (h *BookingHandler) GetBookingByID(c *gin.Context) {
	b, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
			return
		}
		getLogger(c).Error("Failed to fetch booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch booking", "")
		return
	}
	c.JSON(http.StatusOK, b)
}
