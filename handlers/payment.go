package handlers

import (
	"errors"
	"net/http"

	"deltaclinic/models"
	"deltaclinic/services/booking"
	"deltaclinic/services/payment"
	"deltaclinic/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	Service payment.PaymentService
}

func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// CreatePaymentIntent handles POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var input models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment intent request", err.Error())
		return
	}

	res, err := h.Service.CreateIntent(c.Request.Context(), input.Price)
	if err != nil {
		if errors.Is(err, payment.ErrInvalidAmount) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid price", "")
			return
		}
		getLogger(c).Error("Failed to create payment intent", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to create payment intent", "")
		return
	}
	c.JSON(http.StatusOK, res)
}

// RecordPayment handles POST /payments.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var input models.Payment
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment", err.Error())
		return
	}

	res, err := h.Service.Record(c.Request.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, payment.ErrInvalidPayment):
			utils.JSONError(c, http.StatusBadRequest, "Invalid payment", "")
		case errors.Is(err, booking.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
		default:
			getLogger(c).Error("Failed to record payment", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to record payment", "")
		}
		return
	}
	c.JSON(http.StatusOK, res)
}
