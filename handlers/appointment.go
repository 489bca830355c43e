package handlers

import (
	"net/http"

	"deltaclinic/services/availability"
	"deltaclinic/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AppointmentHandler struct {
	Service availability.AvailabilityService
}

func NewAppointmentHandler(svc availability.AvailabilityService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// GetAppointmentOptions handles GET /appointmentOptions?date=.
func (h *AppointmentHandler) GetAppointmentOptions(c *gin.Context) {
	date := c.Query("date")
	options, err := h.Service.AvailableOptions(c.Request.Context(), date)
	if err != nil {
		getLogger(c).Error("Failed to resolve appointment options", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch appointment options", "")
		return
	}
	c.JSON(http.StatusOK, options)
}

// GetSpecialties handles GET /appointmentSpecialty.
func (h *AppointmentHandler) GetSpecialties(c *gin.Context) {
	specialties, err := h.Service.Specialties(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to fetch specialties", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch specialties", "")
		return
	}
	c.JSON(http.StatusOK, specialties)
}
