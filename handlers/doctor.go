package handlers

import (
	"errors"
	"net/http"

	"deltaclinic/models"
	"deltaclinic/services/doctor"
	"deltaclinic/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DoctorHandler struct {
	Service doctor.DoctorService
}

func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

func (h *DoctorHandler) CreateDoctorHandler(c *gin.Context) {
	var input models.Doctor
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid doctor", err.Error())
		return
	}
	res, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		getLogger(c).Error("Failed to create doctor", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create doctor", "")
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *DoctorHandler) GetDoctorsHandler(c *gin.Context) {
	doctors, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to fetch doctors", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch doctors", "")
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	res, err := h.Service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, doctor.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Doctor not found", "")
			return
		}
		getLogger(c).Error("Failed to delete doctor", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete doctor", "")
		return
	}
	c.JSON(http.StatusOK, res)
}
