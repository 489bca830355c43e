package handlers

import (
	"errors"
	"net/http"

	"deltaclinic/models"
	"deltaclinic/services/user"
	"deltaclinic/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// CreateUserHandler handles POST /users.
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var input models.User
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid user", err.Error())
		return
	}

	res, err := h.Service.Create(c.Request.Context(), input)
	if err != nil {
		getLogger(c).Error("Failed to create user", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create user", "")
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetAllUsersHandler handles GET /users.
func (h *UserHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := h.Service.GetAll(c.Request.Context())
	if err != nil {
		getLogger(c).Error("Failed to fetch all users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch users", "")
		return
	}
	c.JSON(http.StatusOK, users)
}

// MakeAdminHandler handles PUT /users/admin/:id.
func (h *UserHandler) MakeAdminHandler(c *gin.Context) {
	res, err := h.Service.MakeAdmin(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "User not found", "")
			return
		}
		getLogger(c).Error("Failed to grant admin role", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update user", "")
		return
	}
	c.JSON(http.StatusOK, res)
}

// IsAdminHandler handles GET /users/admin/:email.
func (h *UserHandler) IsAdminHandler(c *gin.Context) {
	isAdmin, err := h.Service.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		getLogger(c).Error("Failed to check admin role", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to check role", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAdmin": isAdmin})
}
