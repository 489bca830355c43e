package handlers

import (
	"context"
	"net/http"

	"deltaclinic/models"
	"deltaclinic/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenSigner issues access tokens.
type TokenSigner interface {
	GenerateToken(email string) (string, error)
}

// UserFinder looks users up by email; nil when absent.
type UserFinder interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthHandler struct {
	Users  UserFinder
	Tokens TokenSigner
}

func NewAuthHandler(users UserFinder, tokens TokenSigner) *AuthHandler {
	return &AuthHandler{Users: users, Tokens: tokens}
}

// IssueToken handles GET /jwt?email=. Only registered emails receive a token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
		return
	}

	user, err := h.Users.GetByEmail(c.Request.Context(), email)
	if err != nil {
		getLogger(c).Error("Failed to look up user for token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", "")
		return
	}
	if user == nil {
		c.JSON(http.StatusForbidden, gin.H{"accessToken": ""})
		return
	}

	token, err := h.Tokens.GenerateToken(email)
	if err != nil {
		getLogger(c).Error("Failed to sign token", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to issue token", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}
