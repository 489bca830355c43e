package middleware

import (
	"context"
	"net/http"

	"deltaclinic/services/access"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CapabilityChecker decides whether a user may perform an action.
type CapabilityChecker interface {
	Can(ctx context.Context, email string, c access.Capability) (bool, error)
}

// RequireCapability must run after VerifyJWT. It rejects callers whose role
// does not grant capability with 403.
func RequireCapability(checker CapabilityChecker, capability access.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := AuthenticatedEmail(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}

		allowed, err := checker.Can(c.Request.Context(), email, capability)
		if err != nil {
			zap.L().Error("capability check failed", zap.String("email", email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Failed to verify permissions"})
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Next()
	}
}
