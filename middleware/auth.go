package middleware

import (
	"net/http"
	"strings"

	"deltaclinic/utils"

	"github.com/gin-gonic/gin"
)

// TokenValidator verifies an access token and returns its claims.
type TokenValidator interface {
	ValidateToken(tokenString string) (*utils.AccessClaims, error)
}

// VerifyJWT requires a bearer token. A missing header is 401, a token that
// fails verification is 403. On success the email claim is stored under
// utils.ContextEmailKey.
func VerifyJWT(validator TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		claims, err := validator.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		c.Set(utils.ContextEmailKey, claims.Email)
		c.Next()
	}
}

// AuthenticatedEmail returns the email claim stored by VerifyJWT.
func AuthenticatedEmail(c *gin.Context) (string, bool) {
	email := c.GetString(utils.ContextEmailKey)
	return email, email != ""
}
