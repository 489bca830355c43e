package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"deltaclinic/services/access"
	"deltaclinic/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type roleChecker map[string]string

func (r roleChecker) Can(ctx context.Context, email string, c access.Capability) (bool, error) {
	if email == "broken@clinic.test" {
		return false, errors.New("db down")
	}
	return access.Allows(r[email], c), nil
}

func newAuthRouter(issuer *utils.TokenIssuer, checker CapabilityChecker) *gin.Engine {
	r := gin.New()
	r.GET("/me", VerifyJWT(issuer), func(c *gin.Context) {
		email, _ := AuthenticatedEmail(c)
		c.String(http.StatusOK, email)
	})
	r.GET("/admin", VerifyJWT(issuer), RequireCapability(checker, access.ManageUsers), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func do(r http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestVerifyJWT(t *testing.T) {
	issuer := utils.NewTokenIssuer("s3cret", time.Hour)
	r := newAuthRouter(issuer, roleChecker{})

	w := do(r, "/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, "/me", "garbage")
	assert.Equal(t, http.StatusForbidden, w.Code)

	token, err := issuer.GenerateToken("pat@clinic.test")
	require.NoError(t, err)
	w = do(r, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pat@clinic.test", w.Body.String())
}

func TestRequireCapability(t *testing.T) {
	issuer := utils.NewTokenIssuer("s3cret", time.Hour)
	r := newAuthRouter(issuer, roleChecker{"admin@clinic.test": "admin"})

	patient, err := issuer.GenerateToken("pat@clinic.test")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, do(r, "/admin", patient).Code)

	admin, err := issuer.GenerateToken("admin@clinic.test")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, do(r, "/admin", admin).Code)

	broken, err := issuer.GenerateToken("broken@clinic.test")
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, do(r, "/admin", broken).Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
