package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"storefront/config"
	"storefront/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/users/admin/:id", AdminAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAdminAuthMissingHeader(t *testing.T) {
	r := newProtectedRouter()

	req := httptest.NewRequest(http.MethodPut, "/users/admin/u1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAuthValidToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := newProtectedRouter()

	token, err := utils.GenerateAdminToken("boss@b.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/users/admin/u1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminAuthGarbageToken(t *testing.T) {
	config.AppConfig.JWTSecret = "test-secret"
	r := newProtectedRouter()

	req := httptest.NewRequest(http.MethodPut, "/users/admin/u1", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
