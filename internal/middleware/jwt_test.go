package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namo_back_end/internal/models"
	"namo_back_end/internal/utils"
)

func buildAuthApp(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id"),
			"role":    c.GetString("role"),
		})
	})
	r.GET("/admin", AuthRequired(), RequireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredNoToken(t *testing.T) {
	r := buildAuthApp(t)

	w := doGet(r, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "No token provided")
}

func TestAuthRequiredBadFormat(t *testing.T) {
	r := buildAuthApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "token-without-scheme")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid Authorization format")
}

func TestAuthRequiredValidToken(t *testing.T) {
	r := buildAuthApp(t)

	token, err := utils.GenerateJWT(models.User{
		ID:    "u1",
		Email: "asha@example.com",
		Role:  models.RoleCustomer,
	})
	require.NoError(t, err)

	w := doGet(r, "/protected", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestAuthRequiredExpiredToken(t *testing.T) {
	r := buildAuthApp(t)

	claims := jwt.MapClaims{
		"user_id": "u1",
		"email":   "asha@example.com",
		"role":    models.RoleCustomer,
		"exp":     time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	w := doGet(r, "/protected", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid or expired token")
}

func TestAuthRequiredWrongSecret(t *testing.T) {
	r := buildAuthApp(t)

	claims := jwt.MapClaims{
		"user_id": "u1",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	w := doGet(r, "/protected", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	r := buildAuthApp(t)

	adminToken, err := utils.GenerateJWT(models.User{ID: "a1", Role: models.RoleAdmin})
	require.NoError(t, err)
	customerToken, err := utils.GenerateJWT(models.User{ID: "u1", Role: models.RoleCustomer})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doGet(r, "/admin", adminToken).Code)

	w := doGet(r, "/admin", customerToken)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admin access required")
}
