package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"namo_back_end/internal/models"
)

// RequireAdmin gates the dashboard operations behind the admin role claim.
func RequireAdmin(c *gin.Context) {
	role, exists := c.Get("role")
	if !exists || role != models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}
