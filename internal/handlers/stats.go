package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStats serves the admin dashboard aggregate in one call.
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.Stats.Get(c.Request.Context())
	if err != nil {
		log.Println("❌ Error fetching stats:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
