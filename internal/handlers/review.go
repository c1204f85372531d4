package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"namo_back_end/internal/models"
	"namo_back_end/internal/realtime"
	"namo_back_end/internal/store"
)

// CreateReview adds a shopper review. The product must exist.
func (h *Handler) CreateReview(c *gin.Context) {
	var input struct {
		Name      string `json:"name"`
		Review    string `json:"review"`
		ProductID string `json:"productId"`
		Rating    int    `json:"rating"`
	}
	if err := c.ShouldBindJSON(&input); err != nil ||
		input.Name == "" || input.Review == "" || input.ProductID == "" || input.Rating == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, review, productId, and rating are required"})
		return
	}
	if input.Rating < 1 || input.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	review := models.Review{
		ID:        uuid.NewString(),
		ProductID: input.ProductID,
		Name:      input.Name,
		Review:    input.Review,
		Rating:    input.Rating,
	}

	if err := h.Reviews.Create(c.Request.Context(), &review); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Println("❌ Error inserting review:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.publish(c.Request.Context(), realtime.EntityReview, realtime.ActionCreated, review.ID)

	c.JSON(http.StatusCreated, gin.H{"message": "Review added successfully"})
}

func (h *Handler) GetReviews(c *gin.Context) {
	reviews, err := h.Reviews.List(c.Request.Context())
	if err != nil {
		log.Println("❌ Error fetching reviews:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, reviews)
}
