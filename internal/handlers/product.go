package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"namo_back_end/internal/models"
	"namo_back_end/internal/realtime"
	"namo_back_end/internal/services"
	"namo_back_end/internal/store"
)

// CreateProduct adds a catalog entry (admin only) and broadcasts the catalog.
func (h *Handler) CreateProduct(c *gin.Context) {
	var input struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		Price       decimal.Decimal `json:"price"`
		Stock       *int            `json:"stock"`
		Image       string          `json:"image"`
		Category    string          `json:"category"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, price, and stock are required"})
		return
	}
	if input.Name == "" || !input.Price.IsPositive() || input.Stock == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, price, and stock are required"})
		return
	}
	if *input.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock cannot be negative"})
		return
	}

	product := models.Product{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       *input.Stock,
		Image:       input.Image,
		Category:    input.Category,
	}

	if err := h.Products.Create(c.Request.Context(), &product); err != nil {
		log.Println("❌ Error inserting product:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.invalidateProducts(c.Request.Context())
	go services.IndexProduct(product)
	h.publish(c.Request.Context(), realtime.EntityProduct, realtime.ActionCreated, product.ID)

	c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully", "productId": product.ID})
}

// GetProducts serves the catalog, preferring the Redis snapshot.
func (h *Handler) GetProducts(c *gin.Context) {
	ctx := c.Request.Context()

	if h.Cache != nil {
		if cached, ok := h.Cache.Get(ctx); ok {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	products, err := h.Products.List(ctx)
	if err != nil {
		log.Println("❌ Error fetching products:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if h.Cache != nil {
		h.Cache.Set(ctx, products)
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.Products.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Println("❌ Error fetching product:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// UpdateProductStock handles the admin's partial update: stock only.
func (h *Handler) UpdateProductStock(c *gin.Context) {
	var input struct {
		Stock *int `json:"stock"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Stock == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock value is required"})
		return
	}
	if *input.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock cannot be negative"})
		return
	}

	id := c.Param("id")
	if err := h.Products.UpdateStock(c.Request.Context(), id, *input.Stock); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Println("❌ Error updating product stock:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.invalidateProducts(c.Request.Context())
	h.publish(c.Request.Context(), realtime.EntityProduct, realtime.ActionUpdated, id)

	c.JSON(http.StatusOK, gin.H{"message": "Product stock updated successfully"})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")
	if err := h.Products.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Println("❌ Error deleting product:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.invalidateProducts(c.Request.Context())
	go services.DeindexProduct(id)
	h.publish(c.Request.Context(), realtime.EntityProduct, realtime.ActionDeleted, id)

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// SearchProducts tries the Elasticsearch index first and falls back to SQL.
func (h *Handler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	if results, err := services.SearchProducts(query); err == nil && len(results) > 0 {
		c.JSON(http.StatusOK, results)
		return
	}

	products, err := h.Products.Search(c.Request.Context(), query)
	if err != nil {
		log.Println("❌ Error searching products:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// UploadProductImage stores a product photo in MinIO (admin only).
func (h *Handler) UploadProductImage(c *gin.Context) {
	id := c.Param("id")

	if _, err := h.Products.GetByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		log.Println("❌ Error fetching product:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image file is required"})
		return
	}

	if services.MinioClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Image storage not configured"})
		return
	}

	url, err := services.UploadProductImage(c.Request.Context(), id, file)
	if err != nil {
		log.Println("❌ Image upload error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if err := h.Products.SetImage(c.Request.Context(), id, url); err != nil {
		log.Println("❌ Image save error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.invalidateProducts(c.Request.Context())
	h.publish(c.Request.Context(), realtime.EntityProduct, realtime.ActionUpdated, id)

	c.JSON(http.StatusOK, gin.H{"message": "Image uploaded successfully", "image": url})
}
