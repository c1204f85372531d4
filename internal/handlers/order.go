package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"namo_back_end/internal/config"
	"namo_back_end/internal/models"
	"namo_back_end/internal/realtime"
	"namo_back_end/internal/store"
	"namo_back_end/internal/utils"
)

// CreateOrder records a checkout. Items are optional denormalized cart
// lines; they feed the confirmation email and, when the stock policy is on,
// the transactional stock decrement.
func (h *Handler) CreateOrder(c *gin.Context) {
	var input struct {
		Name          string             `json:"name"`
		Email         string             `json:"email"`
		Address       string             `json:"address"`
		TotalPrice    decimal.Decimal    `json:"total_price"`
		PaymentMethod string             `json:"payment_method"`
		Items         []models.OrderItem `json:"items"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}
	if input.Name == "" || input.Email == "" || input.Address == "" ||
		!input.TotalPrice.IsPositive() || input.PaymentMethod == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}
	if !models.ValidPaymentMethod(input.PaymentMethod) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method. Use 'UPI' or 'COD'"})
		return
	}
	for _, item := range input.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order items"})
			return
		}
	}

	order := models.Order{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Email:         input.Email,
		Address:       input.Address,
		TotalPrice:    input.TotalPrice,
		PaymentMethod: input.PaymentMethod,
		Status:        models.StatusPending,
		Items:         input.Items,
	}

	if err := h.Orders.Create(c.Request.Context(), &order, h.StockDecrement); err != nil {
		if errors.Is(err, store.ErrInsufficientStock) {
			c.JSON(http.StatusConflict, gin.H{"error": "Not enough stock for one of the items"})
			return
		}
		log.Println("❌ Error creating order:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.publish(c.Request.Context(), realtime.EntityOrder, realtime.ActionCreated, order.ID)

	// The stock policy also mutates products, so the catalog cache and the
	// connected clients need the fresh stock figures.
	if h.StockDecrement && len(order.Items) > 0 {
		h.invalidateProducts(c.Request.Context())
		for _, item := range order.Items {
			h.publish(c.Request.Context(), realtime.EntityProduct, realtime.ActionUpdated, item.ProductID)
		}
	}

	if h.Mail != nil {
		go func(o models.Order) {
			if err := h.Mail(o); err != nil {
				log.Println("⚠️ Order confirmation mail failed:", err)
			}
		}(order)
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order created successfully", "orderId": order.ID})
}

// GetOrders lists every order, newest first (admin only).
func (h *Handler) GetOrders(c *gin.Context) {
	orders, err := h.Orders.List(c.Request.Context())
	if err != nil {
		log.Println("❌ Error fetching orders:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus moves an order to Dispatched or Delivered (admin only).
// The prior status is deliberately not checked here; the dashboard gates
// each action through models.Order.CanTransition.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || !models.ValidStatusUpdate(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status. Use 'Dispatched' or 'Delivered'"})
		return
	}

	id := c.Param("id")
	if err := h.Orders.UpdateStatus(c.Request.Context(), id, input.Status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		log.Println("❌ Error updating order status:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.publish(c.Request.Context(), realtime.EntityOrder, realtime.ActionUpdated, id)

	c.JSON(http.StatusOK, gin.H{"message": "Order marked as " + input.Status})
}

// OrderPaymentQR serves the scan-to-pay view for UPI orders.
func (h *Handler) OrderPaymentQR(c *gin.Context) {
	order, err := h.Orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		log.Println("❌ Error fetching order:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if order.PaymentMethod != models.PaymentUPI {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment QR is only available for UPI orders"})
		return
	}

	link, qr, err := utils.GenerateUPIQR(config.UPIID(), order.TotalPrice)
	if err != nil {
		log.Println("❌ QR generation error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"upi_link": link, "qr": qr})
}
