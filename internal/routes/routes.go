package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"namo_back_end/internal/config"
	"namo_back_end/internal/handlers"
	"namo_back_end/internal/middleware"
	"namo_back_end/internal/realtime"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, hub *realtime.Hub) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.FrontendURL()},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	auth := middleware.AuthRequired()
	admin := middleware.RequireAdmin

	api := r.Group("/api")

	// Accounts
	api.POST("/register", h.Register)
	api.POST("/login", h.Login)
	api.GET("/me", auth, h.Me)
	api.GET("/users", auth, admin, h.GetUsers)

	// Catalog
	api.GET("/products", h.GetProducts)
	api.GET("/products/search", h.SearchProducts)
	api.GET("/products/:id", h.GetProduct)
	api.POST("/products", auth, admin, h.CreateProduct)
	api.PUT("/products/:id", auth, admin, h.UpdateProductStock)
	api.DELETE("/products/:id", auth, admin, h.DeleteProduct)
	api.POST("/products/:id/image", auth, admin, h.UploadProductImage)

	// Orders
	api.POST("/orders", h.CreateOrder)
	api.GET("/orders", auth, admin, h.GetOrders)
	api.GET("/orders/:id/qr", h.OrderPaymentQR)
	api.PUT("/orders/:id/status", auth, admin, h.UpdateOrderStatus)

	// Reviews
	api.GET("/reviews", h.GetReviews)
	api.POST("/reviews", h.CreateReview)

	// Dashboard
	api.GET("/stats", auth, admin, h.GetStats)

	// Realtime collection updates
	api.GET("/ws", func(c *gin.Context) {
		hub.Serve(c.Writer, c.Request)
	})
}
