package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  No .env file found — falling back to system environment variables")
	} else {
		log.Println("✅ .env file loaded")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET is required")
	}
}

// Get returns an environment variable or a fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Bool reads a boolean flag ("true" enables it, anything else disables).
func Bool(key string) bool {
	return os.Getenv(key) == "true"
}

// StockDecrementOnOrder reports whether order creation should decrement
// product stock for each submitted line. Default is off: stock is managed
// manually through the dashboard.
func StockDecrementOnOrder() bool {
	return Bool("STOCK_DECREMENT_ON_ORDER")
}

// FrontendURL is the storefront origin allowed by CORS.
func FrontendURL() string {
	return Get("FRONTEND_URL", "http://localhost:3000")
}

// UPIID is the merchant UPI address encoded into payment QR codes.
func UPIID() string {
	return Get("UPI_ID", "namo@okicici")
}
