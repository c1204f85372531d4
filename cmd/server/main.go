package main

import (
	"context"
	"log"
	"os"

	"namo_back_end/internal/cache"
	"namo_back_end/internal/config"
	"namo_back_end/internal/database"
	"namo_back_end/internal/handlers"
	"namo_back_end/internal/realtime"
	"namo_back_end/internal/routes"
	"namo_back_end/internal/services"
	"namo_back_end/internal/store"
	"namo_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	defer database.Close()

	ctx := context.Background()

	database.InitSchema(ctx)
	database.SeedAdmin(ctx)

	services.ConnectElastic()
	services.ConnectMinio(ctx)

	warmupRedisCache()

	h := &handlers.Handler{
		Users:          store.NewUserRepo(database.Postgres),
		Products:       store.NewProductRepo(database.Postgres),
		Orders:         store.NewOrderRepo(database.Postgres),
		Reviews:        store.NewReviewRepo(database.Postgres),
		Stats:          store.NewStatsRepo(database.Postgres),
		Bus:            realtime.NewBus(database.Redis),
		Cache:          cache.NewProductCache(database.Redis),
		Mail:           utils.SendOrderConfirmation,
		StockDecrement: config.StockDecrementOnOrder(),
	}

	hub := realtime.NewHub(realtime.NewBus(database.Redis), store.NewSnapshots(database.Postgres))

	r := gin.Default()
	routes.RegisterRoutes(r, h, hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}
	log.Println("🚀 Namo server running on port", port)
	r.Run(":" + port)
}

// warmupRedisCache establishes the Redis connection up front so the first
// broadcast does not pay the dial latency.
func warmupRedisCache() {
	ctx := context.Background()
	if err := database.Redis.Ping(ctx).Err(); err == nil {
		log.Println("✅ Redis cache warmed up")
	}
}
