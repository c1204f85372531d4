package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

var (
	Postgres *pgxpool.Pool
	Redis    *redis.Client
)

func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	connectPostgres(ctx)
	connectRedis(ctx)

	log.Println("✅ All databases connected")
}

// =============================================
// POSTGRESQL
// =============================================

func connectPostgres(ctx context.Context) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			getenv("DB_USER", "namo"),
			getenv("DB_PASSWORD", "namo"),
			getenv("DB_HOST", "localhost"),
			getenv("DB_PORT", "5432"),
			getenv("DB_NAME", "namo"),
		)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal("❌ Invalid PostgreSQL DSN:", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 2
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// NUMERIC columns (price, total_price) scan into shopspring/decimal.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal("❌ PostgreSQL pool error:", err)
	}
	if err := pool.Ping(ctx); err != nil {
		log.Fatal("❌ PostgreSQL connection error:", err)
	}

	Postgres = pool
	log.Println("✅ Connected to PostgreSQL")
}

// =============================================
// REDIS
// =============================================

func connectRedis(ctx context.Context) {
	Redis = redis.NewClient(&redis.Options{
		Addr:     getenv("REDIS_HOST", "localhost:6379"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Redis connection error:", err)
	}
	log.Println("✅ Connected to Redis")
}

func Close() {
	if Postgres != nil {
		Postgres.Close()
	}
	if Redis != nil {
		Redis.Close()
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
