package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:         Getenv("REDIS_HOST", "localhost") + ":" + Getenv("REDIS_PORT", "6379"),
		DB:           0,
		PoolSize:     200,
		MinIdleConns: 20,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

// StrictTransitions reports whether order status changes must follow
// the sequential workflow instead of the permissive free-form setting.
func StrictTransitions() bool {
	return os.Getenv("ORDERS_STRICT_TRANSITIONS") == "true"
}

func SessionTTL() time.Duration {
	d, err := time.ParseDuration(Getenv("SESSION_TTL", "24h"))
	if err != nil {
		log.Printf("invalid SESSION_TTL, using 24h: %v", err)
		return 24 * time.Hour
	}
	return d
}
