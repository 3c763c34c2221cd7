package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when Redis is not configured or unreachable.
// Without Redis the cart payload lives inside the session cookie itself.
func ConnectRedis() *redis.Client {
	if AppConfig.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     AppConfig.RedisAddr,
		Password: AppConfig.RedisPassword,
		DB:       0,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running without Redis, carts will be kept in the session cookie")
		client.Close()
		return nil
	}

	log.Println("Redis connected, carts will be stored server-side")
	return client
}
