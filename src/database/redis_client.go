package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var RedisCtx = context.Background()
var RedisURI string

// InitRedis connects to Redis if REDIS_URI is set. Redis is optional: without
// it notifications are delivered inline and drive lifecycle tasks are skipped.
func InitRedis() {
	RedisURI = os.Getenv("REDIS_URI")
	if RedisURI == "" {
		log.Println("⚠️ REDIS_URI not set. Running without Redis.")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     RedisURI, // e.g. localhost:6379
		Password: "",
		DB:       0,
	})
	if _, err := RedisClient.Ping(RedisCtx).Result(); err != nil {
		log.Println("⚠️ Failed to connect Redis:", err)
		RedisClient = nil
		return
	}

	log.Println("✅ Redis connected successfully")
}
