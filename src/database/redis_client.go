package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	RedisCtx    = context.Background()
	RedisURI    string
)

// InitRedis is optional: without Redis the app still runs, the list
// cache is skipped and notifications are sent synchronously.
func InitRedis() {
	RedisURI = os.Getenv("REDIS_URI")
	if RedisURI == "" {
		log.Println("⚠️ REDIS_URI not set. Cache and job queue disabled.")
		return
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     RedisURI,
		Password: "",
		DB:       0,
	})
	if _, err := RedisClient.Ping(RedisCtx).Result(); err != nil {
		log.Println("⚠️ Failed to connect Redis:", err)
		RedisClient = nil
		RedisURI = ""
	}
}
