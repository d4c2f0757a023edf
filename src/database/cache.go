package database

import (
	"encoding/json"
	"time"
)

// Redis cache helpers. All of them degrade to no-ops when Redis is not
// configured, so callers never branch on availability.

func SetCache(key string, value interface{}, ttl time.Duration) {
	if RedisClient == nil {
		return
	}
	b, _ := json.Marshal(value)
	RedisClient.Set(RedisCtx, key, b, ttl)
}

func GetCache(key string, dest interface{}) bool {
	if RedisClient == nil {
		return false
	}
	val, err := RedisClient.Get(RedisCtx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

func DelCache(keys ...string) {
	if RedisClient == nil {
		return
	}
	RedisClient.Del(RedisCtx, keys...)
}

// InvalidatePattern removes every key matching the glob pattern.
func InvalidatePattern(pattern string) {
	if RedisClient == nil {
		return
	}
	iter := RedisClient.Scan(RedisCtx, 0, pattern, 0).Iterator()
	for iter.Next(RedisCtx) {
		RedisClient.Del(RedisCtx, iter.Val())
	}
}
