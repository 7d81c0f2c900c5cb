package helpers

import "github.com/redis/go-redis/v9"

// NewRedisClient initializes a redis client. Redis backs the rate-limit
// middleware only; no domain data is cached.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
