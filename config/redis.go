package config

import (
	"Playhub/services/redis"
	"Playhub/utils/logger"
)

// Connect_redis opens the query cache. An empty URL disables caching and
// returns a nil client, which every consumer treats as "no cache".
func Connect_redis(redisURL string) (*redis.RedisClient, error) {
	if redisURL == "" {
		logger.Info("[CACHE] REDIS_URL not set, query cache disabled")
		return nil, nil
	}
	redisClient, err := redis.InitRedis(redisURL)
	if err != nil {
		return nil, err
	}
	logger.Info("[CACHE] Redis connection established")
	return redisClient, nil
}
