package database

import (
	"context"

	"promptstack-backend/config"

	"github.com/go-redis/redis/v8"
)

// ConnectRedis returns a redis client for the prompt read cache,
// or nil when no redis host is configured.
func ConnectRedis(cfg *config.Config) (*redis.Client, error) {
	if !cfg.CacheEnabled() {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisFullAddr(),
		Password: cfg.RedisPassword,
		DB:       0, // use default DB
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return client, nil
}
