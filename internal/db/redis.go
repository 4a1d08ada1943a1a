package db

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"adgate/internal/config/configs"
)

// NewRedisClient connects to Redis and pings it with a 5 second timeout.
// The caller must close the returned client.
func NewRedisClient(ctx context.Context, cfg configs.Redis) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctxPing).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
