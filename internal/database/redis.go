package database

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisConfig holds the Redis connection settings
type RedisConfig struct {
	URL      string // redis://[:password@]host:port/db
	Password string
	DB       int
}

// NewRedis connects to Redis and verifies the connection.
// Password and DB override the values embedded in the URL when set.
func NewRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return client, nil
}
