package redisClient

import (
	"fmt"

	"github.com/go-redis/redis"
)

// NewRedis connects to addr and pings it. An empty host disables redis and
// returns a nil client.
func NewRedis(host, port, password string) (*redis.Client, error) {
	if host == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       0,
	})

	if err := client.Ping().Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}
