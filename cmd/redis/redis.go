package redisclient

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/aquatour/crm-backend/cmd/config"
	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

var client *redis.Client

// New connects the shared client that backs sessions and rate-limit
// counters, verifying connectivity before anything depends on it.
func New(cfg config.RedisConfig) error {
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis at %s: %w", addr, err)
	}

	client = c
	return nil
}

// Get returns the shared client, nil when Redis is not configured.
func Get() *redis.Client {
	return client
}

func Close() error {
	if client == nil {
		return nil
	}
	return client.Close()
}
