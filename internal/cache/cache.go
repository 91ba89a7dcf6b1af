// Package cache keeps short-lived JSON snapshots in Redis. A nil *Cache is
// valid and behaves as an always-empty cache.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrMiss = errors.New("cache miss")

type Cache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

type Options struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// New connects to Redis. An empty address disables caching and returns nil.
func New(ctx context.Context, opts Options) (*Cache, error) {
	if opts.Addr == "" {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return &Cache{client: client, ttl: opts.TTL, prefix: "tillbook:"}, nil
}

// GetJSON decodes the value at key into dst, or returns ErrMiss.
func (c *Cache) GetJSON(ctx context.Context, key string, dst any) error {
	if c == nil {
		return ErrMiss
	}

	b, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrMiss
		}

		return fmt.Errorf("reading cache key %s: %w", key, err)
	}

	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("decoding cache key %s: %w", key, err)
	}

	return nil
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any) error {
	if c == nil {
		return nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding cache key %s: %w", key, err)
	}

	if err := c.client.Set(ctx, c.prefix+key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("writing cache key %s: %w", key, err)
	}

	return nil
}

// Flush drops every key written by this cache.
func (c *Cache) Flush(ctx context.Context) error {
	return c.DeletePrefix(ctx, "")
}

// DeletePrefix drops every key that starts with prefix.
func (c *Cache) DeletePrefix(ctx context.Context, prefix string) error {
	if c == nil {
		return nil
	}

	iter := c.client.Scan(ctx, 0, c.prefix+prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("deleting cache key: %w", err)
		}
	}

	return iter.Err()
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}

	return c.client.Close()
}
