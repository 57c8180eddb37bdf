// Package cache stores generated study content so repeated requests skip the model.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/studysaathi/studysaathi/internal/config"
)

// Store is a string key value store with expiry.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Close() error
}

type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(cfg config.RedisConfig) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		prefix: cfg.KeyPrefix,
	}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis.Get(%s) > %w", key, err)
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.prefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis.Set(%s) > %w", key, err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

// NopStore never holds anything. It is used when Redis is not configured.
type NopStore struct{}

func (NopStore) Get(context.Context, string) (string, bool, error)        { return "", false, nil }
func (NopStore) Set(context.Context, string, string, time.Duration) error { return nil }
func (NopStore) Close() error                                             { return nil }

// ContentCache deduplicates concurrent generations of the same content and keeps the result.
type ContentCache struct {
	store  Store
	ttl    time.Duration
	group  singleflight.Group
	logger *zap.Logger
}

func NewContentCache(store Store, ttl time.Duration, logger *zap.Logger) *ContentCache {
	return &ContentCache{
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// Key builds a stable cache key from the request fields.
func Key(namespace string, parts ...string) string {
	normalized := make([]string, 0, len(parts))
	for _, p := range parts {
		normalized = append(normalized, strings.ToLower(strings.Join(strings.Fields(p), " ")))
	}
	sum := sha256.Sum256([]byte(strings.Join(normalized, "\x00")))
	return namespace + ":" + hex.EncodeToString(sum[:])[:32]
}

// GetOrGenerate returns the cached value for key or generates and stores it.
// The boolean reports whether the value came from the cache.
// Cache failures are logged and never fail the request.
func (c *ContentCache) GetOrGenerate(ctx context.Context, key string, generate func(ctx context.Context) (string, error)) (string, bool, error) {
	value, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn("content cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		return value, true, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		generated, err := generate(ctx)
		if err != nil {
			return "", err
		}
		if generated != "" {
			if err := c.store.Set(ctx, key, generated, c.ttl); err != nil {
				c.logger.Warn("content cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
		return generated, nil
	})
	if err != nil {
		return "", false, err
	}
	return v.(string), false, nil
}

func (c *ContentCache) Close() error {
	return c.store.Close()
}
