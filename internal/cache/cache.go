// Package cache кеш read-моделей (статус connected account процессора) в redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	redisDialTimeout  = 5 * time.Second
	redisReadTimeout  = 3 * time.Second
	redisWriteTimeout = 3 * time.Second
	redisPoolSize     = 10
)

// Connect создает клиент redis и проверяет соединение.
func Connect(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           db,
		DialTimeout:  redisDialTimeout,
		ReadTimeout:  redisReadTimeout,
		WriteTimeout: redisWriteTimeout,
		PoolSize:     redisPoolSize,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisDialTimeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return rdb, nil
}

// ViewCache JSON кеш значений типа T. Ошибки redis не пробрасываются, а логируются: промах кеша не фатален.
type ViewCache[T any] struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	l      *logrus.Entry
}

func NewViewCache[T any](client *redis.Client, prefix string, ttl time.Duration, l *logrus.Logger) *ViewCache[T] {
	return &ViewCache[T]{
		client: client,
		prefix: prefix,
		ttl:    ttl,
		l: l.WithFields(logrus.Fields{
			"component": "cache",
			"module":    prefix,
		}),
	}
}

// Get возвращает (nil, false) при промахе или ошибке десериализации.
func (c *ViewCache[T]) Get(ctx context.Context, key string) (*T, bool) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.l.WithError(err).WithField("key", key).Warn("read error")
		}
		return nil, false
	}
	var v T
	if jsonErr := json.Unmarshal(data, &v); jsonErr != nil {
		c.l.WithError(jsonErr).WithField("key", key).Warn("unmarshal error")
		return nil, false
	}
	return &v, true
}

func (c *ViewCache[T]) Set(ctx context.Context, key string, value *T) {
	data, err := json.Marshal(value)
	if err != nil {
		c.l.WithError(err).WithField("key", key).Warn("marshal error")
		return
	}
	if setErr := c.client.Set(ctx, c.key(key), data, c.ttl).Err(); setErr != nil {
		c.l.WithError(setErr).WithField("key", key).Warn("write error")
	}
}

func (c *ViewCache[T]) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		c.l.WithError(err).WithField("key", key).Warn("delete error")
	}
}

func (c *ViewCache[T]) key(key string) string {
	return c.prefix + ":" + key
}

// Noop кеш, который ничего не хранит. Используется, когда redis не настроен.
type Noop[T any] struct{}

func (Noop[T]) Get(context.Context, string) (*T, bool) { return nil, false }
func (Noop[T]) Set(context.Context, string, *T)        {}
func (Noop[T]) Delete(context.Context, string)         {}
