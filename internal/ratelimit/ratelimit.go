// Package ratelimit throttles public form submissions per client.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Limiter decides whether another request for key fits the budget.
type Limiter interface {
	Allow(ctx context.Context, key string) bool
}

// Stores accepted by New.
const (
	StoreRedis  = "redis"
	StoreMemory = "memory"
)

// New builds the limiter for store. The Redis limiter falls back to a
// per-process bucket while Redis is unreachable.
func New(store string, client *redis.Client, limit int, window time.Duration, logger *slog.Logger) (Limiter, error) {
	switch strings.ToLower(strings.TrimSpace(store)) {
	case StoreMemory:
		return NewMemory(limit, window), nil
	case StoreRedis, "":
		if client == nil {
			return nil, fmt.Errorf("ratelimit: %s store needs a redis client", StoreRedis)
		}
		return NewRedis(client, limit, window, logger).WithFallback(NewMemory(limit, window)), nil
	default:
		return nil, fmt.Errorf("ratelimit: unknown store %q", store)
	}
}

// Redis is a fixed-window counter shared by every instance of the app.
// Redis failures go to the fallback, or let the request through without one.
type Redis struct {
	client   *redis.Client
	fallback Limiter
	logger   *slog.Logger
	prefix  string
	limit   int
	window  time.Duration
	timeout time.Duration
}

func NewRedis(client *redis.Client, limit int, window time.Duration, logger *slog.Logger) *Redis {
	if window <= 0 {
		window = time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Redis{
		client:  client,
		logger:  logger,
		prefix:  "portfolio:ratelimit:",
		limit:   limit,
		window:  window,
		timeout: 250 * time.Millisecond,
	}
}

// WithFallback sets the limiter consulted when Redis errors.
func (rl *Redis) WithFallback(l Limiter) *Redis {
	rl.fallback = l
	return rl
}

func (rl *Redis) Allow(ctx context.Context, key string) bool {
	if rl.limit <= 0 {
		return true
	}
	ctx, cancel := context.WithTimeout(ctx, rl.timeout)
	defer cancel()

	redisKey := rl.prefix + key
	counter, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		rl.logger.Error("redis rate limiter error", "op", "incr", "error", err)
		if rl.fallback != nil {
			return rl.fallback.Allow(ctx, key)
		}
		return true
	}
	if counter == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.window).Err(); err != nil {
			rl.logger.Error("redis rate limiter error", "op", "expire", "error", err)
		}
	}
	return int(counter) <= rl.limit
}

// Memory is a per-process token bucket per key. It serves single-instance
// deployments and stands in for Redis while Redis is down.
type Memory struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	every   rate.Limit
	burst   int
}

func NewMemory(limit int, window time.Duration) *Memory {
	if window <= 0 {
		window = time.Minute
	}
	m := &Memory{buckets: make(map[string]*rate.Limiter), burst: limit}
	if limit > 0 {
		m.every = rate.Every(window / time.Duration(limit))
	}
	return m
}

func (m *Memory) Allow(_ context.Context, key string) bool {
	if m.burst <= 0 {
		return true
	}
	m.mu.Lock()
	l, ok := m.buckets[key]
	if !ok {
		l = rate.NewLimiter(m.every, m.burst)
		m.buckets[key] = l
	}
	m.mu.Unlock()
	return l.Allow()
}
